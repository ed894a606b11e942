package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	peopleCtl "schoolku_backend/internals/features/school/people/controller"
	authMw "schoolku_backend/internals/middlewares/auth"
)

// People directory (teachers, students, parents).
// Student reads are access-scoped per role; parent data is admin-only.
func PeopleRoutes(app *fiber.App, db *gorm.DB) {
	teacherCtl := peopleCtl.NewTeacherController(db)
	parentCtl := peopleCtl.NewParentController(db)
	studentCtl := peopleCtl.NewStudentController(db)

	user := app.Group("/api/u", authMw.AuthMiddleware(db))

	user.Get("/teachers", teacherCtl.List)
	user.Get("/teachers/:id", teacherCtl.GetByID)
	user.Get("/students", studentCtl.List)
	user.Get("/students/:id", studentCtl.GetByID)

	admin := app.Group("/api/a", authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorAdmin("people management"), constants.RoleAdmin))

	admin.Post("/teachers", teacherCtl.Create)
	admin.Put("/teachers/:id", teacherCtl.Update)
	admin.Delete("/teachers/:id", teacherCtl.Delete)

	admin.Get("/parents", parentCtl.List)
	admin.Get("/parents/:id", parentCtl.GetByID)
	admin.Post("/parents", parentCtl.Create)
	admin.Put("/parents/:id", parentCtl.Update)
	admin.Delete("/parents/:id", parentCtl.Delete)

	admin.Post("/students", studentCtl.Create)
	admin.Put("/students/:id", studentCtl.Update)
	admin.Delete("/students/:id", studentCtl.Delete)
}
