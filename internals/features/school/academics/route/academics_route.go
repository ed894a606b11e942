package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	academicsCtl "schoolku_backend/internals/features/school/academics/controller"
	authMw "schoolku_backend/internals/middlewares/auth"
)

// Master data (grades, subjects, classes, lessons).
// Reads are open to every authenticated role; mutations are admin-only.
func AcademicsRoutes(app *fiber.App, db *gorm.DB) {
	gradeCtl := academicsCtl.NewGradeController(db)
	subjectCtl := academicsCtl.NewSubjectController(db)
	classCtl := academicsCtl.NewClassController(db)
	lessonCtl := academicsCtl.NewLessonController(db)

	user := app.Group("/api/u", authMw.AuthMiddleware(db))

	user.Get("/grades", gradeCtl.List)
	user.Get("/grades/:id", gradeCtl.GetByID)
	user.Get("/subjects", subjectCtl.List)
	user.Get("/subjects/:id", subjectCtl.GetByID)
	user.Get("/classes", classCtl.List)
	user.Get("/classes/:id", classCtl.GetByID)
	user.Get("/lessons", lessonCtl.List)
	user.Get("/lessons/:id", lessonCtl.GetByID)

	admin := app.Group("/api/a", authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorAdmin("school master data"), constants.RoleAdmin))

	admin.Post("/grades", gradeCtl.Create)
	admin.Put("/grades/:id", gradeCtl.Update)
	admin.Delete("/grades/:id", gradeCtl.Delete)

	admin.Post("/subjects", subjectCtl.Create)
	admin.Put("/subjects/:id", subjectCtl.Update)
	admin.Delete("/subjects/:id", subjectCtl.Delete)

	admin.Post("/classes", classCtl.Create)
	admin.Put("/classes/:id", classCtl.Update)
	admin.Delete("/classes/:id", classCtl.Delete)

	admin.Post("/lessons", lessonCtl.Create)
	admin.Put("/lessons/:id", lessonCtl.Update)
	admin.Delete("/lessons/:id", lessonCtl.Delete)
}
