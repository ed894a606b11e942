package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	assignmentCtl "schoolku_backend/internals/features/assessments/assignment/controller"
	examCtl "schoolku_backend/internals/features/assessments/exam/controller"
	resultCtl "schoolku_backend/internals/features/assessments/result/controller"
	authMw "schoolku_backend/internals/middlewares/auth"
)

// Exams, assignments and results. Reads are access-scoped per role;
// mutations require teacher or admin, with per-lesson ownership
// enforced in the controllers.
func AssessmentsRoutes(app *fiber.App, db *gorm.DB) {
	eCtl := examCtl.NewExamController(db)
	aCtl := assignmentCtl.NewAssignmentController(db)
	rCtl := resultCtl.NewResultController(db)

	user := app.Group("/api/u", authMw.AuthMiddleware(db))

	user.Get("/exams", eCtl.List)
	user.Get("/exams/:id", eCtl.GetByID)
	user.Get("/assignments", aCtl.List)
	user.Get("/assignments/:id", aCtl.GetByID)
	user.Get("/results", rCtl.List)
	user.Get("/results/:id", rCtl.GetByID)

	manage := app.Group("/api/u", authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorTeacher("assessments"), constants.TeacherAndAbove...))

	manage.Post("/exams", eCtl.Create)
	manage.Put("/exams/:id", eCtl.Update)
	manage.Delete("/exams/:id", eCtl.Delete)

	manage.Post("/assignments", aCtl.Create)
	manage.Put("/assignments/:id", aCtl.Update)
	manage.Delete("/assignments/:id", aCtl.Delete)

	manage.Post("/results", rCtl.Create)
	manage.Put("/results/:id", rCtl.Update)
	manage.Delete("/results/:id", rCtl.Delete)
}
