package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	attendanceCtl "schoolku_backend/internals/features/attendance/controller"
	authMw "schoolku_backend/internals/middlewares/auth"
)

// Attendance records. Reads are access-scoped per role; recording and
// corrections require teacher or admin.
func AttendanceRoutes(app *fiber.App, db *gorm.DB) {
	ctl := attendanceCtl.NewAttendanceController(db)

	user := app.Group("/api/u", authMw.AuthMiddleware(db))
	user.Get("/attendances", ctl.List)

	manage := app.Group("/api/u", authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorTeacher("attendance"), constants.TeacherAndAbove...))

	manage.Post("/attendances", ctl.Create)
	manage.Put("/attendances/:id", ctl.Update)
	manage.Delete("/attendances/:id", ctl.Delete)
}
