package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	announcementCtl "schoolku_backend/internals/features/communication/announcement/controller"
	eventCtl "schoolku_backend/internals/features/communication/event/controller"
	messageCtl "schoolku_backend/internals/features/communication/message/controller"
	authMw "schoolku_backend/internals/middlewares/auth"
)

// Announcements, events and direct messages.
func CommunicationRoutes(app *fiber.App, db *gorm.DB) {
	aCtl := announcementCtl.NewAnnouncementController(db)
	eCtl := eventCtl.NewEventController(db)
	mCtl := messageCtl.NewMessageController(db)

	user := app.Group("/api/u", authMw.AuthMiddleware(db))

	user.Get("/announcements", aCtl.List)
	user.Get("/events", eCtl.List)

	user.Post("/messages", mCtl.Create)
	user.Get("/messages", mCtl.List)
	user.Get("/messages/:id", mCtl.GetByID)
	user.Delete("/messages/:id", mCtl.Delete)

	// announcements: teacher (own classes) or admin; ownership checked
	// in the controller
	manage := app.Group("/api/u", authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorTeacher("announcements"), constants.TeacherAndAbove...))
	manage.Post("/announcements", aCtl.Create)
	manage.Put("/announcements/:id", aCtl.Update)
	manage.Delete("/announcements/:id", aCtl.Delete)

	admin := app.Group("/api/a", authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorAdmin("events"), constants.RoleAdmin))
	admin.Post("/events", eCtl.Create)
	admin.Put("/events/:id", eCtl.Update)
	admin.Delete("/events/:id", eCtl.Delete)
}
