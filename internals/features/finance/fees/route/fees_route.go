package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	feeCtl "schoolku_backend/internals/features/finance/fees/controller"
	authMw "schoolku_backend/internals/middlewares/auth"
)

// Fees + Midtrans checkout. The webhook is public (signature-verified
// inside the handler); everything else requires auth.
func FeesRoutes(app *fiber.App, db *gorm.DB) {
	ctl := feeCtl.NewFeeController(db)

	// Midtrans server-to-server notification
	app.Post("/api/fees/payments/notification", ctl.MidtransWebhook)

	user := app.Group("/api/u", authMw.AuthMiddleware(db))
	user.Get("/fees", ctl.List)
	user.Get("/fees/:id", ctl.GetByID)
	user.Post("/fees/:id/checkout", ctl.Checkout)

	admin := app.Group("/api/a", authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorAdmin("fees"), constants.RoleAdmin))
	admin.Post("/fees", ctl.Create)
	admin.Put("/fees/:id", ctl.Update)
	admin.Delete("/fees/:id", ctl.Delete)
}
