package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "schoolku_backend/internals/features/users/auth/controller"
	"schoolku_backend/internals/middlewares"
	authMw "schoolku_backend/internals/middlewares/auth"
)

// Public auth endpoints + the authed /me.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	grp := app.Group("/api/auth")

	grp.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Post("/refresh-token", ctl.RefreshToken)

	authed := app.Group("/api/u/auth", authMw.AuthMiddleware(db))
	authed.Get("/me", ctl.Me)
	authed.Post("/logout", ctl.Logout)
}
