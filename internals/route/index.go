package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentsRoutes "schoolku_backend/internals/features/assessments/route"
	attendanceRoutes "schoolku_backend/internals/features/attendance/route"
	communicationRoutes "schoolku_backend/internals/features/communication/route"
	feesRoutes "schoolku_backend/internals/features/finance/fees/route"
	academicsRoutes "schoolku_backend/internals/features/school/academics/route"
	peopleRoutes "schoolku_backend/internals/features/school/people/route"
	authRoutes "schoolku_backend/internals/features/users/auth/route"
)

// SetupRoutes mounts every feature group.
//   /api/auth  — public auth endpoints
//   /api/u     — any authenticated role (reads are access-scoped)
//   /api/a     — admin only
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoutes.AuthRoutes(app, db)
	academicsRoutes.AcademicsRoutes(app, db)
	peopleRoutes.PeopleRoutes(app, db)
	assessmentsRoutes.AssessmentsRoutes(app, db)
	attendanceRoutes.AttendanceRoutes(app, db)
	feesRoutes.FeesRoutes(app, db)
	communicationRoutes.CommunicationRoutes(app, db)
}
