package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))

	api.Get("/overview", GetOverviewAPI)
	api.Get("/activity", GetRecentActivityAPI)
}
