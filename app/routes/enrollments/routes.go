package enrollments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/auth"
)

func SetupEnrollmentsRoutes(app *fiber.App) {
	api := app.Group("/api/enrollments")
	api.Use(auth.AuthMiddleware)

	api.Get("/all", GetAssignmentsAPI)
	api.Get("/:id/:type", CountAssignmentsAPI)

	admin := auth.RequireRole(models.RoleAdmin)
	api.Post("/assign", admin, AssignAPI)
	api.Delete("/:id", admin, DeleteAssignmentAPI)
}
