package faculty

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/auth"
)

func SetupFacultyRoutes(app *fiber.App) {
	api := app.Group("/api/faculty")
	api.Use(auth.AuthMiddleware)

	api.Get("/all", GetFacultyListAPI)
	api.Get("/assignments/:faculty_id", GetFacultyAssignmentsAPI)
	api.Get("/:subject_id/faculty", GetFacultyForSubjectAPI)

	admin := auth.RequireRole(models.RoleAdmin)
	api.Post("/", admin, CreateFacultyAPI)
	api.Put("/update/:id", admin, UpdateFacultyAPI)
	api.Delete("/:id", admin, DeleteFacultyAPI)

	api.Get("/:faculty_id", GetFacultyAPI)
}
