package subjects

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/auth"
)

func SetupSubjectsRoutes(app *fiber.App) {
	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)

	api.Get("/all", GetSubjectsAPI)

	admin := auth.RequireRole(models.RoleAdmin)
	api.Post("/", admin, CreateSubjectAPI)
	api.Put("/:id", admin, UpdateSubjectAPI)
	api.Delete("/:id", admin, DeleteSubjectAPI)

	api.Get("/:faculty_id", GetFacultySubjectsAPI)
}
