package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI)

	admin := auth.RequireRole(models.RoleAdmin)
	api.Post("/", admin, CreateStudentAPI)
	api.Put("/:id", admin, UpdateStudentAPI)
	api.Delete("/:id", admin, DeleteStudentAPI)

	// Parameterized reads are registered after the mutations so the router
	// resolves literal segments first.
	api.Get("/:id/class", GetStudentClassAPI)
	api.Get("/:student_id/subjects", GetStudentSubjectsAPI)
	api.Get("/:student_id", GetStudentAPI)
}
