package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/auth"
)

func SetupClassesRoutes(app *fiber.App) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)

	api.Get("/all", GetClassesAPI)
	api.Get("/:id/students", GetClassStudentsAPI)

	admin := auth.RequireRole(models.RoleAdmin)
	api.Post("/", admin, CreateClassAPI)
	api.Put("/:id", admin, UpdateClassAPI)
	api.Delete("/:id", admin, DeleteClassAPI)
}
