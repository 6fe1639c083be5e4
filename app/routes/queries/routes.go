package queries

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/auth"
)

func SetupQueryRoutes(app *fiber.App) {
	api := app.Group("/api/query")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RequireRole(models.RoleStudent), CreateQueryAPI)

	api.Get("/unread", UnreadCountAPI)
	api.Put("/unread/ack", AckUnreadAPI)

	facultyOnly := auth.RequireRole(models.RoleFaculty)
	api.Put("/:id/accept", facultyOnly, transitionAPI(models.QueryAccepted, "Query accepted"))
	api.Put("/:id/reject", facultyOnly, transitionAPI(models.QueryRejected, "Query rejected"))
	api.Put("/:id/close", auth.RequireRole(models.RoleStudent, models.RoleFaculty), transitionAPI(models.QueryClosed, "Query closed"))
	api.Put("/:id/reply", facultyOnly, ReplyQueryAPI)

	api.Get("/:student_id/queries", GetStudentQueriesAPI)
	api.Get("/:faculty_id", GetFacultyQueriesAPI)
}
