package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	marker := auth.RequireRole(models.RoleFaculty, models.RoleAdmin)
	api.Post("/", marker, RecordAttendanceAPI)
	api.Put("/edit", marker, EditAttendanceAPI)

	api.Get("/stats", GetStatsAPI)
	api.Get("/trend", GetTrendAPI)
	api.Get("/summary", GetSummaryAPI)
	api.Get("/percentage", GetPercentageAPI)
	api.Get("/activity-log", GetActivityLogAPI)

	api.Get("/records/:class_id/:subject_id/:date", GetAttendanceRecordsAPI)
	api.Get("/submitted/:class_id/:subject_id/:date", GetSubmittedAPI)
	api.Get("/class-students/:class_id", GetClassStudentsAPI)
	api.Get("/student/:student_id/subject/:subject_id", GetStudentSubjectAttendanceAPI)
	api.Get("/student/:student_id", GetStudentAttendanceAPI)
}
