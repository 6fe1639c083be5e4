package attendance

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/config"
	"github.com/zohaib-han/Attendance-Management-System/app/database"
	"github.com/zohaib-han/Attendance-Management-System/app/models"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/apiutil"
	"github.com/zohaib-han/Attendance-Management-System/app/validation"
)

type attendanceRequest struct {
	ClassID   int64  `json:"class_id" validate:"required,gt=0"`
	FacultyID int64  `json:"faculty_id" validate:"required,gt=0"`
	SubjectID int64  `json:"subject_id" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required"`
	Attendance []struct {
		ID     int64                   `json:"id" validate:"required,gt=0"`
		Status models.AttendanceStatus `json:"status" validate:"required,oneof=Present Absent Late"`
	} `json:"attendance" validate:"required,min=1,dive"`
}

// parseDate normalizes an ISO-8601 input to its calendar-day part.
func parseDate(s string) (string, bool) {
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

func (r *attendanceRequest) marks() []database.AttendanceMark {
	marks := make([]database.AttendanceMark, 0, len(r.Attendance))
	for _, a := range r.Attendance {
		marks = append(marks, database.AttendanceMark{StudentID: a.ID, Status: a.Status})
	}
	return marks
}

func RecordAttendanceAPI(c *fiber.Ctx) error {
	var req attendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apiutil.BadRequest(c, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return apiutil.ValidationFailed(c, errs)
	}
	date, ok := parseDate(req.Date)
	if !ok {
		return apiutil.BadRequest(c, "Invalid date format")
	}

	db := config.GetDB()
	if err := database.RecordAttendance(db, req.ClassID, req.FacultyID, req.SubjectID, date, req.marks()); err != nil {
		return apiutil.Error(c, err)
	}

	logAttendanceActivity(db, req.ClassID, req.FacultyID, req.SubjectID, date)
	return c.JSON(fiber.Map{"message": "Attendance recorded successfully"})
}

func EditAttendanceAPI(c *fiber.Ctx) error {
	var req attendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apiutil.BadRequest(c, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return apiutil.ValidationFailed(c, errs)
	}
	date, ok := parseDate(req.Date)
	if !ok {
		return apiutil.BadRequest(c, "Invalid date format")
	}

	db := config.GetDB()
	if err := database.EditAttendance(db, req.ClassID, req.FacultyID, req.SubjectID, date, req.marks()); err != nil {
		return apiutil.Error(c, err)
	}

	database.LogActivity(db, "attendance",
		fmt.Sprintf("Attendance updated for class %d, subject %d on %s", req.ClassID, req.SubjectID, date))
	return c.JSON(fiber.Map{"message": "Attendance updated successfully"})
}

// logAttendanceActivity records the submission with display names; lookup
// failures fall back to bare ids.
func logAttendanceActivity(db *sql.DB, classID, facultyID, subjectID int64, date string) {
	facultyName := fmt.Sprintf("faculty %d", facultyID)
	className := fmt.Sprintf("class %d", classID)
	section := ""
	subjectName := fmt.Sprintf("subject %d", subjectID)

	if f, err := database.GetFacultyByID(db, facultyID); err == nil {
		facultyName = f.Name
	}
	if cl, err := database.GetClassByID(db, classID); err == nil {
		className = cl.ClassName
		section = cl.Section
	}
	if s, err := database.GetSubjectByID(db, subjectID); err == nil {
		subjectName = s.Name
	}

	database.LogActivity(db, "attendance",
		fmt.Sprintf("Attendance marked by %s for class: %s-%s, subject: %s on %s",
			facultyName, className, section, subjectName, date))
}

func GetAttendanceRecordsAPI(c *fiber.Ctx) error {
	classID, ok := apiutil.ParamID(c, "class_id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid class ID")
	}
	subjectID, ok := apiutil.ParamID(c, "subject_id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid subject ID")
	}
	date, ok := parseDate(c.Params("date"))
	if !ok {
		return apiutil.BadRequest(c, "Invalid date format")
	}

	records, err := database.GetAttendanceRecords(config.GetDB(), classID, subjectID, date)
	if err != nil {
		return apiutil.Error(c, err)
	}
	if records == nil {
		records = []models.AttendanceEntry{}
	}
	return c.JSON(records)
}

// GetSubmittedAPI reports whether the day's batch has been recorded, so
// clients route changes through edit instead of a second submission.
func GetSubmittedAPI(c *fiber.Ctx) error {
	classID, ok := apiutil.ParamID(c, "class_id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid class ID")
	}
	subjectID, ok := apiutil.ParamID(c, "subject_id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid subject ID")
	}
	date, ok := parseDate(c.Params("date"))
	if !ok {
		return apiutil.BadRequest(c, "Invalid date format")
	}

	submitted, err := database.IsAttendanceSubmitted(config.GetDB(), classID, subjectID, date)
	if err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(fiber.Map{"submitted": submitted})
}

func GetClassStudentsAPI(c *fiber.Ctx) error {
	classID, ok := apiutil.ParamID(c, "class_id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid class ID")
	}

	students, err := database.GetStudentsByClass(config.GetDB(), classID)
	if err != nil {
		return apiutil.Error(c, err)
	}

	list := make([]fiber.Map, 0, len(students))
	for _, s := range students {
		list = append(list, fiber.Map{"id": s.ID, "name": s.Name})
	}
	return c.JSON(list)
}

func GetStudentSubjectAttendanceAPI(c *fiber.Ctx) error {
	studentID, ok := apiutil.ParamID(c, "student_id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid student ID")
	}
	subjectID, ok := apiutil.ParamID(c, "subject_id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid subject ID")
	}

	history, err := database.GetStudentSubjectAttendance(config.GetDB(), studentID, subjectID)
	if err != nil {
		return apiutil.Error(c, err)
	}
	if history == nil {
		history = []models.AttendanceHistoryRow{}
	}
	return c.JSON(history)
}

func GetStudentAttendanceAPI(c *fiber.Ctx) error {
	studentID, ok := apiutil.ParamID(c, "student_id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid student ID")
	}

	history, err := database.GetStudentAttendanceHistory(config.GetDB(), studentID)
	if err != nil {
		return apiutil.Error(c, err)
	}
	if history == nil {
		history = []models.AttendanceHistoryRow{}
	}
	return c.JSON(history)
}

func GetStatsAPI(c *fiber.Ctx) error {
	var filter database.StatsFilter

	if v := c.Query("class_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id < 1 {
			return apiutil.BadRequest(c, "Invalid class ID")
		}
		filter.ClassID = id
	}
	if v := c.Query("subject_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id < 1 {
			return apiutil.BadRequest(c, "Invalid subject ID")
		}
		filter.SubjectID = id
	}
	if v := c.Query("date"); v != "" {
		date, ok := parseDate(v)
		if !ok {
			return apiutil.BadRequest(c, "Invalid date format")
		}
		filter.Date = date
	}

	stats, err := database.GetAttendanceStats(config.GetDB(), filter)
	if err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(stats)
}

func GetTrendAPI(c *fiber.Ctx) error {
	month := c.QueryInt("month")
	year := c.QueryInt("year")
	if c.Query("month") != "" && (month < 1 || month > 12) {
		return apiutil.BadRequest(c, "Invalid month")
	}
	if c.Query("year") != "" && year < 2000 {
		return apiutil.BadRequest(c, "Invalid year")
	}

	trend, err := database.GetAttendanceTrend(config.GetDB(), month, year)
	if err != nil {
		return apiutil.Error(c, err)
	}

	message := "Attendance trend fetched successfully"
	if len(trend) == 0 {
		trend = []models.TrendPoint{}
		message = "No attendance records found"
	}
	return c.JSON(fiber.Map{"data": trend, "message": message})
}

func GetSummaryAPI(c *fiber.Ctx) error {
	classID, err := strconv.ParseInt(c.Query("class_id"), 10, 64)
	if err != nil || classID < 1 {
		return apiutil.BadRequest(c, "Invalid class ID")
	}
	subjectID, err := strconv.ParseInt(c.Query("subject_id"), 10, 64)
	if err != nil || subjectID < 1 {
		return apiutil.BadRequest(c, "Invalid subject ID")
	}
	date, ok := parseDate(c.Query("date"))
	if !ok {
		return apiutil.BadRequest(c, "Invalid date (YYYY-MM-DD)")
	}

	summary, err := database.GetAttendanceSummary(config.GetDB(), classID, subjectID, date)
	if err != nil {
		return apiutil.Error(c, err)
	}
	// Single-element list, matching what the dashboard consumes.
	return c.JSON([]*models.AttendanceSummary{summary})
}

func GetPercentageAPI(c *fiber.Ctx) error {
	studentID, err := strconv.ParseInt(c.Query("student_id"), 10, 64)
	if err != nil || studentID < 1 {
		return apiutil.BadRequest(c, "Invalid student ID")
	}
	subjectID, err := strconv.ParseInt(c.Query("subject_id"), 10, 64)
	if err != nil || subjectID < 1 {
		return apiutil.BadRequest(c, "Invalid subject ID")
	}

	pct, err := database.GetStudentSubjectPercentage(config.GetDB(), studentID, subjectID)
	if err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(pct)
}

func GetActivityLogAPI(c *fiber.Ctx) error {
	entries, err := database.GetActivityLog(config.GetDB())
	if err != nil {
		return apiutil.Error(c, err)
	}
	if entries == nil {
		entries = []models.ActivityLogEntry{}
	}
	return c.JSON(entries)
}
