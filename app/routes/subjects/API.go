package subjects

import (
	"regexp"

	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/config"
	"github.com/zohaib-han/Attendance-Management-System/app/database"
	"github.com/zohaib-han/Attendance-Management-System/app/models"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/apiutil"
	"github.com/zohaib-han/Attendance-Management-System/app/validation"
)

// Subject names are restricted to letters, numbers, spaces and hyphens.
var subjectNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s-]+$`)

type subjectRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

func GetSubjectsAPI(c *fiber.Ctx) error {
	subjects, err := database.GetAllSubjects(config.GetDB())
	if err != nil {
		return apiutil.Error(c, err)
	}
	if subjects == nil {
		subjects = []models.Subject{}
	}
	return c.JSON(subjects)
}

func CreateSubjectAPI(c *fiber.Ctx) error {
	var req subjectRequest
	if err := c.BodyParser(&req); err != nil {
		return apiutil.BadRequest(c, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return apiutil.ValidationFailed(c, errs)
	}
	if !subjectNamePattern.MatchString(req.Name) {
		return apiutil.BadRequest(c, "Subject name can only contain letters, numbers, spaces, and hyphens")
	}

	subject := &models.Subject{Name: validation.StripTags(req.Name)}
	if err := database.CreateSubject(config.GetDB(), subject); err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Subject created successfully", "id": subject.ID})
}

func UpdateSubjectAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid subject ID")
	}

	var req subjectRequest
	if err := c.BodyParser(&req); err != nil {
		return apiutil.BadRequest(c, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return apiutil.ValidationFailed(c, errs)
	}
	if !subjectNamePattern.MatchString(req.Name) {
		return apiutil.BadRequest(c, "Subject name can only contain letters, numbers, spaces, and hyphens")
	}

	if err := database.UpdateSubject(config.GetDB(), id, validation.StripTags(req.Name)); err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Subject updated successfully"})
}

func DeleteSubjectAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid subject ID")
	}

	if err := database.DeleteSubject(config.GetDB(), id); err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Subject deleted successfully"})
}

// GetFacultySubjectsAPI lists subjects taught by the given faculty.
func GetFacultySubjectsAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "faculty_id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid faculty ID")
	}

	subjects, err := database.GetSubjectsByFaculty(config.GetDB(), id)
	if err != nil {
		return apiutil.Error(c, err)
	}
	if subjects == nil {
		subjects = []models.Subject{}
	}
	return c.JSON(subjects)
}
