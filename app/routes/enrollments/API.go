package enrollments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/config"
	"github.com/zohaib-han/Attendance-Management-System/app/database"
	"github.com/zohaib-han/Attendance-Management-System/app/models"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/apiutil"
	"github.com/zohaib-han/Attendance-Management-System/app/validation"
)

func AssignAPI(c *fiber.Ctx) error {
	type assignRequest struct {
		ClassID   int64 `json:"class_id" validate:"required,gt=0"`
		FacultyID int64 `json:"faculty_id" validate:"required,gt=0"`
		SubjectID int64 `json:"subject_id" validate:"required,gt=0"`
	}

	var req assignRequest
	if err := c.BodyParser(&req); err != nil {
		return apiutil.BadRequest(c, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return apiutil.ValidationFailed(c, errs)
	}

	assignment := &models.Assignment{
		ClassID:   req.ClassID,
		FacultyID: req.FacultyID,
		SubjectID: req.SubjectID,
	}
	if err := database.CreateAssignment(config.GetDB(), assignment); err != nil {
		return apiutil.Error(c, err)
	}

	return c.JSON(fiber.Map{"message": "Assignment created successfully", "id": assignment.ID})
}

func GetAssignmentsAPI(c *fiber.Ctx) error {
	assignments, err := database.GetAllAssignments(config.GetDB())
	if err != nil {
		return apiutil.Error(c, err)
	}
	if assignments == nil {
		assignments = []models.AssignmentView{}
	}
	return c.JSON(assignments)
}

func DeleteAssignmentAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid assignment ID")
	}

	if err := database.DeleteAssignment(config.GetDB(), id); err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Assignment deleted successfully"})
}

// CountAssignmentsAPI reports how many assignment rows reference the given
// class, faculty or subject. Used before deletes to warn about cascades.
func CountAssignmentsAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid ID")
	}
	refType := c.Params("type")

	count, err := database.CountAssignments(config.GetDB(), refType, id)
	if err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}
