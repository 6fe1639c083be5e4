package faculty

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/config"
	"github.com/zohaib-han/Attendance-Management-System/app/database"
	"github.com/zohaib-han/Attendance-Management-System/app/models"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/apiutil"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/auth"
	"github.com/zohaib-han/Attendance-Management-System/app/validation"
)

type facultyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

func GetFacultyListAPI(c *fiber.Ctx) error {
	faculties, err := database.GetAllFaculty(config.GetDB())
	if err != nil {
		return apiutil.Error(c, err)
	}
	if faculties == nil {
		faculties = []models.Faculty{}
	}
	return c.JSON(faculties)
}

func GetFacultyAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "faculty_id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid faculty ID")
	}

	f, err := database.GetFacultyByID(config.GetDB(), id)
	if err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON([]*models.Faculty{f})
}

func CreateFacultyAPI(c *fiber.Ctx) error {
	var req facultyRequest
	if err := c.BodyParser(&req); err != nil {
		return apiutil.BadRequest(c, "Invalid request body")
	}
	if req.Password == "" {
		return apiutil.BadRequest(c, "Password is required")
	}
	if errs := validation.Struct(req); errs != nil {
		return apiutil.ValidationFailed(c, errs)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apiutil.Error(c, err)
	}

	f := &models.Faculty{
		Name:     validation.StripTags(req.Name),
		Email:    validation.StripTags(req.Email),
		Password: hash,
	}
	if err := database.CreateFaculty(config.GetDB(), f); err != nil {
		return apiutil.Error(c, err)
	}

	return c.JSON(fiber.Map{"message": "Faculty created successfully", "id": f.ID})
}

func UpdateFacultyAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid faculty ID")
	}

	var req facultyRequest
	if err := c.BodyParser(&req); err != nil {
		return apiutil.BadRequest(c, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return apiutil.ValidationFailed(c, errs)
	}

	f := &models.Faculty{
		ID:    id,
		Name:  validation.StripTags(req.Name),
		Email: validation.StripTags(req.Email),
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return apiutil.Error(c, err)
		}
		f.Password = hash
	}

	if err := database.UpdateFaculty(config.GetDB(), f); err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Faculty updated successfully"})
}

func DeleteFacultyAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid faculty ID")
	}

	if err := database.DeleteFaculty(config.GetDB(), id); err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Faculty deleted successfully"})
}

func GetFacultyAssignmentsAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "faculty_id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid faculty ID")
	}

	assignments, err := database.GetFacultyAssignments(config.GetDB(), id)
	if err != nil {
		return apiutil.Error(c, err)
	}
	if assignments == nil {
		assignments = []models.FacultyAssignmentView{}
	}
	return c.JSON(assignments)
}

func GetFacultyForSubjectAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "subject_id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid subject ID")
	}

	facultyID, err := database.GetFacultyForSubject(config.GetDB(), id)
	if err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(fiber.Map{"faculty_id": facultyID})
}
