package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/config"
	"github.com/zohaib-han/Attendance-Management-System/app/database"
	"github.com/zohaib-han/Attendance-Management-System/app/models"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/apiutil"
	"github.com/zohaib-han/Attendance-Management-System/app/validation"
)

type classRequest struct {
	ClassName string `json:"class_name" validate:"required,min=1,max=50"`
	Section   string `json:"section" validate:"required,min=1,max=10"`
}

func GetClassesAPI(c *fiber.Ctx) error {
	classes, err := database.GetAllClasses(config.GetDB())
	if err != nil {
		return apiutil.Error(c, err)
	}
	if classes == nil {
		classes = []models.Class{}
	}
	return c.JSON(classes)
}

func CreateClassAPI(c *fiber.Ctx) error {
	var req classRequest
	if err := c.BodyParser(&req); err != nil {
		return apiutil.BadRequest(c, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return apiutil.ValidationFailed(c, errs)
	}

	class := &models.Class{
		ClassName: validation.StripTags(req.ClassName),
		Section:   validation.StripTags(req.Section),
	}
	if err := database.CreateClass(config.GetDB(), class); err != nil {
		return apiutil.Error(c, err)
	}

	return c.JSON(fiber.Map{"message": "Class created successfully", "class": class})
}

func UpdateClassAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid class ID")
	}

	var req classRequest
	if err := c.BodyParser(&req); err != nil {
		return apiutil.BadRequest(c, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return apiutil.ValidationFailed(c, errs)
	}

	err := database.UpdateClass(config.GetDB(), id, validation.StripTags(req.ClassName), validation.StripTags(req.Section))
	if err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Class updated successfully"})
}

func DeleteClassAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid class ID")
	}

	if err := database.DeleteClass(config.GetDB(), id); err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Class deleted successfully"})
}

func GetClassStudentsAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid class ID")
	}

	students, err := database.GetStudentsByClass(config.GetDB(), id)
	if err != nil {
		return apiutil.Error(c, err)
	}
	if students == nil {
		students = []models.Student{}
	}
	return c.JSON(students)
}
