package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/config"
	"github.com/zohaib-han/Attendance-Management-System/app/database"
	"github.com/zohaib-han/Attendance-Management-System/app/models"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/apiutil"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/auth"
	"github.com/zohaib-han/Attendance-Management-System/app/validation"
)

type studentRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	RollNo   string `json:"roll_no" validate:"required,min=1,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
	ClassID  int64  `json:"class_id" validate:"required,gt=0"`
}

func GetStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetAllStudents(config.GetDB())
	if err != nil {
		return apiutil.Error(c, err)
	}
	if students == nil {
		students = []models.StudentWithClass{}
	}
	return c.JSON(students)
}

func GetStudentAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "student_id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid student ID")
	}

	student, err := database.GetStudentByID(config.GetDB(), id)
	if err != nil {
		return apiutil.Error(c, err)
	}
	// The client expects a single-element list here.
	return c.JSON([]*models.StudentWithClass{student})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
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

	student := &models.Student{
		Name:     validation.StripTags(req.Name),
		RollNo:   validation.StripTags(req.RollNo),
		Email:    validation.StripTags(req.Email),
		Password: hash,
		Phone:    validation.StripTags(req.Phone),
		ClassID:  req.ClassID,
	}
	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return apiutil.Error(c, err)
	}

	return c.JSON(fiber.Map{"message": "Student created successfully", "studentId": student.ID})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid student ID")
	}

	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return apiutil.BadRequest(c, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return apiutil.ValidationFailed(c, errs)
	}

	student := &models.Student{
		ID:      id,
		Name:    validation.StripTags(req.Name),
		RollNo:  validation.StripTags(req.RollNo),
		Email:   validation.StripTags(req.Email),
		Phone:   validation.StripTags(req.Phone),
		ClassID: req.ClassID,
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return apiutil.Error(c, err)
		}
		student.Password = hash
	}

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student updated successfully"})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid student ID")
	}

	if err := database.DeleteStudent(config.GetDB(), id); err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

func GetStudentClassAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid student ID")
	}

	student, err := database.GetStudentByID(config.GetDB(), id)
	if err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(student)
}

func GetStudentSubjectsAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "student_id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid student ID")
	}

	subjects, err := database.GetStudentSubjects(config.GetDB(), id)
	if err != nil {
		return apiutil.Error(c, err)
	}
	if subjects == nil {
		subjects = []models.Subject{}
	}
	return c.JSON(subjects)
}
