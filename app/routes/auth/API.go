package auth

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/config"
	"github.com/zohaib-han/Attendance-Management-System/app/database"
	"github.com/zohaib-han/Attendance-Management-System/app/models"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/apiutil"
	"github.com/zohaib-han/Attendance-Management-System/app/validation"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apiutil.BadRequest(c, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return apiutil.ValidationFailed(c, errs)
	}

	principal, hash, err := resolvePrincipal(config.GetDB(), req.Email)
	if err == sql.ErrNoRows {
		return c.Status(401).JSON(fiber.Map{"message": "Invalid email or password"})
	}
	if err != nil {
		return apiutil.Error(c, err)
	}

	if !CheckPasswordHash(req.Password, hash) {
		return c.Status(401).JSON(fiber.Map{"message": "Invalid email or password"})
	}

	token, err := GenerateJWT(principal)
	if err != nil {
		return apiutil.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"role":  principal.Role,
		"id":    principal.ID,
	})
}

// RegisterAPI creates an account for any of the three roles. Students get a
// generated roll number and the default class, mirroring self-registration.
func RegisterAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Name     string      `json:"name" validate:"required,min=1,max=100"`
		Email    string      `json:"email" validate:"required,email"`
		Password string      `json:"password" validate:"required,min=6"`
		Role     models.Role `json:"role" validate:"required,oneof=admin student faculty"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apiutil.BadRequest(c, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return apiutil.ValidationFailed(c, errs)
	}

	name := validation.StripTags(req.Name)
	email := validation.StripTags(req.Email)

	hash, err := HashPassword(req.Password)
	if err != nil {
		return apiutil.Error(c, err)
	}

	db := config.GetDB()
	switch req.Role {
	case models.RoleAdmin:
		admin := &models.Admin{Name: name, Email: email, Password: hash}
		if err := database.CreateAdmin(db, admin); err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fiber.Map{"message": "User registered successfully"})

	case models.RoleStudent:
		student := &models.Student{
			Name:     name,
			Email:    email,
			Password: hash,
			RollNo:   fmt.Sprintf("RN%d", time.Now().UnixMilli()),
			ClassID:  1,
		}
		if err := database.CreateStudent(db, student); err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fiber.Map{"message": "User registered successfully", "id": student.ID})

	default:
		faculty := &models.Faculty{Name: name, Email: email, Password: hash}
		if err := database.CreateFaculty(db, faculty); err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fiber.Map{"message": "User registered successfully", "id": faculty.ID})
	}
}
