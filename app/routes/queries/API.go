package queries

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/config"
	"github.com/zohaib-han/Attendance-Management-System/app/database"
	"github.com/zohaib-han/Attendance-Management-System/app/models"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/apiutil"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/auth"
	"github.com/zohaib-han/Attendance-Management-System/app/validation"
)

type queryRequest struct {
	StudentID int64  `json:"student_id" validate:"required,gt=0"`
	FacultyID int64  `json:"faculty_id" validate:"required,gt=0"`
	Subject   string `json:"subject" validate:"required,min=1,max=100"`
	Message   string `json:"message" validate:"required,min=1,max=500"`
}

type replyRequest struct {
	Reply string `json:"reply" validate:"required,min=1,max=500"`
}

func CreateQueryAPI(c *fiber.Ctx) error {
	var req queryRequest
	if err := c.BodyParser(&req); err != nil {
		return apiutil.BadRequest(c, "Invalid request body")
	}
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	if errs := validation.Struct(req); errs != nil {
		return apiutil.ValidationFailed(c, errs)
	}
	if validation.HasMarkup(req.Subject) || validation.HasMarkup(req.Message) {
		return apiutil.BadRequest(c, "Subject and message must not contain markup")
	}

	id, err := database.CreateQuery(config.GetDB(),
		req.StudentID, req.FacultyID,
		validation.StripTags(req.Subject), validation.StripTags(req.Message))
	if err != nil {
		return apiutil.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Query submitted successfully",
		"id":      id,
	})
}

func GetFacultyQueriesAPI(c *fiber.Ctx) error {
	facultyID, ok := apiutil.ParamID(c, "faculty_id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid faculty ID")
	}

	list, err := database.GetFacultyQueries(config.GetDB(), facultyID)
	if err != nil {
		return apiutil.Error(c, err)
	}
	if list == nil {
		list = []models.FacultyQueryView{}
	}
	return c.JSON(list)
}

func GetStudentQueriesAPI(c *fiber.Ctx) error {
	studentID, ok := apiutil.ParamID(c, "student_id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid student ID")
	}

	list, err := database.GetStudentQueries(config.GetDB(), studentID)
	if err != nil {
		return apiutil.Error(c, err)
	}
	if list == nil {
		list = []models.StudentQueryView{}
	}
	return c.JSON(list)
}

func transitionAPI(next models.QueryStatus, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := apiutil.ParamID(c, "id")
		if !ok {
			return apiutil.BadRequest(c, "Invalid query ID")
		}
		if err := database.TransitionQuery(config.GetDB(), id, next); err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fiber.Map{"message": message})
	}
}

func ReplyQueryAPI(c *fiber.Ctx) error {
	id, ok := apiutil.ParamID(c, "id")
	if !ok {
		return apiutil.BadRequest(c, "Invalid query ID")
	}

	var req replyRequest
	if err := c.BodyParser(&req); err != nil {
		return apiutil.BadRequest(c, "Invalid request body")
	}
	req.Reply = strings.TrimSpace(req.Reply)
	if errs := validation.Struct(req); errs != nil {
		return apiutil.ValidationFailed(c, errs)
	}
	if validation.HasMarkup(req.Reply) {
		return apiutil.BadRequest(c, "Reply must not contain markup")
	}

	if err := database.ReplyQuery(config.GetDB(), id, validation.StripTags(req.Reply)); err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Reply sent successfully"})
}

// UnreadCountAPI counts queries updated since the caller's last
// acknowledgement, resolved server-side from the authenticated principal.
func UnreadCountAPI(c *fiber.Ctx) error {
	p := auth.GetPrincipal(c)
	count, err := database.UnreadQueryCount(config.GetDB(), p.Role, p.ID)
	if err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

func AckUnreadAPI(c *fiber.Ctx) error {
	p := auth.GetPrincipal(c)
	if err := database.AckQueries(config.GetDB(), p.Role, p.ID); err != nil {
		return apiutil.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Queries acknowledged"})
}
