package apiutil

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/database"
	"github.com/zohaib-han/Attendance-Management-System/app/logger"
	"github.com/zohaib-han/Attendance-Management-System/app/validation"
)

// Error converts a storage-layer error into the HTTP response the taxonomy
// prescribes. Unknown errors are logged server-side and surfaced as a
// generic 500 without detail.
func Error(c *fiber.Ctx, err error) error {
	var notFound *database.NotFoundError
	if errors.As(err, &notFound) {
		return c.Status(404).JSON(fiber.Map{"message": notFound.Error()})
	}

	var dup *database.DuplicateEntityError
	if errors.As(err, &dup) {
		return c.Status(400).JSON(fiber.Map{"message": dup.Error()})
	}

	var ref *database.InvalidReferenceError
	if errors.As(err, &ref) {
		return c.Status(400).JSON(fiber.Map{"message": ref.Error()})
	}

	var conflict *database.ConflictError
	if errors.As(err, &conflict) {
		return c.Status(400).JSON(fiber.Map{"message": conflict.Error()})
	}

	var transition *database.InvalidTransitionError
	if errors.As(err, &transition) {
		return c.Status(400).JSON(fiber.Map{"message": transition.Error()})
	}

	logger.Log.WithError(err).Errorf("Storage failure on %s %s", c.Method(), c.Path())
	return c.Status(500).JSON(fiber.Map{"message": "An error occurred while processing the request"})
}

// ValidationFailed renders field-level detail for a malformed request body.
func ValidationFailed(c *fiber.Ctx, errs []validation.FieldError) error {
	return c.Status(400).JSON(fiber.Map{"message": "Invalid input data", "errors": errs})
}

// BadRequest is for malformed parameters that never reach the validator.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(400).JSON(fiber.Map{"message": message})
}

// ParamID parses a positive integer path parameter.
func ParamID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		return 0, false
	}
	return int64(id), true
}
