package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name    string `validate:"required,min=2,max=50"`
	Email   string `validate:"required,email"`
	ClassID int64  `validate:"required,gt=0"`
	Role    string `validate:"required,oneof=admin student faculty"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(sampleRequest{
		Name:    "Jane Smith",
		Email:   "jane@example.com",
		ClassID: 3,
		Role:    "student",
	})
	assert.Nil(t, errs)
}

func TestStructCollectsAllFailures(t *testing.T) {
	errs := Struct(sampleRequest{
		Name:  "J",
		Email: "not-an-email",
		Role:  "teacher",
	})
	require.Len(t, errs, 4)

	byField := map[string]string{}
	for _, e := range errs {
		byField[e.Field] = e.Message
	}
	assert.Equal(t, "must be at least 2 characters", byField["name"])
	assert.Equal(t, "must be a valid email address", byField["email"])
	assert.Equal(t, "is required", byField["classid"])
	assert.Equal(t, "must be one of: admin student faculty", byField["role"])
}
