package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zohaib-han/Attendance-Management-System/app/config"
	"github.com/zohaib-han/Attendance-Management-System/app/models"
)

func init() {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, CheckPasswordHash("admin123", hash))
	assert.False(t, CheckPasswordHash("admin124", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	p := &Principal{ID: 7, Role: models.RoleFaculty, Name: "Sir ali", Email: "ali@school.com"}

	token, err := GenerateJWT(p)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, models.RoleFaculty, claims.Role)
	assert.Equal(t, "Sir ali", claims.Name)
	assert.Equal(t, "ali@school.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	p := &Principal{ID: 1, Role: models.RoleStudent, Name: "Jane", Email: "jane@school.com"}
	token, err := GenerateJWT(p)
	require.NoError(t, err)

	_, err = ValidateJWT(token + "x")
	assert.Error(t, err)

	_, err = ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestTokensCarryUniqueIDs(t *testing.T) {
	p := &Principal{ID: 2, Role: models.RoleAdmin, Name: "Admin", Email: "admin@system.com"}

	t1, err := GenerateJWT(p)
	require.NoError(t, err)
	t2, err := GenerateJWT(p)
	require.NoError(t, err)

	c1, err := ValidateJWT(t1)
	require.NoError(t, err)
	c2, err := ValidateJWT(t2)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}
