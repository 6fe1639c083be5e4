package auth

import (
	"database/sql"

	"github.com/zohaib-han/Attendance-Management-System/app/database"
	"github.com/zohaib-han/Attendance-Management-System/app/models"
)

// Principal is the authenticated actor attached to every request: one
// identity, one role, resolved once at login time instead of re-dispatching
// on a role string per call.
type Principal struct {
	ID    int64       `json:"id"`
	Role  models.Role `json:"role"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
}

func (p Principal) IsAdmin() bool   { return p.Role == models.RoleAdmin }
func (p Principal) IsStudent() bool { return p.Role == models.RoleStudent }
func (p Principal) IsFaculty() bool { return p.Role == models.RoleFaculty }

// resolvePrincipal looks the email up across the three account tables, in
// the same precedence the login flow has always used: admin, then student,
// then faculty. The stored bcrypt hash is returned alongside for the caller
// to verify.
func resolvePrincipal(db *sql.DB, email string) (*Principal, string, error) {
	if admin, err := database.GetAdminByEmail(db, email); err == nil {
		return &Principal{ID: admin.ID, Role: models.RoleAdmin, Name: admin.Name, Email: admin.Email}, admin.Password, nil
	} else if err != sql.ErrNoRows {
		return nil, "", err
	}

	if student, err := database.GetStudentByEmail(db, email); err == nil {
		return &Principal{ID: student.ID, Role: models.RoleStudent, Name: student.Name, Email: student.Email}, student.Password, nil
	} else if err != sql.ErrNoRows {
		return nil, "", err
	}

	if faculty, err := database.GetFacultyByEmail(db, email); err == nil {
		return &Principal{ID: faculty.ID, Role: models.RoleFaculty, Name: faculty.Name, Email: faculty.Email}, faculty.Password, nil
	} else if err != sql.ErrNoRows {
		return nil, "", err
	}

	return nil, "", sql.ErrNoRows
}
