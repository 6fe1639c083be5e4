package database

import (
	"database/sql"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
)

func GetAdminByEmail(db *sql.DB, email string) (*models.Admin, error) {
	a := &models.Admin{}
	query := `SELECT id, name, email, password FROM admins WHERE email = $1`

	err := db.QueryRow(query, email).Scan(&a.ID, &a.Name, &a.Email, &a.Password)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func CreateAdmin(db *sql.DB, a *models.Admin) error {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM admins WHERE email = $1)`, a.Email).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return &DuplicateEntityError{Message: "User with this email already exists"}
	}

	err = db.QueryRow(`INSERT INTO admins (name, email, password) VALUES ($1, $2, $3) RETURNING id`,
		a.Name, a.Email, a.Password).Scan(&a.ID)
	if isUniqueViolation(err) {
		return &DuplicateEntityError{Message: "User with this email already exists"}
	}
	return err
}
