package database

import (
	"database/sql"

	"golang.org/x/crypto/bcrypt"

	"github.com/zohaib-han/Attendance-Management-System/app/logger"
	"github.com/zohaib-han/Attendance-Management-System/app/models"
)

// Seed inserts bootstrap data on an empty database. Every record is checked
// for existence individually, so a partially seeded database fills in only
// what is missing.
func Seed(db *sql.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedClasses(db); err != nil {
		return err
	}
	if err := seedSubjects(db); err != nil {
		return err
	}
	if err := seedStudents(db); err != nil {
		return err
	}
	if err := seedFaculty(db); err != nil {
		return err
	}
	return nil
}

func seedAdmin(db *sql.DB) error {
	var exists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM admins WHERE email = $1)`, "admin@system.com").Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT INTO admins (name, email, password) VALUES ($1, $2, $3)`,
		"Admin", "admin@system.com", string(hash))
	if err != nil {
		return err
	}
	logger.Log.Info("Seeded default admin")
	return nil
}

func seedClasses(db *sql.DB) error {
	classes := []models.Class{
		{ClassName: "7", Section: "A"},
		{ClassName: "8", Section: "B"},
	}
	for i := range classes {
		err := CreateClass(db, &classes[i])
		if err != nil {
			if _, ok := err.(*DuplicateEntityError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

func seedSubjects(db *sql.DB) error {
	for _, name := range []string{"Math", "Science"} {
		err := CreateSubject(db, &models.Subject{Name: name})
		if err != nil {
			if _, ok := err.(*DuplicateEntityError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

func seedStudents(db *sql.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("123"), 10)
	if err != nil {
		return err
	}

	students := []models.Student{
		{Name: "Aohaib", RollNo: "001", Email: "z@g.com", Phone: "1234567890", ClassID: 1},
		{Name: "Jane Smith", RollNo: "002", Email: "jane@example.com", Phone: "0987654321", ClassID: 1},
	}
	for i := range students {
		students[i].Password = string(hash)
		err := CreateStudent(db, &students[i])
		if err != nil {
			if _, ok := err.(*DuplicateEntityError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

func seedFaculty(db *sql.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("faculty123"), 10)
	if err != nil {
		return err
	}

	faculties := []models.Faculty{
		{Name: "Sir ali", Email: "f@g.com"},
		{Name: "Bob Johnson", Email: "bob@example.com"},
	}
	for i := range faculties {
		faculties[i].Password = string(hash)
		err := CreateFaculty(db, &faculties[i])
		if err != nil {
			if _, ok := err.(*DuplicateEntityError); ok {
				continue
			}
			return err
		}
	}
	return nil
}
