package database

import (
	"database/sql"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
)

func GetAllSubjects(db *sql.DB) ([]models.Subject, error) {
	query := `SELECT id, name FROM subjects ORDER BY id ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

func GetSubjectByID(db *sql.DB, id int64) (*models.Subject, error) {
	s := &models.Subject{}
	err := db.QueryRow(`SELECT id, name FROM subjects WHERE id = $1`, id).Scan(&s.ID, &s.Name)
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Entity: "Subject"}
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func CreateSubject(db *sql.DB, s *models.Subject) error {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM subjects WHERE name = $1)`, s.Name).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return &DuplicateEntityError{Message: "Subject with this name already exists"}
	}

	id, err := NextID(db, CounterSubject)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT INTO subjects (id, name) VALUES ($1, $2)`, id, s.Name)
	if isUniqueViolation(err) {
		return &DuplicateEntityError{Message: "Subject with this name already exists"}
	}
	if err != nil {
		return err
	}

	s.ID = id
	return nil
}

func UpdateSubject(db *sql.DB, id int64, name string) error {
	if _, err := GetSubjectByID(db, id); err != nil {
		return err
	}

	var duplicate bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM subjects WHERE name = $1 AND id <> $2)`,
		name, id).Scan(&duplicate)
	if err != nil {
		return err
	}
	if duplicate {
		return &DuplicateEntityError{Message: "Subject with this name already exists"}
	}

	_, err = db.Exec(`UPDATE subjects SET name = $1 WHERE id = $2`, name, id)
	return err
}

// DeleteSubject removes a subject and cascades its assignment rows in one
// transaction.
func DeleteSubject(db *sql.DB, id int64) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Entity: "Subject"}
	}

	if _, err := tx.Exec(`DELETE FROM assignments WHERE subject_id = $1`, id); err != nil {
		return err
	}
	return tx.Commit()
}

// GetSubjectsByFaculty lists the distinct subjects a faculty is assigned to.
func GetSubjectsByFaculty(db *sql.DB, facultyID int64) ([]models.Subject, error) {
	query := `SELECT DISTINCT sub.id, sub.name
			  FROM assignments a
			  JOIN subjects sub ON sub.id = a.subject_id
			  WHERE a.faculty_id = $1
			  ORDER BY sub.id ASC`
	rows, err := db.Query(query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

func subjectExists(db *sql.DB, subjectID int64) error {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM subjects WHERE id = $1)`, subjectID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return &InvalidReferenceError{Message: "Invalid subject ID"}
	}
	return nil
}
