package database

import (
	"database/sql"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
)

func GetAllFaculty(db *sql.DB) ([]models.Faculty, error) {
	query := `SELECT id, name, email FROM faculty ORDER BY id ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faculties []models.Faculty
	for rows.Next() {
		var f models.Faculty
		if err := rows.Scan(&f.ID, &f.Name, &f.Email); err != nil {
			return nil, err
		}
		faculties = append(faculties, f)
	}
	return faculties, rows.Err()
}

func GetFacultyByID(db *sql.DB, id int64) (*models.Faculty, error) {
	f := &models.Faculty{}
	query := `SELECT id, name, email FROM faculty WHERE id = $1`

	err := db.QueryRow(query, id).Scan(&f.ID, &f.Name, &f.Email)
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Entity: "Faculty"}
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func GetFacultyByEmail(db *sql.DB, email string) (*models.Faculty, error) {
	f := &models.Faculty{}
	query := `SELECT id, name, email, password FROM faculty WHERE email = $1`

	err := db.QueryRow(query, email).Scan(&f.ID, &f.Name, &f.Email, &f.Password)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func CreateFaculty(db *sql.DB, f *models.Faculty) error {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM faculty WHERE email = $1)`, f.Email).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return &DuplicateEntityError{Message: "Faculty with this email already exists"}
	}

	id, err := NextID(db, CounterFaculty)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT INTO faculty (id, name, email, password) VALUES ($1, $2, $3, $4)`,
		id, f.Name, f.Email, f.Password)
	if isUniqueViolation(err) {
		return &DuplicateEntityError{Message: "Faculty with this email already exists"}
	}
	if err != nil {
		return err
	}

	f.ID = id
	return nil
}

// UpdateFaculty edits a faculty member. An empty password leaves the stored
// hash untouched.
func UpdateFaculty(db *sql.DB, f *models.Faculty) error {
	if _, err := GetFacultyByID(db, f.ID); err != nil {
		return err
	}

	var duplicate bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM faculty WHERE email = $1 AND id <> $2)`,
		f.Email, f.ID).Scan(&duplicate)
	if err != nil {
		return err
	}
	if duplicate {
		return &DuplicateEntityError{Message: "Email already in use by another faculty"}
	}

	if f.Password != "" {
		_, err = db.Exec(`UPDATE faculty SET name = $1, email = $2, password = $3 WHERE id = $4`,
			f.Name, f.Email, f.Password, f.ID)
	} else {
		_, err = db.Exec(`UPDATE faculty SET name = $1, email = $2 WHERE id = $3`,
			f.Name, f.Email, f.ID)
	}
	return err
}

// DeleteFaculty removes a faculty member and cascades its assignment rows in
// one transaction.
func DeleteFaculty(db *sql.DB, id int64) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM faculty WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Entity: "Faculty"}
	}

	if _, err := tx.Exec(`DELETE FROM assignments WHERE faculty_id = $1`, id); err != nil {
		return err
	}
	return tx.Commit()
}

// GetFacultyAssignments returns the classes and subjects a faculty teaches.
// Dangling class/subject references degrade to "Unknown".
func GetFacultyAssignments(db *sql.DB, facultyID int64) ([]models.FacultyAssignmentView, error) {
	query := `SELECT a.id, a.class_id,
					 COALESCE(c.class_name, 'Unknown Class'),
					 COALESCE(c.section, 'Unknown Section'),
					 COALESCE(sub.name, 'Unknown Subject')
			  FROM assignments a
			  LEFT JOIN classes c ON c.id = a.class_id
			  LEFT JOIN subjects sub ON sub.id = a.subject_id
			  WHERE a.faculty_id = $1
			  ORDER BY a.id ASC`
	rows, err := db.Query(query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []models.FacultyAssignmentView
	for rows.Next() {
		var v models.FacultyAssignmentView
		if err := rows.Scan(&v.ID, &v.ClassID, &v.ClassName, &v.Section, &v.Subject); err != nil {
			return nil, err
		}
		assignments = append(assignments, v)
	}
	return assignments, rows.Err()
}

// GetFacultyForSubject returns the faculty id of any assignment covering the
// subject.
func GetFacultyForSubject(db *sql.DB, subjectID int64) (int64, error) {
	var facultyID int64
	err := db.QueryRow(`SELECT faculty_id FROM assignments WHERE subject_id = $1 LIMIT 1`, subjectID).Scan(&facultyID)
	if err == sql.ErrNoRows {
		return 0, &NotFoundError{Entity: "Faculty assignment for this subject"}
	}
	if err != nil {
		return 0, err
	}
	return facultyID, nil
}

func facultyExists(db *sql.DB, facultyID int64) error {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM faculty WHERE id = $1)`, facultyID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return &InvalidReferenceError{Message: "Invalid faculty ID"}
	}
	return nil
}
