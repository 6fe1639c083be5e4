package database

import (
	"database/sql"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
)

func GetAllClasses(db *sql.DB) ([]models.Class, error) {
	query := `SELECT id, class_name, section FROM classes ORDER BY id ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []models.Class
	for rows.Next() {
		var c models.Class
		if err := rows.Scan(&c.ID, &c.ClassName, &c.Section); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

func GetClassByID(db *sql.DB, id int64) (*models.Class, error) {
	c := &models.Class{}
	query := `SELECT id, class_name, section FROM classes WHERE id = $1`

	err := db.QueryRow(query, id).Scan(&c.ID, &c.ClassName, &c.Section)
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Entity: "Class"}
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CreateClass inserts a new class. The (class_name, section) pair must be
// unique across the store.
func CreateClass(db *sql.DB, c *models.Class) error {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM classes WHERE class_name = $1 AND section = $2)`,
		c.ClassName, c.Section).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return &DuplicateEntityError{Message: "Class with this name and section already exists"}
	}

	id, err := NextID(db, CounterClass)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT INTO classes (id, class_name, section) VALUES ($1, $2, $3)`,
		id, c.ClassName, c.Section)
	if isUniqueViolation(err) {
		return &DuplicateEntityError{Message: "Class with this name and section already exists"}
	}
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}

func UpdateClass(db *sql.DB, id int64, className, section string) error {
	if _, err := GetClassByID(db, id); err != nil {
		return err
	}

	var duplicate bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM classes WHERE class_name = $1 AND section = $2 AND id <> $3)`,
		className, section, id).Scan(&duplicate)
	if err != nil {
		return err
	}
	if duplicate {
		return &DuplicateEntityError{Message: "Class with this name and section already exists"}
	}

	_, err = db.Exec(`UPDATE classes SET class_name = $1, section = $2 WHERE id = $3`,
		className, section, id)
	return err
}

// DeleteClass removes a class and cascades its assignment rows in one
// transaction. Deletion is blocked while any student still references the
// class.
func DeleteClass(db *sql.DB, id int64) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var studentCount int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM students WHERE class_id = $1`, id).Scan(&studentCount); err != nil {
		return err
	}
	if studentCount > 0 {
		return &ConflictError{Message: "Cannot delete class with enrolled students"}
	}

	res, err := tx.Exec(`DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Entity: "Class"}
	}

	if _, err := tx.Exec(`DELETE FROM assignments WHERE class_id = $1`, id); err != nil {
		return err
	}
	return tx.Commit()
}

func GetStudentsByClass(db *sql.DB, classID int64) ([]models.Student, error) {
	query := `SELECT id, name, roll_no, email, COALESCE(phone, ''), class_id
			  FROM students WHERE class_id = $1 ORDER BY id ASC`
	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.RollNo, &s.Email, &s.Phone, &s.ClassID); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
