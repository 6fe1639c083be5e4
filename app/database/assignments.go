package database

import (
	"database/sql"
	"fmt"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
)

// CreateAssignment links a faculty to a subject in a class. A subject in a
// class has exactly one teacher at a time; the conflicting faculty is named
// in the error.
func CreateAssignment(db *sql.DB, a *models.Assignment) error {
	if err := classExists(db, a.ClassID); err != nil {
		return err
	}
	if err := facultyExists(db, a.FacultyID); err != nil {
		return err
	}
	if err := subjectExists(db, a.SubjectID); err != nil {
		return err
	}

	err := db.QueryRow(`INSERT INTO assignments (class_id, faculty_id, subject_id)
					   VALUES ($1, $2, $3) RETURNING id`,
		a.ClassID, a.FacultyID, a.SubjectID).Scan(&a.ID)
	if isUniqueViolation(err) {
		return assignmentTakenError(db, a)
	}
	return err
}

// assignmentTakenError reads the row that blocked the insert. The same
// faculty again is a duplicate; anyone else is a conflict naming the holder.
func assignmentTakenError(db *sql.DB, a *models.Assignment) error {
	var holderID int64
	err := db.QueryRow(`SELECT faculty_id FROM assignments
						WHERE class_id = $1 AND subject_id = $2`,
		a.ClassID, a.SubjectID).Scan(&holderID)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if err == nil && holderID == a.FacultyID {
		return &DuplicateEntityError{Message: "This assignment already exists"}
	}

	holderName := "another faculty"
	if holderID > 0 {
		if holder, err := GetFacultyByID(db, holderID); err == nil {
			holderName = holder.Name
		}
	}
	return &ConflictError{Message: fmt.Sprintf("This subject is already assigned to %s in this class", holderName)}
}

// GetAllAssignments returns assignments joined with display names; dangling
// references degrade to "Unknown".
func GetAllAssignments(db *sql.DB) ([]models.AssignmentView, error) {
	query := `SELECT a.id,
					 COALESCE(c.class_name, 'Unknown'), COALESCE(c.section, 'Unknown'),
					 COALESCE(f.name, 'Unknown'), COALESCE(sub.name, 'Unknown')
			  FROM assignments a
			  LEFT JOIN classes c ON c.id = a.class_id
			  LEFT JOIN faculty f ON f.id = a.faculty_id
			  LEFT JOIN subjects sub ON sub.id = a.subject_id
			  ORDER BY a.id ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []models.AssignmentView
	for rows.Next() {
		var v models.AssignmentView
		if err := rows.Scan(&v.ID, &v.ClassName, &v.Section, &v.FacultyName, &v.SubjectName); err != nil {
			return nil, err
		}
		assignments = append(assignments, v)
	}
	return assignments, rows.Err()
}

func DeleteAssignment(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Entity: "Assignment"}
	}
	return nil
}

// CountAssignments counts assignment rows referencing the given class,
// faculty or subject id.
func CountAssignments(db *sql.DB, refType string, id int64) (int, error) {
	var column string
	switch refType {
	case "class":
		column = "class_id"
	case "faculty":
		column = "faculty_id"
	case "subject":
		column = "subject_id"
	default:
		return 0, &InvalidReferenceError{Message: "Invalid type"}
	}

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM assignments WHERE `+column+` = $1`, id).Scan(&count)
	return count, err
}
