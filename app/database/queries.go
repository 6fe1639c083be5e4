package database

import (
	"database/sql"
	"fmt"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
)

// CreateQuery files a new student-to-faculty query in the Pending state.
func CreateQuery(db *sql.DB, studentID, facultyID int64, subject, message string) (int64, error) {
	var studentOK bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM students WHERE id = $1)`, studentID).Scan(&studentOK); err != nil {
		return 0, err
	}
	if !studentOK {
		return 0, &InvalidReferenceError{Message: "Invalid student ID"}
	}
	if err := facultyExists(db, facultyID); err != nil {
		return 0, err
	}

	var id int64
	err := db.QueryRow(`INSERT INTO queries (student_id, faculty_id, subject, message, status)
						VALUES ($1, $2, $3, $4, 'Pending') RETURNING id`,
		studentID, facultyID, subject, message).Scan(&id)
	return id, err
}

// GetFacultyQueries lists a faculty's Pending queries with student names.
func GetFacultyQueries(db *sql.DB, facultyID int64) ([]models.FacultyQueryView, error) {
	query := `SELECT q.id, q.student_id, q.subject, q.message, COALESCE(q.reply, ''), q.status, q.timestamp,
					 COALESCE(s.name, 'Unknown')
			  FROM queries q
			  LEFT JOIN students s ON s.id = q.student_id
			  WHERE q.faculty_id = $1 AND q.status = 'Pending'
			  ORDER BY q.timestamp ASC`
	rows, err := db.Query(query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var queries []models.FacultyQueryView
	for rows.Next() {
		var v models.FacultyQueryView
		if err := rows.Scan(&v.ID, &v.StudentID, &v.Subject, &v.Message, &v.Reply, &v.Status, &v.Timestamp, &v.StudentName); err != nil {
			return nil, err
		}
		queries = append(queries, v)
	}
	return queries, rows.Err()
}

// GetStudentQueries lists all of a student's queries with faculty names.
func GetStudentQueries(db *sql.DB, studentID int64) ([]models.StudentQueryView, error) {
	query := `SELECT q.id, q.subject, q.message, COALESCE(q.reply, ''), q.status, q.timestamp,
					 COALESCE(f.name, 'Unknown')
			  FROM queries q
			  LEFT JOIN faculty f ON f.id = q.faculty_id
			  WHERE q.student_id = $1
			  ORDER BY q.timestamp ASC`
	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var queries []models.StudentQueryView
	for rows.Next() {
		var v models.StudentQueryView
		if err := rows.Scan(&v.ID, &v.Subject, &v.Message, &v.Reply, &v.Status, &v.Timestamp, &v.FacultyName); err != nil {
			return nil, err
		}
		queries = append(queries, v)
	}
	return queries, rows.Err()
}

// TransitionQuery moves a query to the next lifecycle state. The current
// state is locked for the duration of the check-and-set.
func TransitionQuery(db *sql.DB, id int64, next models.QueryStatus) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var current models.QueryStatus
	err = tx.QueryRow(`SELECT status FROM queries WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if err == sql.ErrNoRows {
		return &NotFoundError{Entity: "Query"}
	}
	if err != nil {
		return err
	}

	if !current.CanTransitionTo(next) {
		return &InvalidTransitionError{Message: fmt.Sprintf("Query is %s; cannot move to %s", current, next)}
	}

	if _, err = tx.Exec(`UPDATE queries SET status = $1, updated_at = NOW() WHERE id = $2`, next, id); err != nil {
		return err
	}
	return tx.Commit()
}

// ReplyQuery attaches or replaces the reply text. Allowed in any non-Closed
// state and never changes status.
func ReplyQuery(db *sql.DB, id int64, reply string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var current models.QueryStatus
	err = tx.QueryRow(`SELECT status FROM queries WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if err == sql.ErrNoRows {
		return &NotFoundError{Entity: "Query"}
	}
	if err != nil {
		return err
	}

	if current == models.QueryClosed {
		return &InvalidTransitionError{Message: "Query is Closed; replies are no longer accepted"}
	}

	if _, err = tx.Exec(`UPDATE queries SET reply = $1, updated_at = NOW() WHERE id = $2`, reply, id); err != nil {
		return err
	}
	return tx.Commit()
}

// UnreadQueryCount counts queries touched since the principal last
// acknowledged its mailbox. Faculty see new/changed Pending queries addressed
// to them; students see any change on their own queries.
func UnreadQueryCount(db *sql.DB, role models.Role, userID int64) (int, error) {
	var query string
	switch role {
	case models.RoleFaculty:
		query = `SELECT COUNT(*) FROM queries q
				 WHERE q.faculty_id = $1 AND q.status = 'Pending'
				   AND q.updated_at > COALESCE(
						(SELECT acked_at FROM query_acks WHERE role = $2 AND user_id = $1),
						'epoch'::timestamptz)`
	case models.RoleStudent:
		query = `SELECT COUNT(*) FROM queries q
				 WHERE q.student_id = $1
				   AND q.updated_at > COALESCE(
						(SELECT acked_at FROM query_acks WHERE role = $2 AND user_id = $1),
						'epoch'::timestamptz)`
	default:
		return 0, &InvalidReferenceError{Message: "Invalid role"}
	}

	var count int
	err := db.QueryRow(query, userID, string(role)).Scan(&count)
	return count, err
}

// AckQueries records that the principal has seen its mailbox as of now.
func AckQueries(db *sql.DB, role models.Role, userID int64) error {
	_, err := db.Exec(`INSERT INTO query_acks (role, user_id, acked_at) VALUES ($1, $2, NOW())
					   ON CONFLICT (role, user_id) DO UPDATE SET acked_at = NOW()`,
		string(role), userID)
	return err
}
