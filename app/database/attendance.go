package database

import (
	"database/sql"
	"fmt"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
)

// AttendanceMark is one student's status within a batch submission.
type AttendanceMark struct {
	StudentID int64
	Status    models.AttendanceStatus
}

// validateRoster checks the class, subject and faculty exist and that every
// marked student currently belongs to the class. The error names the first
// offending student id.
func validateRoster(db *sql.DB, classID, facultyID, subjectID int64, marks []AttendanceMark) error {
	if err := classExists(db, classID); err != nil {
		return err
	}
	if err := subjectExists(db, subjectID); err != nil {
		return err
	}
	if err := facultyExists(db, facultyID); err != nil {
		return err
	}

	for _, m := range marks {
		var memberOK bool
		err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM students WHERE id = $1 AND class_id = $2)`,
			m.StudentID, classID).Scan(&memberOK)
		if err != nil {
			return err
		}
		if !memberOK {
			return &InvalidReferenceError{Message: fmt.Sprintf("Invalid student ID: %d", m.StudentID)}
		}
	}
	return nil
}

// RecordAttendance submits a class/subject/day batch. The day row and all
// student rows are written in one transaction; a day that was already
// submitted is rejected and must go through EditAttendance instead.
func RecordAttendance(db *sql.DB, classID, facultyID, subjectID int64, date string, marks []AttendanceMark) error {
	if err := validateRoster(db, classID, facultyID, subjectID, marks); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var submitted bool
	err = tx.QueryRow(`SELECT submitted FROM attendance_days
					   WHERE class_id = $1 AND subject_id = $2 AND date = $3
					   FOR UPDATE`,
		classID, subjectID, date).Scan(&submitted)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if err == nil && submitted {
		return &ConflictError{Message: "Attendance for this class, subject and date is already submitted"}
	}

	_, err = tx.Exec(`INSERT INTO attendance_days (class_id, subject_id, date, faculty_id, submitted)
					  VALUES ($1, $2, $3, $4, true)`,
		classID, subjectID, date, facultyID)
	if isUniqueViolation(err) {
		// Lost the race to a concurrent submission for the same day.
		return &ConflictError{Message: "Attendance for this class, subject and date is already submitted"}
	}
	if err != nil {
		return err
	}

	for _, m := range marks {
		_, err = tx.Exec(`INSERT INTO attendance (class_id, student_id, faculty_id, subject_id, date, status)
						  VALUES ($1, $2, $3, $4, $5, $6)`,
			classID, m.StudentID, facultyID, subjectID, date, m.Status)
		if isUniqueViolation(err) {
			return &ConflictError{Message: fmt.Sprintf("Attendance already recorded for student %d on %s", m.StudentID, date)}
		}
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// EditAttendance upserts statuses for an already-submitted day, keyed on
// (class_id, student_id, subject_id, date). The whole batch applies or none
// of it does.
func EditAttendance(db *sql.DB, classID, facultyID, subjectID int64, date string, marks []AttendanceMark) error {
	if err := validateRoster(db, classID, facultyID, subjectID, marks); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var submitted bool
	err = tx.QueryRow(`SELECT submitted FROM attendance_days
					   WHERE class_id = $1 AND subject_id = $2 AND date = $3
					   FOR UPDATE`,
		classID, subjectID, date).Scan(&submitted)
	if err == sql.ErrNoRows || (err == nil && !submitted) {
		return &ConflictError{Message: "Attendance for this class, subject and date has not been submitted yet"}
	}
	if err != nil {
		return err
	}

	for _, m := range marks {
		_, err = tx.Exec(`INSERT INTO attendance (class_id, student_id, faculty_id, subject_id, date, status)
						  VALUES ($1, $2, $3, $4, $5, $6)
						  ON CONFLICT (class_id, student_id, subject_id, date)
						  DO UPDATE SET status = EXCLUDED.status, faculty_id = EXCLUDED.faculty_id`,
			classID, m.StudentID, facultyID, subjectID, date, m.Status)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// IsAttendanceSubmitted reports whether the class/subject/day batch has been
// recorded.
func IsAttendanceSubmitted(db *sql.DB, classID, subjectID int64, date string) (bool, error) {
	var submitted bool
	err := db.QueryRow(`SELECT submitted FROM attendance_days
						WHERE class_id = $1 AND subject_id = $2 AND date = $3`,
		classID, subjectID, date).Scan(&submitted)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return submitted, nil
}

// GetAttendanceRecords returns the marked students for one class/subject/day.
// Records whose student no longer exists are silently dropped by the join.
func GetAttendanceRecords(db *sql.DB, classID, subjectID int64, date string) ([]models.AttendanceEntry, error) {
	query := `SELECT a.student_id, s.name, a.status
			  FROM attendance a
			  JOIN students s ON s.id = a.student_id
			  WHERE a.class_id = $1 AND a.subject_id = $2 AND a.date = $3
			  ORDER BY a.student_id ASC`
	rows, err := db.Query(query, classID, subjectID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.AttendanceEntry
	for rows.Next() {
		var e models.AttendanceEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Status); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetStudentSubjectAttendance returns a student's full history for one
// subject, including rows recorded under a previous class. Every row is
// stamped with the student's current class name for display.
func GetStudentSubjectAttendance(db *sql.DB, studentID, subjectID int64) ([]models.AttendanceHistoryRow, error) {
	student, err := getStudent(db, studentID)
	if err != nil {
		return nil, err
	}
	subject, err := GetSubjectByID(db, subjectID)
	if err != nil {
		return nil, err
	}

	className, section := "", ""
	if cls, err := GetClassByID(db, student.ClassID); err == nil {
		className, section = cls.ClassName, cls.Section
	}

	query := `SELECT to_char(date, 'YYYY-MM-DD'), status
			  FROM attendance
			  WHERE student_id = $1 AND subject_id = $2
			  ORDER BY date ASC`
	rows, err := db.Query(query, studentID, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []models.AttendanceHistoryRow
	for rows.Next() {
		r := models.AttendanceHistoryRow{SubjectName: subject.Name, ClassName: className, Section: section}
		if err := rows.Scan(&r.Date, &r.Status); err != nil {
			return nil, err
		}
		history = append(history, r)
	}
	return history, rows.Err()
}

// GetStudentAttendanceHistory returns a student's full history across
// subjects and classes. Unresolved subject/class references render as
// "Unknown", never an error.
func GetStudentAttendanceHistory(db *sql.DB, studentID int64) ([]models.AttendanceHistoryRow, error) {
	query := `SELECT to_char(a.date, 'YYYY-MM-DD'), a.status,
					 COALESCE(sub.name, 'Unknown'),
					 COALESCE(c.class_name, 'Unknown'), COALESCE(c.section, 'Unknown')
			  FROM attendance a
			  LEFT JOIN subjects sub ON sub.id = a.subject_id
			  LEFT JOIN classes c ON c.id = a.class_id
			  WHERE a.student_id = $1
			  ORDER BY a.date ASC`
	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []models.AttendanceHistoryRow
	for rows.Next() {
		var r models.AttendanceHistoryRow
		if err := rows.Scan(&r.Date, &r.Status, &r.SubjectName, &r.ClassName, &r.Section); err != nil {
			return nil, err
		}
		history = append(history, r)
	}
	return history, rows.Err()
}
