package database

import (
	"database/sql"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
)

// GetAllStudents returns students joined with their class names. A missing
// class renders as empty name/section rather than an error.
func GetAllStudents(db *sql.DB) ([]models.StudentWithClass, error) {
	query := `SELECT s.id, s.name, s.roll_no, s.email, COALESCE(s.phone, ''), s.class_id,
					 COALESCE(c.class_name, ''), COALESCE(c.section, '')
			  FROM students s
			  LEFT JOIN classes c ON c.id = s.class_id
			  ORDER BY s.id ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.StudentWithClass
	for rows.Next() {
		var s models.StudentWithClass
		if err := rows.Scan(&s.ID, &s.Name, &s.RollNo, &s.Email, &s.Phone, &s.ClassID, &s.ClassName, &s.Section); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, id int64) (*models.StudentWithClass, error) {
	s := &models.StudentWithClass{}
	query := `SELECT s.id, s.name, s.roll_no, s.email, COALESCE(s.phone, ''), s.class_id,
					 COALESCE(c.class_name, ''), COALESCE(c.section, '')
			  FROM students s
			  LEFT JOIN classes c ON c.id = s.class_id
			  WHERE s.id = $1`

	err := db.QueryRow(query, id).Scan(&s.ID, &s.Name, &s.RollNo, &s.Email, &s.Phone, &s.ClassID, &s.ClassName, &s.Section)
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Entity: "Student"}
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func getStudent(db *sql.DB, id int64) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT id, name, roll_no, email, password, COALESCE(phone, ''), class_id
			  FROM students WHERE id = $1`

	err := db.QueryRow(query, id).Scan(&s.ID, &s.Name, &s.RollNo, &s.Email, &s.Password, &s.Phone, &s.ClassID)
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Entity: "Student"}
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func GetStudentByEmail(db *sql.DB, email string) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT id, name, roll_no, email, password, COALESCE(phone, ''), class_id
			  FROM students WHERE email = $1`

	err := db.QueryRow(query, email).Scan(&s.ID, &s.Name, &s.RollNo, &s.Email, &s.Password, &s.Phone, &s.ClassID)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateStudent inserts a new student. Email and roll number are each
// globally unique; the class must exist.
func CreateStudent(db *sql.DB, s *models.Student) error {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM students WHERE email = $1 OR roll_no = $2)`,
		s.Email, s.RollNo).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return &DuplicateEntityError{Message: "Student with this email or roll number already exists"}
	}

	if err := classExists(db, s.ClassID); err != nil {
		return err
	}

	id, err := NextID(db, CounterStudent)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT INTO students (id, name, roll_no, email, password, phone, class_id)
					  VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)`,
		id, s.Name, s.RollNo, s.Email, s.Password, s.Phone, s.ClassID)
	if isUniqueViolation(err) {
		return &DuplicateEntityError{Message: "Student with this email or roll number already exists"}
	}
	if err != nil {
		return err
	}

	s.ID = id
	return nil
}

// UpdateStudent edits a student. An empty password leaves the stored hash
// untouched.
func UpdateStudent(db *sql.DB, s *models.Student) error {
	if _, err := getStudent(db, s.ID); err != nil {
		return err
	}

	var duplicate bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM students WHERE (email = $1 OR roll_no = $2) AND id <> $3)`,
		s.Email, s.RollNo, s.ID).Scan(&duplicate)
	if err != nil {
		return err
	}
	if duplicate {
		return &DuplicateEntityError{Message: "Email or roll number already in use"}
	}

	if err := classExists(db, s.ClassID); err != nil {
		return err
	}

	if s.Password != "" {
		_, err = db.Exec(`UPDATE students SET name = $1, roll_no = $2, email = $3, password = $4,
						  phone = NULLIF($5, ''), class_id = $6 WHERE id = $7`,
			s.Name, s.RollNo, s.Email, s.Password, s.Phone, s.ClassID, s.ID)
	} else {
		_, err = db.Exec(`UPDATE students SET name = $1, roll_no = $2, email = $3,
						  phone = NULLIF($4, ''), class_id = $5 WHERE id = $6`,
			s.Name, s.RollNo, s.Email, s.Phone, s.ClassID, s.ID)
	}
	return err
}

// DeleteStudent removes a student. Attendance rows are intentionally kept;
// read paths drop or degrade orphaned references.
func DeleteStudent(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Entity: "Student"}
	}
	return nil
}

// GetStudentSubjects lists the subjects assigned to the student's class.
func GetStudentSubjects(db *sql.DB, studentID int64) ([]models.Subject, error) {
	student, err := getStudent(db, studentID)
	if err != nil {
		return nil, err
	}

	query := `SELECT DISTINCT sub.id, sub.name
			  FROM assignments a
			  JOIN subjects sub ON sub.id = a.subject_id
			  WHERE a.class_id = $1
			  ORDER BY sub.id ASC`
	rows, err := db.Query(query, student.ClassID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		var sub models.Subject
		if err := rows.Scan(&sub.ID, &sub.Name); err != nil {
			return nil, err
		}
		subjects = append(subjects, sub)
	}
	return subjects, rows.Err()
}

func classExists(db *sql.DB, classID int64) error {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM classes WHERE id = $1)`, classID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return &InvalidReferenceError{Message: "Invalid class ID"}
	}
	return nil
}
