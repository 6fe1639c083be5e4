package models

import "time"

// Class is a class/section pair. The (ClassName, Section) pair is unique.
type Class struct {
	ID        int64  `json:"id"`
	ClassName string `json:"class_name"`
	Section   string `json:"section"`
}

type Student struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	RollNo   string `json:"roll_no"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Phone    string `json:"phone,omitempty"`
	ClassID  int64  `json:"class_id"`
}

type Faculty struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

type Subject struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Admin struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Assignment links one faculty to a subject taught in a class. For a given
// (ClassID, SubjectID) pair at most one faculty may be assigned.
type Assignment struct {
	ID        int64 `json:"id"`
	ClassID   int64 `json:"class_id"`
	FacultyID int64 `json:"faculty_id"`
	SubjectID int64 `json:"subject_id"`
}

// AttendanceRecord is one status per student per subject per day. The logical
// key is (ClassID, StudentID, SubjectID, Date).
type AttendanceRecord struct {
	ClassID   int64            `json:"class_id"`
	StudentID int64            `json:"student_id"`
	FacultyID int64            `json:"faculty_id"`
	SubjectID int64            `json:"subject_id"`
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status"`
}

// Query is a student-to-faculty message with an accept/reject/reply/close
// lifecycle.
type Query struct {
	ID        int64       `json:"id"`
	StudentID int64       `json:"student_id"`
	FacultyID int64       `json:"faculty_id"`
	Subject   string      `json:"subject"`
	Message   string      `json:"message"`
	Reply     string      `json:"reply,omitempty"`
	Status    QueryStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ActivityLogEntry is append-only and never mutated.
type ActivityLogEntry struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
