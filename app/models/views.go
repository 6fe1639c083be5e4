package models

import "time"

// View shapes returned by read endpoints. Orphaned foreign keys degrade to
// "Unknown" rather than erroring.

type StudentWithClass struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	RollNo    string `json:"roll_no"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	ClassID   int64  `json:"class_id"`
	ClassName string `json:"class_name,omitempty"`
	Section   string `json:"section,omitempty"`
}

type AttendanceEntry struct {
	ID     int64            `json:"id"`
	Name   string           `json:"name"`
	Status AttendanceStatus `json:"status"`
}

type AttendanceHistoryRow struct {
	Date        string           `json:"date"`
	Status      AttendanceStatus `json:"status"`
	SubjectName string           `json:"subject"`
	ClassName   string           `json:"class_name"`
	Section     string           `json:"section"`
}

type AttendanceStats struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
}

type TrendPoint struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
}

// AttendanceSummary keys match the status names on purpose; statuses with no
// rows stay at 0 instead of being omitted.
type AttendanceSummary struct {
	Present int `json:"Present"`
	Absent  int `json:"Absent"`
	Late    int `json:"Late"`
}

type AttendancePercentage struct {
	Total      int     `json:"total"`
	Present    int     `json:"present"`
	Percentage float64 `json:"percentage"`
}

type AssignmentView struct {
	ID          int64  `json:"id"`
	ClassName   string `json:"class_name"`
	Section     string `json:"section"`
	FacultyName string `json:"faculty_name"`
	SubjectName string `json:"subject_name"`
}

type FacultyAssignmentView struct {
	ID        int64  `json:"id"`
	ClassID   int64  `json:"class_id"`
	ClassName string `json:"class_name"`
	Section   string `json:"section"`
	Subject   string `json:"subject"`
}

type FacultyQueryView struct {
	ID          int64       `json:"id"`
	StudentID   int64       `json:"student_id"`
	Subject     string      `json:"subject"`
	Message     string      `json:"message"`
	Reply       string      `json:"reply,omitempty"`
	Status      QueryStatus `json:"status"`
	Timestamp   time.Time   `json:"timestamp"`
	StudentName string      `json:"student_name"`
}

type StudentQueryView struct {
	ID          int64       `json:"id"`
	Subject     string      `json:"subject"`
	Message     string      `json:"message"`
	Reply       string      `json:"reply,omitempty"`
	Status      QueryStatus `json:"status"`
	Timestamp   time.Time   `json:"timestamp"`
	FacultyName string      `json:"faculty_name"`
}
