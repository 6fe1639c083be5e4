package database

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
)

// StatsFilter narrows GetAttendanceStats; zero/empty fields are ignored.
type StatsFilter struct {
	ClassID   int64
	SubjectID int64
	Date      string
}

// GetAttendanceStats counts records by status over the filtered set.
// total == present + absent + late always holds for the result.
func GetAttendanceStats(db *sql.DB, f StatsFilter) (*models.AttendanceStats, error) {
	query := `SELECT COUNT(*),
					 COUNT(*) FILTER (WHERE status = 'Present'),
					 COUNT(*) FILTER (WHERE status = 'Absent'),
					 COUNT(*) FILTER (WHERE status = 'Late')
			  FROM attendance WHERE 1=1`

	var args []interface{}
	if f.ClassID > 0 {
		args = append(args, f.ClassID)
		query += fmt.Sprintf(" AND class_id = $%d", len(args))
	}
	if f.SubjectID > 0 {
		args = append(args, f.SubjectID)
		query += fmt.Sprintf(" AND subject_id = $%d", len(args))
	}
	if f.Date != "" {
		args = append(args, f.Date)
		query += fmt.Sprintf(" AND date = $%d", len(args))
	}

	stats := &models.AttendanceStats{}
	err := db.QueryRow(query, args...).Scan(&stats.Total, &stats.Present, &stats.Absent, &stats.Late)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// monthRange returns the first and last calendar day of the month as
// YYYY-MM-DD strings.
func monthRange(month, year int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}

// GetAttendanceTrend groups records by calendar day, ascending. When both
// month and year are given only that month is covered; zero matching records
// yield an empty list, not an error.
func GetAttendanceTrend(db *sql.DB, month, year int) ([]models.TrendPoint, error) {
	query := `SELECT to_char(date, 'YYYY-MM-DD'),
					 COUNT(*) FILTER (WHERE status = 'Present'),
					 COUNT(*) FILTER (WHERE status = 'Absent'),
					 COUNT(*) FILTER (WHERE status = 'Late')
			  FROM attendance`

	var args []interface{}
	if month > 0 && year > 0 {
		start, end := monthRange(month, year)
		query += ` WHERE date >= $1 AND date <= $2`
		args = append(args, start, end)
	}
	query += ` GROUP BY date ORDER BY date ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trend []models.TrendPoint
	for rows.Next() {
		var p models.TrendPoint
		if err := rows.Scan(&p.Date, &p.Present, &p.Absent, &p.Late); err != nil {
			return nil, err
		}
		trend = append(trend, p)
	}
	return trend, rows.Err()
}

// GetAttendanceSummary aggregates one class/subject/day. Statuses absent from
// the data stay at 0 and are never omitted from the result shape.
func GetAttendanceSummary(db *sql.DB, classID, subjectID int64, date string) (*models.AttendanceSummary, error) {
	query := `SELECT status, COUNT(*)
			  FROM attendance
			  WHERE class_id = $1 AND subject_id = $2 AND date = $3
			  GROUP BY status`
	rows, err := db.Query(query, classID, subjectID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := &models.AttendanceSummary{}
	for rows.Next() {
		var status models.AttendanceStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		switch status {
		case models.Present:
			summary.Present = count
		case models.Absent:
			summary.Absent = count
		case models.Late:
			summary.Late = count
		}
	}
	return summary, rows.Err()
}

// Percentage computes present/total*100 rounded to 2 decimal places. A zero
// total yields 0, not NaN.
func Percentage(present, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*100*100) / 100
}

// GetStudentSubjectPercentage computes a student's attendance rate for one
// subject.
func GetStudentSubjectPercentage(db *sql.DB, studentID, subjectID int64) (*models.AttendancePercentage, error) {
	if _, err := getStudent(db, studentID); err != nil {
		return nil, err
	}
	if _, err := GetSubjectByID(db, subjectID); err != nil {
		return nil, err
	}

	p := &models.AttendancePercentage{}
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'Present')
			  FROM attendance WHERE student_id = $1 AND subject_id = $2`
	if err := db.QueryRow(query, studentID, subjectID).Scan(&p.Total, &p.Present); err != nil {
		return nil, err
	}
	p.Percentage = Percentage(p.Present, p.Total)
	return p, nil
}
