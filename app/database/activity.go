package database

import (
	"database/sql"

	"github.com/zohaib-han/Attendance-Management-System/app/logger"
	"github.com/zohaib-han/Attendance-Management-System/app/models"
)

// LogActivity appends an informational entry. Failures are logged and
// swallowed; the activity log never blocks the operation that produced it.
func LogActivity(db *sql.DB, entryType, message string) {
	_, err := db.Exec(`INSERT INTO activity_logs (type, message) VALUES ($1, $2)`, entryType, message)
	if err != nil {
		logger.Log.Warnf("Failed to write activity log entry: %v", err)
	}
}

// GetActivityLog returns entries newest first.
func GetActivityLog(db *sql.DB) ([]models.ActivityLogEntry, error) {
	rows, err := db.Query(`SELECT id, type, message, timestamp FROM activity_logs ORDER BY timestamp DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ActivityLogEntry
	for rows.Next() {
		var e models.ActivityLogEntry
		if err := rows.Scan(&e.ID, &e.Type, &e.Message, &e.Timestamp); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
