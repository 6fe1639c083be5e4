package database

import "database/sql"

// Counter names for entity types whose public IDs come from the sequencer.
const (
	CounterClass   = "class"
	CounterStudent = "student"
	CounterFaculty = "faculty"
	CounterSubject = "subject"
)

// NextID atomically increments and returns the named counter. The first call
// for a name returns 1. The increment happens in a single statement so
// concurrent callers always observe distinct values.
func NextID(db *sql.DB, name string) (int64, error) {
	var id int64
	query := `INSERT INTO counters (name, value) VALUES ($1, 1)
			  ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
			  RETURNING value`

	if err := db.QueryRow(query, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
