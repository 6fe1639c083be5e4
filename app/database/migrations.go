package database

import (
	"database/sql"

	"github.com/zohaib-han/Attendance-Management-System/app/logger"
)

// RunMigrations creates the schema when missing. Statements are idempotent so
// this is safe to run on every boot.
func RunMigrations(db *sql.DB) error {
	logger.Log.Info("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS counters (
			name VARCHAR(50) PRIMARY KEY,
			value BIGINT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS classes (
			id BIGINT PRIMARY KEY,
			class_name VARCHAR(50) NOT NULL,
			section VARCHAR(10) NOT NULL,
			UNIQUE (class_name, section)
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id BIGINT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			roll_no VARCHAR(50) NOT NULL UNIQUE,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			phone VARCHAR(20),
			class_id BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS faculty (
			id BIGINT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS subjects (
			id BIGINT PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS assignments (
			id BIGSERIAL PRIMARY KEY,
			class_id BIGINT NOT NULL,
			faculty_id BIGINT NOT NULL,
			subject_id BIGINT NOT NULL,
			UNIQUE (class_id, subject_id)
		)`,
		`CREATE TABLE IF NOT EXISTS attendance_days (
			class_id BIGINT NOT NULL,
			subject_id BIGINT NOT NULL,
			date DATE NOT NULL,
			faculty_id BIGINT NOT NULL,
			submitted BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (class_id, subject_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id BIGSERIAL PRIMARY KEY,
			class_id BIGINT NOT NULL,
			student_id BIGINT NOT NULL,
			faculty_id BIGINT NOT NULL,
			subject_id BIGINT NOT NULL,
			date DATE NOT NULL,
			status VARCHAR(10) NOT NULL,
			UNIQUE (class_id, student_id, subject_id, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_student ON attendance (student_id, subject_id)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance (date)`,
		`CREATE TABLE IF NOT EXISTS queries (
			id BIGSERIAL PRIMARY KEY,
			student_id BIGINT NOT NULL,
			faculty_id BIGINT NOT NULL,
			subject VARCHAR(100) NOT NULL,
			message VARCHAR(500) NOT NULL,
			reply VARCHAR(500),
			status VARCHAR(10) NOT NULL DEFAULT 'Pending',
			timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_queries_faculty ON queries (faculty_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_queries_student ON queries (student_id)`,
		`CREATE TABLE IF NOT EXISTS query_acks (
			role VARCHAR(10) NOT NULL,
			user_id BIGINT NOT NULL,
			acked_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (role, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS activity_logs (
			id BIGSERIAL PRIMARY KEY,
			type VARCHAR(50) NOT NULL,
			message TEXT NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			logger.Log.Errorf("Migration failed: %v", err)
			return err
		}
	}

	logger.Log.Info("Database migrations completed successfully")
	return nil
}
