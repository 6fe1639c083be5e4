package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/zohaib-han/Attendance-Management-System/app/database"
	"github.com/zohaib-han/Attendance-Management-System/app/logger"
)

// Digest writes a daily attendance roll-up to the activity log so the
// dashboard feed carries day-level numbers without an extra report query.
type Digest struct {
	db   *sql.DB
	cron *cron.Cron
}

func NewDigest(db *sql.DB) *Digest {
	return &Digest{db: db, cron: cron.New()}
}

// Start schedules the digest job. spec is a standard cron expression,
// e.g. "0 6 * * *" for 06:00 every day.
func (d *Digest) Start(spec string) error {
	if _, err := d.cron.AddFunc(spec, d.run); err != nil {
		return fmt.Errorf("schedule digest: %w", err)
	}
	d.cron.Start()
	logger.Log.WithField("spec", spec).Info("attendance digest scheduled")
	return nil
}

func (d *Digest) Stop() {
	d.cron.Stop()
}

func (d *Digest) run() {
	date := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	stats, err := database.GetAttendanceStats(d.db, database.StatsFilter{Date: date})
	if err != nil {
		logger.Log.WithError(err).Warn("attendance digest failed")
		return
	}
	if stats.Total == 0 {
		logger.Log.WithField("date", date).Debug("no attendance recorded, digest skipped")
		return
	}

	database.LogActivity(d.db, "digest",
		fmt.Sprintf("Daily digest for %s: %d records (%d present, %d absent, %d late)",
			date, stats.Total, stats.Present, stats.Absent, stats.Late))
}
