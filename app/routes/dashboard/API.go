package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/config"
	"github.com/zohaib-han/Attendance-Management-System/app/database"
	"github.com/zohaib-han/Attendance-Management-System/app/models"
	"github.com/zohaib-han/Attendance-Management-System/app/routes/apiutil"
)

func countRows(db *sql.DB, table string) (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
	return n, err
}

// GetOverviewAPI returns the headline counts for the admin dashboard.
func GetOverviewAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	counts := fiber.Map{}
	for key, table := range map[string]string{
		"classes":  "classes",
		"students": "students",
		"faculty":  "faculty",
		"subjects": "subjects",
	} {
		n, err := countRows(db, table)
		if err != nil {
			return apiutil.Error(c, err)
		}
		counts[key] = n
	}
	return c.JSON(counts)
}

func GetRecentActivityAPI(c *fiber.Ctx) error {
	entries, err := database.GetActivityLog(config.GetDB())
	if err != nil {
		return apiutil.Error(c, err)
	}
	if entries == nil {
		entries = []models.ActivityLogEntry{}
	}
	return c.JSON(entries)
}
