package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 0.0, Percentage(5, 0))
	assert.Equal(t, 100.0, Percentage(10, 10))
	assert.Equal(t, 50.0, Percentage(5, 10))
	assert.Equal(t, 66.67, Percentage(2, 3))
	assert.Equal(t, 33.33, Percentage(1, 3))
	assert.Equal(t, 83.33, Percentage(5, 6))
}

func TestMonthRange(t *testing.T) {
	start, end := monthRange(1, 2024)
	assert.Equal(t, "2024-01-01", start)
	assert.Equal(t, "2024-01-31", end)

	start, end = monthRange(2, 2024)
	assert.Equal(t, "2024-02-01", start)
	assert.Equal(t, "2024-02-29", end) // leap year

	start, end = monthRange(2, 2023)
	assert.Equal(t, "2023-02-28", end)
	assert.Equal(t, "2023-02-01", start)

	start, end = monthRange(12, 2024)
	assert.Equal(t, "2024-12-01", start)
	assert.Equal(t, "2024-12-31", end)
}
