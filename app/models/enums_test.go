package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceStatusValid(t *testing.T) {
	assert.True(t, Present.Valid())
	assert.True(t, Absent.Valid())
	assert.True(t, Late.Valid())
	assert.False(t, AttendanceStatus("present").Valid())
	assert.False(t, AttendanceStatus("Excused").Valid())
	assert.False(t, AttendanceStatus("").Valid())
}

func TestQueryTransitions(t *testing.T) {
	cases := []struct {
		from, to QueryStatus
		allowed  bool
	}{
		{QueryPending, QueryAccepted, true},
		{QueryPending, QueryRejected, true},
		{QueryPending, QueryClosed, true},
		{QueryAccepted, QueryClosed, true},
		{QueryRejected, QueryClosed, true},

		// Accepted/Rejected are decisions, not revisable states.
		{QueryAccepted, QueryRejected, false},
		{QueryRejected, QueryAccepted, false},
		{QueryAccepted, QueryAccepted, false},

		// Closed is terminal.
		{QueryClosed, QueryAccepted, false},
		{QueryClosed, QueryRejected, false},
		{QueryClosed, QueryClosed, false},
		{QueryClosed, QueryPending, false},

		// Pending is never a target.
		{QueryAccepted, QueryPending, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equalf(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleFaculty.Valid())
	assert.False(t, Role("teacher").Valid())
	assert.False(t, Role("Admin").Valid())
}
