package models

// AttendanceStatus defines the possible status values for an attendance record.
type AttendanceStatus string

const (
	Present AttendanceStatus = "Present"
	Absent  AttendanceStatus = "Absent"
	Late    AttendanceStatus = "Late"
)

// Valid reports whether s is one of the known attendance statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case Present, Absent, Late:
		return true
	}
	return false
}

// QueryStatus defines the lifecycle states of a student query.
type QueryStatus string

const (
	QueryPending  QueryStatus = "Pending"
	QueryAccepted QueryStatus = "Accepted"
	QueryRejected QueryStatus = "Rejected"
	QueryClosed   QueryStatus = "Closed"
)

// CanTransitionTo reports whether the state machine allows moving from s to
// next. Closed is terminal; Accepted/Rejected are only reachable from Pending.
func (s QueryStatus) CanTransitionTo(next QueryStatus) bool {
	if s == QueryClosed {
		return false
	}
	switch next {
	case QueryAccepted, QueryRejected:
		return s == QueryPending
	case QueryClosed:
		return true
	}
	return false
}

// Role identifies the kind of authenticated principal.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleFaculty:
		return true
	}
	return false
}
