package database

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
)

// testDB connects to the database named by TEST_DATABASE_URL and runs the
// migrations. Tests using it are skipped when the variable is unset.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	require.NoError(t, RunMigrations(db))

	t.Cleanup(func() { db.Close() })
	return db
}

// uniq keeps fixture names from colliding across runs against a shared
// test database.
func uniq(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func seedRoster(t *testing.T, db *sql.DB) (classID, facultyID, subjectID int64, studentIDs []int64) {
	t.Helper()

	class := &models.Class{ClassName: uniq("class"), Section: "A"}
	require.NoError(t, CreateClass(db, class))

	fac := &models.Faculty{Name: "Test Faculty", Email: uniq("fac") + "@test.com", Password: "x"}
	require.NoError(t, CreateFaculty(db, fac))

	sub := &models.Subject{Name: uniq("subject")}
	require.NoError(t, CreateSubject(db, sub))

	for i := 0; i < 2; i++ {
		s := &models.Student{
			Name:     fmt.Sprintf("Student %d", i+1),
			RollNo:   uniq("rn"),
			Email:    uniq("stu") + "@test.com",
			Password: "x",
			ClassID:  class.ID,
		}
		require.NoError(t, CreateStudent(db, s))
		studentIDs = append(studentIDs, s.ID)
	}
	return class.ID, fac.ID, sub.ID, studentIDs
}

func TestNextIDMonotonic(t *testing.T) {
	db := testDB(t)

	name := uniq("counter")
	prev := int64(0)
	for i := 0; i < 5; i++ {
		id, err := NextID(db, name)
		require.NoError(t, err)
		assert.Greater(t, id, prev)
		prev = id
	}
	assert.Equal(t, int64(5), prev)
}

func TestRecordAttendanceRejectsResubmission(t *testing.T) {
	db := testDB(t)
	classID, facultyID, subjectID, students := seedRoster(t, db)

	date := "2024-03-15"
	marks := []AttendanceMark{
		{StudentID: students[0], Status: models.Present},
		{StudentID: students[1], Status: models.Absent},
	}

	require.NoError(t, RecordAttendance(db, classID, facultyID, subjectID, date, marks))

	submitted, err := IsAttendanceSubmitted(db, classID, subjectID, date)
	require.NoError(t, err)
	assert.True(t, submitted)

	err = RecordAttendance(db, classID, facultyID, subjectID, date, marks)
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)

	// A second submission must not have duplicated any rows.
	records, err := GetAttendanceRecords(db, classID, subjectID, date)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestEditAttendanceRequiresSubmission(t *testing.T) {
	db := testDB(t)
	classID, facultyID, subjectID, students := seedRoster(t, db)

	marks := []AttendanceMark{{StudentID: students[0], Status: models.Present}}
	err := EditAttendance(db, classID, facultyID, subjectID, "2024-03-15", marks)
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestEditAttendanceUpsertsMarks(t *testing.T) {
	db := testDB(t)
	classID, facultyID, subjectID, students := seedRoster(t, db)

	date := "2024-03-18"
	require.NoError(t, RecordAttendance(db, classID, facultyID, subjectID, date, []AttendanceMark{
		{StudentID: students[0], Status: models.Present},
		{StudentID: students[1], Status: models.Present},
	}))

	require.NoError(t, EditAttendance(db, classID, facultyID, subjectID, date, []AttendanceMark{
		{StudentID: students[1], Status: models.Late},
	}))

	records, err := GetAttendanceRecords(db, classID, subjectID, date)
	require.NoError(t, err)
	require.Len(t, records, 2)

	byStudent := map[int64]models.AttendanceStatus{}
	for _, r := range records {
		byStudent[r.ID] = r.Status
	}
	assert.Equal(t, models.Present, byStudent[students[0]])
	assert.Equal(t, models.Late, byStudent[students[1]])
}

func TestRecordAttendanceRejectsForeignStudent(t *testing.T) {
	db := testDB(t)
	classID, facultyID, subjectID, _ := seedRoster(t, db)
	_, _, _, otherStudents := seedRoster(t, db)

	err := RecordAttendance(db, classID, facultyID, subjectID, "2024-03-15", []AttendanceMark{
		{StudentID: otherStudents[0], Status: models.Present},
	})
	var invalid *InvalidReferenceError
	assert.ErrorAs(t, err, &invalid)
}

func TestDeleteClassBlockedByEnrollment(t *testing.T) {
	db := testDB(t)
	classID, _, _, _ := seedRoster(t, db)

	err := DeleteClass(db, classID)
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestCreateClassRejectsDuplicatePair(t *testing.T) {
	db := testDB(t)

	name := uniq("class")
	require.NoError(t, CreateClass(db, &models.Class{ClassName: name, Section: "B"}))

	err := CreateClass(db, &models.Class{ClassName: name, Section: "B"})
	var dup *DuplicateEntityError
	assert.ErrorAs(t, err, &dup)

	// Same name, different section is a distinct class.
	assert.NoError(t, CreateClass(db, &models.Class{ClassName: name, Section: "C"}))
}

func TestAssignmentConflictNamesHolder(t *testing.T) {
	db := testDB(t)
	classID, facultyID, subjectID, _ := seedRoster(t, db)

	require.NoError(t, CreateAssignment(db, &models.Assignment{
		ClassID: classID, FacultyID: facultyID, SubjectID: subjectID,
	}))

	other := &models.Faculty{Name: "Other Faculty", Email: uniq("fac") + "@test.com", Password: "x"}
	require.NoError(t, CreateFaculty(db, other))

	err := CreateAssignment(db, &models.Assignment{
		ClassID: classID, FacultyID: other.ID, SubjectID: subjectID,
	})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Message, "Test Faculty")

	// The exact same triple is a duplicate, not a conflict.
	err = CreateAssignment(db, &models.Assignment{
		ClassID: classID, FacultyID: facultyID, SubjectID: subjectID,
	})
	var dup *DuplicateEntityError
	assert.ErrorAs(t, err, &dup)
}

func TestStudentSubjectHistorySurvivesClassMove(t *testing.T) {
	db := testDB(t)
	classID, facultyID, subjectID, students := seedRoster(t, db)

	date := "2024-05-06"
	require.NoError(t, RecordAttendance(db, classID, facultyID, subjectID, date, []AttendanceMark{
		{StudentID: students[0], Status: models.Present},
	}))

	newClass := &models.Class{ClassName: uniq("class"), Section: "B"}
	require.NoError(t, CreateClass(db, newClass))

	moved, err := getStudent(db, students[0])
	require.NoError(t, err)
	moved.ClassID = newClass.ID
	require.NoError(t, UpdateStudent(db, moved))

	// Rows written under the old class stay visible, stamped with the
	// student's current class name.
	history, err := GetStudentSubjectAttendance(db, students[0], subjectID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, date, history[0].Date)
	assert.Equal(t, models.Present, history[0].Status)
	assert.Equal(t, newClass.ClassName, history[0].ClassName)
	assert.Equal(t, "B", history[0].Section)
}

func TestAssignmentPairEnforcedByIndex(t *testing.T) {
	db := testDB(t)
	classID, facultyID, subjectID, _ := seedRoster(t, db)

	require.NoError(t, CreateAssignment(db, &models.Assignment{
		ClassID: classID, FacultyID: facultyID, SubjectID: subjectID,
	}))

	other := &models.Faculty{Name: "Third Faculty", Email: uniq("fac") + "@test.com", Password: "x"}
	require.NoError(t, CreateFaculty(db, other))

	// A writer bypassing CreateAssignment still cannot take the pair.
	_, err := db.Exec(`INSERT INTO assignments (class_id, faculty_id, subject_id)
					   VALUES ($1, $2, $3)`, classID, other.ID, subjectID)
	assert.True(t, isUniqueViolation(err))
}

func TestDeleteFacultyCascadesAssignments(t *testing.T) {
	db := testDB(t)
	classID, facultyID, subjectID, _ := seedRoster(t, db)

	require.NoError(t, CreateAssignment(db, &models.Assignment{
		ClassID: classID, FacultyID: facultyID, SubjectID: subjectID,
	}))

	require.NoError(t, DeleteFaculty(db, facultyID))

	count, err := CountAssignments(db, "faculty", facultyID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestQueryLifecycle(t *testing.T) {
	db := testDB(t)
	_, facultyID, _, students := seedRoster(t, db)

	id, err := CreateQuery(db, students[0], facultyID, "Marks", "Please recheck my quiz marks")
	require.NoError(t, err)

	require.NoError(t, TransitionQuery(db, id, models.QueryAccepted))

	// Accepting twice is an invalid transition.
	err = TransitionQuery(db, id, models.QueryAccepted)
	var invalid *InvalidTransitionError
	assert.ErrorAs(t, err, &invalid)

	require.NoError(t, ReplyQuery(db, id, "Rechecked, marks updated"))
	require.NoError(t, TransitionQuery(db, id, models.QueryClosed))

	// Closed is terminal; replies and transitions both stop.
	err = TransitionQuery(db, id, models.QueryRejected)
	assert.ErrorAs(t, err, &invalid)
	assert.Error(t, ReplyQuery(db, id, "too late"))
}

func TestUnreadQueryAcknowledgement(t *testing.T) {
	db := testDB(t)
	_, facultyID, _, students := seedRoster(t, db)

	_, err := CreateQuery(db, students[0], facultyID, "Subject", "A question")
	require.NoError(t, err)

	count, err := UnreadQueryCount(db, models.RoleFaculty, facultyID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, AckQueries(db, models.RoleFaculty, facultyID))

	count, err = UnreadQueryCount(db, models.RoleFaculty, facultyID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestAttendanceSummaryZeroDefaults(t *testing.T) {
	db := testDB(t)
	classID, facultyID, subjectID, students := seedRoster(t, db)

	date := "2024-04-02"
	require.NoError(t, RecordAttendance(db, classID, facultyID, subjectID, date, []AttendanceMark{
		{StudentID: students[0], Status: models.Present},
		{StudentID: students[1], Status: models.Present},
	}))

	summary, err := GetAttendanceSummary(db, classID, subjectID, date)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Present)
	assert.Equal(t, 0, summary.Absent)
	assert.Equal(t, 0, summary.Late)
}
