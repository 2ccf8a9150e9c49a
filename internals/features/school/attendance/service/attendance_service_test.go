package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ritmo_backend/internals/features/school/attendance/model"
)

func TestMergeRoster_UnmarkedStudentsHaveNullStatus(t *testing.T) {
	anna, ben := uuid.New(), uuid.New()
	roster := []RosterStudent{
		{StudentID: anna, FullName: "Anna"},
		{StudentID: ben, FullName: "Ben"},
	}
	entries := []model.AttendanceEntryModel{
		{AttendanceEntriesStudentID: anna, AttendanceEntriesStatus: model.StatusPresent},
	}

	rows := MergeRoster(roster, entries, nil)

	require.Len(t, rows, 2)
	assert.Equal(t, "Anna", rows[0].StudentName)
	require.NotNil(t, rows[0].Status)
	assert.Equal(t, "present", *rows[0].Status)

	assert.Equal(t, "Ben", rows[1].StudentName)
	assert.Nil(t, rows[1].Status) // not marked, not any status
}

func TestMergeRoster_KeepsMarksForStudentsOffTheRoster(t *testing.T) {
	// Marked first, unenrolled retroactively: the mark still shows.
	stray := uuid.New()
	entries := []model.AttendanceEntryModel{
		{AttendanceEntriesStudentID: stray, AttendanceEntriesStatus: model.StatusLate},
	}
	names := map[uuid.UUID]string{stray: "Carla"}

	rows := MergeRoster(nil, entries, names)

	require.Len(t, rows, 1)
	assert.Equal(t, stray, rows[0].StudentID)
	assert.Equal(t, "Carla", rows[0].StudentName)
	require.NotNil(t, rows[0].Status)
	assert.Equal(t, "late", *rows[0].Status)
}

func TestMergeRoster_EntryNoteIsCarried(t *testing.T) {
	id := uuid.New()
	note := "left early"
	roster := []RosterStudent{{StudentID: id, FullName: "Dina"}}
	entries := []model.AttendanceEntryModel{
		{
			AttendanceEntriesStudentID: id,
			AttendanceEntriesStatus:    model.StatusExcused,
			AttendanceEntriesNote:      &note,
		},
	}

	rows := MergeRoster(roster, entries, nil)

	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Note)
	assert.Equal(t, "left early", *rows[0].Note)
}

func TestMergeRoster_EmptyInputs(t *testing.T) {
	rows := MergeRoster(nil, nil, nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"present", "absent", "late", "excused"} {
		assert.True(t, model.ValidStatus(s), s)
	}
	assert.False(t, model.ValidStatus("unmarked"))
	assert.False(t, model.ValidStatus(""))
	assert.False(t, model.ValidStatus("Present"))
}
