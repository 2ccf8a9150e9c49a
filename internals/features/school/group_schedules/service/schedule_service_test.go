package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "ritmo_backend/internals/features/school/group_schedules/model"
	"ritmo_backend/internals/helpers/timeplan"
)

func date(y int, m time.Month, d int) timeplan.DateOnly {
	return timeplan.NewDate(y, m, d)
}

func datePtr(y int, m time.Month, d int) *timeplan.DateOnly {
	dd := timeplan.NewDate(y, m, d)
	return &dd
}

func validWeeklyInput() UpsertScheduleInput {
	return UpsertScheduleInput{
		Recurrence:        "weekly",
		DurationHours:     1.5,
		EffectiveFrom:     datePtr(2025, time.June, 1),
		ApplyToFutureOnly: true,
		Slots:             []SlotSpec{{DayOfWeek: 3, StartTime: "10:00"}},
	}
}

func TestValidateUpsert_AcceptsWellFormedWeekly(t *testing.T) {
	require.NoError(t, ValidateUpsert(validWeeklyInput()))
}

func TestValidateUpsert_RejectsUnknownRecurrence(t *testing.T) {
	in := validWeeklyInput()
	in.Recurrence = "daily"
	err := ValidateUpsert(in)
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Recurrence must be one_time, weekly, or twice_weekly", ve.Message)
}

func TestValidateUpsert_RequiresEffectiveFrom(t *testing.T) {
	in := validWeeklyInput()
	in.EffectiveFrom = nil
	err := ValidateUpsert(in)
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "effectiveFrom (YYYY-MM-DD) is required", ve.Message)

	in = validWeeklyInput()
	empty := timeplan.DateOnly{}
	in.EffectiveFrom = &empty
	err = ValidateUpsert(in)
	require.Error(t, err)
	ve, ok = AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "effectiveFrom (YYYY-MM-DD) is required", ve.Message)
}

func TestValidateUpsert_TwiceWeeklyNeedsTwoSlots(t *testing.T) {
	in := validWeeklyInput()
	in.Recurrence = "twice_weekly"

	err := ValidateUpsert(in)
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Twice-weekly schedule must have exactly two slots", ve.Message)

	in.Slots = []SlotSpec{
		{DayOfWeek: 2, StartTime: "18:00"},
		{DayOfWeek: 4, StartTime: "18:00"},
	}
	require.NoError(t, ValidateUpsert(in))
}

func TestValidateUpsert_WeeklyNeedsExactlyOneSlot(t *testing.T) {
	in := validWeeklyInput()
	in.Slots = append(in.Slots, SlotSpec{DayOfWeek: 5, StartTime: "12:00"})
	err := ValidateUpsert(in)
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "One-time and weekly schedules must have exactly one slot", ve.Message)
}

func TestValidateUpsert_RejectsBadDurationAndSlots(t *testing.T) {
	in := validWeeklyInput()
	in.DurationHours = 0
	assert.Error(t, ValidateUpsert(in))

	in = validWeeklyInput()
	in.DurationHours = -1
	assert.Error(t, ValidateUpsert(in))

	in = validWeeklyInput()
	in.Slots[0].DayOfWeek = 8
	assert.Error(t, ValidateUpsert(in))

	in = validWeeklyInput()
	in.Slots[0].StartTime = "25:00"
	assert.Error(t, ValidateUpsert(in))

	in = validWeeklyInput()
	in.Slots[0].StartTime = "9:00" // must be two-digit HH
	assert.Error(t, ValidateUpsert(in))
}

func TestValidateUpsert_EffectiveToBeforeFrom(t *testing.T) {
	in := validWeeklyInput()
	in.EffectiveTo = datePtr(2025, time.May, 1)
	assert.Error(t, ValidateUpsert(in))
}

func TestCloseOutDate_IsDayBeforeNewVersion(t *testing.T) {
	assert.Equal(t, "2025-05-31", CloseOutDate(date(2025, time.June, 1)).String())
	assert.Equal(t, "2024-12-31", CloseOutDate(date(2025, time.January, 1)).String())
}

func weeklyVersion(from timeplan.DateOnly, to *timeplan.DateOnly, dow int, start string, hours float64) model.GroupScheduleModel {
	st, _ := timeplan.ParseClock(start)
	return model.GroupScheduleModel{
		GroupSchedulesRecurrence:    model.RecurrenceWeekly,
		GroupSchedulesDurationHours: hours,
		GroupSchedulesEffectiveFrom: from,
		GroupSchedulesEffectiveTo:   to,
		Slots: []model.GroupScheduleSlotModel{
			{GroupScheduleSlotsDayOfWeek: dow, GroupScheduleSlotsStartTime: st},
		},
	}
}

func TestExpandOccurrences_WeeklyWednesdaysOfJune(t *testing.T) {
	// Wednesdays at 10:00 for 1.5h across all of June 2025
	versions := []model.GroupScheduleModel{
		weeklyVersion(date(2025, time.June, 1), nil, 3, "10:00", 1.5),
	}
	occs := ExpandOccurrences(versions, date(2025, time.June, 1), date(2025, time.June, 30))

	require.Len(t, occs, 4)
	wantDates := []string{"2025-06-04", "2025-06-11", "2025-06-18", "2025-06-25"}
	for i, o := range occs {
		assert.Equal(t, wantDates[i], o.Date.String())
		assert.Equal(t, "10:00", o.StartTime.String())
		assert.Equal(t, "11:30", o.EndTime.String())
	}
}

func TestExpandOccurrences_RespectsEffectiveRange(t *testing.T) {
	// Version closed mid-month stops producing occurrences after its end.
	versions := []model.GroupScheduleModel{
		weeklyVersion(date(2025, time.June, 1), datePtr(2025, time.June, 15), 3, "10:00", 1),
	}
	occs := ExpandOccurrences(versions, date(2025, time.June, 1), date(2025, time.June, 30))

	require.Len(t, occs, 2)
	assert.Equal(t, "2025-06-04", occs[0].Date.String())
	assert.Equal(t, "2025-06-11", occs[1].Date.String())
}

func TestExpandOccurrences_SuccessiveVersionsHandOff(t *testing.T) {
	// Old Wednesday pattern closed 2025-06-15, new Friday pattern from 06-16.
	versions := []model.GroupScheduleModel{
		weeklyVersion(date(2025, time.June, 1), datePtr(2025, time.June, 15), 3, "10:00", 1),
		weeklyVersion(date(2025, time.June, 16), nil, 5, "17:00", 1),
	}
	occs := ExpandOccurrences(versions, date(2025, time.June, 1), date(2025, time.June, 30))

	var got []string
	for _, o := range occs {
		got = append(got, o.Date.String()+" "+o.StartTime.String())
	}
	assert.Equal(t, []string{
		"2025-06-04 10:00",
		"2025-06-11 10:00",
		"2025-06-20 17:00",
		"2025-06-27 17:00",
	}, got)
}

func TestExpandOccurrences_TwiceWeekly(t *testing.T) {
	st1, _ := timeplan.ParseClock("18:00")
	st2, _ := timeplan.ParseClock("19:30")
	versions := []model.GroupScheduleModel{
		{
			GroupSchedulesRecurrence:    model.RecurrenceTwiceWeekly,
			GroupSchedulesDurationHours: 1,
			GroupSchedulesEffectiveFrom: date(2025, time.June, 2),
			Slots: []model.GroupScheduleSlotModel{
				{GroupScheduleSlotsDayOfWeek: 1, GroupScheduleSlotsStartTime: st1},
				{GroupScheduleSlotsDayOfWeek: 4, GroupScheduleSlotsStartTime: st2},
			},
		},
	}
	occs := ExpandOccurrences(versions, date(2025, time.June, 2), date(2025, time.June, 8))

	require.Len(t, occs, 2)
	assert.Equal(t, "2025-06-02", occs[0].Date.String()) // Monday
	assert.Equal(t, "18:00", occs[0].StartTime.String())
	assert.Equal(t, "2025-06-05", occs[1].Date.String()) // Thursday
	assert.Equal(t, "19:30", occs[1].StartTime.String())
}

func TestExpandOccurrences_OneTimeExpandsLikeWeeklyOverWindow(t *testing.T) {
	// one_time carries a single slot but is still expanded per matching
	// weekday across its effective range; callers bound it with effectiveTo.
	st, _ := timeplan.ParseClock("10:00")
	versions := []model.GroupScheduleModel{
		{
			GroupSchedulesRecurrence:    model.RecurrenceOneTime,
			GroupSchedulesDurationHours: 2,
			GroupSchedulesEffectiveFrom: date(2025, time.June, 1),
			Slots: []model.GroupScheduleSlotModel{
				{GroupScheduleSlotsDayOfWeek: 6, GroupScheduleSlotsStartTime: st},
			},
		},
	}
	occs := ExpandOccurrences(versions, date(2025, time.June, 1), date(2025, time.June, 14))
	require.Len(t, occs, 2)
	assert.Equal(t, "2025-06-07", occs[0].Date.String())
	assert.Equal(t, "2025-06-14", occs[1].Date.String())
}

func TestExpandOccurrences_EndTimeWrapsPastMidnight(t *testing.T) {
	versions := []model.GroupScheduleModel{
		weeklyVersion(date(2025, time.June, 1), nil, 3, "23:00", 1.5),
	}
	occs := ExpandOccurrences(versions, date(2025, time.June, 4), date(2025, time.June, 4))

	require.Len(t, occs, 1)
	assert.Equal(t, "23:00", occs[0].StartTime.String())
	assert.Equal(t, "00:30", occs[0].EndTime.String())
	assert.Equal(t, "2025-06-04", occs[0].Date.String()) // no date rollover
}

func TestExpandOccurrences_EmptyWindowAndInvertedWindow(t *testing.T) {
	versions := []model.GroupScheduleModel{
		weeklyVersion(date(2025, time.June, 1), nil, 3, "10:00", 1),
	}
	assert.Empty(t, ExpandOccurrences(nil, date(2025, time.June, 1), date(2025, time.June, 30)))
	assert.Empty(t, ExpandOccurrences(versions, date(2025, time.June, 30), date(2025, time.June, 1)))
}

func TestFilterNewOccurrences_SkipsExistingDateStartPairs(t *testing.T) {
	versions := []model.GroupScheduleModel{
		weeklyVersion(date(2025, time.June, 1), nil, 3, "10:00", 1.5),
	}
	occs := ExpandOccurrences(versions, date(2025, time.June, 1), date(2025, time.June, 30))
	require.Len(t, occs, 4)

	// first run created everything
	existing := map[string]bool{}
	for _, o := range occs {
		existing[o.Key()] = true
	}
	assert.Empty(t, FilterNewOccurrences(occs, existing))

	// partial overlap: only the uncovered Wednesday survives
	delete(existing, "2025-06-25|10:00")
	fresh := FilterNewOccurrences(occs, existing)
	require.Len(t, fresh, 1)
	assert.Equal(t, "2025-06-25", fresh[0].Date.String())

	// a session at another time on the same date does not block
	assert.True(t, existing["2025-06-18|10:00"])
	occs2 := []Occurrence{{Date: date(2025, time.June, 18), StartTime: timeplan.NewClock(15, 0)}}
	assert.Len(t, FilterNewOccurrences(occs2, existing), 1)
}
