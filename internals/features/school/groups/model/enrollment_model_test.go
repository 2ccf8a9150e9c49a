package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ritmo_backend/internals/helpers/timeplan"
)

func TestEnrollmentActiveOn(t *testing.T) {
	end := timeplan.NewDate(2025, time.March, 31)
	e := EnrollmentModel{
		EnrollmentsStartDate: timeplan.NewDate(2025, time.January, 1),
		EnrollmentsEndDate:   &end,
	}

	assert.True(t, e.ActiveOn(timeplan.NewDate(2025, time.February, 15)))
	assert.True(t, e.ActiveOn(timeplan.NewDate(2025, time.January, 1)))  // first day inclusive
	assert.True(t, e.ActiveOn(timeplan.NewDate(2025, time.March, 31)))   // last day inclusive
	assert.False(t, e.ActiveOn(timeplan.NewDate(2024, time.December, 31)))
	assert.False(t, e.ActiveOn(timeplan.NewDate(2025, time.April, 15)))
}

func TestEnrollmentActiveOn_OpenEnded(t *testing.T) {
	e := EnrollmentModel{
		EnrollmentsStartDate: timeplan.NewDate(2025, time.January, 1),
	}
	assert.True(t, e.ActiveOn(timeplan.NewDate(2030, time.January, 1)))
	assert.False(t, e.ActiveOn(timeplan.NewDate(2024, time.June, 1)))
}
