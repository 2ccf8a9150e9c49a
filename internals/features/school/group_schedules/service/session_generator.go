package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "ritmo_backend/internals/features/school/groups/model"
	model "ritmo_backend/internals/features/school/group_schedules/model"
	sessionModel "ritmo_backend/internals/features/school/sessions/model"
	"ritmo_backend/internals/helpers/timeplan"
)

// Occurrence is one (date, startTime, endTime) a schedule version produces
// inside a generation window.
type Occurrence struct {
	Date      timeplan.DateOnly
	StartTime timeplan.ClockTime
	EndTime   timeplan.ClockTime
}

// Key identifies an occurrence for dedupe against existing sessions.
func (o Occurrence) Key() string {
	return o.Date.String() + "|" + o.StartTime.String()
}

// ExpandOccurrences walks every date in [from, to] and emits one occurrence
// per slot whose weekday matches, for every version whose effective range
// covers that date. End time is start + duration, wrapped within the day.
func ExpandOccurrences(versions []model.GroupScheduleModel, from, to timeplan.DateOnly) []Occurrence {
	out := []Occurrence{}
	if to.BeforeDate(from) {
		return out
	}
	for d := from; !d.AfterDate(to); d = d.AddDays(1) {
		for i := range versions {
			v := &versions[i]
			if !v.CoversDate(d) {
				continue
			}
			for _, slot := range v.Slots {
				if slot.GroupScheduleSlotsDayOfWeek != d.ISOWeekday() {
					continue
				}
				out = append(out, Occurrence{
					Date:      d,
					StartTime: slot.GroupScheduleSlotsStartTime,
					EndTime:   slot.GroupScheduleSlotsStartTime.AddHours(v.GroupSchedulesDurationHours),
				})
			}
		}
	}
	return out
}

// FilterNewOccurrences drops occurrences whose Key already exists.
func FilterNewOccurrences(occs []Occurrence, existing map[string]bool) []Occurrence {
	out := []Occurrence{}
	for _, o := range occs {
		if !existing[o.Key()] {
			out = append(out, o)
		}
	}
	return out
}

// GenerateSessions materializes the group's schedule versions into session
// rows over [from, to]. Existing (date, startTime) pairs are skipped, so
// calling it twice for the same window creates nothing the second time.
// An unknown group yields zero sessions, not an error. Returns the number
// of sessions created.
func (s *Service) GenerateSessions(orgID, groupID uuid.UUID, from, to timeplan.DateOnly) (int, error) {
	if to.BeforeDate(from) {
		return 0, errValidation("to must not be before from")
	}

	var group groupModel.GroupModel
	err := s.DB.
		Where("groups_org_id = ? AND groups_id = ?", orgID, groupID).
		Take(&group).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load group: %w", err)
	}

	versions, err := s.VersionsOverlappingWindow(orgID, groupID, from, to)
	if err != nil {
		return 0, fmt.Errorf("load schedule versions: %w", err)
	}
	occs := ExpandOccurrences(versions, from, to)
	if len(occs) == 0 {
		return 0, nil
	}

	var existing []sessionModel.SessionModel
	err = s.DB.
		Select("sessions_date", "sessions_start_time").
		Where("sessions_org_id = ? AND sessions_group_id = ?", orgID, groupID).
		Where("sessions_date BETWEEN ? AND ?", from, to).
		Find(&existing).Error
	if err != nil {
		return 0, fmt.Errorf("load existing sessions: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		if e.SessionsStartTime == nil {
			continue
		}
		seen[e.SessionsDate.String()+"|"+e.SessionsStartTime.String()] = true
	}

	fresh := FilterNewOccurrences(occs, seen)
	if len(fresh) == 0 {
		return 0, nil
	}

	rows := make([]sessionModel.SessionModel, 0, len(fresh))
	for _, o := range fresh {
		start, end := o.StartTime, o.EndTime
		rows = append(rows, sessionModel.SessionModel{
			SessionsOrgID:     orgID,
			SessionsGroupID:   &groupID,
			SessionsTeacherID: group.GroupsTeacherID,
			SessionsVenueID:   group.GroupsVenueID,
			SessionsDate:      o.Date,
			SessionsStartTime: &start,
			SessionsEndTime:   &end,
			SessionsStatus:    sessionModel.SessionScheduled,
		})
	}
	if err := s.DB.Create(&rows).Error; err != nil {
		// a concurrent generation run can win the race on single rows
		if isUniqueViolation(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("insert sessions: %w", err)
	}
	return len(rows), nil
}
