package service

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	model "ritmo_backend/internals/features/school/group_schedules/model"
	"ritmo_backend/internals/helpers/timeplan"
)

// Service owns the schedule version store and the future-only editor.
type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

/* ===============================
   Version store queries
=============================== */

// ActiveVersions returns every version whose effective range covers asOf,
// slots ordered by sort_order. Empty slice when nothing matches, never nil.
// Normal data has at most one; overlap is pathological but still returned.
func (s *Service) ActiveVersions(orgID, groupID uuid.UUID, asOf timeplan.DateOnly) ([]model.GroupScheduleModel, error) {
	var versions []model.GroupScheduleModel
	err := s.DB.
		Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("group_schedule_slots_sort_order ASC")
		}).
		Where("group_schedules_org_id = ? AND group_schedules_group_id = ?", orgID, groupID).
		Where("group_schedules_effective_from <= ?", asOf).
		Where("group_schedules_effective_to IS NULL OR group_schedules_effective_to >= ?", asOf).
		Order("group_schedules_effective_from ASC").
		Find(&versions).Error
	if err != nil {
		return nil, err
	}
	if versions == nil {
		versions = []model.GroupScheduleModel{}
	}
	return versions, nil
}

// VersionsOverlappingWindow returns every version that could contribute an
// occurrence anywhere in [from, to] — not just the one active today.
func (s *Service) VersionsOverlappingWindow(orgID, groupID uuid.UUID, from, to timeplan.DateOnly) ([]model.GroupScheduleModel, error) {
	var versions []model.GroupScheduleModel
	err := s.DB.
		Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("group_schedule_slots_sort_order ASC")
		}).
		Where("group_schedules_org_id = ? AND group_schedules_group_id = ?", orgID, groupID).
		Where("group_schedules_effective_from <= ?", to).
		Where("group_schedules_effective_to IS NULL OR group_schedules_effective_to >= ?", from).
		Order("group_schedules_effective_from ASC").
		Find(&versions).Error
	if err != nil {
		return nil, err
	}
	if versions == nil {
		versions = []model.GroupScheduleModel{}
	}
	return versions, nil
}

/* ===============================
   Editor (future-only semantics)
=============================== */

type SlotSpec struct {
	DayOfWeek int
	StartTime string
}

type UpsertScheduleInput struct {
	GroupID           uuid.UUID
	OrgID             uuid.UUID
	Recurrence        string
	DurationHours     float64
	EffectiveFrom     *timeplan.DateOnly
	EffectiveTo       *timeplan.DateOnly
	ApplyToFutureOnly bool
	Slots             []SlotSpec
}

// ValidateUpsert checks the payload without touching the store. Messages are
// the API contract; keep them stable.
func ValidateUpsert(in UpsertScheduleInput) error {
	rec := model.Recurrence(in.Recurrence)
	if !rec.Valid() {
		return errValidation("Recurrence must be one_time, weekly, or twice_weekly")
	}
	if in.DurationHours <= 0 || math.IsInf(in.DurationHours, 0) || math.IsNaN(in.DurationHours) {
		return errValidation("durationHours must be a positive number")
	}
	if in.EffectiveFrom == nil || in.EffectiveFrom.IsZero() {
		return errValidation("effectiveFrom (YYYY-MM-DD) is required")
	}
	if in.EffectiveTo != nil && !in.EffectiveTo.IsZero() && in.EffectiveTo.BeforeDate(*in.EffectiveFrom) {
		return errValidation("effectiveTo must not be before effectiveFrom")
	}
	if want := rec.SlotCount(); len(in.Slots) != want {
		if rec == model.RecurrenceTwiceWeekly {
			return errValidation("Twice-weekly schedule must have exactly two slots")
		}
		return errValidation("One-time and weekly schedules must have exactly one slot")
	}
	for _, slot := range in.Slots {
		if slot.DayOfWeek < 1 || slot.DayOfWeek > 7 {
			return errValidation("Slot dayOfWeek must be between 1 (Monday) and 7 (Sunday)")
		}
		if !timeplan.IsValidClockString(slot.StartTime) {
			return errValidation("Slot startTime must be a valid HH:MM time")
		}
	}
	return nil
}

// CloseOutDate is the effective_to the superseded version receives: the day
// immediately before the new version starts.
func CloseOutDate(newEffectiveFrom timeplan.DateOnly) timeplan.DateOnly {
	return newEffectiveFrom.AddDays(-1)
}

// UpsertSchedule applies a schedule edit. With ApplyToFutureOnly set it
// first closes the version still reaching effectiveFrom, then inserts the
// new version and its slots. Close-out and insert run in one transaction so
// a crash cannot leave a closed old version with no successor. Past
// versions (already closed before effectiveFrom) are never touched, and no
// existing session row is.
func (s *Service) UpsertSchedule(in UpsertScheduleInput) (*model.GroupScheduleModel, error) {
	if err := ValidateUpsert(in); err != nil {
		return nil, err
	}

	version := &model.GroupScheduleModel{
		GroupSchedulesOrgID:         in.OrgID,
		GroupSchedulesGroupID:       in.GroupID,
		GroupSchedulesRecurrence:    model.Recurrence(in.Recurrence),
		GroupSchedulesDurationHours: in.DurationHours,
		GroupSchedulesEffectiveFrom: *in.EffectiveFrom,
		GroupSchedulesEffectiveTo:   in.EffectiveTo,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if in.ApplyToFutureOnly {
			// The one version whose range still reaches effectiveFrom.
			var open model.GroupScheduleModel
			err := tx.
				Where("group_schedules_org_id = ? AND group_schedules_group_id = ?", in.OrgID, in.GroupID).
				Where("group_schedules_effective_to IS NULL OR group_schedules_effective_to >= ?", *in.EffectiveFrom).
				Order("group_schedules_effective_from DESC").
				Take(&open).Error
			switch {
			case err == nil:
				closeOut := CloseOutDate(*in.EffectiveFrom)
				if err := tx.Model(&open).
					Update("group_schedules_effective_to", closeOut).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				// first schedule for this group; nothing to close
			default:
				return err
			}
		}

		if err := tx.Create(version).Error; err != nil {
			return err
		}

		slots := make([]model.GroupScheduleSlotModel, 0, len(in.Slots))
		for i, slot := range in.Slots {
			start, _ := timeplan.ParseClock(slot.StartTime) // validated above
			slots = append(slots, model.GroupScheduleSlotModel{
				GroupScheduleSlotsScheduleID: version.GroupSchedulesID,
				GroupScheduleSlotsDayOfWeek:  slot.DayOfWeek,
				GroupScheduleSlotsStartTime:  start,
				GroupScheduleSlotsSortOrder:  i,
			})
		}
		if err := tx.Create(&slots).Error; err != nil {
			return err
		}
		version.Slots = slots
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrOpenVersionConflict
		}
		return nil, err
	}

	return version, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
