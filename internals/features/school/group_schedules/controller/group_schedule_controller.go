package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ritmo_backend/internals/features/school/group_schedules/dto"
	"ritmo_backend/internals/features/school/group_schedules/service"
	groupModel "ritmo_backend/internals/features/school/groups/model"
	sessionDTO "ritmo_backend/internals/features/school/sessions/dto"
	helper "ritmo_backend/internals/helpers"
	"ritmo_backend/internals/helpers/timeplan"
)

type GroupScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.Service
}

func NewGroupScheduleController(db *gorm.DB) *GroupScheduleController {
	return &GroupScheduleController{
		DB:       db,
		Validate: validator.New(),
		Service:  service.New(db),
	}
}

func (ctrl *GroupScheduleController) loadGroup(c *fiber.Ctx, orgID uuid.UUID) (*groupModel.GroupModel, error) {
	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid group id")
	}
	var group groupModel.GroupModel
	err = ctrl.DB.
		Where("groups_org_id = ? AND groups_id = ?", orgID, groupID).
		Take(&group).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Group not found")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load group")
	}
	return &group, nil
}

// 🎼 GET /api/a/:org_id/groups/:group_id/schedule
// Without query params: versions active today. With ?from=&to=: every
// version overlapping the window (history included).
func (ctrl *GroupScheduleController) GetSchedule(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return err
	}
	group, err := ctrl.loadGroup(c, orgID)
	if err != nil {
		return err
	}

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" || toStr != "" {
		from, err := timeplan.ParseDate(fromStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "from must be a valid date (YYYY-MM-DD)")
		}
		to, err := timeplan.ParseDate(toStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "to must be a valid date (YYYY-MM-DD)")
		}
		rows, err := ctrl.Service.VersionsOverlappingWindow(orgID, group.GroupsID, from, to)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to load schedules")
		}
		return helper.JsonOK(c, "Schedules retrieved", fiber.Map{
			"schedules": dto.FromGroupScheduleModels(rows),
		})
	}

	rows, err := ctrl.Service.ActiveVersions(orgID, group.GroupsID, timeplan.Today())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load schedules")
	}
	return helper.JsonOK(c, "Schedules retrieved", fiber.Map{
		"schedules": dto.FromGroupScheduleModels(rows),
	})
}

// 🎼 PATCH /api/a/:org_id/groups/:group_id/schedule
// Replaces the group's schedule going forward: the still-open version is
// closed the day before effectiveFrom and the submitted pattern becomes the
// new open version. Past sessions are untouched.
func (ctrl *GroupScheduleController) UpsertSchedule(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return err
	}
	group, err := ctrl.loadGroup(c, orgID)
	if err != nil {
		return err
	}

	var req dto.UpsertScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	slots := make([]service.SlotSpec, 0, len(req.Slots))
	for _, s := range req.Slots {
		slots = append(slots, service.SlotSpec{DayOfWeek: s.DayOfWeek, StartTime: s.StartTime})
	}

	version, err := ctrl.Service.UpsertSchedule(service.UpsertScheduleInput{
		GroupID:           group.GroupsID,
		OrgID:             orgID,
		Recurrence:        req.Recurrence,
		DurationHours:     req.DurationHours,
		EffectiveFrom:     req.EffectiveFrom,
		EffectiveTo:       req.EffectiveTo,
		ApplyToFutureOnly: req.ApplyToFutureOnly,
		Slots:             slots,
	})
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			return helper.Error(c, fiber.StatusBadRequest, ve.Message)
		}
		if errors.Is(err, service.ErrOpenVersionConflict) {
			return helper.Error(c, fiber.StatusConflict, "Another schedule change for this group is already in flight")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save schedule")
	}

	return helper.JsonUpdated(c, "Schedule updated", fiber.Map{
		"schedule": dto.FromGroupScheduleModel(*version),
	})
}

// 🎼 POST /api/a/:org_id/groups/:group_id/schedule/generate-sessions
// Body: {"from":"YYYY-MM-DD","to":"YYYY-MM-DD"}. Idempotent: re-running the
// same window reports 0 created.
func (ctrl *GroupScheduleController) GenerateSessions(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return err
	}
	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid group id")
	}

	var req sessionDTO.GenerateSessionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.From.IsZero() || req.To.IsZero() {
		return helper.Error(c, fiber.StatusBadRequest, "from and to (YYYY-MM-DD) are required")
	}

	created, err := ctrl.Service.GenerateSessions(orgID, groupID, req.From, req.To)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			return helper.Error(c, fiber.StatusBadRequest, ve.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate sessions")
	}

	return helper.JsonOK(c, "Sessions generated", fiber.Map{
		"created": created,
	})
}
