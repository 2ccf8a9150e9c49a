package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attModel "ritmo_backend/internals/features/school/attendance/model"
	dto "ritmo_backend/internals/features/school/sessions/dto"
	model "ritmo_backend/internals/features/school/sessions/model"
	helper "ritmo_backend/internals/helpers"
	"ritmo_backend/internals/helpers/timeplan"
)

type SessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db, Validate: validator.New()}
}

// 🗓️ GET /api/a/:org_id/sessions?from=&to=&group_id=&teacher_id=&status=
// Defaults to the current week (Monday..Sunday) when no window is given.
func (ctrl *SessionController) ListSessions(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return err
	}

	from, to, err := resolveWindow(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctrl.DB.
		Where("sessions_org_id = ?", orgID).
		Where("sessions_date BETWEEN ? AND ?", from, to)

	if raw := c.Query("group_id"); raw != "" {
		groupID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid group_id filter")
		}
		q = q.Where("sessions_group_id = ?", groupID)
	}
	if raw := c.Query("teacher_id"); raw != "" {
		teacherID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid teacher_id filter")
		}
		q = q.Where("sessions_teacher_id = ?", teacherID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("sessions_status = ?", status)
	}

	var sessions []model.SessionModel
	if err := q.Order("sessions_date ASC, sessions_start_time ASC").Find(&sessions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load sessions")
	}
	if sessions == nil {
		sessions = []model.SessionModel{}
	}

	return helper.JsonOK(c, "Sessions retrieved", fiber.Map{
		"from":     from,
		"to":       to,
		"sessions": sessions,
	})
}

func resolveWindow(c *fiber.Ctx) (timeplan.DateOnly, timeplan.DateOnly, error) {
	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr == "" && toStr == "" {
		today := timeplan.Today()
		monday := today.AddDays(1 - today.ISOWeekday())
		return monday, monday.AddDays(6), nil
	}
	from, err := timeplan.ParseDate(fromStr)
	if err != nil {
		return timeplan.DateOnly{}, timeplan.DateOnly{}, errors.New("from must be a valid date (YYYY-MM-DD)")
	}
	to, err := timeplan.ParseDate(toStr)
	if err != nil {
		return timeplan.DateOnly{}, timeplan.DateOnly{}, errors.New("to must be a valid date (YYYY-MM-DD)")
	}
	if to.BeforeDate(from) {
		return timeplan.DateOnly{}, timeplan.DateOnly{}, errors.New("to must not be before from")
	}
	return from, to, nil
}

// 🗓️ POST /api/a/:org_id/sessions — manual session, group or private
func (ctrl *SessionController) CreateSession(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	session := req.ToModel(orgID)
	if err := ctrl.DB.Create(session).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create session")
	}
	return helper.JsonCreated(c, "Session created", session)
}

// 🗓️ GET /api/a/:org_id/sessions/:session_id
func (ctrl *SessionController) GetSession(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return err
	}
	session, err := ctrl.loadSession(c, orgID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Session retrieved", session)
}

// 🗓️ PATCH /api/a/:org_id/sessions/:session_id/status
func (ctrl *SessionController) UpdateSessionStatus(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return err
	}
	session, err := ctrl.loadSession(c, orgID)
	if err != nil {
		return err
	}

	var req dto.UpdateSessionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.DB.Model(session).
		Update("sessions_status", req.Status).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update session")
	}
	session.SessionsStatus = req.Status
	return helper.JsonUpdated(c, "Session updated", session)
}

// 🗓️ DELETE /api/a/:org_id/sessions/:session_id
func (ctrl *SessionController) DeleteSession(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return err
	}
	session, err := ctrl.loadSession(c, orgID)
	if err != nil {
		return err
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("attendance_entries_session_id = ?", session.SessionsID).
			Delete(&attModel.AttendanceEntryModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(session).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete session")
	}
	return helper.JsonDeleted(c, "Session deleted", fiber.Map{"id": session.SessionsID})
}

func (ctrl *SessionController) loadSession(c *fiber.Ctx, orgID uuid.UUID) (*model.SessionModel, error) {
	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}
	var session model.SessionModel
	err = ctrl.DB.
		Where("sessions_org_id = ? AND sessions_id = ?", orgID, sessionID).
		Take(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load session")
	}
	return &session, nil
}
