package controller

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ritmo_backend/internals/features/school/attendance/dto"
	"ritmo_backend/internals/features/school/attendance/model"
	"ritmo_backend/internals/features/school/attendance/service"
	helper "ritmo_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.Service
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Validate: validator.New(),
		Service:  service.New(db),
	}
}

func (ctrl *AttendanceController) sessionParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}
	return id, nil
}

// 📋 GET /api/a/:org_id/sessions/:session_id/attendance
func (ctrl *AttendanceController) GetSessionAttendance(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := ctrl.sessionParam(c)
	if err != nil {
		return err
	}

	// unknown session reads as empty expected + empty rows
	resp, err := ctrl.Service.SessionAttendance(orgID, sessionID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}
	return helper.JsonOK(c, "Attendance retrieved", resp)
}

// 📋 PATCH /api/a/:org_id/sessions/:session_id/attendance
// Body: {"entries":[{"studentId":...,"status":"present"|...,"note":...}]}
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := ctrl.sessionParam(c)
	if err != nil {
		return err
	}

	// entries must be a JSON array; a string or object here is a client bug
	var probe struct {
		Entries json.RawMessage `json:"entries"`
	}
	if err := sonic.Unmarshal(c.Body(), &probe); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if trimmed := bytes.TrimSpace(probe.Entries); len(trimmed) == 0 || trimmed[0] != '[' {
		return helper.Error(c, fiber.StatusBadRequest, "entries must be an array")
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	for _, in := range req.Entries {
		if err := ctrl.Validate.Struct(in); err != nil {
			return helper.ValidationError(c, err)
		}
		if !model.ValidStatus(in.Status) {
			return helper.Error(c, fiber.StatusBadRequest, "status must be present, absent, late, or excused")
		}
	}

	resp, err := ctrl.Service.MarkAttendance(orgID, sessionID, userID, req.Entries)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Session not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save attendance")
	}
	return helper.JsonUpdated(c, "Attendance saved", resp)
}
