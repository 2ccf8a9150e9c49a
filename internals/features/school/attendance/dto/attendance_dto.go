package dto

import "github.com/google/uuid"

/* ===================== REQUESTS ===================== */

type AttendanceEntryInput struct {
	StudentID uuid.UUID `json:"studentId" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=present absent late excused"`
	Note      *string   `json:"note" validate:"omitempty,max=255"`
}

type MarkAttendanceRequest struct {
	Entries []AttendanceEntryInput `json:"entries"`
}

/* ===================== RESPONSES ===================== */

// ExpectedStudent is one student the enrollment intervals say should be
// at the session.
type ExpectedStudent struct {
	StudentID uuid.UUID `json:"studentId"`
	FullName  string    `json:"fullName"`
}

// AttendanceRow is one roster line for a session. Status is null until the
// student has been marked.
type AttendanceRow struct {
	StudentID   uuid.UUID `json:"studentId"`
	StudentName string    `json:"studentName"`
	Status      *string   `json:"status"`
	Note        *string   `json:"note,omitempty"`
}

type SessionAttendanceResponse struct {
	SessionID uuid.UUID         `json:"sessionId"`
	Expected  []ExpectedStudent `json:"expected"`
	Rows      []AttendanceRow   `json:"rows"`
}
