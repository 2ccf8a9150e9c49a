package dto

import (
	"github.com/google/uuid"

	model "ritmo_backend/internals/features/users/auth/model"
)

/* ===================== REQUESTS ===================== */

type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required"`
	OrgID    *uuid.UUID `json:"orgId" validate:"omitempty"` // org to scope the session to
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
}

type TokenResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
	OrgID        *uuid.UUID   `json:"orgId,omitempty"`
	OrgRole      string       `json:"orgRole,omitempty"`
}

func FromUserModel(m model.UserModel) UserResponse {
	return UserResponse{
		ID:       m.UsersID,
		FullName: m.UsersFullName,
		Email:    m.UsersEmail,
	}
}
