package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authDTO "ritmo_backend/internals/features/users/auth/dto"
	authModel "ritmo_backend/internals/features/users/auth/model"
	authService "ritmo_backend/internals/features/users/auth/service"
	orgModel "ritmo_backend/internals/features/organizations/model"
	helper "ritmo_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

/* ===============================
   REGISTER
=============================== */

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := ctrl.DB.Model(&authModel.UserModel{}).
		Where("users_email = ?", req.Email).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := authModel.UserModel{
		UsersFullName:     strings.TrimSpace(req.FullName),
		UsersEmail:        req.Email,
		UsersPasswordHash: string(hash),
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Account created", authDTO.FromUserModel(user))
}

/* ===============================
   LOGIN
=============================== */

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user authModel.UserModel
	err := ctrl.DB.
		First(&user, "users_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up user")
	}
	if !user.UsersIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UsersPasswordHash), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	// Resolve the org scope for the session: the requested org, or the
	// only org the user belongs to.
	orgID, orgRole, err := ctrl.resolveOrgScope(user.UsersID, req.OrgID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	access, err := authService.IssueAccessToken(user.UsersID, orgID, orgRole)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	refresh, err := authService.IssueRefreshToken(user.UsersID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.Success(c, "Login ok", authDTO.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         authDTO.FromUserModel(user),
		OrgID:        orgID,
		OrgRole:      orgRole,
	})
}

func (ctrl *AuthController) resolveOrgScope(userID uuid.UUID, requested *uuid.UUID) (*uuid.UUID, string, error) {
	var memberships []orgModel.OrganizationMemberModel
	if err := ctrl.DB.
		Where("organization_members_user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, "Failed to load memberships")
	}
	if len(memberships) == 0 {
		return nil, "", nil // token without org scope
	}

	if requested != nil {
		for _, m := range memberships {
			if m.OrganizationMembersOrgID == *requested {
				id := m.OrganizationMembersOrgID
				return &id, m.OrganizationMembersRole, nil
			}
		}
		return nil, "", fiber.NewError(fiber.StatusForbidden, "You are not a member of the requested organization")
	}

	if len(memberships) == 1 {
		id := memberships[0].OrganizationMembersOrgID
		return &id, memberships[0].OrganizationMembersRole, nil
	}
	// multiple orgs and none requested: client must pick
	return nil, "", nil
}

/* ===============================
   REFRESH
=============================== */

// POST /api/auth/refresh-token
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string     `json:"refreshToken"`
		OrgID        *uuid.UUID `json:"orgId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	raw := strings.TrimSpace(req.RefreshToken)
	if raw == "" {
		raw = strings.TrimSpace(c.Cookies("refresh_token"))
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	userID, err := authService.ParseRefreshToken(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	var user authModel.UserModel
	if err := ctrl.DB.First(&user, "users_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.UsersIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
	}

	orgID, orgRole, err := ctrl.resolveOrgScope(user.UsersID, req.OrgID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	access, err := authService.IssueAccessToken(user.UsersID, orgID, orgRole)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	refresh, err := authService.IssueRefreshToken(user.UsersID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.Success(c, "Token refreshed", authDTO.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         authDTO.FromUserModel(user),
		OrgID:        orgID,
		OrgRole:      orgRole,
	})
}

/* ===============================
   ME
=============================== */

// GET /api/u/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var user authModel.UserModel
	if err := ctrl.DB.First(&user, "users_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}
	return helper.Success(c, "OK", authDTO.FromUserModel(user))
}
