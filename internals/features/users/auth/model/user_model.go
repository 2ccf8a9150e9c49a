package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the users table
type UserModel struct {
	UsersID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:users_id" json:"id"`
	UsersFullName     string     `gorm:"size:100;not null;column:users_full_name" json:"fullName"`
	UsersEmail        string     `gorm:"size:255;unique;not null;column:users_email" json:"email"`
	UsersPasswordHash string     `gorm:"not null;column:users_password_hash" json:"-"`
	UsersIsActive     bool       `gorm:"not null;default:true;column:users_is_active" json:"isActive"`
	UsersCreatedAt    time.Time  `gorm:"column:users_created_at;autoCreateTime" json:"createdAt"`
	UsersUpdatedAt    *time.Time `gorm:"column:users_updated_at;autoUpdateTime" json:"updatedAt,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
