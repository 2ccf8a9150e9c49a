package model

import (
	"time"

	"github.com/google/uuid"
)

type TeacherModel struct {
	TeachersID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teachers_id" json:"id"`
	TeachersOrgID uuid.UUID `gorm:"type:uuid;not null;column:teachers_org_id;index:idx_teachers_org" json:"orgId"`

	// Optional link to a login account (independent teachers run their own org)
	TeachersUserID *uuid.UUID `gorm:"type:uuid;column:teachers_user_id" json:"userId,omitempty"`

	TeachersFullName string  `gorm:"size:100;not null;column:teachers_full_name" json:"fullName"`
	TeachersEmail    *string `gorm:"size:255;column:teachers_email" json:"email,omitempty"`
	TeachersPhone    *string `gorm:"size:30;column:teachers_phone" json:"phone,omitempty"`
	TeachersBio      *string `gorm:"column:teachers_bio" json:"bio,omitempty"`
	TeachersIsActive bool    `gorm:"not null;default:true;column:teachers_is_active" json:"isActive"`

	TeachersCreatedAt time.Time  `gorm:"column:teachers_created_at;autoCreateTime" json:"createdAt"`
	TeachersUpdatedAt *time.Time `gorm:"column:teachers_updated_at;autoUpdateTime" json:"updatedAt,omitempty"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
