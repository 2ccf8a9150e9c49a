package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentModel struct {
	StudentsID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:students_id" json:"id"`
	StudentsOrgID uuid.UUID `gorm:"type:uuid;not null;column:students_org_id;index:idx_students_org" json:"orgId"`

	StudentsFullName string  `gorm:"size:100;not null;column:students_full_name" json:"fullName"`
	StudentsEmail    *string `gorm:"size:255;column:students_email" json:"email,omitempty"`
	StudentsPhone    *string `gorm:"size:30;column:students_phone" json:"phone,omitempty"`
	StudentsNotes    *string `gorm:"column:students_notes" json:"notes,omitempty"`
	StudentsIsActive bool    `gorm:"not null;default:true;column:students_is_active" json:"isActive"`

	StudentsCreatedAt time.Time  `gorm:"column:students_created_at;autoCreateTime" json:"createdAt"`
	StudentsUpdatedAt *time.Time `gorm:"column:students_updated_at;autoUpdateTime" json:"updatedAt,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}
