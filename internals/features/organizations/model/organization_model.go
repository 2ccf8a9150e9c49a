package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrganizationModel represents one tenant (a dance school or an
// independent teacher's studio).
type OrganizationModel struct {
	OrganizationsID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:organizations_id" json:"id"`
	OrganizationsName string    `gorm:"size:120;not null;column:organizations_name" json:"name"`

	// Subdomain handle; unique across tenants.
	OrganizationsSlug string `gorm:"size:63;unique;not null;column:organizations_slug" json:"slug"`

	// Free-form tenant settings (timezone, branding, locale).
	OrganizationsSettings datatypes.JSON `gorm:"type:jsonb;column:organizations_settings" json:"settings,omitempty"`

	OrganizationsCreatedAt time.Time  `gorm:"column:organizations_created_at;autoCreateTime" json:"createdAt"`
	OrganizationsUpdatedAt *time.Time `gorm:"column:organizations_updated_at;autoUpdateTime" json:"updatedAt,omitempty"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}
