package model

import (
	"time"

	"github.com/google/uuid"
)

type VenueModel struct {
	VenuesID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:venues_id" json:"id"`
	VenuesOrgID uuid.UUID `gorm:"type:uuid;not null;column:venues_org_id;index:idx_venues_org" json:"orgId"`

	VenuesName     string  `gorm:"size:100;not null;column:venues_name" json:"name"`
	VenuesAddress  *string `gorm:"column:venues_address" json:"address,omitempty"`
	VenuesCapacity *int    `gorm:"column:venues_capacity" json:"capacity,omitempty"`
	VenuesIsActive bool    `gorm:"not null;default:true;column:venues_is_active" json:"isActive"`

	VenuesCreatedAt time.Time  `gorm:"column:venues_created_at;autoCreateTime" json:"createdAt"`
	VenuesUpdatedAt *time.Time `gorm:"column:venues_updated_at;autoUpdateTime" json:"updatedAt,omitempty"`
}

func (VenueModel) TableName() string {
	return "venues"
}
