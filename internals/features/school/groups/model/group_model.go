package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupModel is a dance group/class (e.g. "Salsa Beginners Tuesday").
// Its teacher and venue are inherited by generated sessions.
type GroupModel struct {
	GroupsID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:groups_id" json:"id"`
	GroupsOrgID uuid.UUID `gorm:"type:uuid;not null;column:groups_org_id;index:idx_groups_org" json:"orgId"`

	GroupsName      string     `gorm:"size:100;not null;column:groups_name" json:"name"`
	GroupsTeacherID *uuid.UUID `gorm:"type:uuid;column:groups_teacher_id" json:"teacherId,omitempty"`
	GroupsVenueID   *uuid.UUID `gorm:"type:uuid;column:groups_venue_id" json:"venueId,omitempty"`
	GroupsIsActive  bool       `gorm:"not null;default:true;column:groups_is_active" json:"isActive"`

	GroupsCreatedAt time.Time  `gorm:"column:groups_created_at;autoCreateTime" json:"createdAt"`
	GroupsUpdatedAt *time.Time `gorm:"column:groups_updated_at;autoUpdateTime" json:"updatedAt,omitempty"`
}

func (GroupModel) TableName() string {
	return "groups"
}
