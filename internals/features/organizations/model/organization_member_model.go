package model

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationMemberModel links a user to an organization with a role
// (owner, admin, teacher, staff). One row per (org, user).
type OrganizationMemberModel struct {
	OrganizationMembersID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:organization_members_id" json:"id"`
	OrganizationMembersOrgID  uuid.UUID `gorm:"type:uuid;not null;column:organization_members_org_id;uniqueIndex:uq_org_members_org_user,priority:1;index:idx_org_members_org" json:"orgId"`
	OrganizationMembersUserID uuid.UUID `gorm:"type:uuid;not null;column:organization_members_user_id;uniqueIndex:uq_org_members_org_user,priority:2;index:idx_org_members_user" json:"userId"`
	OrganizationMembersRole   string    `gorm:"type:varchar(20);not null;column:organization_members_role" json:"role"`

	OrganizationMembersCreatedAt time.Time  `gorm:"column:organization_members_created_at;autoCreateTime" json:"createdAt"`
	OrganizationMembersUpdatedAt *time.Time `gorm:"column:organization_members_updated_at;autoUpdateTime" json:"updatedAt,omitempty"`
}

func (OrganizationMemberModel) TableName() string {
	return "organization_members"
}
