package models

import "github.com/google/uuid"

// InvitationRole is the access level granted to an invited teammate
type InvitationRole string

const (
	InvitationRoleViewer InvitationRole = "viewer"
	InvitationRoleAdmin  InvitationRole = "admin"
)

// InvitationStatus tracks the lifecycle of an invitation
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
)

// TeamInvitation is one invited collaborator. Domain must equal the inviter's
// email domain at creation time; rows are deletable only by their inviter.
type TeamInvitation struct {
	BaseModel
	Email     string           `json:"email" gorm:"not null;index;size:255" validate:"required,email,max=255"`
	Role      InvitationRole   `json:"role" gorm:"type:varchar(20);not null;default:'viewer'" validate:"required,oneof=viewer admin"`
	InvitedBy uuid.UUID        `json:"invited_by" gorm:"type:uuid;not null;index"`
	Domain    string           `json:"domain" gorm:"not null;size:255"`
	Status    InvitationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for TeamInvitation
func (TeamInvitation) TableName() string {
	return "team_invitations"
}
