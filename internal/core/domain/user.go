package domain

import "github.com/google/uuid"

// Role names recognized by the commission fan-out.
const (
	RoleAgent    = "AGENT"
	RoleSubAgent = "SUB_AGENT"
)

// User is the acting agent profile. PINHash is a bcrypt hash of the
// transfer credential and is never exposed.
type User struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	RoleID   uuid.UUID `json:"role_id"`
	RoleName string    `json:"role_name"`
	PINHash  string    `json:"-"`
}

// Referral maps an invited user to the referring parent agent.
// Read-only from this service's perspective.
type Referral struct {
	ID              uuid.UUID `json:"id"`
	InviteeUserID   uuid.UUID `json:"invitee_user_id"`
	ReferenceUserID uuid.UUID `json:"reference_user_id"`
}
