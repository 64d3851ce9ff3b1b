package model

import (
	"time"
)

// Preference is the per-user group membership cache: which group the user
// last joined and the display name they chose. One row per user; cleared
// on sign-out so a fresh session goes back through onboarding.
type Preference struct {
	UserID    string    `db:"user_id" json:"-"`
	GroupCode string    `db:"group_code" json:"groupCode"`
	UserName  string    `db:"user_name" json:"userName"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}
