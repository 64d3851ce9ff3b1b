package model

import (
	"time"
)

// Goal is one shared goal record. The creating user's identity is
// denormalized onto the record so group feeds never need a join, and so
// the roster survives account changes (snapshot-at-creation semantics).
type Goal struct {
	ID          string     `db:"id" json:"id"`
	Text        string     `db:"text" json:"text"`
	DueDate     string     `db:"due_date" json:"dueDate,omitempty"` // ISO YYYY-MM-DD, empty = none
	Completed   bool       `db:"completed" json:"completed"`
	UserID      string     `db:"user_id" json:"userId"`
	UserName    string     `db:"user_name" json:"userName"`
	UserEmail   string     `db:"user_email" json:"userEmail"`
	GroupCode   string     `db:"group_code" json:"groupCode"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	CompletedAt *time.Time `db:"completed_at" json:"completedAt,omitempty"`
}
