package model

import (
	"time"
)

type ThoughtList []Thought

type Thought struct {
	ID          int64      `db:"id" json:"id"`
	UserID      string     `db:"user_id" json:"user_id"`
	Content     string     `db:"content" json:"content"`
	Category    *string    `db:"category" json:"category,omitempty"`
	ImageURL    *string    `db:"image_url" json:"image_url,omitempty"`
	IsAnonymous bool       `db:"is_anonymous" json:"is_anonymous"`
	IsPrivate   bool       `db:"is_private" json:"is_private"`
	DisplayName *string    `db:"display_name" json:"display_name,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// ThoughtPatch is a partial update; nil fields are left untouched.
type ThoughtPatch struct {
	Content     *string
	Category    *string
	ImageURL    *string
	DisplayName *string
}

type ThoughtFilter struct {
	UserID   string
	Category string
	Keyword  string
	Since    *time.Time
	Until    *time.Time
	Limit    int32
}
