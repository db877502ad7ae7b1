package model

import "time"

// ReferenceRole distinguishes the Discord messages that represent one entity.
type ReferenceRole string

const (
	RolePrimary    ReferenceRole = "primary"
	RoleThreadCopy ReferenceRole = "thread-copy"
)

// MessageReference links a thought to the Discord message that displays it.
// It is a derived index: it can be rebuilt from channel history plus the
// record store and is never a source of truth for entity content.
type MessageReference struct {
	PostID    int64         `db:"post_id" json:"post_id"`
	Role      ReferenceRole `db:"role" json:"role"`
	MessageID string        `db:"message_id" json:"message_id"`
	ChannelID string        `db:"channel_id" json:"channel_id"`
	UserID    *string       `db:"user_id" json:"user_id,omitempty"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}
