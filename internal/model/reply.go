package model

import "time"

type ReplyList []Reply

// Reply ids are scoped to the parent thought, starting at 1.
type Reply struct {
	ID          int64     `db:"id" json:"id"`
	PostID      int64     `db:"post_id" json:"post_id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Content     string    `db:"content" json:"content"`
	DisplayName *string   `db:"display_name" json:"display_name,omitempty"`
	MessageID   *string   `db:"message_id" json:"message_id,omitempty"`
	ChannelID   *string   `db:"channel_id" json:"channel_id,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
