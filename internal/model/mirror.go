package model

import "time"

const (
	MirrorActionUpsert = "upsert"
	MirrorActionDelete = "delete"

	MirrorEntityThought = "thought"
	MirrorEntityReply   = "reply"
	MirrorEntityLike    = "like"
)

// MirrorEvent is a best-effort snapshot of a store mutation, published to the
// mirror topic and applied to the backup store by the mirror worker.
type MirrorEvent struct {
	EventID    string             `json:"event_id"`
	Action     string             `json:"action"`
	EntityType string             `json:"entity_type"`
	PostID     int64              `json:"post_id"`
	ChildID    int64              `json:"child_id,omitempty"`
	Thought    *Thought           `json:"thought,omitempty"`
	Reply      *Reply             `json:"reply,omitempty"`
	Like       *Like              `json:"like,omitempty"`
	References []MessageReference `json:"references,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
}
