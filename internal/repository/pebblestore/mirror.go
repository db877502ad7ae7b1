package pebblestore

import (
	"context"
	"fmt"

	"github.com/s21platform/thought-service/internal/model"
)

// Unconditional writes keyed by ids the event already carries. The
// replication worker uses these to land snapshots; the interactive paths
// keep using the id-assigning Create/Add methods.

func (s *Store) PutThought(ctx context.Context, thought *model.Thought) error {
	if thought.ID <= 0 {
		return fmt.Errorf("refusing to store thought without id: %w", model.ErrValidation)
	}

	return s.setJSON(ctx, postKey(thought.ID), thought)
}

func (s *Store) PutReply(ctx context.Context, reply *model.Reply) error {
	if reply.ID <= 0 || reply.PostID <= 0 {
		return fmt.Errorf("refusing to store reply without ids: %w", model.ErrValidation)
	}

	return s.setJSON(ctx, replyKey(reply.PostID, reply.ID), reply)
}

func (s *Store) PutLike(ctx context.Context, like *model.Like) error {
	if like.ID <= 0 || like.PostID <= 0 {
		return fmt.Errorf("refusing to store like without ids: %w", model.ErrValidation)
	}

	return s.setJSON(ctx, likeKey(like.PostID, like.ID), like)
}
