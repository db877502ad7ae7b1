// Package mirror applies replication events from the mirror topic to the
// pebble backup store.
package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/thought-service/internal/config"
	"github.com/s21platform/thought-service/internal/model"
)

type Handler struct {
	store MirrorStore
}

func New(store MirrorStore) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("MirrorHandler")

	var event model.MirrorEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal mirror event: %v", err))
		return
	}

	if err := h.apply(ctx, &event); err != nil {
		// Deleting something the mirror never saw is fine; the topic is
		// at-least-once and events may arrive in duplicate.
		if errors.Is(err, model.ErrNotFound) {
			return
		}
		logger.Error(fmt.Sprintf("failed to apply mirror event %s: %v", event.EventID, err))
	}
}

func (h *Handler) apply(ctx context.Context, event *model.MirrorEvent) error {
	switch event.EntityType {
	case model.MirrorEntityThought:
		return h.applyThought(ctx, event)
	case model.MirrorEntityReply:
		return h.applyReply(ctx, event)
	case model.MirrorEntityLike:
		return h.applyLike(ctx, event)
	default:
		return fmt.Errorf("unknown entity type %q", event.EntityType)
	}
}

func (h *Handler) applyThought(ctx context.Context, event *model.MirrorEvent) error {
	switch event.Action {
	case model.MirrorActionUpsert:
		if event.Thought == nil {
			return fmt.Errorf("thought upsert without snapshot: %w", model.ErrCorruptRecord)
		}
		if err := h.store.PutThought(ctx, event.Thought); err != nil {
			return err
		}
		for i := range event.References {
			if err := h.store.PutReference(ctx, &event.References[i]); err != nil {
				return err
			}
		}
		return nil
	case model.MirrorActionDelete:
		return h.store.DeleteThought(ctx, event.PostID)
	default:
		return fmt.Errorf("unknown action %q", event.Action)
	}
}

func (h *Handler) applyReply(ctx context.Context, event *model.MirrorEvent) error {
	switch event.Action {
	case model.MirrorActionUpsert:
		if event.Reply == nil {
			return fmt.Errorf("reply upsert without snapshot: %w", model.ErrCorruptRecord)
		}
		return h.store.PutReply(ctx, event.Reply)
	case model.MirrorActionDelete:
		return h.store.DeleteReply(ctx, event.PostID, event.ChildID)
	default:
		return fmt.Errorf("unknown action %q", event.Action)
	}
}

func (h *Handler) applyLike(ctx context.Context, event *model.MirrorEvent) error {
	switch event.Action {
	case model.MirrorActionUpsert:
		if event.Like == nil {
			return fmt.Errorf("like upsert without snapshot: %w", model.ErrCorruptRecord)
		}
		return h.store.PutLike(ctx, event.Like)
	case model.MirrorActionDelete:
		return h.store.DeleteLike(ctx, event.PostID, event.ChildID)
	default:
		return fmt.Errorf("unknown action %q", event.Action)
	}
}
