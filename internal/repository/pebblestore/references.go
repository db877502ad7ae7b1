package pebblestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/s21platform/thought-service/internal/model"
)

// indexEntry points a message id back at its reference key.
type indexEntry struct {
	PostID int64               `json:"post_id"`
	Role   model.ReferenceRole `json:"role"`
}

func (s *Store) PutReference(ctx context.Context, ref *model.MessageReference) error {
	// Drop the stale message-id index entry when overwriting a role.
	var prior model.MessageReference
	err := s.getJSON(ctx, refKey(ref.PostID, ref.Role), &prior)
	if err == nil && prior.MessageID != ref.MessageID {
		if err := s.del(ctx, idxKey(prior.MessageID)); err != nil {
			return fmt.Errorf("failed to drop stale message index: %v", err)
		}
	}

	if err := s.setJSON(ctx, refKey(ref.PostID, ref.Role), ref); err != nil {
		return fmt.Errorf("failed to put message reference: %v", err)
	}

	entry := indexEntry{PostID: ref.PostID, Role: ref.Role}
	if err := s.setJSON(ctx, idxKey(ref.MessageID), &entry); err != nil {
		return fmt.Errorf("failed to index message reference: %v", err)
	}

	return nil
}

func (s *Store) GetReference(ctx context.Context, postID int64, role model.ReferenceRole) (*model.MessageReference, error) {
	var ref model.MessageReference
	if err := s.getJSON(ctx, refKey(postID, role), &ref); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("reference (%d, %s): %w", postID, role, model.ErrNotFound)
		}
		return nil, err
	}

	return &ref, nil
}

func (s *Store) ListReferencesFor(ctx context.Context, postID int64) ([]model.MessageReference, error) {
	var refs []model.MessageReference

	err := s.scanPrefix(ctx, childPrefix(refPrefix, postID), func(_, value []byte) error {
		var ref model.MessageReference
		if err := json.Unmarshal(value, &ref); err != nil {
			return nil
		}
		refs = append(refs, ref)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return refs, nil
}

func (s *Store) FindReferenceByMessageID(ctx context.Context, messageID string) (*model.MessageReference, error) {
	var entry indexEntry
	if err := s.getJSON(ctx, idxKey(messageID), &entry); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("reference for message %s: %w", messageID, model.ErrNotFound)
		}
		return nil, err
	}

	return s.GetReference(ctx, entry.PostID, entry.Role)
}

func (s *Store) DeleteReferencesFor(ctx context.Context, postID int64) error {
	refs, err := s.ListReferencesFor(ctx, postID)
	if err != nil {
		return err
	}

	for _, ref := range refs {
		if err := s.del(ctx, idxKey(ref.MessageID)); err != nil {
			return fmt.Errorf("failed to delete message index: %v", err)
		}
		if err := s.del(ctx, refKey(ref.PostID, ref.Role)); err != nil {
			return fmt.Errorf("failed to delete message reference: %v", err)
		}
	}

	return nil
}
