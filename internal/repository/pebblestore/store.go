// Package pebblestore is the file-backed record store. It keeps one JSON
// value per entity under typed key prefixes and exposes the same contract as
// the postgres repository, so backend choice stays a configuration detail.
package pebblestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"

	"github.com/s21platform/thought-service/internal/model"
)

const (
	postPrefix  = "post:"
	replyPrefix = "reply:"
	likePrefix  = "like:"
	refPrefix   = "msgref:"
	idxPrefix   = "msgidx:"
)

type ctxKey string

const keyBatch = ctxKey("pebble_batch")

type Store struct {
	db *pebble.DB

	// mu serializes writers; max-id scans and the following insert must not
	// interleave.
	mu sync.Mutex
}

func New(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble db at %s: %v", path, err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() {
	_ = s.db.Close()
}

// WithTx runs cb against a single indexed batch; the batch is committed only
// when cb succeeds, otherwise every staged write is discarded. A nested call
// reuses the batch already bound to the context.
func (s *Store) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	if _, ok := ctx.Value(keyBatch).(*pebble.Batch); ok {
		return cb(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batch := s.db.NewIndexedBatch()
	defer func() { _ = batch.Close() }()

	if err := cb(context.WithValue(ctx, keyBatch, batch)); err != nil {
		return err
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("failed to commit batch: %v", err)
	}

	return nil
}

type reader interface {
	Get(key []byte) ([]byte, io.Closer, error)
	NewIter(o *pebble.IterOptions) (*pebble.Iterator, error)
}

func (s *Store) chk(ctx context.Context) reader {
	if batch, ok := ctx.Value(keyBatch).(*pebble.Batch); ok {
		return batch
	}

	return s.db
}

// set stages a write on the context batch, or applies it directly.
func (s *Store) set(ctx context.Context, key, value []byte) error {
	if batch, ok := ctx.Value(keyBatch).(*pebble.Batch); ok {
		return batch.Set(key, value, nil)
	}

	return s.db.Set(key, value, pebble.Sync)
}

func (s *Store) del(ctx context.Context, key []byte) error {
	if batch, ok := ctx.Value(keyBatch).(*pebble.Batch); ok {
		return batch.Delete(key, nil)
	}

	return s.db.Delete(key, pebble.Sync)
}

func (s *Store) getJSON(ctx context.Context, key []byte, dest interface{}) error {
	value, closer, err := s.chk(ctx).Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return model.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %v", key, err)
	}
	defer func() { _ = closer.Close() }()

	if err := json.Unmarshal(value, dest); err != nil {
		return fmt.Errorf("%w: %s: %v", model.ErrCorruptRecord, key, err)
	}

	return nil
}

func (s *Store) setJSON(ctx context.Context, key []byte, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %v", key, err)
	}

	return s.set(ctx, key, raw)
}

func postKey(id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", postPrefix, id))
}

func replyKey(postID, id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d:%020d", replyPrefix, postID, id))
}

func likeKey(postID, id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d:%020d", likePrefix, postID, id))
}

func refKey(postID int64, role model.ReferenceRole) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", refPrefix, postID, role))
}

func idxKey(messageID string) []byte {
	return []byte(idxPrefix + messageID)
}

func childPrefix(prefix string, postID int64) []byte {
	return []byte(fmt.Sprintf("%s%020d:", prefix, postID))
}

func prefixUpperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

func (s *Store) CreateThought(ctx context.Context, thought *model.Thought) (int64, error) {
	// WithTx already holds the writer lock for batched calls.
	if _, ok := ctx.Value(keyBatch).(*pebble.Batch); !ok {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	maxID, err := s.maxPostID(ctx)
	if err != nil {
		return 0, err
	}

	stored := *thought
	stored.ID = maxID + 1
	stored.CreatedAt = time.Now()

	if err := s.setJSON(ctx, postKey(stored.ID), &stored); err != nil {
		return 0, fmt.Errorf("failed to create thought: %v", err)
	}

	return stored.ID, nil
}

// RestoreThought inserts a thought under its original id; an existing record
// always wins, so a restore of a known id is a no-op.
func (s *Store) RestoreThought(ctx context.Context, thought *model.Thought) error {
	var existing model.Thought
	err := s.getJSON(ctx, postKey(thought.ID), &existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) && !errors.Is(err, model.ErrCorruptRecord) {
		return err
	}

	if err := s.setJSON(ctx, postKey(thought.ID), thought); err != nil {
		return fmt.Errorf("failed to restore thought: %v", err)
	}

	return nil
}

func (s *Store) GetThought(ctx context.Context, id int64) (*model.Thought, error) {
	var thought model.Thought
	if err := s.getJSON(ctx, postKey(id), &thought); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("thought %d: %w", id, model.ErrNotFound)
		}
		return nil, err
	}

	return &thought, nil
}

func (s *Store) UpdateThought(ctx context.Context, id int64, patch model.ThoughtPatch) error {
	thought, err := s.GetThought(ctx, id)
	if err != nil {
		return err
	}

	if patch.Content != nil {
		thought.Content = *patch.Content
	}
	if patch.Category != nil {
		thought.Category = patch.Category
	}
	if patch.ImageURL != nil {
		thought.ImageURL = patch.ImageURL
	}
	if patch.DisplayName != nil {
		thought.DisplayName = patch.DisplayName
	}

	now := time.Now()
	thought.UpdatedAt = &now

	if err := s.setJSON(ctx, postKey(id), thought); err != nil {
		return fmt.Errorf("failed to update thought: %v", err)
	}

	return nil
}

// DeleteThought removes the thought and cascades to its replies, likes and
// message references.
func (s *Store) DeleteThought(ctx context.Context, id int64) error {
	if _, err := s.GetThought(ctx, id); err != nil {
		return err
	}

	if err := s.del(ctx, postKey(id)); err != nil {
		return fmt.Errorf("failed to delete thought: %v", err)
	}

	for _, prefix := range []string{replyPrefix, likePrefix} {
		if err := s.deletePrefix(ctx, childPrefix(prefix, id)); err != nil {
			return err
		}
	}

	return s.DeleteReferencesFor(ctx, id)
}

func (s *Store) ListThoughts(ctx context.Context, filter model.ThoughtFilter) (model.ThoughtList, error) {
	var thoughts model.ThoughtList

	err := s.scanPrefix(ctx, []byte(postPrefix), func(_, value []byte) error {
		var thought model.Thought
		if err := json.Unmarshal(value, &thought); err != nil {
			// Malformed record: skip, keep scanning.
			return nil
		}

		if !matchesFilter(&thought, filter) {
			return nil
		}

		thoughts = append(thoughts, thought)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(thoughts, func(i, j int) bool {
		return thoughts[i].CreatedAt.After(thoughts[j].CreatedAt)
	})

	limit := int(filter.Limit)
	if limit <= 0 {
		limit = 50
	}
	if len(thoughts) > limit {
		thoughts = thoughts[:limit]
	}

	return thoughts, nil
}

func (s *Store) AssignUser(ctx context.Context, id int64, userID string) error {
	thought, err := s.GetThought(ctx, id)
	if err != nil {
		return err
	}

	thought.UserID = userID

	if err := s.setJSON(ctx, postKey(id), thought); err != nil {
		return fmt.Errorf("failed to assign user: %v", err)
	}

	return nil
}

func (s *Store) ListThoughtsWithoutUser(ctx context.Context, limit int32) (model.ThoughtList, error) {
	// Unattributed posts can be arbitrarily old, so the whole prefix is
	// scanned and the limit is applied only after filtering.
	var unattributed model.ThoughtList
	err := s.scanPrefix(ctx, []byte(postPrefix), func(_, value []byte) error {
		var thought model.Thought
		if err := json.Unmarshal(value, &thought); err != nil {
			return nil
		}

		if thought.UserID == "" {
			unattributed = append(unattributed, thought)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(unattributed, func(i, j int) bool {
		return unattributed[i].CreatedAt.After(unattributed[j].CreatedAt)
	})

	if limit <= 0 {
		limit = 20
	}
	if int32(len(unattributed)) > limit {
		unattributed = unattributed[:limit]
	}

	return unattributed, nil
}

func (s *Store) maxPostID(ctx context.Context) (int64, error) {
	prefix := []byte(postPrefix)
	iter, err := s.chk(ctx).NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to open iterator: %v", err)
	}
	defer func() { _ = iter.Close() }()

	if !iter.Last() {
		return 0, nil
	}

	raw := bytes.TrimPrefix(iter.Key(), prefix)
	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: post key %s: %v", model.ErrCorruptRecord, iter.Key(), err)
	}

	return id, nil
}

func (s *Store) scanPrefix(ctx context.Context, prefix []byte, fn func(key, value []byte) error) error {
	iter, err := s.chk(ctx).NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return fmt.Errorf("failed to open iterator: %v", err)
	}
	defer func() { _ = iter.Close() }()

	for iter.First(); iter.Valid(); iter.Next() {
		value, err := iter.ValueAndErr()
		if err != nil {
			return fmt.Errorf("failed to read value at %s: %v", iter.Key(), err)
		}
		if err := fn(iter.Key(), value); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) deletePrefix(ctx context.Context, prefix []byte) error {
	var keys [][]byte
	err := s.scanPrefix(ctx, prefix, func(key, _ []byte) error {
		k := make([]byte, len(key))
		copy(k, key)
		keys = append(keys, k)
		return nil
	})
	if err != nil {
		return err
	}

	for _, key := range keys {
		if err := s.del(ctx, key); err != nil {
			return fmt.Errorf("failed to delete %s: %v", key, err)
		}
	}

	return nil
}

func matchesFilter(thought *model.Thought, filter model.ThoughtFilter) bool {
	if filter.UserID != "" && thought.UserID != filter.UserID {
		return false
	}
	if filter.Category != "" && (thought.Category == nil || *thought.Category != filter.Category) {
		return false
	}
	if filter.Keyword != "" && !strings.Contains(strings.ToLower(thought.Content), strings.ToLower(filter.Keyword)) {
		return false
	}
	if filter.Since != nil && thought.CreatedAt.Before(*filter.Since) {
		return false
	}
	if filter.Until != nil && thought.CreatedAt.After(*filter.Until) {
		return false
	}
	return true
}
