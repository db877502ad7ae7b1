package pebblestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cockroachdb/pebble"

	"github.com/s21platform/thought-service/internal/model"
)

func (s *Store) AddReply(ctx context.Context, reply *model.Reply) (int64, error) {
	if _, ok := ctx.Value(keyBatch).(*pebble.Batch); !ok {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	nextID, err := s.nextChildID(ctx, replyPrefix, reply.PostID)
	if err != nil {
		return 0, err
	}

	stored := *reply
	stored.ID = nextID
	stored.CreatedAt = time.Now()

	if err := s.setJSON(ctx, replyKey(stored.PostID, stored.ID), &stored); err != nil {
		return 0, fmt.Errorf("failed to add reply: %v", err)
	}

	return nextID, nil
}

func (s *Store) GetReplies(ctx context.Context, postID int64) (model.ReplyList, error) {
	var replies model.ReplyList

	err := s.scanPrefix(ctx, childPrefix(replyPrefix, postID), func(_, value []byte) error {
		var reply model.Reply
		if err := json.Unmarshal(value, &reply); err != nil {
			return nil
		}
		replies = append(replies, reply)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return replies, nil
}

func (s *Store) SetReplyMessage(ctx context.Context, postID, replyID int64, messageID, channelID string) error {
	var reply model.Reply
	if err := s.getJSON(ctx, replyKey(postID, replyID), &reply); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("reply %d of thought %d: %w", replyID, postID, model.ErrNotFound)
		}
		return err
	}

	reply.MessageID = &messageID
	reply.ChannelID = &channelID

	return s.setJSON(ctx, replyKey(postID, replyID), &reply)
}

func (s *Store) DeleteReply(ctx context.Context, postID, replyID int64) error {
	var reply model.Reply
	if err := s.getJSON(ctx, replyKey(postID, replyID), &reply); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("reply %d of thought %d: %w", replyID, postID, model.ErrNotFound)
		}
		return err
	}

	return s.del(ctx, replyKey(postID, replyID))
}

func (s *Store) AddLike(ctx context.Context, like *model.Like) (int64, error) {
	if _, ok := ctx.Value(keyBatch).(*pebble.Batch); !ok {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	nextID, err := s.nextChildID(ctx, likePrefix, like.PostID)
	if err != nil {
		return 0, err
	}

	stored := *like
	stored.ID = nextID
	stored.CreatedAt = time.Now()

	if err := s.setJSON(ctx, likeKey(stored.PostID, stored.ID), &stored); err != nil {
		return 0, fmt.Errorf("failed to add like: %v", err)
	}

	return nextID, nil
}

func (s *Store) GetLikes(ctx context.Context, postID int64) (model.LikeList, error) {
	var likes model.LikeList

	err := s.scanPrefix(ctx, childPrefix(likePrefix, postID), func(_, value []byte) error {
		var like model.Like
		if err := json.Unmarshal(value, &like); err != nil {
			return nil
		}
		likes = append(likes, like)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return likes, nil
}

func (s *Store) SetLikeMessage(ctx context.Context, postID, likeID int64, messageID, channelID string) error {
	var like model.Like
	if err := s.getJSON(ctx, likeKey(postID, likeID), &like); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("like %d of thought %d: %w", likeID, postID, model.ErrNotFound)
		}
		return err
	}

	like.MessageID = &messageID
	like.ChannelID = &channelID

	return s.setJSON(ctx, likeKey(postID, likeID), &like)
}

func (s *Store) GetLikeByUser(ctx context.Context, postID int64, userID string) (*model.Like, error) {
	likes, err := s.GetLikes(ctx, postID)
	if err != nil {
		return nil, err
	}

	for i := range likes {
		if likes[i].UserID == userID {
			return &likes[i], nil
		}
	}

	return nil, fmt.Errorf("like by %s on thought %d: %w", userID, postID, model.ErrNotFound)
}

func (s *Store) DeleteLike(ctx context.Context, postID, likeID int64) error {
	var like model.Like
	if err := s.getJSON(ctx, likeKey(postID, likeID), &like); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("like %d of thought %d: %w", likeID, postID, model.ErrNotFound)
		}
		return err
	}

	return s.del(ctx, likeKey(postID, likeID))
}

func (s *Store) nextChildID(ctx context.Context, prefix string, postID int64) (int64, error) {
	maxID := int64(0)

	err := s.scanPrefix(ctx, childPrefix(prefix, postID), func(key, _ []byte) error {
		raw := key[len(key)-20:]
		id, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return nil
		}
		if id > maxID {
			maxID = id
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return maxID + 1, nil
}
