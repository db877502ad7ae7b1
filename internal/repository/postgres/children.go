package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/s21platform/thought-service/internal/model"
)

// AddReply inserts a reply under the next id scoped to its parent thought.
// Call inside WithTx so the id scan and the insert are atomic.
func (r *Repository) AddReply(ctx context.Context, reply *model.Reply) (int64, error) {
	nextID, err := r.nextChildID(ctx, "replies", reply.PostID)
	if err != nil {
		return 0, err
	}

	query, args, err := sq.Insert("replies").
		Columns("post_id", "id", "user_id", "content", "display_name").
		Values(reply.PostID, nextID, reply.UserID, reply.Content, reply.DisplayName).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to add reply: %v", err)
	}

	return nextID, nil
}

func (r *Repository) GetReplies(ctx context.Context, postID int64) (model.ReplyList, error) {
	query, args, err := sq.Select(
		"post_id",
		"id",
		"user_id",
		"content",
		"display_name",
		"message_id",
		"channel_id",
		"created_at",
	).
		From("replies").
		Where(sq.Eq{"post_id": postID}).
		OrderBy("id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var replies model.ReplyList
	err = r.Chk(ctx).SelectContext(ctx, &replies, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get replies: %v", err)
	}

	return replies, nil
}

// SetReplyMessage backfills the Discord message that displays the reply.
func (r *Repository) SetReplyMessage(ctx context.Context, postID, replyID int64, messageID, channelID string) error {
	return r.setChildMessage(ctx, "replies", postID, replyID, messageID, channelID)
}

func (r *Repository) DeleteReply(ctx context.Context, postID, replyID int64) error {
	query, args, err := sq.Delete("replies").
		Where(sq.Eq{"post_id": postID, "id": replyID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %v", err)
	}
	if affected == 0 {
		return fmt.Errorf("reply %d of thought %d: %w", replyID, postID, model.ErrNotFound)
	}

	return nil
}

func (r *Repository) AddLike(ctx context.Context, like *model.Like) (int64, error) {
	nextID, err := r.nextChildID(ctx, "likes", like.PostID)
	if err != nil {
		return 0, err
	}

	query, args, err := sq.Insert("likes").
		Columns("post_id", "id", "user_id", "display_name").
		Values(like.PostID, nextID, like.UserID, like.DisplayName).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to add like: %v", err)
	}

	return nextID, nil
}

func (r *Repository) GetLikes(ctx context.Context, postID int64) (model.LikeList, error) {
	query, args, err := sq.Select(
		"post_id",
		"id",
		"user_id",
		"display_name",
		"message_id",
		"channel_id",
		"created_at",
	).
		From("likes").
		Where(sq.Eq{"post_id": postID}).
		OrderBy("id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var likes model.LikeList
	err = r.Chk(ctx).SelectContext(ctx, &likes, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes: %v", err)
	}

	return likes, nil
}

func (r *Repository) SetLikeMessage(ctx context.Context, postID, likeID int64, messageID, channelID string) error {
	return r.setChildMessage(ctx, "likes", postID, likeID, messageID, channelID)
}

// GetLikeByUser finds the caller's like on a thought; likes are removable by
// their author only.
func (r *Repository) GetLikeByUser(ctx context.Context, postID int64, userID string) (*model.Like, error) {
	query, args, err := sq.Select(
		"post_id",
		"id",
		"user_id",
		"display_name",
		"message_id",
		"channel_id",
		"created_at",
	).
		From("likes").
		Where(sq.Eq{"post_id": postID, "user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var like model.Like
	err = r.Chk(ctx).GetContext(ctx, &like, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("like by %s on thought %d: %w", userID, postID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get like: %v", err)
	}

	return &like, nil
}

func (r *Repository) DeleteLike(ctx context.Context, postID, likeID int64) error {
	query, args, err := sq.Delete("likes").
		Where(sq.Eq{"post_id": postID, "id": likeID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete like: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %v", err)
	}
	if affected == 0 {
		return fmt.Errorf("like %d of thought %d: %w", likeID, postID, model.ErrNotFound)
	}

	return nil
}

func (r *Repository) nextChildID(ctx context.Context, table string, postID int64) (int64, error) {
	query, args, err := sq.Select("COALESCE(MAX(id), 0) + 1").
		From(table).
		Where(sq.Eq{"post_id": postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var nextID int64
	err = r.Chk(ctx).GetContext(ctx, &nextID, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to get next %s id: %v", table, err)
	}

	return nextID, nil
}

func (r *Repository) setChildMessage(ctx context.Context, table string, postID, childID int64, messageID, channelID string) error {
	query, args, err := sq.Update(table).
		Set("message_id", messageID).
		Set("channel_id", channelID).
		Where(sq.Eq{"post_id": postID, "id": childID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set %s message: %v", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %v", err)
	}
	if affected == 0 {
		return fmt.Errorf("%s %d of thought %d: %w", table, childID, postID, model.ErrNotFound)
	}

	return nil
}
