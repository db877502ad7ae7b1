package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/s21platform/thought-service/internal/model"
)

// PutReference upserts the reference for (post_id, role), overwriting any
// prior message for the same role.
func (r *Repository) PutReference(ctx context.Context, ref *model.MessageReference) error {
	query, args, err := sq.Insert("message_references").
		Columns("post_id", "role", "message_id", "channel_id", "user_id").
		Values(ref.PostID, ref.Role, ref.MessageID, ref.ChannelID, ref.UserID).
		Suffix("ON CONFLICT (post_id, role) DO UPDATE SET message_id = EXCLUDED.message_id, channel_id = EXCLUDED.channel_id, user_id = EXCLUDED.user_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to put message reference: %v", err)
	}

	return nil
}

func (r *Repository) GetReference(ctx context.Context, postID int64, role model.ReferenceRole) (*model.MessageReference, error) {
	query, args, err := sq.Select(
		"post_id",
		"role",
		"message_id",
		"channel_id",
		"user_id",
		"created_at",
	).
		From("message_references").
		Where(sq.Eq{"post_id": postID, "role": role}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var ref model.MessageReference
	err = r.Chk(ctx).GetContext(ctx, &ref, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reference (%d, %s): %w", postID, role, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message reference: %v", err)
	}

	return &ref, nil
}

func (r *Repository) ListReferencesFor(ctx context.Context, postID int64) ([]model.MessageReference, error) {
	query, args, err := sq.Select(
		"post_id",
		"role",
		"message_id",
		"channel_id",
		"user_id",
		"created_at",
	).
		From("message_references").
		Where(sq.Eq{"post_id": postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var refs []model.MessageReference
	err = r.Chk(ctx).SelectContext(ctx, &refs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list message references: %v", err)
	}

	return refs, nil
}

// FindReferenceByMessageID answers "have we already imported this Discord
// message" for the reconciliation engine.
func (r *Repository) FindReferenceByMessageID(ctx context.Context, messageID string) (*model.MessageReference, error) {
	query, args, err := sq.Select(
		"post_id",
		"role",
		"message_id",
		"channel_id",
		"user_id",
		"created_at",
	).
		From("message_references").
		Where(sq.Eq{"message_id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var ref model.MessageReference
	err = r.Chk(ctx).GetContext(ctx, &ref, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reference for message %s: %w", messageID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find message reference: %v", err)
	}

	return &ref, nil
}

// DeleteReferencesFor removes every reference row of an entity. Called on
// entity deletion; cascade handles the table when the thought row itself is
// deleted, this covers cleanup of orphaned references.
func (r *Repository) DeleteReferencesFor(ctx context.Context, postID int64) error {
	query, args, err := sq.Delete("message_references").
		Where(sq.Eq{"post_id": postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete message references: %v", err)
	}

	return nil
}
