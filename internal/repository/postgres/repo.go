package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/thought-service/internal/config"
	"github.com/s21platform/thought-service/internal/model"
)

type ctxKey string

const keyTx = ctxKey("postgres_tx")

type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// WithTx runs cb inside a single transaction. A nested call reuses the
// transaction already bound to the context.
func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	if _, ok := ctx.Value(keyTx).(*sqlx.Tx); ok {
		return cb(ctx)
	}

	dbTx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, keyTx, dbTx)); err != nil {
		_ = dbTx.Rollback()
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

// Chk returns the transaction bound to ctx, or the base connection.
func (r *Repository) Chk(ctx context.Context) querier {
	if dbTx, ok := ctx.Value(keyTx).(*sqlx.Tx); ok {
		return dbTx
	}

	return r.connection
}

func (r *Repository) CreateThought(ctx context.Context, thought *model.Thought) (int64, error) {
	query, args, err := sq.Insert("thoughts").
		Columns("user_id", "content", "category", "image_url", "is_anonymous", "is_private", "display_name").
		Values(thought.UserID, thought.Content, thought.Category, thought.ImageURL,
			thought.IsAnonymous, thought.IsPrivate, thought.DisplayName).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var id int64
	err = r.Chk(ctx).GetContext(ctx, &id, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to create thought: %v", err)
	}

	return id, nil
}

// RestoreThought inserts a thought under its original id. Used only by the
// reconciliation engine; regular creation goes through CreateThought.
func (r *Repository) RestoreThought(ctx context.Context, thought *model.Thought) error {
	query, args, err := sq.Insert("thoughts").
		Columns("id", "user_id", "content", "category", "image_url", "is_anonymous", "is_private", "display_name", "created_at").
		Values(thought.ID, thought.UserID, thought.Content, thought.Category, thought.ImageURL,
			thought.IsAnonymous, thought.IsPrivate, thought.DisplayName, thought.CreatedAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to restore thought: %v", err)
	}

	// Keep the id sequence ahead of restored ids so later creates cannot
	// collide with them.
	_, err = r.Chk(ctx).ExecContext(ctx,
		"SELECT setval('thoughts_id_seq', (SELECT COALESCE(MAX(id), 1) FROM thoughts))")
	if err != nil {
		return fmt.Errorf("failed to advance thought id sequence: %v", err)
	}

	return nil
}

func (r *Repository) GetThought(ctx context.Context, id int64) (*model.Thought, error) {
	query, args, err := sq.Select(
		"id",
		"user_id",
		"content",
		"category",
		"image_url",
		"is_anonymous",
		"is_private",
		"display_name",
		"created_at",
		"updated_at",
	).
		From("thoughts").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var thought model.Thought
	err = r.Chk(ctx).GetContext(ctx, &thought, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("thought %d: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get thought: %v", err)
	}

	return &thought, nil
}

func (r *Repository) UpdateThought(ctx context.Context, id int64, patch model.ThoughtPatch) error {
	queryBuilder := sq.Update("thoughts").
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id})

	if patch.Content != nil {
		queryBuilder = queryBuilder.Set("content", *patch.Content)
	}
	if patch.Category != nil {
		queryBuilder = queryBuilder.Set("category", *patch.Category)
	}
	if patch.ImageURL != nil {
		queryBuilder = queryBuilder.Set("image_url", *patch.ImageURL)
	}
	if patch.DisplayName != nil {
		queryBuilder = queryBuilder.Set("display_name", *patch.DisplayName)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update thought: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %v", err)
	}
	if affected == 0 {
		return fmt.Errorf("thought %d: %w", id, model.ErrNotFound)
	}

	return nil
}

// DeleteThought removes the thought row. Replies, likes and message
// references follow via ON DELETE CASCADE.
func (r *Repository) DeleteThought(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("thoughts").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete thought: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %v", err)
	}
	if affected == 0 {
		return fmt.Errorf("thought %d: %w", id, model.ErrNotFound)
	}

	return nil
}

func (r *Repository) ListThoughts(ctx context.Context, filter model.ThoughtFilter) (model.ThoughtList, error) {
	queryBuilder := sq.Select(
		"id",
		"user_id",
		"content",
		"category",
		"image_url",
		"is_anonymous",
		"is_private",
		"display_name",
		"created_at",
		"updated_at",
	).
		From("thoughts").
		OrderBy("created_at DESC")

	if filter.UserID != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Category != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Keyword != "" {
		queryBuilder = queryBuilder.Where(sq.ILike{"content": "%" + filter.Keyword + "%"})
	}
	if filter.Since != nil {
		queryBuilder = queryBuilder.Where(sq.GtOrEq{"created_at": *filter.Since})
	}
	if filter.Until != nil {
		queryBuilder = queryBuilder.Where(sq.LtOrEq{"created_at": *filter.Until})
	}

	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(filter.Limit))
	} else {
		queryBuilder = queryBuilder.Limit(50)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var thoughts model.ThoughtList
	err = r.Chk(ctx).SelectContext(ctx, &thoughts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list thoughts: %v", err)
	}

	return thoughts, nil
}

func (r *Repository) AssignUser(ctx context.Context, id int64, userID string) error {
	query, args, err := sq.Update("thoughts").
		Set("user_id", userID).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to assign user: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %v", err)
	}
	if affected == 0 {
		return fmt.Errorf("thought %d: %w", id, model.ErrNotFound)
	}

	return nil
}

func (r *Repository) ListThoughtsWithoutUser(ctx context.Context, limit int32) (model.ThoughtList, error) {
	queryBuilder := sq.Select(
		"id",
		"user_id",
		"content",
		"category",
		"image_url",
		"is_anonymous",
		"is_private",
		"display_name",
		"created_at",
		"updated_at",
	).
		From("thoughts").
		Where("user_id IS NULL OR user_id = ''").
		OrderBy("created_at DESC")

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	} else {
		queryBuilder = queryBuilder.Limit(20)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var thoughts model.ThoughtList
	err = r.Chk(ctx).SelectContext(ctx, &thoughts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list unattributed thoughts: %v", err)
	}

	return thoughts, nil
}
