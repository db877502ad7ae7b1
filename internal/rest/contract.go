//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/s21platform/thought-service/internal/api"
	"github.com/s21platform/thought-service/internal/model"
	"github.com/s21platform/thought-service/internal/pkg/embed"
	"github.com/s21platform/thought-service/internal/service/recovery"
)

type DBRepo interface {
	GetThought(ctx context.Context, id int64) (*model.Thought, error)
	ListThoughts(ctx context.Context, filter model.ThoughtFilter) (model.ThoughtList, error)
	GetReplies(ctx context.Context, postID int64) (model.ReplyList, error)
	GetLikes(ctx context.Context, postID int64) (model.LikeList, error)
	AssignUser(ctx context.Context, id int64, userID string) error
	ListThoughtsWithoutUser(ctx context.Context, limit int32) (model.ThoughtList, error)
}

type Dispatcher interface {
	CreateThought(ctx context.Context, thought *model.Thought, identity embed.Identity) (*model.Thought, *model.MessageReference, error)
	UpdateThought(ctx context.Context, id int64, userID string, patch model.ThoughtPatch, identity embed.Identity) (*model.Thought, error)
	DeleteThought(ctx context.Context, id int64, userID string) error
	AddReply(ctx context.Context, reply *model.Reply) (*model.Reply, error)
	ToggleLike(ctx context.Context, like *model.Like) (*model.Like, bool, error)
}

type RecoveryEngine interface {
	Recover(ctx context.Context, channelID string) (*recovery.Result, error)
}

type Validator interface {
	ValidateCreateThought(req *api.CreateThoughtRequest) error
	ValidateUpdateThought(req *api.UpdateThoughtRequest) error
	ValidateAddReply(req *api.AddReplyRequest) error
}
