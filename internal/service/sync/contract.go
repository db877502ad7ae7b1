package sync

//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go

import (
	"context"

	"github.com/s21platform/thought-service/internal/model"
)

type DBRepo interface {
	CreateThought(ctx context.Context, thought *model.Thought) (int64, error)
	GetThought(ctx context.Context, id int64) (*model.Thought, error)
	UpdateThought(ctx context.Context, id int64, patch model.ThoughtPatch) error
	DeleteThought(ctx context.Context, id int64) error

	AddReply(ctx context.Context, reply *model.Reply) (int64, error)
	GetReplies(ctx context.Context, postID int64) (model.ReplyList, error)
	SetReplyMessage(ctx context.Context, postID, replyID int64, messageID, channelID string) error

	AddLike(ctx context.Context, like *model.Like) (int64, error)
	GetLikes(ctx context.Context, postID int64) (model.LikeList, error)
	GetLikeByUser(ctx context.Context, postID int64, userID string) (*model.Like, error)
	SetLikeMessage(ctx context.Context, postID, likeID int64, messageID, channelID string) error
	DeleteLike(ctx context.Context, postID, likeID int64) error

	PutReference(ctx context.Context, ref *model.MessageReference) error
	ListReferencesFor(ctx context.Context, postID int64) ([]model.MessageReference, error)
}

type DiscordClient interface {
	SendMessage(ctx context.Context, channelID string, content string, embeds []model.Embed) (*model.DiscordMessage, error)
	EditMessage(ctx context.Context, channelID, messageID string, content string, embeds []model.Embed) (*model.DiscordMessage, error)
	DeleteMessage(ctx context.Context, channelID, messageID string) error
	CreateThread(ctx context.Context, channelID, name string) (*model.DiscordChannel, error)
	ActiveThreads(ctx context.Context, guildID string) ([]model.DiscordChannel, error)
	ArchivedThreads(ctx context.Context, channelID string) ([]model.DiscordChannel, error)
}

type Mirror interface {
	UpsertThought(ctx context.Context, thought *model.Thought, refs []model.MessageReference)
	DeleteThought(ctx context.Context, postID int64)
	UpsertReply(ctx context.Context, reply *model.Reply)
	UpsertLike(ctx context.Context, like *model.Like)
	DeleteLike(ctx context.Context, postID, likeID int64)
}
