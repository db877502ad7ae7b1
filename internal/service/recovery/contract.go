package recovery

//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go

import (
	"context"

	"github.com/s21platform/thought-service/internal/model"
)

type DBRepo interface {
	GetThought(ctx context.Context, id int64) (*model.Thought, error)
	RestoreThought(ctx context.Context, thought *model.Thought) error
	PutReference(ctx context.Context, ref *model.MessageReference) error
	ListReferencesFor(ctx context.Context, postID int64) ([]model.MessageReference, error)
	FindReferenceByMessageID(ctx context.Context, messageID string) (*model.MessageReference, error)
}

type DiscordClient interface {
	Channel(ctx context.Context, channelID string) (*model.DiscordChannel, error)
	Messages(ctx context.Context, channelID, before string) ([]model.DiscordMessage, error)
	ActiveThreads(ctx context.Context, guildID string) ([]model.DiscordChannel, error)
	ArchivedThreads(ctx context.Context, channelID string) ([]model.DiscordChannel, error)
	SendMessage(ctx context.Context, channelID string, content string, embeds []model.Embed) (*model.DiscordMessage, error)
}
