package mirror

//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go

import (
	"context"

	"github.com/s21platform/thought-service/internal/model"
)

type MirrorStore interface {
	PutThought(ctx context.Context, thought *model.Thought) error
	DeleteThought(ctx context.Context, id int64) error
	PutReply(ctx context.Context, reply *model.Reply) error
	DeleteReply(ctx context.Context, postID, replyID int64) error
	PutLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, postID, likeID int64) error
	PutReference(ctx context.Context, ref *model.MessageReference) error
}
