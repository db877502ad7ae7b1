package mirror

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/thought-service/internal/config"
	"github.com/s21platform/thought-service/internal/model"
)

const (
	queueSize    = 256
	maxAttempts  = 3
	retryBackoff = 2 * time.Second
)

// Service publishes mirror events to the backup pipeline. Publication is
// best-effort: a failed event is logged and dropped after the retries run
// out, it never fails the operation that produced it.
type Service struct {
	producer Producer

	queue chan *model.MirrorEvent
	done  chan struct{}

	// sleep is swapped out in tests to avoid real backoff waits.
	sleep func(ctx context.Context, d time.Duration)
}

func New(producer Producer) *Service {
	return &Service{
		producer: producer,
		queue:    make(chan *model.MirrorEvent, queueSize),
		done:     make(chan struct{}),
		sleep:    sleepCtx,
	}
}

// Run drains the queue until ctx is cancelled, then flushes what is left.
func (s *Service) Run(ctx context.Context) {
	defer close(s.done)

	for {
		select {
		case event := <-s.queue:
			s.deliver(ctx, event)
		case <-ctx.Done():
			flushCtx := context.WithoutCancel(ctx)
			for {
				select {
				case event := <-s.queue:
					s.deliver(flushCtx, event)
				default:
					return
				}
			}
		}
	}
}

// Wait blocks until Run has returned.
func (s *Service) Wait() {
	<-s.done
}

func (s *Service) UpsertThought(ctx context.Context, thought *model.Thought, refs []model.MessageReference) {
	s.enqueue(ctx, &model.MirrorEvent{
		Action:     model.MirrorActionUpsert,
		EntityType: model.MirrorEntityThought,
		PostID:     thought.ID,
		Thought:    thought,
		References: refs,
	})
}

func (s *Service) DeleteThought(ctx context.Context, postID int64) {
	s.enqueue(ctx, &model.MirrorEvent{
		Action:     model.MirrorActionDelete,
		EntityType: model.MirrorEntityThought,
		PostID:     postID,
	})
}

func (s *Service) UpsertReply(ctx context.Context, reply *model.Reply) {
	s.enqueue(ctx, &model.MirrorEvent{
		Action:     model.MirrorActionUpsert,
		EntityType: model.MirrorEntityReply,
		PostID:     reply.PostID,
		ChildID:    reply.ID,
		Reply:      reply,
	})
}

func (s *Service) UpsertLike(ctx context.Context, like *model.Like) {
	s.enqueue(ctx, &model.MirrorEvent{
		Action:     model.MirrorActionUpsert,
		EntityType: model.MirrorEntityLike,
		PostID:     like.PostID,
		ChildID:    like.ID,
		Like:       like,
	})
}

func (s *Service) DeleteLike(ctx context.Context, postID, likeID int64) {
	s.enqueue(ctx, &model.MirrorEvent{
		Action:     model.MirrorActionDelete,
		EntityType: model.MirrorEntityLike,
		PostID:     postID,
		ChildID:    likeID,
	})
}

func (s *Service) enqueue(ctx context.Context, event *model.MirrorEvent) {
	event.EventID = uuid.New().String()
	event.OccurredAt = time.Now().UTC()

	select {
	case s.queue <- event:
	default:
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Error(fmt.Sprintf("mirror queue full, dropping event %s for post %d", event.EventID, event.PostID))
	}
}

func (s *Service) deliver(ctx context.Context, event *model.MirrorEvent) {
	key := strconv.FormatInt(event.PostID, 10)

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = s.producer.ProduceMessage(ctx, event, key)
		if err == nil {
			return
		}
		if attempt < maxAttempts {
			s.sleep(ctx, retryBackoff)
		}
	}

	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.Error(fmt.Sprintf("failed to publish mirror event %s after %d attempts: %v", event.EventID, maxAttempts, err))
}

func sleepCtx(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
