// Package sync orchestrates the fan-out that follows every entity mutation:
// the store write commits first, then the Discord message side effects, then
// the reference index, then best-effort mirror replication. Only the store
// commit decides the caller-visible outcome; everything after it degrades to
// a logged warning.
package sync

import (
	"context"
	"errors"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/thought-service/internal/config"
	"github.com/s21platform/thought-service/internal/model"
	"github.com/s21platform/thought-service/internal/pkg/embed"
	"github.com/s21platform/thought-service/internal/pkg/tx"
)

const privateThreadPrefix = "非公開投稿 - "

type Dispatcher struct {
	repo    DBRepo
	discord DiscordClient
	mirror  Mirror

	guildID          string
	publicChannelID  string
	privateChannelID string
}

func New(repo DBRepo, discordClient DiscordClient, mirror Mirror, cfg *config.Config) *Dispatcher {
	return &Dispatcher{
		repo:             repo,
		discord:          discordClient,
		mirror:           mirror,
		guildID:          cfg.Discord.GuildID,
		publicChannelID:  cfg.Discord.ResolvePublicChannel(),
		privateChannelID: cfg.Discord.ResolvePrivateChannel(),
	}
}

// CreateThought persists the thought and posts its Discord message. The
// returned thought always carries the assigned id; MessageID/ChannelID on the
// returned reference are empty when the Discord send failed, which is
// non-fatal.
func (d *Dispatcher) CreateThought(ctx context.Context, thought *model.Thought, identity embed.Identity) (*model.Thought, *model.MessageReference, error) {
	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		id, err := d.repo.CreateThought(ctx, thought)
		if err != nil {
			return err
		}
		thought.ID = id
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create thought: %w", err)
	}

	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	channelID, err := d.targetChannel(ctx, thought)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to resolve target channel for post %d: %v", thought.ID, err))
		d.mirror.UpsertThought(ctx, thought, nil)
		return thought, nil, nil
	}

	msg, err := d.discord.SendMessage(ctx, channelID, "", []model.Embed{embed.Encode(thought, identity)})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message for post %d: %v", thought.ID, err))
		d.mirror.UpsertThought(ctx, thought, nil)
		return thought, nil, nil
	}

	ref := &model.MessageReference{
		PostID:    thought.ID,
		Role:      model.RolePrimary,
		MessageID: msg.ID,
		ChannelID: msg.ChannelID,
		UserID:    &thought.UserID,
	}
	if err := d.repo.PutReference(ctx, ref); err != nil {
		logger.Error(fmt.Sprintf("failed to index message reference for post %d: %v", thought.ID, err))
		d.mirror.UpsertThought(ctx, thought, nil)
		return thought, nil, nil
	}

	d.mirror.UpsertThought(ctx, thought, []model.MessageReference{*ref})

	return thought, ref, nil
}

// UpdateThought applies the patch and edits every referenced Discord message
// in place. A referenced message that no longer exists is logged and skipped.
func (d *Dispatcher) UpdateThought(ctx context.Context, id int64, userID string, patch model.ThoughtPatch, identity embed.Identity) (*model.Thought, error) {
	current, err := d.repo.GetThought(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get thought: %w", err)
	}
	if current.UserID != userID {
		return nil, fmt.Errorf("only the author may edit post %d: %w", id, model.ErrPermission)
	}

	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		return d.repo.UpdateThought(ctx, id, patch)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update thought: %w", err)
	}

	thought, err := d.repo.GetThought(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reread thought: %w", err)
	}

	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	refs, err := d.repo.ListReferencesFor(ctx, id)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list references for post %d: %v", id, err))
		refs = nil
	}

	embeds := []model.Embed{embed.Encode(thought, identity)}
	for _, ref := range refs {
		if _, err := d.discord.EditMessage(ctx, ref.ChannelID, ref.MessageID, "", embeds); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Info(fmt.Sprintf("message %s for post %d already gone, skipping edit", ref.MessageID, id))
				continue
			}
			logger.Error(fmt.Sprintf("failed to edit message %s for post %d: %v", ref.MessageID, id, err))
		}
	}

	d.mirror.UpsertThought(ctx, thought, refs)

	return thought, nil
}

// DeleteThought removes the record (cascading replies, likes and references)
// after deleting every Discord message that represents it. "Already gone" and
// "no permission" on the Discord side are tolerated.
func (d *Dispatcher) DeleteThought(ctx context.Context, id int64, userID string) error {
	thought, err := d.repo.GetThought(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get thought: %w", err)
	}
	if thought.UserID != userID {
		return fmt.Errorf("only the author may delete post %d: %w", id, model.ErrPermission)
	}

	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	refs, err := d.repo.ListReferencesFor(ctx, id)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list references for post %d: %v", id, err))
		refs = nil
	}
	for _, ref := range refs {
		d.deleteMessage(ctx, ref.ChannelID, ref.MessageID, id)
	}

	replies, err := d.repo.GetReplies(ctx, id)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list replies for post %d: %v", id, err))
	}
	for _, reply := range replies {
		if reply.MessageID != nil && reply.ChannelID != nil {
			d.deleteMessage(ctx, *reply.ChannelID, *reply.MessageID, id)
		}
	}

	likes, err := d.repo.GetLikes(ctx, id)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list likes for post %d: %v", id, err))
	}
	for _, like := range likes {
		if like.MessageID != nil && like.ChannelID != nil {
			d.deleteMessage(ctx, *like.ChannelID, *like.MessageID, id)
		}
	}

	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		return d.repo.DeleteThought(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete thought: %w", err)
	}

	d.mirror.DeleteThought(ctx, id)

	return nil
}

// AddReply stores the reply and posts a notification message next to the
// parent thought.
func (d *Dispatcher) AddReply(ctx context.Context, reply *model.Reply) (*model.Reply, error) {
	if _, err := d.repo.GetThought(ctx, reply.PostID); err != nil {
		return nil, fmt.Errorf("failed to get parent thought: %w", err)
	}

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		id, err := d.repo.AddReply(ctx, reply)
		if err != nil {
			return err
		}
		reply.ID = id
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add reply: %w", err)
	}

	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	channelID := d.referenceChannel(ctx, reply.PostID)
	if channelID == "" {
		d.mirror.UpsertReply(ctx, reply)
		return reply, nil
	}

	content := fmt.Sprintf("💬 %s さんが返信しました: %s", callerName(reply.DisplayName, reply.UserID), reply.Content)
	msg, err := d.discord.SendMessage(ctx, channelID, content, nil)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send reply message for post %d: %v", reply.PostID, err))
		d.mirror.UpsertReply(ctx, reply)
		return reply, nil
	}

	if err := d.repo.SetReplyMessage(ctx, reply.PostID, reply.ID, msg.ID, msg.ChannelID); err != nil {
		logger.Error(fmt.Sprintf("failed to backfill reply message id for post %d: %v", reply.PostID, err))
	} else {
		reply.MessageID = &msg.ID
		reply.ChannelID = &msg.ChannelID
	}

	d.mirror.UpsertReply(ctx, reply)

	return reply, nil
}

// ToggleLike adds a like, or removes the caller's existing one. The removed
// return reports which way it went.
func (d *Dispatcher) ToggleLike(ctx context.Context, like *model.Like) (result *model.Like, removed bool, err error) {
	if _, err := d.repo.GetThought(ctx, like.PostID); err != nil {
		return nil, false, fmt.Errorf("failed to get parent thought: %w", err)
	}

	existing, err := d.repo.GetLikeByUser(ctx, like.PostID, like.UserID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up existing like: %w", err)
	}

	if existing != nil {
		if err := d.removeLike(ctx, existing); err != nil {
			return nil, false, err
		}
		return existing, true, nil
	}

	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		id, err := d.repo.AddLike(ctx, like)
		if err != nil {
			return err
		}
		like.ID = id
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to add like: %w", err)
	}

	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	channelID := d.referenceChannel(ctx, like.PostID)
	if channelID != "" {
		content := fmt.Sprintf("❤️ %s さんがいいねしました！", callerName(like.DisplayName, like.UserID))
		msg, err := d.discord.SendMessage(ctx, channelID, content, nil)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to send like message for post %d: %v", like.PostID, err))
		} else if err := d.repo.SetLikeMessage(ctx, like.PostID, like.ID, msg.ID, msg.ChannelID); err != nil {
			logger.Error(fmt.Sprintf("failed to backfill like message id for post %d: %v", like.PostID, err))
		} else {
			like.MessageID = &msg.ID
			like.ChannelID = &msg.ChannelID
		}
	}

	d.mirror.UpsertLike(ctx, like)

	return like, false, nil
}

func (d *Dispatcher) removeLike(ctx context.Context, like *model.Like) error {
	if like.MessageID != nil && like.ChannelID != nil {
		d.deleteMessage(ctx, *like.ChannelID, *like.MessageID, like.PostID)
	}

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		return d.repo.DeleteLike(ctx, like.PostID, like.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}

	d.mirror.DeleteLike(ctx, like.PostID, like.ID)

	return nil
}

func (d *Dispatcher) deleteMessage(ctx context.Context, channelID, messageID string, postID int64) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	err := d.discord.DeleteMessage(ctx, channelID, messageID)
	switch {
	case err == nil:
	case errors.Is(err, model.ErrNotFound):
		logger.Info(fmt.Sprintf("message %s for post %d already gone", messageID, postID))
	case errors.Is(err, model.ErrPermission):
		logger.Error(fmt.Sprintf("no permission to delete message %s for post %d", messageID, postID))
	default:
		logger.Error(fmt.Sprintf("failed to delete message %s for post %d: %v", messageID, postID, err))
	}
}

// targetChannel resolves where a new thought's message goes: the public
// channel, or the author's private thread under the private channel.
func (d *Dispatcher) targetChannel(ctx context.Context, thought *model.Thought) (string, error) {
	if !thought.IsPrivate {
		return d.publicChannelID, nil
	}

	return d.findOrCreatePrivateThread(ctx, thought.UserID)
}

func (d *Dispatcher) findOrCreatePrivateThread(ctx context.Context, userID string) (string, error) {
	name := privateThreadPrefix + userID

	threads, err := d.discord.ActiveThreads(ctx, d.guildID)
	if err != nil {
		return "", fmt.Errorf("failed to list active threads: %w", err)
	}
	for _, thread := range threads {
		if thread.ParentID == d.privateChannelID && thread.Name == name {
			return thread.ID, nil
		}
	}

	archived, err := d.discord.ArchivedThreads(ctx, d.privateChannelID)
	if err != nil {
		// Listing archived threads needs extra permissions on some servers;
		// falling through creates a fresh thread instead.
		if !errors.Is(err, model.ErrPermission) {
			return "", fmt.Errorf("failed to list archived threads: %w", err)
		}
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Warn(fmt.Sprintf("cannot list archived threads of %s", d.privateChannelID))
	}
	for _, thread := range archived {
		if thread.Name == name {
			// Sending into an archived thread unarchives it.
			return thread.ID, nil
		}
	}

	thread, err := d.discord.CreateThread(ctx, d.privateChannelID, name)
	if err != nil {
		return "", fmt.Errorf("failed to create private thread: %w", err)
	}

	return thread.ID, nil
}

// referenceChannel returns the channel of the post's primary message, or ""
// when the post has no indexed message.
func (d *Dispatcher) referenceChannel(ctx context.Context, postID int64) string {
	refs, err := d.repo.ListReferencesFor(ctx, postID)
	if err != nil || len(refs) == 0 {
		return ""
	}
	for _, ref := range refs {
		if ref.Role == model.RolePrimary {
			return ref.ChannelID
		}
	}

	return refs[0].ChannelID
}

func callerName(displayName *string, userID string) string {
	if displayName != nil && *displayName != "" {
		return *displayName
	}

	return userID
}
