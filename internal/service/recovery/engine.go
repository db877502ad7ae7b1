// Package recovery rebuilds record-store rows from Discord channel history.
// The scan is non-destructive: existing records always win over parsed ones,
// and a message that cannot be attributed to an author is skipped rather than
// guessed at.
package recovery

import (
	"context"
	"errors"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/thought-service/internal/config"
	"github.com/s21platform/thought-service/internal/model"
	"github.com/s21platform/thought-service/internal/pkg/embed"
)

// progressInterval is how many restored records pass between progress
// notifications to the admin channel.
const progressInterval = 10

type Engine struct {
	repo    DBRepo
	discord DiscordClient

	guildID          string
	botUserID        string
	publicChannelID  string
	privateChannelID string
	adminChannelID   string
}

func New(repo DBRepo, discordClient DiscordClient, cfg *config.Config) *Engine {
	return &Engine{
		repo:             repo,
		discord:          discordClient,
		guildID:          cfg.Discord.GuildID,
		botUserID:        cfg.Discord.BotUserID,
		publicChannelID:  cfg.Discord.ResolvePublicChannel(),
		privateChannelID: cfg.Discord.ResolvePrivateChannel(),
		adminChannelID:   cfg.Discord.AdminChannelID,
	}
}

// Result reports what one recovery run did.
type Result struct {
	Recovered int
	Skipped   int
}

// target is one channel or thread to scan.
type target struct {
	channelID string
	// parentID is set for threads and names the base channel.
	parentID string
}

// Recover scans channel history newest-first and restores missing records.
// channelID narrows the scan to one channel; empty means the configured
// public and private channels plus their threads.
//
// The scan checks existence immediately before each insert, which makes
// insertion at-most-once per id within this process. The store is not locked
// against concurrent writers for the duration of the run, so a concurrent
// create racing a restore of the same id resolves to whichever commits first.
func (e *Engine) Recover(ctx context.Context, channelID string) (*Result, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	targets, err := e.resolveTargets(ctx, channelID)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, tgt := range targets {
		if err := e.scanTarget(ctx, tgt, result); err != nil {
			if errors.Is(err, model.ErrPermission) {
				logger.Warn(fmt.Sprintf("no read access to channel %s, skipping", tgt.channelID))
				continue
			}
			return nil, err
		}
	}

	e.notifyProgress(ctx, fmt.Sprintf("復旧完了: %d 件復元、%d 件スキップ", result.Recovered, result.Skipped))

	return result, nil
}

func (e *Engine) resolveTargets(ctx context.Context, channelID string) ([]target, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	baseChannels := []string{e.publicChannelID, e.privateChannelID}
	if channelID != "" {
		channel, err := e.discord.Channel(ctx, channelID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve channel %s: %w", channelID, err)
		}
		// A thread is scanned on its own; it has no threads of its own.
		if channel.IsThread() {
			return []target{{channelID: channel.ID, parentID: channel.ParentID}}, nil
		}
		baseChannels = []string{channelID}
	}

	targets := make([]target, 0, len(baseChannels))
	for _, base := range baseChannels {
		targets = append(targets, target{channelID: base})
	}

	threads, err := e.discord.ActiveThreads(ctx, e.guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active threads: %w", err)
	}
	for _, thread := range threads {
		for _, base := range baseChannels {
			if thread.ParentID == base {
				targets = append(targets, target{channelID: thread.ID, parentID: thread.ParentID})
			}
		}
	}

	for _, base := range baseChannels {
		archived, err := e.discord.ArchivedThreads(ctx, base)
		if err != nil {
			// Archived-thread listing needs extra permissions on some
			// servers; the scan proceeds without them.
			if errors.Is(err, model.ErrPermission) {
				logger.Warn(fmt.Sprintf("cannot list archived threads of %s, skipping", base))
				continue
			}
			return nil, fmt.Errorf("failed to list archived threads: %w", err)
		}
		for _, thread := range archived {
			targets = append(targets, target{channelID: thread.ID, parentID: base})
		}
	}

	return dedupeTargets(targets), nil
}

func (e *Engine) scanTarget(ctx context.Context, tgt target, result *Result) error {
	before := ""
	for {
		page, err := e.discord.Messages(ctx, tgt.channelID, before)
		if err != nil {
			return fmt.Errorf("failed to fetch history of %s: %w", tgt.channelID, err)
		}
		if len(page) == 0 {
			return nil
		}

		for i := range page {
			e.processMessage(ctx, &page[i], tgt, result)
		}

		before = page[len(page)-1].ID
	}
}

// processMessage restores at most one record from one message. Failures are
// counted and logged, never propagated: a single bad message must not abort
// the scan.
func (e *Engine) processMessage(ctx context.Context, msg *model.DiscordMessage, tgt target, result *Result) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	if msg.Author.ID != e.botUserID || len(msg.Embeds) == 0 {
		return
	}

	// An indexed message is usually one the dispatcher wrote or an earlier
	// run imported, but the index can outlive the record itself. Only the
	// record existence check below decides whether anything is inserted.
	indexed := true
	if _, err := e.repo.FindReferenceByMessageID(ctx, msg.ID); err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error(fmt.Sprintf("failed to check index for message %s: %v", msg.ID, err))
			result.Skipped++
			return
		}
		indexed = false
	}

	parsed, err := embed.Parse(&msg.Embeds[0])
	if err != nil {
		if errors.Is(err, model.ErrCorruptRecord) {
			logger.Warn(fmt.Sprintf("unparsable embed in message %s: %v", msg.ID, err))
			result.Skipped++
			return
		}
		logger.Error(fmt.Sprintf("failed to parse message %s: %v", msg.ID, err))
		result.Skipped++
		return
	}

	refs, err := e.repo.ListReferencesFor(ctx, parsed.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to look up references for post %d: %v", parsed.ID, err))
		result.Skipped++
		return
	}
	userID := resolveAuthor(refs)
	if userID == "" {
		// No surviving reference means the author is unknowable; a
		// fabricated author would be worse than a gap.
		logger.Warn(fmt.Sprintf("post %d has no attributable reference, skipping message %s", parsed.ID, msg.ID))
		result.Skipped++
		return
	}

	restored := false
	_, err = e.repo.GetThought(ctx, parsed.ID)
	switch {
	case err == nil:
		// Existing record wins. With the index also intact there is
		// nothing left to repair; otherwise the reference is confirmed
		// below.
		if indexed {
			return
		}
	case errors.Is(err, model.ErrNotFound):
		thought := &model.Thought{
			ID:          parsed.ID,
			UserID:      userID,
			Content:     parsed.Content,
			Category:    parsed.Category,
			IsAnonymous: parsed.IsAnonymous,
			IsPrivate:   e.isPrivate(tgt),
			CreatedAt:   msg.Timestamp,
		}
		if err := e.repo.RestoreThought(ctx, thought); err != nil {
			logger.Error(fmt.Sprintf("failed to restore post %d: %v", parsed.ID, err))
			result.Skipped++
			return
		}
		restored = true
	default:
		logger.Error(fmt.Sprintf("failed to check post %d: %v", parsed.ID, err))
		result.Skipped++
		return
	}

	ref := &model.MessageReference{
		PostID:    parsed.ID,
		Role:      e.referenceRole(tgt),
		MessageID: msg.ID,
		ChannelID: msg.ChannelID,
		UserID:    &userID,
	}
	if err := e.repo.PutReference(ctx, ref); err != nil {
		logger.Error(fmt.Sprintf("failed to index reference for post %d: %v", parsed.ID, err))
	}

	if restored {
		result.Recovered++
		if result.Recovered%progressInterval == 0 {
			e.notifyProgress(ctx, fmt.Sprintf("復旧処理中: %d 件復元しました", result.Recovered))
		}
	}
}

// isPrivate derives the privacy flag from where the message was found: only
// the public channel and its threads hold public posts.
func (e *Engine) isPrivate(tgt target) bool {
	if tgt.parentID != "" {
		return tgt.parentID != e.publicChannelID
	}

	return tgt.channelID != e.publicChannelID
}

// referenceRole maps the scan location to a reference role: a thread under
// the public channel holds copies, everything else is the primary message.
func (e *Engine) referenceRole(tgt target) model.ReferenceRole {
	if tgt.parentID == e.publicChannelID {
		return model.RoleThreadCopy
	}

	return model.RolePrimary
}

func (e *Engine) notifyProgress(ctx context.Context, content string) {
	if e.adminChannelID == "" {
		return
	}

	if _, err := e.discord.SendMessage(ctx, e.adminChannelID, content, nil); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Warn(fmt.Sprintf("failed to send progress notification: %v", err))
	}
}

func resolveAuthor(refs []model.MessageReference) string {
	for _, ref := range refs {
		if ref.UserID != nil && *ref.UserID != "" {
			return *ref.UserID
		}
	}

	return ""
}

func dedupeTargets(targets []target) []target {
	seen := make(map[string]struct{}, len(targets))
	out := targets[:0]
	for _, tgt := range targets {
		if _, ok := seen[tgt.channelID]; ok {
			continue
		}
		seen[tgt.channelID] = struct{}{}
		out = append(out, tgt)
	}

	return out
}
