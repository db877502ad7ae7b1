// Package embed renders thoughts as Discord embeds and parses them back.
// The footer carries the structured tokens the reconciliation engine relies
// on, so the two directions must stay in lockstep.
package embed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/s21platform/thought-service/internal/model"
)

const (
	// AnonymousName and AnonymousAvatarURL are the placeholder identity
	// substituted for anonymous authors. Rotating either constant makes
	// historical messages unrecoverable as anonymous, so they are frozen
	// here rather than configured.
	AnonymousName      = "匿名ユーザー"
	AnonymousAvatarURL = "https://cdn.discordapp.com/attachments/958663922901217280/1457097821315399822/08350cafa4fabb8a6a1be2d9f18f2d88.png"

	categoryMarker = "カテゴリ:"
	idMarker       = "ID:"
	categoryUnset  = "未設定"

	embedColor = 0x3498db
)

// Identity is the author presentation rendered on an embed.
type Identity struct {
	Name      string
	AvatarURL string
}

// Encode renders a thought into the bot's embed format. identity is the
// attributed presentation; it is ignored for anonymous thoughts.
func Encode(t *model.Thought, identity Identity) model.Embed {
	category := categoryUnset
	if t.Category != nil && *t.Category != "" {
		category = *t.Category
	}

	author := model.EmbedAuthor{
		Name:    identity.Name,
		IconURL: identity.AvatarURL,
	}
	if t.IsAnonymous {
		author = model.EmbedAuthor{
			Name:    AnonymousName,
			IconURL: AnonymousAvatarURL,
		}
	} else if t.DisplayName != nil && *t.DisplayName != "" {
		author.Name = *t.DisplayName
	}

	e := model.Embed{
		Description: t.Content,
		Color:       embedColor,
		Author:      &author,
		Footer: &model.EmbedFooter{
			Text: fmt.Sprintf("%s %s | %s %d", categoryMarker, category, idMarker, t.ID),
		},
	}

	if t.ImageURL != nil && *t.ImageURL != "" {
		e.Image = &model.EmbedImage{URL: *t.ImageURL}
	}

	return e
}

// Parsed holds the fields recovered from a single bot embed.
type Parsed struct {
	ID          int64
	Content     string
	Category    *string
	IsAnonymous bool
}

// Parse extracts the structured fields from a bot embed. It returns
// ErrCorruptRecord when the embed lacks a body or a parsable id token;
// callers skip such messages and keep scanning.
func Parse(e *model.Embed) (*Parsed, error) {
	if e == nil || e.Description == "" {
		return nil, fmt.Errorf("%w: embed has no description", model.ErrCorruptRecord)
	}

	footer := ""
	if e.Footer != nil {
		footer = e.Footer.Text
	}

	id, err := parseID(footer)
	if err != nil {
		return nil, err
	}

	p := &Parsed{
		ID:       id,
		Content:  e.Description,
		Category: parseCategory(footer),
	}

	// Two-signal anonymity check: either the placeholder name or the
	// placeholder icon marks the thought anonymous.
	if e.Author != nil {
		p.IsAnonymous = e.Author.Name == AnonymousName || e.Author.IconURL == AnonymousAvatarURL
	}

	return p, nil
}

func parseID(footer string) (int64, error) {
	idx := strings.Index(footer, idMarker)
	if idx < 0 {
		return 0, fmt.Errorf("%w: footer has no id marker", model.ErrCorruptRecord)
	}

	raw := strings.TrimSpace(footer[idx+len(idMarker):])
	if cut := strings.IndexByte(raw, '|'); cut >= 0 {
		raw = strings.TrimSpace(raw[:cut])
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: unparsable id token %q", model.ErrCorruptRecord, raw)
	}

	return id, nil
}

func parseCategory(footer string) *string {
	idx := strings.Index(footer, categoryMarker)
	if idx < 0 {
		return nil
	}

	raw := footer[idx+len(categoryMarker):]
	if cut := strings.IndexByte(raw, '|'); cut >= 0 {
		raw = raw[:cut]
	}

	category := strings.TrimSpace(raw)
	if category == "" || category == categoryUnset {
		return nil
	}

	return &category
}
