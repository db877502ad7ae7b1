package model

import "time"

// Discord channel types used by this service.
const (
	ChannelTypeGuildText     = 0
	ChannelTypePublicThread  = 11
	ChannelTypePrivateThread = 12
)

type DiscordUser struct {
	ID  string `json:"id"`
	Bot bool   `json:"bot,omitempty"`
}

type DiscordChannel struct {
	ID             string          `json:"id"`
	Type           int             `json:"type"`
	Name           string          `json:"name"`
	ParentID       string          `json:"parent_id,omitempty"`
	ThreadMetadata *ThreadMetadata `json:"thread_metadata,omitempty"`
}

type ThreadMetadata struct {
	Archived bool `json:"archived"`
}

// IsThread reports whether the channel is a thread of either visibility.
func (c *DiscordChannel) IsThread() bool {
	return c.Type == ChannelTypePublicThread || c.Type == ChannelTypePrivateThread
}

type DiscordMessage struct {
	ID        string      `json:"id"`
	ChannelID string      `json:"channel_id"`
	Author    DiscordUser `json:"author"`
	Content   string      `json:"content,omitempty"`
	Embeds    []Embed     `json:"embeds,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type Embed struct {
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Author      *EmbedAuthor `json:"author,omitempty"`
	Image       *EmbedImage  `json:"image,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

type EmbedFooter struct {
	Text string `json:"text"`
}

type EmbedAuthor struct {
	Name    string `json:"name"`
	IconURL string `json:"icon_url,omitempty"`
}

type EmbedImage struct {
	URL string `json:"url"`
}
