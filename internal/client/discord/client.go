package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/s21platform/thought-service/internal/config"
	"github.com/s21platform/thought-service/internal/model"
)

const historyPageSize = 100

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Discord.APIBaseURL,
		token:   cfg.Discord.Token,
		httpClient: &http.Client{
			Timeout: cfg.Discord.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

type sendMessageRequest struct {
	Content string        `json:"content,omitempty"`
	Embeds  []model.Embed `json:"embeds,omitempty"`
}

func (c *Client) SendMessage(ctx context.Context, channelID string, content string, embeds []model.Embed) (*model.DiscordMessage, error) {
	var msg model.DiscordMessage
	err := c.do(ctx, http.MethodPost,
		fmt.Sprintf("/channels/%s/messages", channelID),
		sendMessageRequest{Content: content, Embeds: embeds}, &msg)
	if err != nil {
		return nil, err
	}

	return &msg, nil
}

func (c *Client) EditMessage(ctx context.Context, channelID, messageID string, content string, embeds []model.Embed) (*model.DiscordMessage, error) {
	var msg model.DiscordMessage
	err := c.do(ctx, http.MethodPatch,
		fmt.Sprintf("/channels/%s/messages/%s", channelID, messageID),
		sendMessageRequest{Content: content, Embeds: embeds}, &msg)
	if err != nil {
		return nil, err
	}

	return &msg, nil
}

func (c *Client) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	return c.do(ctx, http.MethodDelete,
		fmt.Sprintf("/channels/%s/messages/%s", channelID, messageID), nil, nil)
}

// Messages returns one page of channel history, newest first. A non-empty
// before cursor resumes the scan from older messages; an empty page means
// the history is exhausted.
func (c *Client) Messages(ctx context.Context, channelID, before string) ([]model.DiscordMessage, error) {
	query := url.Values{}
	query.Set("limit", fmt.Sprintf("%d", historyPageSize))
	if before != "" {
		query.Set("before", before)
	}

	var page []model.DiscordMessage
	err := c.do(ctx, http.MethodGet,
		fmt.Sprintf("/channels/%s/messages?%s", channelID, query.Encode()), nil, &page)
	if err != nil {
		return nil, err
	}

	return page, nil
}

type createThreadRequest struct {
	Name                string `json:"name"`
	Type                int    `json:"type"`
	AutoArchiveDuration int    `json:"auto_archive_duration,omitempty"`
}

func (c *Client) CreateThread(ctx context.Context, channelID, name string) (*model.DiscordChannel, error) {
	var thread model.DiscordChannel
	err := c.do(ctx, http.MethodPost,
		fmt.Sprintf("/channels/%s/threads", channelID),
		createThreadRequest{Name: name, Type: model.ChannelTypePrivateThread}, &thread)
	if err != nil {
		return nil, err
	}

	return &thread, nil
}

func (c *Client) Channel(ctx context.Context, channelID string) (*model.DiscordChannel, error) {
	var channel model.DiscordChannel
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/channels/%s", channelID), nil, &channel)
	if err != nil {
		return nil, err
	}

	return &channel, nil
}

type threadListResponse struct {
	Threads []model.DiscordChannel `json:"threads"`
	HasMore bool                   `json:"has_more"`
}

func (c *Client) ActiveThreads(ctx context.Context, guildID string) ([]model.DiscordChannel, error) {
	var list threadListResponse
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/guilds/%s/threads/active", guildID), nil, &list)
	if err != nil {
		return nil, err
	}

	return list.Threads, nil
}

func (c *Client) ArchivedThreads(ctx context.Context, channelID string) ([]model.DiscordChannel, error) {
	var threads []model.DiscordChannel
	before := ""
	for {
		path := fmt.Sprintf("/channels/%s/threads/archived/public", channelID)
		if before != "" {
			path += "?before=" + url.QueryEscape(before)
		}

		var list threadListResponse
		if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
			return nil, err
		}

		threads = append(threads, list.Threads...)
		if !list.HasMore || len(list.Threads) == 0 {
			break
		}
		last := list.Threads[len(list.Threads)-1]
		if last.ThreadMetadata == nil {
			break
		}
		before = last.ID
	}

	return threads, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bot "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if err := checkStatus(resp.StatusCode); err != nil {
		return err
	}

	if dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return fmt.Errorf("discord: %w", model.ErrNotFound)
	case code == http.StatusForbidden || code == http.StatusUnauthorized:
		return fmt.Errorf("discord: %w", model.ErrPermission)
	case code == http.StatusTooManyRequests || code >= 500:
		return fmt.Errorf("discord status %d: %w", code, model.ErrTransient)
	default:
		return fmt.Errorf("discord: unexpected status code: %d", code)
	}
}
