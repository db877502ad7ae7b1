// Package api defines the request/response types of the service's REST
// surface, consumed by the bot front-end.
package api

type Error struct {
	Error string `json:"error"`
}

type CreateThoughtRequest struct {
	Content     string  `json:"content"`
	Category    *string `json:"category,omitempty"`
	ImageUrl    *string `json:"image_url,omitempty"`
	IsAnonymous bool    `json:"is_anonymous"`
	IsPrivate   bool    `json:"is_private"`
	DisplayName *string `json:"display_name,omitempty"`
	AvatarUrl   *string `json:"avatar_url,omitempty"`
}

type CreateThoughtResponse struct {
	Id        int64  `json:"id"`
	MessageId string `json:"message_id,omitempty"`
	ChannelId string `json:"channel_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

type UpdateThoughtRequest struct {
	Content     *string `json:"content,omitempty"`
	Category    *string `json:"category,omitempty"`
	ImageUrl    *string `json:"image_url,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
	AvatarUrl   *string `json:"avatar_url,omitempty"`
}

type Thought struct {
	Id          int64   `json:"id"`
	UserId      string  `json:"user_id"`
	Content     string  `json:"content"`
	Category    *string `json:"category,omitempty"`
	ImageUrl    *string `json:"image_url,omitempty"`
	IsAnonymous bool    `json:"is_anonymous"`
	IsPrivate   bool    `json:"is_private"`
	DisplayName *string `json:"display_name,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at,omitempty"`
}

type GetThoughtResponse struct {
	Thought Thought `json:"thought"`
}

type ListThoughtsResponse struct {
	Thoughts []Thought `json:"thoughts"`
}

type AddReplyRequest struct {
	Content     string  `json:"content"`
	DisplayName *string `json:"display_name,omitempty"`
}

type AddReplyResponse struct {
	ReplyId   int64  `json:"reply_id"`
	MessageId string `json:"message_id,omitempty"`
}

type Reply struct {
	Id          int64   `json:"id"`
	PostId      int64   `json:"post_id"`
	UserId      string  `json:"user_id"`
	Content     string  `json:"content"`
	DisplayName *string `json:"display_name,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type ListRepliesResponse struct {
	Replies []Reply `json:"replies"`
}

type Like struct {
	Id          int64   `json:"id"`
	PostId      int64   `json:"post_id"`
	UserId      string  `json:"user_id"`
	DisplayName *string `json:"display_name,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type ListLikesResponse struct {
	Likes []Like `json:"likes"`
}

type AddLikeRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
}

type AddLikeResponse struct {
	LikeId    int64  `json:"like_id"`
	MessageId string `json:"message_id,omitempty"`
	Removed   bool   `json:"removed"`
}

type RecoverRequest struct {
	ChannelId *string `json:"channel_id,omitempty"`
}

type RecoverResponse struct {
	RecoveredCount int `json:"recovered_count"`
	SkippedCount   int `json:"skipped_count"`
}

type AssignUserRequest struct {
	UserId string `json:"user_id"`
}

type UnattributedThought struct {
	Id        int64  `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type ListUnattributedResponse struct {
	Thoughts []UnattributedThought `json:"thoughts"`
}
