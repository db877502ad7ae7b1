package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/thought-service/internal/api"
	"github.com/s21platform/thought-service/internal/config"
	"github.com/s21platform/thought-service/internal/model"
	"github.com/s21platform/thought-service/internal/pkg/embed"
)

type Handler struct {
	repository DBRepo
	dispatcher Dispatcher
	engine     RecoveryEngine
	validator  Validator
}

func New(
	repo DBRepo,
	dispatcher Dispatcher,
	engine RecoveryEngine,
	validator Validator,
) *Handler {
	return &Handler{
		repository: repo,
		dispatcher: dispatcher,
		engine:     engine,
		validator:  validator,
	}
}

func (h *Handler) AttachRoutes(router chi.Router) {
	router.Post("/api/thoughts", h.CreateThought)
	router.Get("/api/thoughts", h.ListThoughts)
	router.Get("/api/thoughts/{id}", h.GetThought)
	router.Patch("/api/thoughts/{id}", h.UpdateThought)
	router.Delete("/api/thoughts/{id}", h.DeleteThought)
	router.Get("/api/thoughts/{id}/replies", h.ListReplies)
	router.Post("/api/thoughts/{id}/replies", h.AddReply)
	router.Get("/api/thoughts/{id}/likes", h.ListLikes)
	router.Post("/api/thoughts/{id}/likes", h.ToggleLike)
	router.Post("/api/admin/recover", h.RecoverFromMessages)
	router.Post("/api/admin/thoughts/{id}/assign", h.AssignUser)
	router.Get("/api/admin/thoughts/unattributed", h.ListUnattributed)
}

func (h *Handler) CreateThought(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateThought")

	var req api.CreateThoughtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateThought(&req); err != nil {
		logger.Error(fmt.Sprintf("thought validation failed: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	thought := &model.Thought{
		UserID:      userID,
		Content:     req.Content,
		Category:    req.Category,
		ImageURL:    req.ImageUrl,
		IsAnonymous: req.IsAnonymous,
		IsPrivate:   req.IsPrivate,
		DisplayName: req.DisplayName,
	}

	created, ref, err := h.dispatcher.CreateThought(r.Context(), thought, identityFrom(req.DisplayName, req.AvatarUrl, userID))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create thought: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create thought: %v", err), statusFromError(err))
		return
	}

	response := api.CreateThoughtResponse{
		Id:        created.ID,
		CreatedAt: created.CreatedAt.Format(time.RFC3339),
	}
	if ref != nil {
		response.MessageId = ref.MessageID
		response.ChannelId = ref.ChannelID
	}

	h.writeJSON(w, response, http.StatusCreated)
}

func (h *Handler) GetThought(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetThought")

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, "invalid thought id", http.StatusBadRequest)
		return
	}

	thought, err := h.repository.GetThought(r.Context(), id)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get thought %d: %v", id, err))
		h.writeError(w, fmt.Sprintf("failed to get thought: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, api.GetThoughtResponse{Thought: thoughtToAPI(thought)}, http.StatusOK)
}

func (h *Handler) ListThoughts(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListThoughts")

	filter, err := filterFromQuery(r)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid list query: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	thoughts, err := h.repository.ListThoughts(r.Context(), filter)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list thoughts: %v", err))
		h.writeError(w, fmt.Sprintf("failed to list thoughts: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.ListThoughtsResponse{Thoughts: make([]api.Thought, 0, len(thoughts))}
	for i := range thoughts {
		response.Thoughts = append(response.Thoughts, thoughtToAPI(&thoughts[i]))
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) UpdateThought(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateThought")

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, "invalid thought id", http.StatusBadRequest)
		return
	}

	var req api.UpdateThoughtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateUpdateThought(&req); err != nil {
		logger.Error(fmt.Sprintf("thought validation failed: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	patch := model.ThoughtPatch{
		Content:     req.Content,
		Category:    req.Category,
		ImageURL:    req.ImageUrl,
		DisplayName: req.DisplayName,
	}

	thought, err := h.dispatcher.UpdateThought(r.Context(), id, userID, patch, identityFrom(req.DisplayName, req.AvatarUrl, userID))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update thought %d: %v", id, err))
		h.writeError(w, fmt.Sprintf("failed to update thought: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, api.GetThoughtResponse{Thought: thoughtToAPI(thought)}, http.StatusOK)
}

func (h *Handler) DeleteThought(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteThought")

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, "invalid thought id", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	if err := h.dispatcher.DeleteThought(r.Context(), id, userID); err != nil {
		logger.Error(fmt.Sprintf("failed to delete thought %d: %v", id, err))
		h.writeError(w, fmt.Sprintf("failed to delete thought: %v", err), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListReplies(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListReplies")

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, "invalid thought id", http.StatusBadRequest)
		return
	}

	replies, err := h.repository.GetReplies(r.Context(), id)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list replies of %d: %v", id, err))
		h.writeError(w, fmt.Sprintf("failed to list replies: %v", err), statusFromError(err))
		return
	}

	response := api.ListRepliesResponse{Replies: make([]api.Reply, 0, len(replies))}
	for _, reply := range replies {
		response.Replies = append(response.Replies, api.Reply{
			Id:          reply.ID,
			PostId:      reply.PostID,
			UserId:      reply.UserID,
			Content:     reply.Content,
			DisplayName: reply.DisplayName,
			CreatedAt:   reply.CreatedAt.Format(time.RFC3339),
		})
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) AddReply(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AddReply")

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, "invalid thought id", http.StatusBadRequest)
		return
	}

	var req api.AddReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateAddReply(&req); err != nil {
		logger.Error(fmt.Sprintf("reply validation failed: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	reply, err := h.dispatcher.AddReply(r.Context(), &model.Reply{
		PostID:      id,
		UserID:      userID,
		Content:     req.Content,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to add reply to %d: %v", id, err))
		h.writeError(w, fmt.Sprintf("failed to add reply: %v", err), statusFromError(err))
		return
	}

	response := api.AddReplyResponse{ReplyId: reply.ID}
	if reply.MessageID != nil {
		response.MessageId = *reply.MessageID
	}

	h.writeJSON(w, response, http.StatusCreated)
}

func (h *Handler) ListLikes(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListLikes")

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, "invalid thought id", http.StatusBadRequest)
		return
	}

	likes, err := h.repository.GetLikes(r.Context(), id)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list likes of %d: %v", id, err))
		h.writeError(w, fmt.Sprintf("failed to list likes: %v", err), statusFromError(err))
		return
	}

	response := api.ListLikesResponse{Likes: make([]api.Like, 0, len(likes))}
	for _, like := range likes {
		response.Likes = append(response.Likes, api.Like{
			Id:          like.ID,
			PostId:      like.PostID,
			UserId:      like.UserID,
			DisplayName: like.DisplayName,
			CreatedAt:   like.CreatedAt.Format(time.RFC3339),
		})
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ToggleLike")

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, "invalid thought id", http.StatusBadRequest)
		return
	}

	var req api.AddLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	like, removed, err := h.dispatcher.ToggleLike(r.Context(), &model.Like{
		PostID:      id,
		UserID:      userID,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to toggle like on %d: %v", id, err))
		h.writeError(w, fmt.Sprintf("failed to toggle like: %v", err), statusFromError(err))
		return
	}

	response := api.AddLikeResponse{LikeId: like.ID, Removed: removed}
	if like.MessageID != nil {
		response.MessageId = *like.MessageID
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) RecoverFromMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RecoverFromMessages")

	var req api.RecoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	channelID := ""
	if req.ChannelId != nil {
		channelID = *req.ChannelId
	}

	result, err := h.engine.Recover(r.Context(), channelID)
	if err != nil {
		logger.Error(fmt.Sprintf("recovery run failed: %v", err))
		h.writeError(w, fmt.Sprintf("recovery run failed: %v", err), statusFromError(err))
		return
	}

	logger.Info(fmt.Sprintf("recovery run finished: %d recovered, %d skipped", result.Recovered, result.Skipped))

	h.writeJSON(w, api.RecoverResponse{
		RecoveredCount: result.Recovered,
		SkippedCount:   result.Skipped,
	}, http.StatusOK)
}

func (h *Handler) AssignUser(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AssignUser")

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, "invalid thought id", http.StatusBadRequest)
		return
	}

	var req api.AssignUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.UserId == "" {
		h.writeError(w, "user_id is required", http.StatusBadRequest)
		return
	}

	if err := h.repository.AssignUser(r.Context(), id, req.UserId); err != nil {
		logger.Error(fmt.Sprintf("failed to assign user to %d: %v", id, err))
		h.writeError(w, fmt.Sprintf("failed to assign user: %v", err), statusFromError(err))
		return
	}

	logger.Info(fmt.Sprintf("assigned user %s to post %d", req.UserId, id))

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListUnattributed(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListUnattributed")

	thoughts, err := h.repository.ListThoughtsWithoutUser(r.Context(), 20)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list unattributed thoughts: %v", err))
		h.writeError(w, fmt.Sprintf("failed to list unattributed thoughts: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.ListUnattributedResponse{Thoughts: make([]api.UnattributedThought, 0, len(thoughts))}
	for _, thought := range thoughts {
		response.Thoughts = append(response.Thoughts, api.UnattributedThought{
			Id:        thought.ID,
			Content:   thought.Content,
			CreatedAt: thought.CreatedAt.Format(time.RFC3339),
		})
	}

	h.writeJSON(w, response, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %w", model.ErrValidation)
	}

	return id, nil
}

func identityFrom(displayName, avatarURL *string, userID string) embed.Identity {
	identity := embed.Identity{Name: userID}
	if displayName != nil && *displayName != "" {
		identity.Name = *displayName
	}
	if avatarURL != nil {
		identity.AvatarURL = *avatarURL
	}

	return identity
}

func thoughtToAPI(thought *model.Thought) api.Thought {
	out := api.Thought{
		Id:          thought.ID,
		UserId:      thought.UserID,
		Content:     thought.Content,
		Category:    thought.Category,
		ImageUrl:    thought.ImageURL,
		IsAnonymous: thought.IsAnonymous,
		IsPrivate:   thought.IsPrivate,
		DisplayName: thought.DisplayName,
		CreatedAt:   thought.CreatedAt.Format(time.RFC3339),
	}
	if thought.UpdatedAt != nil {
		updatedAt := thought.UpdatedAt.Format(time.RFC3339)
		out.UpdatedAt = &updatedAt
	}

	return out
}

func filterFromQuery(r *http.Request) (model.ThoughtFilter, error) {
	query := r.URL.Query()

	filter := model.ThoughtFilter{
		UserID:   query.Get("user_id"),
		Category: query.Get("category"),
		Keyword:  query.Get("keyword"),
	}

	if raw := query.Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fmt.Errorf("invalid since date: %w", model.ErrValidation)
		}
		filter.Since = &since
	}
	if raw := query.Get("until"); raw != "" {
		until, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fmt.Errorf("invalid until date: %w", model.ErrValidation)
		}
		filter.Until = &until
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || limit <= 0 {
			return filter, fmt.Errorf("invalid limit: %w", model.ErrValidation)
		}
		filter.Limit = int32(limit)
	}

	return filter, nil
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrPermission):
		return http.StatusForbidden
	case errors.Is(err, model.ErrTransient):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
