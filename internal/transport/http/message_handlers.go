package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/parthbanwari/Mediately/internal/proto"
	"github.com/parthbanwari/Mediately/internal/store"
)

// MessageHandlers provides HTTP handlers for the message history endpoints.
type MessageHandlers struct {
	store store.MessageStore
	log   *zerolog.Logger
}

// NewMessageHandlers creates a new message handlers instance.
func NewMessageHandlers(st store.MessageStore, logger *zerolog.Logger) *MessageHandlers {
	return &MessageHandlers{
		store: st,
		log:   logger,
	}
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListMessages returns the full persisted history for a case, ascending by
// timestamp. Clients call this before joining the live room; no WebSocket
// is required.
// GET /messages/:caseId
func (h *MessageHandlers) ListMessages(c *gin.Context) {
	caseID := c.Param("caseId")

	messages, err := h.store.ListMessages(c.Request.Context(), caseID)
	if err != nil {
		h.log.Error().Err(err).Str("case_id", caseID).Msg("failed to load message history")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load messages"})
		return
	}

	// A case with no history is an empty array, not an error.
	payload := make([]proto.MessagePayload, 0, len(messages))
	for _, msg := range messages {
		payload = append(payload, proto.MessagePayload{
			CaseID:     msg.CaseID,
			SenderID:   msg.SenderID,
			SenderName: msg.SenderName,
			Text:       msg.Text,
			Timestamp:  msg.Timestamp,
		})
	}

	c.JSON(http.StatusOK, payload)
}
