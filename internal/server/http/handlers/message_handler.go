package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dakarmarket/backend/internal/domain/errors"
	"github.com/dakarmarket/backend/internal/server/http/dto"
)

// MessageHandler manages direct messaging endpoints.
type MessageHandler struct {
	facade MessageFacade
}

// NewMessageHandler constructs MessageHandler.
func NewMessageHandler(facade MessageFacade) *MessageHandler {
	return &MessageHandler{facade: facade}
}

// Send handles POST /api/messages.
func (h *MessageHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	message, err := h.facade.SendMessage(c.Request.Context(), CurrentProfile(c), req.ToUser, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyMessage):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toMessageResponse(*message))
}

// Conversation handles GET /api/messages/:userID.
func (h *MessageHandler) Conversation(c *gin.Context) {
	messages, err := h.facade.Conversation(c.Request.Context(), CurrentProfile(c), c.Param("userID"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, toMessageResponse(m))
	}
	c.JSON(http.StatusOK, resp)
}

// MarkRead handles POST /api/messages/:userID/read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	marked, err := h.facade.MarkThreadRead(c.Request.Context(), CurrentProfile(c), c.Param("userID"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.MarkReadResponse{Marked: marked})
}

// Threads handles GET /api/threads.
func (h *MessageHandler) Threads(c *gin.Context) {
	threads, err := h.facade.Threads(c.Request.Context(), CurrentProfile(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.ThreadResponse, 0, len(threads))
	for _, t := range threads {
		entry := dto.ThreadResponse{
			CounterpartID: t.CounterpartID,
			LastMessage:   toMessageResponse(t.LastMessage),
			UnreadCount:   t.UnreadCount,
		}
		if t.Counterpart != nil {
			profile := toProfileResponse(t.Counterpart)
			entry.Counterpart = &profile
		}
		resp = append(resp, entry)
	}
	c.JSON(http.StatusOK, resp)
}
