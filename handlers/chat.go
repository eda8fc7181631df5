package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	chatRepo "avion/database/repository/chat"
	"avion/middleware"
	"avion/models"
	"avion/services/assistant"
	"avion/utils"
)

// ChatHandler exposes the conversational endpoints.
type ChatHandler struct {
	Service assistant.ChatService
	Logger  *zap.Logger
}

func NewChatHandler(service assistant.ChatService) *ChatHandler {
	return &ChatHandler{
		Service: service,
		Logger:  utils.GetLogger().Named("chat-handler"),
	}
}

// Converse handles POST /api/chat: one user turn through the assistant.
func (h *ChatHandler) Converse(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	userID := c.GetString(middleware.UserIDKey)
	resp, err := h.Service.Converse(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrEmptyMessage):
			utils.JSONError(c, http.StatusBadRequest, "Message must not be empty", "")
		case errors.Is(err, assistant.ErrChatNotOwned):
			utils.JSONError(c, http.StatusForbidden, "Chat belongs to a different user", "")
		default:
			h.Logger.Error("Chat turn failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to process the message", "")
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteChat handles DELETE /api/chat?id=<chatID>.
func (h *ChatHandler) DeleteChat(c *gin.Context) {
	chatID := c.Query("id")
	if chatID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing chat id", "")
		return
	}

	userID := c.GetString(middleware.UserIDKey)
	if err := h.Service.DeleteChat(c.Request.Context(), userID, chatID); err != nil {
		switch {
		case errors.Is(err, chatRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Chat not found", "")
		case errors.Is(err, assistant.ErrChatNotOwned):
			utils.JSONError(c, http.StatusForbidden, "Chat belongs to a different user", "")
		default:
			h.Logger.Error("Chat deletion failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to delete the chat", "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": chatID})
}
