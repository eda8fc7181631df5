package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"avion/middleware"
	"avion/models"
	"avion/services/assistant"
)

type fakeChatService struct {
	lastUserID string
	resp       *models.ChatResponse
	err        error
}

func (f *fakeChatService) Converse(ctx context.Context, userID string, req models.ChatRequest) (*models.ChatResponse, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeChatService) DeleteChat(ctx context.Context, userID, chatID string) error {
	f.lastUserID = userID
	return f.err
}

func newChatRouter(svc assistant.ChatService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &ChatHandler{Service: svc, Logger: zap.NewNop()}
	r.POST("/api/chat", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		h.Converse(c)
	})
	r.DELETE("/api/chat", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		h.DeleteChat(c)
	})
	return r
}

func TestConverseHandlerReturnsResponse(t *testing.T) {
	svc := &fakeChatService{resp: &models.ChatResponse{ID: "chat-1", Response: "Hello!"}}
	router := newChatRouter(svc, "user-1")

	body := `{"id":"chat-1","message":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Hello!", resp.Response)
	assert.Equal(t, "user-1", svc.lastUserID)
}

func TestConverseHandlerRejectsBadBody(t *testing.T) {
	router := newChatRouter(&fakeChatService{}, "user-1")

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConverseHandlerMapsDomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{assistant.ErrEmptyMessage, http.StatusBadRequest},
		{assistant.ErrChatNotOwned, http.StatusForbidden},
	}
	for _, tc := range cases {
		router := newChatRouter(&fakeChatService{err: tc.err}, "user-1")
		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, tc.code, w.Code)
	}
}

func TestDeleteChatHandlerRequiresID(t *testing.T) {
	router := newChatRouter(&fakeChatService{}, "user-1")

	req := httptest.NewRequest(http.MethodDelete, "/api/chat", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteChatHandlerDeletes(t *testing.T) {
	svc := &fakeChatService{}
	router := newChatRouter(svc, "user-1")

	req := httptest.NewRequest(http.MethodDelete, "/api/chat?id=chat-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", svc.lastUserID)
}
