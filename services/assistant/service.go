package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"go.uber.org/zap"

	chatRepo "avion/database/repository/chat"
	"avion/models"
	"avion/utils"
)

// maxToolRounds bounds how many times a single user turn may loop through
// tool calls before the model is forced to answer in text.
const maxToolRounds = 8

var (
	// ErrChatNotOwned means the chat id belongs to a different user.
	ErrChatNotOwned = errors.New("chat belongs to a different user")

	// ErrEmptyMessage rejects turns with no user text.
	ErrEmptyMessage = errors.New("message must not be empty")
)

// ChatService drives the conversational booking loop.
type ChatService interface {
	Converse(ctx context.Context, userID string, req models.ChatRequest) (*models.ChatResponse, error)
	DeleteChat(ctx context.Context, userID, chatID string) error
}

// DefaultChatService wires the model, the toolset, and the persisted
// history together.
type DefaultChatService struct {
	Model  ChatModel
	Tools  *Toolset
	Chats  chatRepo.Repository
	Logger *zap.Logger
	now    func() time.Time
}

func NewChatService(model ChatModel, tools *Toolset, chats chatRepo.Repository) *DefaultChatService {
	return &DefaultChatService{
		Model:  model,
		Tools:  tools,
		Chats:  chats,
		Logger: utils.GetLogger().Named("assistant"),
		now:    time.Now,
	}
}

// Converse runs one user turn: history is replayed into a fresh model
// session, tool calls are executed until the model answers in text, and
// the updated history is persisted under the caller's user id.
func (s *DefaultChatService) Converse(ctx context.Context, userID string, req models.ChatRequest) (*models.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}

	chat, err := s.loadOrCreateChat(ctx, userID, req.ID)
	if err != nil {
		return nil, err
	}

	conversation := s.Model.StartConversation(historyToContents(chat.Messages))

	resp, err := conversation.Send(ctx, genai.Text(req.Message))
	if err != nil {
		return nil, fmt.Errorf("model request failed: %w", err)
	}

	var invocations []models.ToolInvocation
	var toolTurns []models.ChatMessage
	for round := 0; round < maxToolRounds; round++ {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}
		records := make([]models.ToolCallRecord, 0, len(calls))
		responses := make([]genai.Part, 0, len(calls))
		for _, call := range calls {
			s.Logger.Info("Executing tool call",
				zap.String("chatID", chat.ID),
				zap.String("tool", call.Name))
			result := s.Tools.Dispatch(ctx, userID, call)
			invocations = append(invocations, models.ToolInvocation{
				ToolName: call.Name,
				Args:     call.Args,
				Result:   result,
			})
			records = append(records, models.ToolCallRecord{
				ToolName: call.Name,
				Args:     call.Args,
				Result:   result,
			})
			responses = append(responses, genai.FunctionResponse{
				Name:     call.Name,
				Response: result,
			})
		}
		toolTurns = append(toolTurns, models.ChatMessage{Role: "model", ToolCalls: records})
		resp, err = conversation.Send(ctx, responses...)
		if err != nil {
			return nil, fmt.Errorf("model request failed: %w", err)
		}
	}

	answer := responseText(resp)

	chat.Messages = append(chat.Messages, models.ChatMessage{Role: "user", Content: req.Message})
	chat.Messages = append(chat.Messages, toolTurns...)
	chat.Messages = append(chat.Messages, models.ChatMessage{Role: "model", Content: answer})
	chat.UpdatedAt = s.now().UTC()
	if err := s.Chats.Save(ctx, chat); err != nil {
		s.Logger.Error("Failed to persist chat", zap.String("chatID", chat.ID), zap.Error(err))
		return nil, err
	}

	return &models.ChatResponse{
		ID:              chat.ID,
		Response:        answer,
		ToolInvocations: invocations,
	}, nil
}

// DeleteChat removes a conversation after checking ownership.
func (s *DefaultChatService) DeleteChat(ctx context.Context, userID, chatID string) error {
	chat, err := s.Chats.GetByID(ctx, chatID)
	if err != nil {
		return err
	}
	if chat.UserID != userID {
		return ErrChatNotOwned
	}
	return s.Chats.Delete(ctx, chatID)
}

func (s *DefaultChatService) loadOrCreateChat(ctx context.Context, userID, chatID string) (*models.Chat, error) {
	if chatID == "" {
		chatID = uuid.New().String()
	} else {
		chat, err := s.Chats.GetByID(ctx, chatID)
		switch {
		case err == nil:
			if chat.UserID != userID {
				return nil, ErrChatNotOwned
			}
			return chat, nil
		case errors.Is(err, chatRepo.ErrNotFound):
			// Client-generated id for a brand new conversation.
		default:
			return nil, err
		}
	}
	return &models.Chat{
		ID:        chatID,
		UserID:    userID,
		CreatedAt: s.now().UTC(),
	}, nil
}

// historyToContents replays persisted turns as model context. A tool
// turn expands to a model content of function calls followed by a user
// content of their responses, mirroring how the live loop produced it.
func historyToContents(messages []models.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		if len(m.ToolCalls) > 0 {
			calls := make([]genai.Part, 0, len(m.ToolCalls))
			results := make([]genai.Part, 0, len(m.ToolCalls))
			for _, record := range m.ToolCalls {
				calls = append(calls, genai.FunctionCall{Name: record.ToolName, Args: record.Args})
				results = append(results, genai.FunctionResponse{Name: record.ToolName, Response: record.Result})
			}
			contents = append(contents,
				&genai.Content{Role: "model", Parts: calls},
				&genai.Content{Role: "user", Parts: results})
			continue
		}
		contents = append(contents, &genai.Content{
			Role:  m.Role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	return contents
}

func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	var calls []genai.FunctionCall
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if call, ok := part.(genai.FunctionCall); ok {
				calls = append(calls, call)
			}
		}
	}
	return calls
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}
