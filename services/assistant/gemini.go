package assistant

import (
	"context"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ChatModel starts tool-enabled conversations. It exists so the Gemini
// SDK can be swapped for a scripted model in tests.
type ChatModel interface {
	StartConversation(history []*genai.Content) Conversation
}

// Conversation is one in-flight chat session with the model.
type Conversation interface {
	Send(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiModel is the production ChatModel backed by the Gemini API.
type GeminiModel struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiModel(ctx context.Context, apiKey, modelName string, tools []*genai.Tool) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	model := client.GenerativeModel(modelName)
	model.Tools = tools
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt(time.Now()))},
	}
	return &GeminiModel{client: client, model: model}, nil
}

func (g *GeminiModel) StartConversation(history []*genai.Content) Conversation {
	session := g.model.StartChat()
	session.History = history
	return &geminiConversation{session: session}
}

// Close releases the underlying API client.
func (g *GeminiModel) Close() error {
	return g.client.Close()
}

type geminiConversation struct {
	session *genai.ChatSession
}

func (c *geminiConversation) Send(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	return c.session.SendMessage(ctx, parts...)
}
