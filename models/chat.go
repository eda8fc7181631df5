package models

import "time"

// ToolCallRecord is a persisted tool call with its structured result.
// Flipped back into model context on replay, it is how a reservation id
// minted in one turn stays addressable in the next.
type ToolCallRecord struct {
	ToolName string                 `json:"toolName" bson:"toolName"`
	Args     map[string]interface{} `json:"args,omitempty" bson:"args,omitempty"`
	Result   map[string]interface{} `json:"result" bson:"result"`
}

// ChatMessage is a single turn of a persisted conversation. A message
// carries either text or the tool calls of one model round, not both.
type ChatMessage struct {
	Role      string           `json:"role" bson:"role"` // "user" or "model"
	Content   string           `json:"content,omitempty" bson:"content,omitempty"`
	ToolCalls []ToolCallRecord `json:"toolCalls,omitempty" bson:"toolCalls,omitempty"`
}

// Chat is a persisted conversation, owned by the user who created it.
type Chat struct {
	ID        string        `json:"id" bson:"_id"`
	UserID    string        `json:"userId" bson:"userId"`
	Messages  []ChatMessage `json:"messages" bson:"messages"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	ID      string `json:"id"`      // chat identifier, client-generated
	Message string `json:"message"` // user's typed message
}

// ToolInvocation records one tool call made while answering a turn, so
// the UI can render the structured result (flight list, seat map, ...).
type ToolInvocation struct {
	ToolName string      `json:"toolName"`
	Args     interface{} `json:"args,omitempty"`
	Result   interface{} `json:"result"`
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	ID              string           `json:"id"`
	Response        string           `json:"response"`
	ToolInvocations []ToolInvocation `json:"toolInvocations,omitempty"`
}
