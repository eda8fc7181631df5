package assistant

import (
	"context"
	"sync"
	"testing"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	chatRepo "avion/database/repository/chat"
	reservationRepo "avion/database/repository/reservation"
	"avion/models"
	"avion/services/booking"
)

// scriptedModel replays canned responses and records what was sent.
type scriptedModel struct {
	responses []*genai.GenerateContentResponse
	sent      [][]genai.Part
	history   []*genai.Content
}

func (m *scriptedModel) StartConversation(history []*genai.Content) Conversation {
	m.history = history
	return (*scriptedConversation)(m)
}

type scriptedConversation scriptedModel

func (c *scriptedConversation) Send(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	c.sent = append(c.sent, parts)
	resp := c.responses[0]
	c.responses = c.responses[1:]
	return resp, nil
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(text)}},
		}},
	}
}

func callResponse(calls ...genai.FunctionCall) *genai.GenerateContentResponse {
	parts := make([]genai.Part, 0, len(calls))
	for _, call := range calls {
		parts = append(parts, call)
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: parts},
		}},
	}
}

// memoryChatRepo is an in-memory chat store for tests.
type memoryChatRepo struct {
	mu    sync.Mutex
	chats map[string]*models.Chat
}

func newMemoryChatRepo() *memoryChatRepo {
	return &memoryChatRepo{chats: make(map[string]*models.Chat)}
}

func (r *memoryChatRepo) GetByID(ctx context.Context, id string) (*models.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	chat, ok := r.chats[id]
	if !ok {
		return nil, chatRepo.ErrNotFound
	}
	copied := *chat
	return &copied, nil
}

func (r *memoryChatRepo) Save(ctx context.Context, chat *models.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *chat
	r.chats[chat.ID] = &copied
	return nil
}

func (r *memoryChatRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.chats, id)
	return nil
}

// memoryReservationRepo backs the real booking service in these tests.
type memoryReservationRepo struct {
	mu           sync.Mutex
	reservations map[string]*models.Reservation
}

func newMemoryReservationRepo() *memoryReservationRepo {
	return &memoryReservationRepo{reservations: make(map[string]*models.Reservation)}
}

func (r *memoryReservationRepo) Create(ctx context.Context, reservation *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *reservation
	r.reservations[reservation.ID] = &stored
	return nil
}

func (r *memoryReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *memoryReservationRepo) SetPaymentVerified(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.reservations[id]
	if !ok {
		return reservationRepo.ErrNotFound
	}
	stored.HasCompletedPayment = true
	return nil
}

type fakeSearch struct{}

func (fakeSearch) SearchFlights(ctx context.Context, origin, destination string) *models.FlightSearchResults {
	return &models.FlightSearchResults{
		Flights: []models.Flight{{
			ID:         "BA142",
			PriceInUSD: 523.40,
			Airlines:   []string{"British Airways"},
		}},
		Mode: "oneway",
	}
}

func (fakeSearch) FlightStatus(ctx context.Context, flightNumber, date string) *models.FlightStatus {
	return &models.FlightStatus{FlightNumber: flightNumber}
}

func (fakeSearch) SearchHotels(ctx context.Context, query models.HotelSearchQuery) *models.HotelSearchResults {
	return &models.HotelSearchResults{}
}

type fakeWeather struct{}

func (fakeWeather) CurrentWeather(ctx context.Context, latitude, longitude float64) map[string]interface{} {
	return map[string]interface{}{"latitude": latitude, "longitude": longitude}
}

func newTestChatService(model ChatModel, chats chatRepo.Repository, reservations reservationRepo.Repository) *DefaultChatService {
	bookingService := &booking.DefaultBookingService{Repo: reservations, Logger: zap.NewNop()}
	toolset := &Toolset{
		Search:  fakeSearch{},
		Booking: bookingService,
		Weather: fakeWeather{},
		Logger:  zap.NewNop(),
	}
	svc := NewChatService(model, toolset, chats)
	svc.Logger = zap.NewNop()
	return svc
}

func TestConverseExecutesToolCalls(t *testing.T) {
	model := &scriptedModel{responses: []*genai.GenerateContentResponse{
		callResponse(genai.FunctionCall{
			Name: "searchFlights",
			Args: map[string]interface{}{"origin": "New York", "destination": "London"},
		}),
		textResponse("I found a flight for you."),
	}}
	chats := newMemoryChatRepo()
	svc := newTestChatService(model, chats, newMemoryReservationRepo())

	resp, err := svc.Converse(context.Background(), "user-1", models.ChatRequest{
		ID:      "chat-1",
		Message: "Find me a flight from New York to London",
	})
	require.NoError(t, err)

	assert.Equal(t, "chat-1", resp.ID)
	assert.Equal(t, "I found a flight for you.", resp.Response)
	require.Len(t, resp.ToolInvocations, 1)
	assert.Equal(t, "searchFlights", resp.ToolInvocations[0].ToolName)

	// The second send must carry the tool result back to the model.
	require.Len(t, model.sent, 2)
	fr, ok := model.sent[1][0].(genai.FunctionResponse)
	require.True(t, ok)
	assert.Equal(t, "searchFlights", fr.Name)
	assert.Contains(t, fr.Response, "flights")

	saved, err := chats.GetByID(context.Background(), "chat-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", saved.UserID)
	require.Len(t, saved.Messages, 3)
	assert.Equal(t, "user", saved.Messages[0].Role)
	require.Len(t, saved.Messages[1].ToolCalls, 1)
	assert.Equal(t, "searchFlights", saved.Messages[1].ToolCalls[0].ToolName)
	assert.Equal(t, "model", saved.Messages[2].Role)
	assert.Equal(t, "I found a flight for you.", saved.Messages[2].Content)
}

func TestConverseGeneratesChatID(t *testing.T) {
	model := &scriptedModel{responses: []*genai.GenerateContentResponse{
		textResponse("Hello!"),
	}}
	svc := newTestChatService(model, newMemoryChatRepo(), newMemoryReservationRepo())

	resp, err := svc.Converse(context.Background(), "user-1", models.ChatRequest{Message: "hi"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
}

func TestConverseReplaysHistory(t *testing.T) {
	chats := newMemoryChatRepo()
	require.NoError(t, chats.Save(context.Background(), &models.Chat{
		ID:     "chat-1",
		UserID: "user-1",
		Messages: []models.ChatMessage{
			{Role: "user", Content: "hi"},
			{Role: "model", Content: "Hello!"},
		},
	}))

	model := &scriptedModel{responses: []*genai.GenerateContentResponse{
		textResponse("Of course."),
	}}
	svc := newTestChatService(model, chats, newMemoryReservationRepo())

	_, err := svc.Converse(context.Background(), "user-1", models.ChatRequest{
		ID:      "chat-1",
		Message: "book it",
	})
	require.NoError(t, err)
	require.Len(t, model.history, 2)

	saved, err := chats.GetByID(context.Background(), "chat-1")
	require.NoError(t, err)
	assert.Len(t, saved.Messages, 4)
}

func TestConverseReplaysToolResultsAcrossTurns(t *testing.T) {
	reservations := newMemoryReservationRepo()
	chats := newMemoryChatRepo()

	model := &scriptedModel{responses: []*genai.GenerateContentResponse{
		callResponse(genai.FunctionCall{
			Name: "createReservation",
			Args: map[string]interface{}{"flightNumber": "BA142", "passengerName": "Ada Lovelace"},
		}),
		textResponse("Reservation created. Please pay in the form."),
	}}
	svc := newTestChatService(model, chats, reservations)

	resp, err := svc.Converse(context.Background(), "user-1", models.ChatRequest{
		ID:      "chat-1",
		Message: "Book BA142 for Ada",
	})
	require.NoError(t, err)
	result, ok := resp.ToolInvocations[0].Result.(map[string]interface{})
	require.True(t, ok)
	reservationID, _ := result["id"].(string)
	require.NotEmpty(t, reservationID)

	// A later turn must see the reservation id inside the replayed
	// function response, not just the text the model chose to say.
	model2 := &scriptedModel{responses: []*genai.GenerateContentResponse{
		textResponse("Checking your payment now."),
	}}
	svc2 := newTestChatService(model2, chats, reservations)

	_, err = svc2.Converse(context.Background(), "user-1", models.ChatRequest{
		ID:      "chat-1",
		Message: "Did my payment go through?",
	})
	require.NoError(t, err)

	var replayedID string
	for _, content := range model2.history {
		for _, part := range content.Parts {
			if fr, ok := part.(genai.FunctionResponse); ok && fr.Name == "createReservation" {
				replayedID, _ = fr.Response["id"].(string)
			}
		}
	}
	assert.Equal(t, reservationID, replayedID)
}

func TestConverseRejectsForeignChat(t *testing.T) {
	chats := newMemoryChatRepo()
	require.NoError(t, chats.Save(context.Background(), &models.Chat{ID: "chat-1", UserID: "owner"}))

	svc := newTestChatService(&scriptedModel{}, chats, newMemoryReservationRepo())

	_, err := svc.Converse(context.Background(), "intruder", models.ChatRequest{
		ID:      "chat-1",
		Message: "hi",
	})
	assert.ErrorIs(t, err, ErrChatNotOwned)
}

func TestConverseRejectsEmptyMessage(t *testing.T) {
	svc := newTestChatService(&scriptedModel{}, newMemoryChatRepo(), newMemoryReservationRepo())

	_, err := svc.Converse(context.Background(), "user-1", models.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestDeleteChat(t *testing.T) {
	chats := newMemoryChatRepo()
	require.NoError(t, chats.Save(context.Background(), &models.Chat{ID: "chat-1", UserID: "user-1"}))

	svc := newTestChatService(&scriptedModel{}, chats, newMemoryReservationRepo())

	assert.ErrorIs(t, svc.DeleteChat(context.Background(), "intruder", "chat-1"), ErrChatNotOwned)
	require.NoError(t, svc.DeleteChat(context.Background(), "user-1", "chat-1"))

	_, err := chats.GetByID(context.Background(), "chat-1")
	assert.ErrorIs(t, err, chatRepo.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteChat(context.Background(), "user-1", "chat-1"), chatRepo.ErrNotFound)
}

func TestConverseBookingFlowThroughTools(t *testing.T) {
	reservations := newMemoryReservationRepo()
	chats := newMemoryChatRepo()

	// Turn 1: the model creates a reservation.
	model := &scriptedModel{responses: []*genai.GenerateContentResponse{
		callResponse(genai.FunctionCall{
			Name: "createReservation",
			Args: map[string]interface{}{
				"flightNumber":        "BA142",
				"seats":               []interface{}{"3C"},
				"passengerName":       "Ada Lovelace",
				"selectedFlightPrice": 523.40,
				"selectedSeatPrice":   90.0,
			},
		}),
		textResponse("Reservation created."),
	}}
	svc := newTestChatService(model, chats, reservations)

	resp, err := svc.Converse(context.Background(), "user-1", models.ChatRequest{
		ID:      "chat-1",
		Message: "Book seat 3C on BA142",
	})
	require.NoError(t, err)
	require.Len(t, resp.ToolInvocations, 1)

	result, ok := resp.ToolInvocations[0].Result.(map[string]interface{})
	require.True(t, ok)
	reservationID, _ := result["id"].(string)
	require.NotEmpty(t, reservationID)

	// The boarding pass is refused until payment is verified.
	model2 := &scriptedModel{responses: []*genai.GenerateContentResponse{
		callResponse(genai.FunctionCall{
			Name: "displayBoardingPass",
			Args: map[string]interface{}{"reservationId": reservationID},
		}),
		textResponse("I cannot show the boarding pass yet."),
	}}
	svc2 := newTestChatService(model2, chats, reservations)

	resp2, err := svc2.Converse(context.Background(), "user-1", models.ChatRequest{
		ID:      "chat-1",
		Message: "Show my boarding pass",
	})
	require.NoError(t, err)
	require.Len(t, resp2.ToolInvocations, 1)
	gateResult, ok := resp2.ToolInvocations[0].Result.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, gateResult, "error")

	// After the payment callback fires, the same call succeeds.
	require.NoError(t, reservations.SetPaymentVerified(context.Background(), reservationID))

	model3 := &scriptedModel{responses: []*genai.GenerateContentResponse{
		callResponse(genai.FunctionCall{
			Name: "displayBoardingPass",
			Args: map[string]interface{}{"reservationId": reservationID},
		}),
		textResponse("Here is your boarding pass."),
	}}
	svc3 := newTestChatService(model3, chats, reservations)

	resp3, err := svc3.Converse(context.Background(), "user-1", models.ChatRequest{
		ID:      "chat-1",
		Message: "Show my boarding pass",
	})
	require.NoError(t, err)
	passResult, ok := resp3.ToolInvocations[0].Result.(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, passResult, "error")
	assert.Equal(t, "Ada Lovelace", passResult["passengerName"])
}
