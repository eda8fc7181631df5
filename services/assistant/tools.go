package assistant

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"

	reservationRepo "avion/database/repository/reservation"
	"avion/models"
	"avion/services/booking"
)

// TravelSearch is the slice of the flight/hotel adapter the assistant
// needs. The adapter never returns errors; unavailable upstreams degrade
// to sample data.
type TravelSearch interface {
	SearchFlights(ctx context.Context, origin, destination string) *models.FlightSearchResults
	FlightStatus(ctx context.Context, flightNumber, date string) *models.FlightStatus
	SearchHotels(ctx context.Context, query models.HotelSearchQuery) *models.HotelSearchResults
}

// WeatherProvider supplies current conditions for the getWeather tool.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, latitude, longitude float64) map[string]interface{}
}

// Toolset binds every function the model may call to the services that
// implement it.
type Toolset struct {
	Search  TravelSearch
	Booking booking.Service
	Weather WeatherProvider
	Logger  *zap.Logger
}

func endpointSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"cityName":    {Type: genai.TypeString},
			"airportCode": {Type: genai.TypeString},
			"timestamp":   {Type: genai.TypeString, Description: "ISO 8601 date-time"},
			"gate":        {Type: genai.TypeString},
			"terminal":    {Type: genai.TypeString},
		},
	}
}

// declarations lists every tool the model can call, in booking-flow order.
func (t *Toolset) declarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        "searchFlights",
			Description: "Search for flights between two cities or airports",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"origin":      {Type: genai.TypeString, Description: "Origin city or airport code"},
					"destination": {Type: genai.TypeString, Description: "Destination city or airport code"},
				},
				Required: []string{"origin", "destination"},
			},
		},
		{
			Name:        "displayFlightStatus",
			Description: "Display the status of a flight",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"flightNumber": {Type: genai.TypeString, Description: "Flight number, e.g. BA142"},
					"date":         {Type: genai.TypeString, Description: "Date of the flight, YYYY-MM-DD"},
				},
				Required: []string{"flightNumber", "date"},
			},
		},
		{
			Name:        "selectSeats",
			Description: "Show the seat map so the user can pick seats",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"flightNumber": {Type: genai.TypeString},
				},
				Required: []string{"flightNumber"},
			},
		},
		{
			Name:        "createReservation",
			Description: "Create a flight reservation from the details gathered so far",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"seats":               {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"flightNumber":        {Type: genai.TypeString},
					"departure":           endpointSchema(),
					"arrival":             endpointSchema(),
					"passengerName":       {Type: genai.TypeString},
					"selectedFlightPrice": {Type: genai.TypeNumber, Description: "Price of the chosen flight in USD, if known"},
					"selectedSeatPrice":   {Type: genai.TypeNumber, Description: "Price of the chosen seats in USD, if known"},
				},
			},
		},
		{
			Name:        "authorizePayment",
			Description: "Hand the reservation to the payment form for authorization",
			Parameters:  reservationIDSchema(),
		},
		{
			Name:        "verifyPayment",
			Description: "Check whether payment for a reservation has been completed",
			Parameters:  reservationIDSchema(),
		},
		{
			Name:        "displayBoardingPass",
			Description: "Display the boarding pass for a paid reservation",
			Parameters:  reservationIDSchema(),
		},
		{
			Name:        "searchHotels",
			Description: "Search for hotels in a city",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"city":         {Type: genai.TypeString},
					"checkInDate":  {Type: genai.TypeString, Description: "YYYY-MM-DD"},
					"checkOutDate": {Type: genai.TypeString, Description: "YYYY-MM-DD"},
					"adults":       {Type: genai.TypeInteger},
				},
				Required: []string{"city"},
			},
		},
		{
			Name:        "selectHotelRoom",
			Description: "Show the room options for a hotel",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"hotelId": {Type: genai.TypeString},
				},
				Required: []string{"hotelId"},
			},
		},
		{
			Name:        "createHotelReservation",
			Description: "Create a hotel reservation from the details gathered so far",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"hotelId":      {Type: genai.TypeString},
					"roomId":       {Type: genai.TypeString},
					"guestName":    {Type: genai.TypeString},
					"checkInDate":  {Type: genai.TypeString, Description: "YYYY-MM-DD"},
					"checkOutDate": {Type: genai.TypeString, Description: "YYYY-MM-DD"},
					"totalPrice":   {Type: genai.TypeNumber, Description: "Total price of the stay in USD, if known"},
				},
			},
		},
		{
			Name:        "authorizeHotelPayment",
			Description: "Hand the hotel reservation to the payment form for authorization",
			Parameters:  reservationIDSchema(),
		},
		{
			Name:        "verifyHotelPayment",
			Description: "Check whether payment for a hotel reservation has been completed",
			Parameters:  reservationIDSchema(),
		},
		{
			Name:        "displayHotelBookingConfirmation",
			Description: "Display the booking confirmation for a paid hotel reservation",
			Parameters:  reservationIDSchema(),
		},
		{
			Name:        "selectDates",
			Description: "Show a date picker for check-in and check-out dates",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"startDate": {Type: genai.TypeString, Description: "Suggested start date, YYYY-MM-DD"},
					"endDate":   {Type: genai.TypeString, Description: "Suggested end date, YYYY-MM-DD"},
				},
			},
		},
		{
			Name:        "getWeather",
			Description: "Get the current weather at a location",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"latitude":  {Type: genai.TypeNumber},
					"longitude": {Type: genai.TypeNumber},
				},
				Required: []string{"latitude", "longitude"},
			},
		},
	}
}

func reservationIDSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"reservationId": {Type: genai.TypeString},
		},
		Required: []string{"reservationId"},
	}
}

// Tools packages the declarations the way the genai model expects them.
func (t *Toolset) Tools() []*genai.Tool {
	return []*genai.Tool{{FunctionDeclarations: t.declarations()}}
}

// Dispatch executes one function call on behalf of the signed-in user.
// Failures never abort the conversation: they come back as an error field
// for the model to relay.
func (t *Toolset) Dispatch(ctx context.Context, userID string, call genai.FunctionCall) map[string]interface{} {
	result, err := t.invoke(ctx, userID, call.Name, call.Args)
	if err != nil {
		t.Logger.Warn("Tool call failed",
			zap.String("tool", call.Name),
			zap.Error(err))
		return map[string]interface{}{"error": toolErrorMessage(err)}
	}
	out, err := toResponseMap(result)
	if err != nil {
		t.Logger.Error("Tool result not serializable",
			zap.String("tool", call.Name),
			zap.Error(err))
		return map[string]interface{}{"error": "internal error preparing the tool result"}
	}
	return out
}

func (t *Toolset) invoke(ctx context.Context, userID, name string, args map[string]interface{}) (interface{}, error) {
	switch name {
	case "searchFlights":
		var in struct {
			Origin      string `json:"origin"`
			Destination string `json:"destination"`
		}
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.Search.SearchFlights(ctx, in.Origin, in.Destination), nil

	case "displayFlightStatus":
		var in struct {
			FlightNumber string `json:"flightNumber"`
			Date         string `json:"date"`
		}
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.Search.FlightStatus(ctx, in.FlightNumber, in.Date), nil

	case "selectSeats":
		var in struct {
			FlightNumber string `json:"flightNumber"`
		}
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.Booking.SelectSeats(ctx, in.FlightNumber), nil

	case "createReservation":
		var in struct {
			Seats               []string                   `json:"seats"`
			FlightNumber        string                     `json:"flightNumber"`
			Departure           models.ReservationEndpoint `json:"departure"`
			Arrival             models.ReservationEndpoint `json:"arrival"`
			PassengerName       string                     `json:"passengerName"`
			SelectedFlightPrice *float64                   `json:"selectedFlightPrice"`
			SelectedSeatPrice   *float64                   `json:"selectedSeatPrice"`
		}
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.Booking.CreateReservation(ctx, userID, booking.FlightReservationInput{
			Seats:               in.Seats,
			FlightNumber:        in.FlightNumber,
			Departure:           in.Departure,
			Arrival:             in.Arrival,
			PassengerName:       in.PassengerName,
			SelectedFlightPrice: in.SelectedFlightPrice,
			SelectedSeatPrice:   in.SelectedSeatPrice,
		})

	case "authorizePayment", "authorizeHotelPayment":
		id, err := reservationIDArg(args)
		if err != nil {
			return nil, err
		}
		return t.Booking.AuthorizePayment(ctx, userID, id)

	case "verifyPayment", "verifyHotelPayment":
		id, err := reservationIDArg(args)
		if err != nil {
			return nil, err
		}
		return t.Booking.VerifyPayment(ctx, userID, id)

	case "displayBoardingPass":
		id, err := reservationIDArg(args)
		if err != nil {
			return nil, err
		}
		return t.Booking.BoardingPass(ctx, userID, id)

	case "displayHotelBookingConfirmation":
		id, err := reservationIDArg(args)
		if err != nil {
			return nil, err
		}
		return t.Booking.HotelConfirmation(ctx, userID, id)

	case "searchHotels":
		var in struct {
			City         string `json:"city"`
			CheckInDate  string `json:"checkInDate"`
			CheckOutDate string `json:"checkOutDate"`
			Adults       int    `json:"adults"`
		}
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.Search.SearchHotels(ctx, models.HotelSearchQuery{
			CityCode:     in.City,
			CheckInDate:  in.CheckInDate,
			CheckOutDate: in.CheckOutDate,
			Adults:       in.Adults,
		}), nil

	case "selectHotelRoom":
		var in struct {
			HotelID string `json:"hotelId"`
		}
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.Booking.SelectHotelRoom(ctx, in.HotelID), nil

	case "createHotelReservation":
		var in booking.HotelReservationInput
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.Booking.CreateHotelReservation(ctx, userID, in)

	case "selectDates":
		var in struct {
			StartDate string `json:"startDate"`
			EndDate   string `json:"endDate"`
		}
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		// The date picker is rendered by the interface; echo the
		// suggestion so it can pre-select.
		return map[string]interface{}{
			"startDate": in.StartDate,
			"endDate":   in.EndDate,
		}, nil

	case "getWeather":
		var in struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		}
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.Weather.CurrentWeather(ctx, in.Latitude, in.Longitude), nil

	default:
		return nil, errors.New("unknown tool: " + name)
	}
}

// decodeArgs converts the model's loosely typed argument map into a typed
// input via a JSON round trip.
func decodeArgs(args map[string]interface{}, out interface{}) error {
	data, err := json.Marshal(args)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func reservationIDArg(args map[string]interface{}) (string, error) {
	var in struct {
		ReservationID string `json:"reservationId"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return "", err
	}
	if in.ReservationID == "" {
		return "", errors.New("reservationId is required")
	}
	return in.ReservationID, nil
}

func toResponseMap(result interface{}) (map[string]interface{}, error) {
	if m, ok := result.(map[string]interface{}); ok {
		return m, nil
	}
	data, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// toolErrorMessage keeps domain failures readable for the model while
// hiding storage details.
func toolErrorMessage(err error) string {
	switch {
	case errors.Is(err, booking.ErrNotAuthenticated):
		return "The user must sign in before booking."
	case errors.Is(err, booking.ErrNotAuthorized):
		return "This reservation belongs to a different user."
	case errors.Is(err, booking.ErrPaymentNotVerified):
		return "Payment has not been verified for this reservation yet."
	case errors.Is(err, reservationRepo.ErrNotFound):
		return "No reservation with that id exists."
	default:
		return err.Error()
	}
}
