package models

// FlightEndpoint is one end of a flight leg as shown in search results.
type FlightEndpoint struct {
	CityName    string `json:"cityName"`
	AirportCode string `json:"airportCode"`
	Timestamp   string `json:"timestamp"`
}

// Flight is a single priced offer surfaced to the chat UI.
type Flight struct {
	ID            string         `json:"id"`
	Departure     FlightEndpoint `json:"departure"`
	Arrival       FlightEndpoint `json:"arrival"`
	Airlines      []string       `json:"airlines"`
	PriceInUSD    float64        `json:"priceInUSD"`
	NumberOfStops int            `json:"numberOfStops"`
}

// FlightSearchResults is the searchFlights tool payload.
type FlightSearchResults struct {
	Flights      []Flight `json:"flights"`
	Mode         string   `json:"mode"`
	IsSampleData bool     `json:"isSampleData,omitempty"`
}

// FlightSearchQuery captures one flight search. Immutable once built.
type FlightSearchQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	Currency      string
	Max           int
}

// StatusEndpoint is one end of a flight in the status view, with
// terminal/gate placeholders when the provider omits them.
type StatusEndpoint struct {
	CityName    string `json:"cityName"`
	AirportCode string `json:"airportCode"`
	AirportName string `json:"airportName"`
	Timestamp   string `json:"timestamp"`
	Terminal    string `json:"terminal"`
	Gate        string `json:"gate"`
}

// FlightStatus is the displayFlightStatus tool payload.
type FlightStatus struct {
	FlightNumber         string         `json:"flightNumber"`
	Departure            StatusEndpoint `json:"departure"`
	Arrival              StatusEndpoint `json:"arrival"`
	TotalDistanceInMiles float64        `json:"totalDistanceInMiles"`
	IsSampleData         bool           `json:"isSampleData,omitempty"`
}

// Seat is one selectable seat in the cabin map.
type Seat struct {
	SeatNumber  string  `json:"seatNumber"`
	PriceInUSD  float64 `json:"priceInUSD"`
	IsAvailable bool    `json:"isAvailable"`
	Class       string  `json:"class"`
}

// SeatSelection is the selectSeats tool payload.
type SeatSelection struct {
	Seats []Seat `json:"seats"`
}
