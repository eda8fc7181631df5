package models

import "time"

// Reservation kinds stored in the reservations collection.
const (
	ReservationKindFlight = "flight"
	ReservationKindHotel  = "hotel"
)

// ReservationEndpoint is a departure or arrival as captured at
// reservation time (includes gate/terminal, unlike search results).
type ReservationEndpoint struct {
	CityName    string `json:"cityName" bson:"cityName"`
	AirportCode string `json:"airportCode" bson:"airportCode"`
	AirportName string `json:"airportName" bson:"airportName"`
	Timestamp   string `json:"timestamp" bson:"timestamp"`
	Gate        string `json:"gate" bson:"gate"`
	Terminal    string `json:"terminal" bson:"terminal"`
}

// FlightReservationDetails is the booking blob for a flight reservation.
// No field changes after creation.
type FlightReservationDetails struct {
	Seats               []string            `json:"seats" bson:"seats"`
	FlightNumber        string              `json:"flightNumber" bson:"flightNumber"`
	Departure           ReservationEndpoint `json:"departure" bson:"departure"`
	Arrival             ReservationEndpoint `json:"arrival" bson:"arrival"`
	PassengerName       string              `json:"passengerName" bson:"passengerName"`
	SelectedFlightPrice *float64            `json:"selectedFlightPrice,omitempty" bson:"selectedFlightPrice,omitempty"`
	SelectedSeatPrice   *float64            `json:"selectedSeatPrice,omitempty" bson:"selectedSeatPrice,omitempty"`
	TotalPriceInUSD     float64             `json:"totalPriceInUSD" bson:"totalPriceInUSD"`
}

// HotelReservationDetails is the booking blob for a hotel reservation.
type HotelReservationDetails struct {
	HotelID      string  `json:"hotelId" bson:"hotelId"`
	RoomID       string  `json:"roomId" bson:"roomId"`
	GuestName    string  `json:"guestName" bson:"guestName"`
	CheckInDate  string  `json:"checkInDate" bson:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate" bson:"checkOutDate"`
	TotalPrice   float64 `json:"totalPrice" bson:"totalPrice"`
}

// Reservation is the persisted record of a user's intent to purchase.
// Only HasCompletedPayment may change after creation, and only through
// the verify-payment step.
type Reservation struct {
	ID                  string      `json:"id" bson:"_id"`
	UserID              string      `json:"userId" bson:"userId"`
	Kind                string      `json:"kind" bson:"kind"`
	Details             interface{} `json:"details" bson:"details"`
	HasCompletedPayment bool        `json:"hasCompletedPayment" bson:"hasCompletedPayment"`
	CreatedAt           time.Time   `json:"createdAt" bson:"createdAt"`
}

// BoardingPass is the displayBoardingPass tool payload, only issued
// once payment has been verified against the stored reservation.
type BoardingPass struct {
	ReservationID string              `json:"reservationId"`
	PassengerName string              `json:"passengerName"`
	FlightNumber  string              `json:"flightNumber"`
	Seats         []string            `json:"seats"`
	Departure     ReservationEndpoint `json:"departure"`
	Arrival       ReservationEndpoint `json:"arrival"`
}

// HotelBookingConfirmation is the confirmed-stay payload, gated the
// same way as the boarding pass.
type HotelBookingConfirmation struct {
	ReservationID string  `json:"reservationId"`
	HotelID       string  `json:"hotelId"`
	RoomID        string  `json:"roomId"`
	GuestName     string  `json:"guestName"`
	CheckInDate   string  `json:"checkInDate"`
	CheckOutDate  string  `json:"checkOutDate"`
	TotalPrice    float64 `json:"totalPrice"`
}
