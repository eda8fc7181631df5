package models

// Hotel is a single lodging offer surfaced to the chat UI.
type Hotel struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	PricePerNight float64  `json:"pricePerNight"`
	TotalNights   int      `json:"totalNights"`
	TotalPrice    float64  `json:"totalPrice"`
	Rating        float64  `json:"rating"`
	Amenities     []string `json:"amenities"`
	RoomType      string   `json:"roomType"`
	ImageURL      string   `json:"imageUrl"`
}

// HotelSearchResults is the searchHotels tool payload.
type HotelSearchResults struct {
	Hotels       []Hotel `json:"hotels"`
	IsSampleData bool    `json:"isSampleData,omitempty"`
}

// HotelSearchQuery captures one hotel search. Immutable once built.
type HotelSearchQuery struct {
	CityCode     string
	CheckInDate  string
	CheckOutDate string
	Adults       int
	RoomQuantity int
	Currency     string
}

// Room is a bookable room option for a selected hotel.
type Room struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	PricePerNight float64  `json:"pricePerNight"`
	Amenities     []string `json:"amenities"`
	Refundable    bool     `json:"refundable"`
	ImageURL      string   `json:"imageUrl"`
}

// RoomSelection is the selectHotelRoom tool payload.
type RoomSelection struct {
	HotelID string `json:"hotelId"`
	Rooms   []Room `json:"rooms"`
}
