package amadeus

import (
	"context"
	"net/url"
	"strconv"

	"avion/models"
	"avion/services/travel"

	"go.uber.org/zap"
)

// hotelOffersResponse is the provider wire shape for
// GET /v3/shopping/hotel-offers.
type hotelOffersResponse struct {
	Data []struct {
		Hotel struct {
			HotelID  string `json:"hotelId"`
			Name     string `json:"name"`
			CityCode string `json:"cityCode"`
			Rating   string `json:"rating"`
			Address  struct {
				Lines    []string `json:"lines"`
				CityName string   `json:"cityName"`
			} `json:"address"`
		} `json:"hotel"`
		Available bool `json:"available"`
		Offers    []struct {
			Room struct {
				TypeEstimated struct {
					Category string `json:"category"`
				} `json:"typeEstimated"`
			} `json:"room"`
			Price struct {
				Total    string `json:"total"`
				Currency string `json:"currency"`
			} `json:"price"`
		} `json:"offers"`
	} `json:"data"`
}

// SearchHotels runs a live hotel-offers search for the city and stay
// window, normalizing to the app's hotel shape. Nightly rate is derived
// from the offer total and the number of nights.
func (a *Adapter) SearchHotels(ctx context.Context, query models.HotelSearchQuery) *models.HotelSearchResults {
	cityCode := query.CityCode
	if codes := travel.FindAirportCodes(cityCode); len(codes) > 0 {
		cityCode = codes[0]
	}

	nights := travel.StayNights(query.CheckInDate, query.CheckOutDate)

	params := url.Values{}
	params.Set("cityCode", cityCode)
	params.Set("checkInDate", query.CheckInDate)
	params.Set("checkOutDate", query.CheckOutDate)
	params.Set("adults", strconv.Itoa(maxInt(query.Adults, 1)))
	params.Set("roomQuantity", strconv.Itoa(maxInt(query.RoomQuantity, 1)))
	params.Set("currency", orDefault(query.Currency, "USD"))

	var resp hotelOffersResponse
	if err := a.client.Get(ctx, "/v3/shopping/hotel-offers", params, &resp); err != nil {
		a.logger.Warn("hotel search failed, using sample data",
			zap.String("city", query.CityCode), zap.Error(err))
		return sampleHotelSearchResults(query.CityCode, nights)
	}
	if len(resp.Data) == 0 {
		a.logger.Warn("hotel search returned no offers, using sample data",
			zap.String("city", cityCode))
		return sampleHotelSearchResults(query.CityCode, nights)
	}

	hotels := make([]models.Hotel, 0, a.limit)
	for _, item := range resp.Data {
		if len(hotels) == a.limit {
			break
		}
		if !item.Available || len(item.Offers) == 0 {
			continue
		}
		offer := item.Offers[0]

		total := parsePrice(offer.Price.Total)
		perNight := total
		if nights > 0 {
			perNight = total / float64(nights)
		}

		address := item.Hotel.Address.CityName
		if len(item.Hotel.Address.Lines) > 0 {
			address = item.Hotel.Address.Lines[0] + ", " + address
		}
		if address == "" {
			address = travel.GetCityName(item.Hotel.CityCode)
		}

		roomType := offer.Room.TypeEstimated.Category
		if roomType == "" {
			roomType = "Standard Room"
		}

		hotels = append(hotels, models.Hotel{
			ID:            item.Hotel.HotelID,
			Name:          item.Hotel.Name,
			Address:       address,
			PricePerNight: perNight,
			TotalNights:   nights,
			TotalPrice:    total,
			Rating:        parseRating(item.Hotel.Rating),
			Amenities:     []string{"Free WiFi"},
			RoomType:      roomType,
		})
	}

	return &models.HotelSearchResults{Hotels: hotels}
}

// parseRating maps the provider's star-rating string to a 1-5 float,
// defaulting to 4.0 when absent.
func parseRating(s string) float64 {
	if s == "" {
		return 4.0
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil || r <= 0 {
		return 4.0
	}
	if r > 5 {
		r = 5
	}
	return r
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
