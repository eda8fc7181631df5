package amadeus

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"avion/models"
	"avion/services/travel"

	"go.uber.org/zap"
)

const defaultResultLimit = 4

// Adapter maps provider responses into the app's travel shapes. Every
// search degrades to locally generated sample data instead of failing;
// that is a product decision for the demo, and the results are tagged
// so the UI can say so.
type Adapter struct {
	client *Client
	limit  int
	logger *zap.Logger
	now    func() time.Time
}

func NewAdapter(client *Client, limit int, logger *zap.Logger) *Adapter {
	if limit <= 0 {
		limit = defaultResultLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{client: client, limit: limit, logger: logger, now: time.Now}
}

// flightOffersResponse is the provider wire shape for
// GET /v2/shopping/flight-offers.
type flightOffersResponse struct {
	Data []flightOffer `json:"data"`
}

type flightOffer struct {
	ID          string `json:"id"`
	Itineraries []struct {
		Duration string          `json:"duration"`
		Segments []flightSegment `json:"segments"`
	} `json:"itineraries"`
	Price struct {
		Currency   string `json:"currency"`
		Total      string `json:"total"`
		GrandTotal string `json:"grandTotal"`
	} `json:"price"`
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
}

type flightSegment struct {
	Departure struct {
		IataCode string `json:"iataCode"`
		Terminal string `json:"terminal"`
		At       string `json:"at"`
	} `json:"departure"`
	Arrival struct {
		IataCode string `json:"iataCode"`
		Terminal string `json:"terminal"`
		At       string `json:"at"`
	} `json:"arrival"`
	CarrierCode string `json:"carrierCode"`
	Number      string `json:"number"`
}

// SearchFlights resolves the origin/destination to airport codes, runs
// a live flight-offers search for tomorrow, and normalizes the first N
// offers preserving the provider's ranking order.
func (a *Adapter) SearchFlights(ctx context.Context, origin, destination string) *models.FlightSearchResults {
	originCodes := travel.FindAirportCodes(origin)
	destinationCodes := travel.FindAirportCodes(destination)
	if len(originCodes) == 0 || len(destinationCodes) == 0 {
		a.logger.Warn("no airport codes for search, using sample data",
			zap.String("origin", origin), zap.String("destination", destination))
		return sampleFlightSearchResults(origin, destination, a.now())
	}

	query := models.FlightSearchQuery{
		Origin:        originCodes[0],
		Destination:   destinationCodes[0],
		DepartureDate: a.now().AddDate(0, 0, 1).Format("2006-01-02"),
		Adults:        1,
		Currency:      "USD",
		Max:           10,
	}

	params := url.Values{}
	params.Set("originLocationCode", query.Origin)
	params.Set("destinationLocationCode", query.Destination)
	params.Set("departureDate", query.DepartureDate)
	if query.ReturnDate != "" {
		params.Set("returnDate", query.ReturnDate)
	}
	params.Set("adults", strconv.Itoa(query.Adults))
	params.Set("currencyCode", query.Currency)
	params.Set("max", strconv.Itoa(query.Max))

	var resp flightOffersResponse
	if err := a.client.Get(ctx, "/v2/shopping/flight-offers", params, &resp); err != nil {
		a.logger.Warn("flight search failed, using sample data", zap.Error(err))
		return sampleFlightSearchResults(origin, destination, a.now())
	}
	if len(resp.Data) == 0 {
		a.logger.Warn("flight search returned no offers, using sample data",
			zap.String("origin", query.Origin), zap.String("destination", query.Destination))
		return sampleFlightSearchResults(origin, destination, a.now())
	}

	flights := make([]models.Flight, 0, a.limit)
	for _, offer := range resp.Data {
		if len(flights) == a.limit {
			break
		}
		if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
			continue
		}
		first := offer.Itineraries[0]
		firstSeg := first.Segments[0]
		lastSeg := first.Segments[len(first.Segments)-1]

		airlines := make([]string, 0, len(offer.ValidatingAirlineCodes))
		for _, code := range offer.ValidatingAirlineCodes {
			airlines = append(airlines, travel.GetAirlineName(code))
		}

		flights = append(flights, models.Flight{
			ID: offer.ID,
			Departure: models.FlightEndpoint{
				CityName:    travel.GetCityName(firstSeg.Departure.IataCode),
				AirportCode: firstSeg.Departure.IataCode,
				Timestamp:   firstSeg.Departure.At,
			},
			Arrival: models.FlightEndpoint{
				CityName:    travel.GetCityName(lastSeg.Arrival.IataCode),
				AirportCode: lastSeg.Arrival.IataCode,
				Timestamp:   lastSeg.Arrival.At,
			},
			Airlines:      airlines,
			PriceInUSD:    parsePrice(offer.Price.Total),
			NumberOfStops: len(first.Segments) - 1,
		})
	}

	return &models.FlightSearchResults{Flights: flights, Mode: "oneway"}
}

// flightStatusResponse is the provider wire shape for
// GET /v2/schedule/flights.
type flightStatusResponse struct {
	Data []struct {
		Flight struct {
			Number   string `json:"number"`
			IataCode string `json:"iataCode"`
		} `json:"flight"`
		Departure statusPoint `json:"departure"`
		Arrival   statusPoint `json:"arrival"`
	} `json:"data"`
}

type statusPoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal"`
	At       string `json:"at"`
}

// FlightStatus looks up a scheduled flight by number and date. The
// provider carries no gate or distance data on this endpoint, so those
// fields get fixed placeholders.
func (a *Adapter) FlightStatus(ctx context.Context, flightNumber, date string) *models.FlightStatus {
	params := url.Values{}
	params.Set("flightNumber", flightNumber)
	params.Set("date", date)

	var resp flightStatusResponse
	if err := a.client.Get(ctx, "/v2/schedule/flights", params, &resp); err != nil {
		a.logger.Warn("flight status lookup failed, using sample data",
			zap.String("flightNumber", flightNumber), zap.Error(err))
		return sampleFlightStatus(flightNumber, date)
	}
	if len(resp.Data) == 0 {
		a.logger.Warn("no status found for flight, using sample data",
			zap.String("flightNumber", flightNumber))
		return sampleFlightStatus(flightNumber, date)
	}

	d := resp.Data[0]
	carrier := strings.ToUpper(flightNumber)
	if len(carrier) >= 2 {
		carrier = carrier[:2]
	}

	return &models.FlightStatus{
		FlightNumber:         fmt.Sprintf("%s%s", carrier, d.Flight.Number),
		Departure:            toStatusEndpoint(d.Departure),
		Arrival:              toStatusEndpoint(d.Arrival),
		TotalDistanceInMiles: 0,
	}
}

func toStatusEndpoint(p statusPoint) models.StatusEndpoint {
	terminal := p.Terminal
	if terminal == "" {
		terminal = "TBD"
	}
	return models.StatusEndpoint{
		CityName:    travel.GetCityName(p.IataCode),
		AirportCode: p.IataCode,
		AirportName: travel.GetAirportName(p.IataCode),
		Timestamp:   p.At,
		Terminal:    terminal,
		Gate:        "TBD",
	}
}

// parsePrice converts the provider's decimal string to float64. Bad or
// missing values map to zero rather than failing the search.
func parsePrice(s string) float64 {
	if s == "" {
		return 0
	}
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return price
}
