package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"avion/utils"
)

const openMeteoURL = "https://api.open-meteo.com/v1/forecast"

// WeatherService fetches current conditions from Open-Meteo. Like the
// travel search adapters it degrades to sample data instead of failing,
// so a weather hiccup never derails a conversation.
type WeatherService struct {
	HTTPClient *http.Client
	Logger     *zap.Logger
	BaseURL    string
}

func NewWeatherService() *WeatherService {
	return &WeatherService{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Logger:     utils.GetLogger().Named("weather"),
		BaseURL:    openMeteoURL,
	}
}

// CurrentWeather returns the Open-Meteo forecast document for a location.
func (w *WeatherService) CurrentWeather(ctx context.Context, latitude, longitude float64) map[string]interface{} {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", latitude))
	params.Set("longitude", fmt.Sprintf("%.4f", longitude))
	params.Set("current", "temperature_2m,weathercode")
	params.Set("hourly", "temperature_2m")
	params.Set("daily", "sunrise,sunset")
	params.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return w.sampleWeather(latitude, longitude)
	}
	resp, err := w.HTTPClient.Do(req)
	if err != nil {
		w.Logger.Warn("Weather request failed, using sample data", zap.Error(err))
		return w.sampleWeather(latitude, longitude)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		w.Logger.Warn("Weather request rejected, using sample data",
			zap.Int("status", resp.StatusCode))
		return w.sampleWeather(latitude, longitude)
	}

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		w.Logger.Warn("Weather response unreadable, using sample data", zap.Error(err))
		return w.sampleWeather(latitude, longitude)
	}
	return out
}

func (w *WeatherService) sampleWeather(latitude, longitude float64) map[string]interface{} {
	return map[string]interface{}{
		"latitude":  latitude,
		"longitude": longitude,
		"current": map[string]interface{}{
			"temperature_2m": 21.5,
			"weathercode":    1,
		},
		"isSampleData": true,
	}
}
