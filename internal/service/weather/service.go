// Package weather: OpenWeatherMap 호환 API 어댑터.
package weather

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/kapu/nova-discord-bot/internal/config"
	"github.com/kapu/nova-discord-bot/internal/domain"
	"github.com/kapu/nova-discord-bot/internal/transport"
	appErrors "github.com/kapu/nova-discord-bot/pkg/errors"
)

// ErrNotConfigured 는 상수다.
const ErrNotConfigured = "Weather API key or URL is not configured!"

// Service: 도시 이름으로 현재 날씨를 조회한다.
type Service struct {
	cfg    config.WeatherConfig
	sender transport.Sender
	logger *slog.Logger
}

// NewService 는 동작을 수행한다.
func NewService(cfg config.WeatherConfig, sender transport.Sender, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cfg: cfg, sender: sender, logger: logger}
}

// weatherResponse: 응답 본문의 부분 집합. 각 필드는 독립적으로 생략될 수 있다.
type weatherResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *int     `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}

// GetWeather: 도시의 현재 날씨를 조회하여 문장과 구조화된 데이터를 돌려준다.
// 응답 필드 부재는 파싱 실패가 아니다. 해당 속성만 미설정으로 남긴다.
func (s *Service) GetWeather(ctx context.Context, city string) (domain.CommandResult, *domain.WeatherData) {
	if s.cfg.APIKey == "" || s.cfg.URL == "" {
		return domain.NewCommandResult(false, ErrNotConfigured), nil
	}

	endpoint := s.cfg.URL + url.QueryEscape(city) + "&units=metric&appid=" + s.cfg.APIKey
	result := s.sender.Send(ctx, transport.Request{URL: endpoint})
	if !result.Succeeded {
		return domain.NewCommandResult(false, result.Content), nil
	}

	var parsed weatherResponse
	if err := json.Unmarshal([]byte(result.Content), &parsed); err != nil {
		s.logger.Error("weather payload unreadable", slog.String("city", city), slog.Any("error", appErrors.NewPayloadError("weather", "main", err)))
		return domain.NewCommandResult(false, fmt.Sprintf("Failed to parse weather data: %v", err)), nil
	}

	data := &domain.WeatherData{City: parsed.Name}
	if len(parsed.Weather) > 0 {
		data.Description = parsed.Weather[0].Description
	}
	if parsed.Main != nil {
		data.Temperature = parsed.Main.Temp
		data.Humidity = parsed.Main.Humidity
	}
	if parsed.Wind != nil {
		data.WindSpeed = parsed.Wind.Speed
	}

	return domain.NewCommandResult(true, composeSentence(data)), data
}

func composeSentence(data *domain.WeatherData) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "In %s, the current weather: %s. ", data.City, data.Description)
	fmt.Fprintf(&sb, "Temperature: %.2f°C, ", deref(data.Temperature))
	fmt.Fprintf(&sb, "Humidity: %d%%, ", derefInt(data.Humidity))
	fmt.Fprintf(&sb, "Wind speed: %v m/s.", deref(data.WindSpeed))
	return sb.String()
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
