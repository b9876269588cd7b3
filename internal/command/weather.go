package command

import (
	"context"
	"fmt"

	"github.com/kapu/nova-discord-bot/internal/adapter"
	"github.com/kapu/nova-discord-bot/internal/domain"
)

// WeatherCommand: 도시의 현재 날씨를 조회해 보여주는 명령어
type WeatherCommand struct {
	BaseCommand
}

// NewWeatherCommand: WeatherCommand 인스턴스를 생성합니다.
func NewWeatherCommand(deps *Dependencies) *WeatherCommand {
	return &WeatherCommand{BaseCommand: NewBaseCommand(deps)}
}

// Name: 명령어의 고유 식별자('weather')를 반환합니다.
func (c *WeatherCommand) Name() string {
	return domain.CommandWeather.String()
}

// Description: 명령어에 대한 사용자용 설명을 반환합니다.
func (c *WeatherCommand) Description() string {
	return "Current weather for a city"
}

// Execute: 날씨 API를 1회 호출하고 결과를 렌더링합니다.
func (c *WeatherCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.ensureDeps(); err != nil {
		return err
	}

	city, _ := params["city"].(string)

	return c.respond(ctx, cmdCtx, func() *domain.Reply {
		result, _ := c.Deps().Weather.GetWeather(ctx, city)
		c.logCompletion(c.Name(), cmdCtx, city, result.Success)
		return c.Deps().Formatter.FormatResult(adapter.TitleWeather, result)
	})
}

func (c *WeatherCommand) ensureDeps() error {
	if err := c.EnsureBaseDeps(); err != nil {
		return err
	}
	if c.Deps().Weather == nil {
		return fmt.Errorf("weather command services not configured")
	}
	return nil
}
