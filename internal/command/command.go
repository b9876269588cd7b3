package command

import (
	"context"
	"time"

	"log/slog"

	"github.com/kapu/nova-discord-bot/internal/adapter"
	"github.com/kapu/nova-discord-bot/internal/domain"
)

// Command: 봇 명령어를 처리하는 인터페이스 정의 (이름, 설명, 실행 로직)
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error
}

// Responder: 프론트엔드가 구현하는 응답 채널.
// Acknowledge는 지연 허용 피드백(작업 중 표시)을, Finalize는 최종 응답을 전달한다.
// 한 명령 안에서 Finalize는 반드시 Acknowledge 뒤에 온다.
type Responder interface {
	Acknowledge(ctx context.Context, cmdCtx *domain.CommandContext) error
	Finalize(ctx context.Context, cmdCtx *domain.CommandContext, reply *domain.Reply) error
}

// Chatter: 프롬프트를 받아 완성 텍스트 결과를 돌려주는 능력
type Chatter interface {
	ChatComplete(ctx context.Context, prompt string) domain.CommandResult
}

// ImageGenerator: 프롬프트를 받아 생성 이미지 결과를 돌려주는 능력
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) domain.CommandResult
}

// WeatherProvider: 도시 이름으로 날씨 결과를 돌려주는 능력
type WeatherProvider interface {
	GetWeather(ctx context.Context, city string) (domain.CommandResult, *domain.WeatherData)
}

// PriceProvider: 심볼/통화쌍의 시세 결과를 돌려주는 능력
type PriceProvider interface {
	GetPrice(ctx context.Context, symbol, currency string) domain.CommandResult
}

// RoomCreator: 공유 시청방 생성 결과를 돌려주는 능력
type RoomCreator interface {
	CreateRoom(ctx context.Context, videoURL string) domain.CommandResult
}

// LatencyProber: 외부 호스트 왕복 시간을 측정하는 능력
type LatencyProber interface {
	Measure(ctx context.Context) (time.Duration, error)
}

// Dependencies: 명령어 실행에 필요한 외부 서비스 및 유틸리티 의존성 모음
type Dependencies struct {
	Chatter   Chatter
	Images    ImageGenerator
	Weather   WeatherProvider
	Prices    PriceProvider
	Rooms     RoomCreator
	Prober    LatencyProber
	Responder Responder
	Formatter *adapter.ResponseFormatter
	Logger    *slog.Logger
}
