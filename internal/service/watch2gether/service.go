// Package watch2gether: 공유 시청방 생성 API 어댑터.
package watch2gether

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/kapu/nova-discord-bot/internal/config"
	"github.com/kapu/nova-discord-bot/internal/domain"
	"github.com/kapu/nova-discord-bot/internal/transport"
	appErrors "github.com/kapu/nova-discord-bot/pkg/errors"
)

// 사용자에게 그대로 노출되는 결과 문구.
const (
	ErrNotConfigured   = "Watch2Gether is not configured!"
	ErrDeserialization = "Could not deserialize response from Watch2Gether API!"
)

// Service: 공유 시청방을 생성하고 입장 URL을 돌려준다.
type Service struct {
	cfg    config.Watch2GetherConfig
	sender transport.Sender
	logger *slog.Logger
}

// NewService 는 동작을 수행한다.
func NewService(cfg config.Watch2GetherConfig, sender transport.Sender, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cfg: cfg, sender: sender, logger: logger}
}

type createRoomRequest struct {
	APIKey string `json:"w2g_api_key"`
	Share  string `json:"share"`
}

type createRoomResponse struct {
	StreamKey string `json:"streamkey"`
}

// CreateRoom: 방을 생성한다. 성공 플래그는 전송 결과만 따른다.
// 전송은 성공했으나 streamkey 파싱에 실패하면 플래그는 true로 두고 메시지만
// 역직렬화 에러 문구로 바뀐다. 관측된 원본 동작을 그대로 유지한다.
func (s *Service) CreateRoom(ctx context.Context, videoURL string) domain.CommandResult {
	if s.cfg.APIKey == "" || s.cfg.CreateRoomURL == "" || s.cfg.ShowRoomURL == "" {
		return domain.NewCommandResult(false, ErrNotConfigured)
	}

	result := s.sender.Send(ctx, transport.Request{
		URL:    s.cfg.CreateRoomURL,
		Method: http.MethodPost,
		Headers: []transport.Header{
			{Name: "Accept", Value: "application/json"},
			{Name: "Content-Type", Value: "application/json"},
		},
		JSONBody: createRoomRequest{APIKey: s.cfg.APIKey, Share: videoURL},
	})
	if !result.Succeeded {
		return domain.NewCommandResult(false, result.Content)
	}

	message := ErrDeserialization
	var parsed createRoomResponse
	if err := json.Unmarshal([]byte(result.Content), &parsed); err != nil {
		s.logger.Error("room creation payload unreadable", slog.Any("error", appErrors.NewPayloadError("watch2gether", "streamkey", err)))
	} else if parsed.StreamKey != "" {
		message = s.cfg.ShowRoomURL + parsed.StreamKey
	}

	return domain.NewCommandResult(result.Succeeded, message)
}
