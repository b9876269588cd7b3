// Package openai: 채팅 완성 및 이미지 생성 API 어댑터.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/kapu/nova-discord-bot/internal/config"
	"github.com/kapu/nova-discord-bot/internal/domain"
	"github.com/kapu/nova-discord-bot/internal/transport"
	appErrors "github.com/kapu/nova-discord-bot/pkg/errors"
)

// 사용자에게 그대로 노출되는 결과 문구. 테스트가 문구 분기하므로 바꾸면 안 된다.
const (
	ErrChatNotConfigured    = "ChatGPT API key or URL is not configured!"
	ErrImageNotConfigured   = "Image API key or URL is not configured!"
	ErrChatDeserialization  = "Could not deserialize response from ChatGPT API!"
	ErrImageDeserialization = "Could not deserialize response from image API!"
	MsgImageReady           = "Here is your generated image: %s"
)

// Service: OpenAI 호환 API에 대한 채팅 완성 및 이미지 생성 요청을 처리한다.
// 설정은 호출 시마다 읽기만 하므로 동시 사용에 안전하다.
type Service struct {
	cfg    config.OpenAIConfig
	sender transport.Sender
	logger *slog.Logger
}

// NewService 는 동작을 수행한다.
func NewService(cfg config.OpenAIConfig, sender transport.Sender, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cfg: cfg, sender: sender, logger: logger}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// ChatComplete: 프롬프트를 채팅 완성 API로 보내고 첫 번째 완성 텍스트를 돌려준다.
// 키나 URL이 비어 있으면 네트워크 호출 없이 설정 에러 결과를 반환한다.
func (s *Service) ChatComplete(ctx context.Context, prompt string) domain.CommandResult {
	if s.cfg.APIKey == "" || s.cfg.ChatURL == "" {
		s.logger.Debug("chat completion skipped", slog.Any("error", appErrors.NewConfigError("openai", "api_key/chat_url")))
		return domain.NewCommandResult(false, ErrChatNotConfigured)
	}

	result := s.sender.Send(ctx, transport.Request{
		URL:    s.cfg.ChatURL,
		Method: http.MethodPost,
		Headers: []transport.Header{
			{Name: "Authorization", Value: "Bearer " + s.cfg.APIKey},
			{Name: "Content-Type", Value: "application/json"},
		},
		JSONBody: chatRequest{
			Model:    s.cfg.ChatModel,
			Messages: []chatMessage{{Role: "user", Content: prompt}},
		},
	})
	if !result.Succeeded {
		return domain.NewCommandResult(false, strings.TrimLeft(result.Content, "\n"))
	}

	var parsed chatResponse
	if err := json.Unmarshal([]byte(result.Content), &parsed); err != nil {
		s.logger.Error("chat completion payload unreadable", slog.Any("error", appErrors.NewPayloadError("openai", "choices", err)))
		return domain.NewCommandResult(false, ErrChatDeserialization)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return domain.NewCommandResult(false, ErrChatDeserialization)
	}

	return domain.NewCommandResult(true, parsed.Choices[0].Message.Content)
}

// GenerateImage: 프롬프트로 이미지 1장을 생성하고 URL이 담긴 메시지를 돌려준다.
func (s *Service) GenerateImage(ctx context.Context, prompt string) domain.CommandResult {
	if s.cfg.APIKey == "" || s.cfg.ImageURL == "" {
		return domain.NewCommandResult(false, ErrImageNotConfigured)
	}

	result := s.sender.Send(ctx, transport.Request{
		URL:    s.cfg.ImageURL,
		Method: http.MethodPost,
		Headers: []transport.Header{
			{Name: "Authorization", Value: "Bearer " + s.cfg.APIKey},
			{Name: "Content-Type", Value: "application/json"},
		},
		JSONBody: imageRequest{
			Model:  s.cfg.ImageModel,
			Prompt: prompt,
			N:      1,
			Size:   "1024x1024",
		},
	})
	if !result.Succeeded {
		return domain.NewCommandResult(false, result.Content)
	}

	var parsed imageResponse
	if err := json.Unmarshal([]byte(result.Content), &parsed); err != nil {
		s.logger.Error("image generation payload unreadable", slog.Any("error", appErrors.NewPayloadError("openai", "data", err)))
		return domain.NewCommandResult(false, ErrImageDeserialization)
	}
	if len(parsed.Data) == 0 || parsed.Data[0].URL == "" {
		return domain.NewCommandResult(false, ErrImageDeserialization)
	}

	return domain.NewCommandResult(true, fmt.Sprintf(MsgImageReady, parsed.Data[0].URL))
}
