// Package crypto: 암호화폐 현물 시세 API 어댑터.
package crypto

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goccy/go-json"

	"github.com/kapu/nova-discord-bot/internal/config"
	"github.com/kapu/nova-discord-bot/internal/domain"
	"github.com/kapu/nova-discord-bot/internal/transport"
	appErrors "github.com/kapu/nova-discord-bot/pkg/errors"
)

// 사용자에게 그대로 노출되는 결과 문구. 테스트가 문구 분기하므로 바꾸면 안 된다.
const (
	ErrNotConfigured   = "Crypto API URL is not configured!"
	msgPriceMissing    = "Could not fetch price for %s."
	msgInvalidResponse = "Could not fetch price for %s (invalid API response)."
	msgUnexpectedError = "Could not fetch price for %s (unexpected error)."
)

// Service: 심볼/통화쌍의 마지막 체결가를 조회한다.
type Service struct {
	cfg    config.CryptoConfig
	sender transport.Sender
	logger *slog.Logger
}

// NewService 는 동작을 수행한다.
func NewService(cfg config.CryptoConfig, sender transport.Sender, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cfg: cfg, sender: sender, logger: logger}
}

type tickerResponse struct {
	Result struct {
		List []struct {
			LastPrice string `json:"lastPrice"`
		} `json:"list"`
	} `json:"result"`
}

// GetPrice: 심볼을 대문자로 정규화한 뒤 {base URL}{SYMBOL}{CURRENCY}로 GET 요청을 보낸다.
// 성공 시 가격 문자열을, 실패 시 원인별로 구분되는 고정 문구를 돌려준다.
func (s *Service) GetPrice(ctx context.Context, symbol, currency string) (result domain.CommandResult) {
	symbol = strings.ToUpper(symbol)

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("price lookup panicked", slog.String("symbol", symbol), slog.Any("panic", r))
			result = domain.NewCommandResult(false, fmt.Sprintf(msgUnexpectedError, symbol))
		}
	}()

	if s.cfg.BaseURL == "" {
		return domain.NewCommandResult(false, ErrNotConfigured)
	}

	sent := s.sender.Send(ctx, transport.Request{URL: s.cfg.BaseURL + symbol + currency})
	if !sent.Succeeded {
		return domain.NewCommandResult(false, sent.Content)
	}

	var parsed tickerResponse
	if err := json.Unmarshal([]byte(sent.Content), &parsed); err != nil {
		s.logger.Error("ticker payload unreadable", slog.String("symbol", symbol), slog.Any("error", appErrors.NewPayloadError("crypto", "lastPrice", err)))
		return domain.NewCommandResult(false, fmt.Sprintf(msgInvalidResponse, symbol))
	}

	if len(parsed.Result.List) == 0 || parsed.Result.List[0].LastPrice == "" {
		return domain.NewCommandResult(false, fmt.Sprintf(msgPriceMissing, symbol))
	}

	return domain.NewCommandResult(true, parsed.Result.List[0].LastPrice)
}
