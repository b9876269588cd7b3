// Package excuse: 상태 로테이션에 쓰이는 핑계 문구 목록.
// 프로세스 시작 시 한 번 로드된 뒤 읽기 전용으로 유지되므로 동시 조회에 잠금이 필요 없다.
package excuse

import (
	"context"
	_ "embed" // 기본 핑계 목록 임베드를 위한 블랭크 임포트
	"log/slog"
	"math/rand"
	"strings"

	"github.com/goccy/go-json"

	"github.com/kapu/nova-discord-bot/internal/config"
	"github.com/kapu/nova-discord-bot/internal/transport"
	"github.com/kapu/nova-discord-bot/internal/util"
)

//go:embed excuses.txt
var embeddedExcuses string

// Service: 로드가 끝난 뒤에는 목록을 절대 변경하지 않는다.
type Service struct {
	excuses []string
}

// NewService: 설정된 URL에서 핑계 목록을 한 번 가져온다.
// URL이 없거나 로드에 실패하면 임베드된 기본 목록으로 대체한다.
func NewService(ctx context.Context, cfg config.ExcuseConfig, sender transport.Sender, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.URL != "" && sender != nil {
		result := sender.Send(ctx, transport.Request{URL: cfg.URL})
		if result.Succeeded {
			if excuses := parseExcuses(result.Content); len(excuses) > 0 {
				logger.Info("excuse list loaded", slog.Int("count", len(excuses)), slog.String("source", cfg.URL))
				return &Service{excuses: excuses}
			}
		}
		logger.Warn("excuse list fetch failed, using embedded fallback", slog.String("source", cfg.URL))
	}

	return &Service{excuses: parseLines(embeddedExcuses)}
}

// Random: 목록에서 임의의 핑계 하나를 돌려준다.
func (s *Service) Random() string {
	if s == nil || len(s.excuses) == 0 {
		return ""
	}
	return s.excuses[rand.Intn(len(s.excuses))]
}

// Count: 로드된 핑계 개수를 반환합니다.
func (s *Service) Count() int {
	if s == nil {
		return 0
	}
	return len(s.excuses)
}

// parseExcuses: JSON 배열([{"excuse":...}]) 우선, 실패 시 줄 단위 평문으로 해석한다.
func parseExcuses(content string) []string {
	var entries []struct {
		Excuse string `json:"excuse"`
	}
	if err := json.Unmarshal([]byte(content), &entries); err == nil {
		excuses := make([]string, 0, len(entries))
		for _, e := range entries {
			if trimmed := util.TrimSpace(e.Excuse); trimmed != "" {
				excuses = append(excuses, trimmed)
			}
		}
		if len(excuses) > 0 {
			return excuses
		}
	}
	return parseLines(content)
}

func parseLines(content string) []string {
	lines := strings.Split(content, "\n")
	excuses := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := util.TrimSpace(line); trimmed != "" {
			excuses = append(excuses, trimmed)
		}
	}
	return excuses
}
