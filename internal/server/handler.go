package server

import (
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kapu/nova-discord-bot/internal/service/system"
	"github.com/kapu/nova-discord-bot/internal/util"
)

// MemberCounter 는 타입이다.
type MemberCounter interface {
	MemberCount() int
}

// OpsHandler: 운영용 HTTP 엔드포인트(/healthz, /api/stats)를 처리하는 핸들러입니다.
type OpsHandler struct {
	collector *system.Collector
	members   MemberCounter
	logger    *slog.Logger
	version   string
	commands  int
	startTime time.Time
}

// NewOpsHandler: 새로운 운영 핸들러를 생성합니다.
func NewOpsHandler(collector *system.Collector, members MemberCounter, commands int, version string, logger *slog.Logger) *OpsHandler {
	return &OpsHandler{
		collector: collector,
		members:   members,
		logger:    logger,
		version:   version,
		commands:  commands,
		startTime: time.Now(),
	}
}

// Health: 서비스 생존 여부와 버전, 가동 시간을 반환합니다.
func (h *OpsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"version":    h.version,
		"uptime":     util.FormatUptime(h.startTime, time.Now()),
		"goroutines": runtime.NumGoroutine(),
	})
}

// GetStats: 봇 통계와 프로세스 리소스 사용량을 반환합니다.
func (h *OpsHandler) GetStats(c *gin.Context) {
	memberCount := 0
	if h.members != nil {
		memberCount = h.members.MemberCount()
	}

	payload := gin.H{
		"status":   "ok",
		"version":  h.version,
		"uptime":   util.FormatUptime(h.startTime, time.Now()),
		"members":  memberCount,
		"commands": h.commands,
	}

	if h.collector != nil {
		stats, err := h.collector.GetCurrentStats(c.Request.Context())
		if err != nil {
			h.logger.Warn("Failed to collect system stats", slog.Any("error", err))
		} else {
			payload["system"] = stats
		}
	}

	c.JSON(http.StatusOK, payload)
}
