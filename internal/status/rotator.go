// Package status: 봇의 표시 상태 텍스트를 주기적으로 교체하는 로테이터.
package status

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sourcegraph/conc/panics"

	"github.com/kapu/nova-discord-bot/internal/constants"
	"github.com/kapu/nova-discord-bot/internal/domain"
	"github.com/kapu/nova-discord-bot/internal/util"
)

// 슬롯 실패 시 대체 문구.
const fallbackPriceText = "crypto price unavailable"

// PriceSource: 상태 텍스트용 시세를 제공하는 능력 (커맨드와 같은 어댑터를 읽기 전용으로 공유)
type PriceSource interface {
	GetPrice(ctx context.Context, symbol, currency string) domain.CommandResult
}

// ExcuseSource: 임의의 핑계 문구를 제공하는 능력
type ExcuseSource interface {
	Random() string
}

// Presence: 산출된 상태 텍스트를 게이트웨이에 푸시하는 능력
type Presence interface {
	UpdatePresence(ctx context.Context, entry domain.StatusEntry) error
}

// MemberCounter: 연결된 모든 커뮤니티의 멤버 수 합계를 제공하는 능력
type MemberCounter interface {
	MemberCount() int
}

// Rotator: 고정 주기로 일곱 개 슬롯을 순환하며 상태 텍스트를 푸시하는 백그라운드 작업
// 슬롯 인덱스는 로테이터 전용이다. 다른 컴포넌트는 읽지도 쓰지도 않는다.
type Rotator struct {
	prices   PriceSource
	excuses  ExcuseSource
	presence Presence
	members  MemberCounter
	logger   *slog.Logger

	interval  time.Duration
	startTime time.Time
	index     int

	ticker *time.Ticker
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewRotator 는 동작을 수행한다.
func NewRotator(prices PriceSource, excuses ExcuseSource, presence Presence, members MemberCounter, logger *slog.Logger) *Rotator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Rotator{
		prices:    prices,
		excuses:   excuses,
		presence:  presence,
		members:   members,
		logger:    logger,
		interval:  constants.StatusRotation.Interval,
		startTime: time.Now(),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start: 로테이션을 시작한다. 틱은 단일 고루틴에서 순차 처리되므로 틱끼리 겹치지 않는다.
func (r *Rotator) Start(ctx context.Context) {
	r.ticker = time.NewTicker(r.interval)

	r.logger.Info("status rotator started",
		slog.Duration("interval", r.interval),
		slog.Int("slots", constants.StatusRotation.SlotCount))

	go func() {
		defer close(r.doneCh)
		for {
			select {
			case <-r.ticker.C:
				r.runTick(ctx)
			case <-r.stopCh:
				r.logger.Info("status rotator stopped")
				return
			case <-ctx.Done():
				r.logger.Info("status rotator context canceled")
				return
			}
		}
	}()
}

// Stop: 로테이션을 중단하고 고루틴 종료를 기다린다.
func (r *Rotator) Stop() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
	close(r.stopCh)
	<-r.doneCh
}

// runTick: 슬롯 하나를 계산해 푸시한다. 에러든 패닉이든 경고만 남기고 다음 틱은 계속된다.
func (r *Rotator) runTick(ctx context.Context) {
	slot := r.index % constants.StatusRotation.SlotCount
	r.index++

	var err error
	var pc panics.Catcher
	pc.Try(func() {
		entry := r.computeSlot(ctx, slot)
		err = r.presence.UpdatePresence(ctx, entry)
	})

	if recovered := pc.Recovered(); recovered != nil {
		r.logger.Warn("status slot panicked", slog.Int("slot", slot), slog.Any("panic", recovered.Value))
		return
	}
	if err != nil {
		r.logger.Warn("status push failed", slog.Int("slot", slot), slog.Any("error", err))
	}
}

func (r *Rotator) computeSlot(ctx context.Context, slot int) domain.StatusEntry {
	now := time.Now()

	switch slot {
	case 0:
		return domain.StatusEntry{Text: r.priceText(ctx), Kind: domain.StatusWatching}
	case 1:
		return domain.StatusEntry{Text: now.Format("Monday, 02 Jan 2006"), Kind: domain.StatusWatching}
	case 2:
		return domain.StatusEntry{Text: now.Format("15:04"), Kind: domain.StatusWatching}
	case 3:
		return domain.StatusEntry{Text: "Uptime: " + util.FormatUptime(r.startTime, now), Kind: domain.StatusPlaying}
	case 4:
		return domain.StatusEntry{Text: fmt.Sprintf("over %d members", r.members.MemberCount()), Kind: domain.StatusWatching}
	case 5:
		return domain.StatusEntry{
			Text: util.TruncateString(r.excuses.Random(), constants.StatusRotation.MaxRunes),
			Kind: domain.StatusListening,
		}
	default:
		return domain.StatusEntry{Text: constants.StatusRotation.BrandLabel, Kind: domain.StatusPlaying}
	}
}

func (r *Rotator) priceText(ctx context.Context) string {
	result := r.prices.GetPrice(ctx, "BTC", "USDT")
	if !result.Success {
		return fallbackPriceText
	}
	text := fmt.Sprintf("BTC/USDT: %s", result.Message)
	return util.TruncateString(text, constants.StatusRotation.MaxRunes)
}
