package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/kapu/nova-discord-bot/internal/bot"
	"github.com/kapu/nova-discord-bot/internal/config"
	"github.com/kapu/nova-discord-bot/internal/constants"
	"github.com/kapu/nova-discord-bot/internal/status"
)

// BotRuntime 는 타입이다.
type BotRuntime struct {
	Config *config.Config
	Logger *slog.Logger

	Bot       *bot.Bot
	Rotator   *status.Rotator
	OpsServer *http.Server
	OpsAddr   string
}

// Run: 봇, 상태 로테이터, 운영 HTTP 서버를 기동하고 종료 신호까지 대기한다.
// 구성 요소 하나가 실패하면 나머지도 함께 내려간다.
func (r *BotRuntime) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := r.Bot.Start(groupCtx); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		return nil
	})

	group.Go(func() error {
		r.Logger.Info("Ops HTTP server started", slog.String("addr", r.OpsAddr))
		if err := r.OpsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.AppTimeout.Shutdown)
		defer cancel()
		if err := r.OpsServer.Shutdown(shutdownCtx); err != nil {
			r.Logger.Error("Ops HTTP server shutdown error", slog.Any("error", err))
		}
		return nil
	})

	r.Rotator.Start(groupCtx)
	r.Logger.Info("Bot started, waiting for signals...")

	err := group.Wait()

	r.Logger.Info("Shutting down gracefully...")
	r.Rotator.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.AppTimeout.Shutdown)
	defer cancel()
	if shutdownErr := r.Bot.Shutdown(shutdownCtx); shutdownErr != nil {
		r.Logger.Error("Error during shutdown", slog.Any("error", shutdownErr))
	}

	r.Logger.Info("Shutdown complete")

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
