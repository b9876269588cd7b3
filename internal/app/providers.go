package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/kapu/nova-discord-bot/internal/adapter"
	"github.com/kapu/nova-discord-bot/internal/bot"
	"github.com/kapu/nova-discord-bot/internal/command"
	"github.com/kapu/nova-discord-bot/internal/config"
	"github.com/kapu/nova-discord-bot/internal/constants"
	"github.com/kapu/nova-discord-bot/internal/httpclient"
	"github.com/kapu/nova-discord-bot/internal/server"
	"github.com/kapu/nova-discord-bot/internal/service/crypto"
	"github.com/kapu/nova-discord-bot/internal/service/excuse"
	"github.com/kapu/nova-discord-bot/internal/service/openai"
	"github.com/kapu/nova-discord-bot/internal/service/probe"
	"github.com/kapu/nova-discord-bot/internal/service/system"
	"github.com/kapu/nova-discord-bot/internal/service/watch2gether"
	"github.com/kapu/nova-discord-bot/internal/service/weather"
	"github.com/kapu/nova-discord-bot/internal/status"
	"github.com/kapu/nova-discord-bot/internal/transport"
)

// BuildRuntime: 설정과 로거로부터 전체 애플리케이션 그래프를 조립한다.
// 단일 전송 클라이언트를 모든 외부 API 서비스가 공유한다.
func BuildRuntime(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*BotRuntime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	httpClient := httpclient.New(httpclient.Config{
		Timeout:        constants.HTTPConfig.RequestTimeout,
		ConnectTimeout: constants.HTTPConfig.ConnectTimeout,
		HTTP2Enabled:   true,
	})
	sender := transport.NewClient(httpClient, logger)

	openaiSvc := openai.NewService(cfg.OpenAI, sender, logger)
	weatherSvc := weather.NewService(cfg.Weather, sender, logger)
	cryptoSvc := crypto.NewService(cfg.Crypto, sender, logger)
	roomSvc := watch2gether.NewService(cfg.Watch2Gether, sender, logger)
	excuseSvc := excuse.NewService(ctx, cfg.Excuse, sender, logger)
	prober := probe.NewProber(constants.ProbeConfig.Address, constants.ProbeConfig.Timeout)

	formatter := adapter.NewResponseFormatter(cfg.Version)

	session, err := bot.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build discord session: %w", err)
	}
	responder := bot.NewInteractionResponder(session, formatter, logger)

	registry := buildRegistry(&command.Dependencies{
		Chatter:   openaiSvc,
		Images:    openaiSvc,
		Weather:   weatherSvc,
		Prices:    cryptoSvc,
		Rooms:     roomSvc,
		Prober:    prober,
		Responder: responder,
		Formatter: formatter,
		Logger:    logger,
	})

	discordBot, err := bot.NewBot(&bot.Dependencies{
		Config:    cfg,
		Logger:    logger,
		Session:   session,
		Registry:  registry,
		Responder: responder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build bot: %w", err)
	}

	presence := bot.NewPresenceUpdater(session)
	rotator := status.NewRotator(cryptoSvc, excuseSvc, presence, discordBot, logger)

	opsHandler := server.NewOpsHandler(system.NewCollector(), discordBot, registry.Count(), cfg.Version, logger)
	router := server.NewRouter(logger, opsHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	opsServer := &http.Server{
		Addr:              addr,
		Handler:           server.WrapH2C(router),
		ReadHeaderTimeout: constants.ServerTimeout.ReadHeader,
		ReadTimeout:       constants.ServerTimeout.Read,
		WriteTimeout:      constants.ServerTimeout.Write,
		IdleTimeout:       constants.ServerTimeout.Idle,
		MaxHeaderBytes:    constants.ServerTimeout.MaxHeaderBytes,
	}

	return &BotRuntime{
		Config:    cfg,
		Logger:    logger,
		Bot:       discordBot,
		Rotator:   rotator,
		OpsServer: opsServer,
		OpsAddr:   addr,
	}, nil
}

func buildRegistry(deps *command.Dependencies) *command.Registry {
	registry := command.NewRegistry()

	commandsList := []command.Command{
		command.NewPingCommand(deps),
		command.NewChatCommand(deps),
		command.NewImageCommand(deps),
		command.NewRoomCommand(deps),
		command.NewWeatherCommand(deps),
		command.NewCryptoCommand(deps),
	}
	for _, cmd := range commandsList {
		registry.Register(cmd)
	}

	return registry
}
