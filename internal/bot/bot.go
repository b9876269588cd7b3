package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/bwmarrin/discordgo"

	"github.com/kapu/nova-discord-bot/internal/command"
	"github.com/kapu/nova-discord-bot/internal/config"
	"github.com/kapu/nova-discord-bot/internal/constants"
	"github.com/kapu/nova-discord-bot/internal/domain"
)

// Bot: Discord 게이트웨이 세션과 명령어 디스패치를 관리하는 메인 구조체
type Bot struct {
	config    *config.Config
	logger    *slog.Logger
	session   *discordgo.Session
	registry  *command.Registry
	responder *InteractionResponder
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewSession: 봇 토큰으로 Discord 세션을 생성한다. 게이트웨이 연결은 Start에서 수행된다.
func NewSession(cfg *config.Config) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds
	return session, nil
}

// NewBot: 필요한 의존성(Dependencies)을 주입받아 새로운 Bot 인스턴스를 생성하고 초기화한다.
func NewBot(deps *Dependencies) (*Bot, error) {
	if deps == nil {
		return nil, fmt.Errorf("bot dependencies are required")
	}
	if deps.Config == nil {
		return nil, fmt.Errorf("config dependency is required")
	}
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger dependency is required")
	}
	if deps.Session == nil {
		return nil, fmt.Errorf("discord session dependency is required")
	}
	if deps.Registry == nil {
		return nil, fmt.Errorf("command registry dependency is required")
	}
	if deps.Responder == nil {
		return nil, fmt.Errorf("responder dependency is required")
	}

	bot := &Bot{
		config:    deps.Config,
		logger:    deps.Logger,
		session:   deps.Session,
		registry:  deps.Registry,
		responder: deps.Responder,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}

	bot.session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start: 봇 서비스를 시작한다. 게이트웨이 연결과 슬래시 커맨드 등록을 수행하며 Context가 종료될 때까지 대기한다.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting Discord bot...")

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord gateway connection failed: %w", err)
	}
	b.logger.Info("Discord gateway connected",
		slog.String("user", b.session.State.User.Username),
	)

	if err := b.registerSlashCommands(); err != nil {
		return fmt.Errorf("slash command registration failed: %w", err)
	}

	b.logger.Info("Bot started successfully", slog.Int("commands", b.registry.Count()))

	select {
	case <-ctx.Done():
		b.logger.Info("Context canceled, shutting down...")
		return fmt.Errorf("context canceled: %w", ctx.Err())
	case <-b.stopCh:
		b.logger.Info("Stop signal received")
		return nil
	}
}

func (b *Bot) registerSlashCommands() error {
	handlers := b.registry.All()
	sort.Slice(handlers, func(i, j int) bool { return handlers[i].Name() < handlers[j].Name() })

	for _, handler := range handlers {
		appCmd := &discordgo.ApplicationCommand{
			Name:        handler.Name(),
			Description: handler.Description(),
			Options:     commandOptions(handler.Name()),
		}

		// GuildID가 비어 있으면 전역 등록 (반영까지 시간이 걸릴 수 있다)
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.Discord.GuildID, appCmd); err != nil {
			return fmt.Errorf("failed to create command %s: %w", handler.Name(), err)
		}
		b.logger.Debug("Slash command registered", slog.String("command", handler.Name()))
	}

	return nil
}

func (b *Bot) handleInteraction(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Panic in interaction handler",
				slog.Any("panic", r),
				slog.String("command", data.Name),
			)
		}
	}()

	userID, userName := interactionUser(i)
	cmdCtx := domain.NewCommandContext(i.ChannelID, i.GuildID, userID, userName)

	b.responder.bind(cmdCtx, i.Interaction)
	defer b.responder.release(cmdCtx)

	b.logger.Info("Command received",
		slog.String("command", data.Name),
		slog.String("user_id", userID),
		slog.String("user_name", userName),
		slog.String("channel", i.ChannelID),
	)

	ctx, cancel := context.WithTimeout(context.Background(), constants.AppTimeout.Command)
	defer cancel()

	if err := b.registry.Execute(ctx, cmdCtx, data.Name, extractParams(data.Options)); err != nil {
		b.logger.Error("Failed to execute command",
			slog.String("command", data.Name),
			slog.Any("error", err),
		)
	}
}

// MemberCount: 세션 상태에 올라온 모든 길드의 멤버 수 합계를 반환한다.
func (b *Bot) MemberCount() int {
	state := b.session.State
	if state == nil {
		return 0
	}

	state.RLock()
	defer state.RUnlock()

	total := 0
	for _, guild := range state.Guilds {
		if guild == nil {
			continue
		}
		total += guild.MemberCount
	}
	return total
}

// Shutdown: 게이트웨이 세션을 닫고 봇 리소스를 정리한다.
func (b *Bot) Shutdown(_ context.Context) error {
	b.logger.Info("Shutting down bot...")

	if err := b.session.Close(); err != nil {
		b.logger.Warn("Error closing discord session", slog.Any("error", err))
	}

	b.logger.Info("Bot shutdown complete")
	close(b.doneCh)
	return nil
}

// Stop 는 동작을 수행한다.
func (b *Bot) Stop() {
	close(b.stopCh)
}

func interactionUser(i *discordgo.InteractionCreate) (string, string) {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID, i.Member.User.Username
	}
	if i.User != nil {
		return i.User.ID, i.User.Username
	}
	return "unknown", "unknown"
}
