package bot

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/kapu/nova-discord-bot/internal/command"
	"github.com/kapu/nova-discord-bot/internal/config"
)

// Dependencies 는 타입이다.
type Dependencies struct {
	Config    *config.Config
	Logger    *slog.Logger
	Session   *discordgo.Session
	Registry  *command.Registry
	Responder *InteractionResponder
}
