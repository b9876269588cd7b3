package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/kapu/nova-discord-bot/internal/domain"
)

// commandOptions: 명령어 이름별 슬래시 커맨드 옵션 스키마를 돌려준다.
// 옵션 이름은 커맨드 계층이 params 맵에서 읽는 키와 일치해야 한다.
func commandOptions(name string) []*discordgo.ApplicationCommandOption {
	switch domain.CommandType(name) {
	case domain.CommandChat:
		return []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "prompt",
				Description: "Message for the AI",
				Required:    true,
			},
		}
	case domain.CommandImage:
		return []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "prompt",
				Description: "What the image should show",
				Required:    true,
			},
		}
	case domain.CommandWeather:
		return []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "city",
				Description: "City to look up",
				Required:    true,
			},
		}
	case domain.CommandCrypto:
		return []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "symbol",
				Description: "Coin symbol (default BTC)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "currency",
				Description: "Quote currency (default USDT)",
			},
		}
	case domain.CommandRoom:
		return []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "video_url",
				Description: "Video to preload in the room",
			},
		}
	default:
		return nil
	}
}

func extractParams(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]any {
	params := make(map[string]any, len(options))
	for _, opt := range options {
		if opt == nil {
			continue
		}
		switch opt.Type {
		case discordgo.ApplicationCommandOptionString:
			params[opt.Name] = opt.StringValue()
		case discordgo.ApplicationCommandOptionInteger:
			params[opt.Name] = opt.IntValue()
		case discordgo.ApplicationCommandOptionBoolean:
			params[opt.Name] = opt.BoolValue()
		default:
			params[opt.Name] = opt.Value
		}
	}
	return params
}
