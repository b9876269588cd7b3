package domain

import "time"

// CommandType 는 타입이다.
type CommandType string

// CommandType 상수 목록.
const (
	// CommandPing 는 상수다.
	CommandPing    CommandType = "ping"
	CommandChat    CommandType = "ai-chat"
	CommandImage   CommandType = "ai-image"
	CommandRoom    CommandType = "room"
	CommandWeather CommandType = "weather"
	CommandCrypto  CommandType = "crypto"
	CommandUnknown CommandType = "unknown"
)

func (c CommandType) String() string {
	return string(c)
}

// IsValid 는 동작을 수행한다.
func (c CommandType) IsValid() bool {
	switch c {
	case CommandPing, CommandChat, CommandImage, CommandRoom, CommandWeather, CommandCrypto:
		return true
	default:
		return false
	}
}

// CommandContext: 명령어 1회 호출의 출처 정보 (호출 유저, 채널, 시각)
type CommandContext struct {
	ChannelID string
	GuildID   string
	UserID    string
	UserName  string
	Timestamp time.Time
}

// NewCommandContext 는 동작을 수행한다.
func NewCommandContext(channelID, guildID, userID, userName string) *CommandContext {
	return &CommandContext{
		ChannelID: channelID,
		GuildID:   guildID,
		UserID:    userID,
		UserName:  userName,
		Timestamp: time.Now(),
	}
}
