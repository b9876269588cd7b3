package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/kapu/nova-discord-bot/internal/domain"
)

// presenceGateway 는 타입이다.
type presenceGateway interface {
	UpdateStatusComplex(usd discordgo.UpdateStatusData) error
}

// PresenceUpdater: 상태 로테이터의 틱 결과를 Discord 프레즌스 갱신으로 변환한다.
type PresenceUpdater struct {
	gateway presenceGateway
}

// NewPresenceUpdater: PresenceUpdater 인스턴스를 생성합니다.
func NewPresenceUpdater(gateway presenceGateway) *PresenceUpdater {
	return &PresenceUpdater{gateway: gateway}
}

// UpdatePresence: 상태 한 건을 Discord 액티비티로 푸시한다.
func (p *PresenceUpdater) UpdatePresence(_ context.Context, entry domain.StatusEntry) error {
	activity := &discordgo.Activity{
		Name: entry.Text,
		Type: activityType(entry.Kind),
	}

	if err := p.gateway.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status:     string(discordgo.StatusOnline),
		Activities: []*discordgo.Activity{activity},
	}); err != nil {
		return fmt.Errorf("failed to update presence: %w", err)
	}
	return nil
}

func activityType(kind domain.StatusKind) discordgo.ActivityType {
	switch kind {
	case domain.StatusWatching:
		return discordgo.ActivityTypeWatching
	case domain.StatusListening:
		return discordgo.ActivityTypeListening
	default:
		return discordgo.ActivityTypeGame
	}
}
