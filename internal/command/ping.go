package command

import (
	"context"
	"fmt"

	"github.com/kapu/nova-discord-bot/internal/adapter"
	"github.com/kapu/nova-discord-bot/internal/domain"
)

// PingCommand: 외부 호스트 왕복 시간을 측정해 보여주는 명령어
// 유일하게 외부 API 어댑터를 거치지 않는다.
type PingCommand struct {
	BaseCommand
}

// NewPingCommand: PingCommand 인스턴스를 생성합니다.
func NewPingCommand(deps *Dependencies) *PingCommand {
	return &PingCommand{BaseCommand: NewBaseCommand(deps)}
}

// Name: 명령어의 고유 식별자('ping')를 반환합니다.
func (c *PingCommand) Name() string {
	return domain.CommandPing.String()
}

// Description: 명령어에 대한 사용자용 설명을 반환합니다.
func (c *PingCommand) Description() string {
	return "Measure round-trip latency to a well-known host"
}

// Execute: 네트워크 프로브 1회로 왕복 시간을 측정하고 결과를 렌더링합니다.
func (c *PingCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, _ map[string]any) error {
	if err := c.ensureDeps(); err != nil {
		return err
	}

	return c.respond(ctx, cmdCtx, func() *domain.Reply {
		rtt, err := c.Deps().Prober.Measure(ctx)
		if err != nil {
			c.logCompletion(c.Name(), cmdCtx, "", false)
			return &domain.Reply{Success: false, Text: adapter.ErrPingFailed}
		}

		c.logCompletion(c.Name(), cmdCtx, "", true)
		return c.Deps().Formatter.FormatPing(rtt.Milliseconds())
	})
}

func (c *PingCommand) ensureDeps() error {
	if err := c.EnsureBaseDeps(); err != nil {
		return err
	}
	if c.Deps().Prober == nil {
		return fmt.Errorf("ping command services not configured")
	}
	return nil
}
