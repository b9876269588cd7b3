package command

import (
	"context"
	"fmt"

	"github.com/kapu/nova-discord-bot/internal/adapter"
	"github.com/kapu/nova-discord-bot/internal/domain"
)

// ChatCommand: 프롬프트를 AI 채팅 완성 API로 보내고 답변을 보여주는 명령어
type ChatCommand struct {
	BaseCommand
}

// NewChatCommand: ChatCommand 인스턴스를 생성합니다.
func NewChatCommand(deps *Dependencies) *ChatCommand {
	return &ChatCommand{BaseCommand: NewBaseCommand(deps)}
}

// Name: 명령어의 고유 식별자('ai-chat')를 반환합니다.
func (c *ChatCommand) Name() string {
	return domain.CommandChat.String()
}

// Description: 명령어에 대한 사용자용 설명을 반환합니다.
func (c *ChatCommand) Description() string {
	return "Ask the AI a question"
}

// Execute: 프롬프트로 완성 API를 1회 호출하고 결과를 렌더링합니다.
func (c *ChatCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.ensureDeps(); err != nil {
		return err
	}

	prompt, _ := params["prompt"].(string)

	return c.respond(ctx, cmdCtx, func() *domain.Reply {
		result := c.Deps().Chatter.ChatComplete(ctx, prompt)
		c.logCompletion(c.Name(), cmdCtx, prompt, result.Success)
		return c.Deps().Formatter.FormatResult(adapter.TitleChat, result)
	})
}

func (c *ChatCommand) ensureDeps() error {
	if err := c.EnsureBaseDeps(); err != nil {
		return err
	}
	if c.Deps().Chatter == nil {
		return fmt.Errorf("chat command services not configured")
	}
	return nil
}
