package command

import (
	"context"
	"fmt"

	"github.com/kapu/nova-discord-bot/internal/adapter"
	"github.com/kapu/nova-discord-bot/internal/domain"
)

// ImageCommand: 프롬프트로 이미지를 생성해 보여주는 명령어
type ImageCommand struct {
	BaseCommand
}

// NewImageCommand: ImageCommand 인스턴스를 생성합니다.
func NewImageCommand(deps *Dependencies) *ImageCommand {
	return &ImageCommand{BaseCommand: NewBaseCommand(deps)}
}

// Name: 명령어의 고유 식별자('ai-image')를 반환합니다.
func (c *ImageCommand) Name() string {
	return domain.CommandImage.String()
}

// Description: 명령어에 대한 사용자용 설명을 반환합니다.
func (c *ImageCommand) Description() string {
	return "Generate an image from a prompt"
}

// Execute: 이미지 생성 API를 1회 호출하고 결과를 렌더링합니다.
func (c *ImageCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.ensureDeps(); err != nil {
		return err
	}

	prompt, _ := params["prompt"].(string)

	return c.respond(ctx, cmdCtx, func() *domain.Reply {
		result := c.Deps().Images.GenerateImage(ctx, prompt)
		c.logCompletion(c.Name(), cmdCtx, prompt, result.Success)
		return c.Deps().Formatter.FormatResult(adapter.TitleImage, result)
	})
}

func (c *ImageCommand) ensureDeps() error {
	if err := c.EnsureBaseDeps(); err != nil {
		return err
	}
	if c.Deps().Images == nil {
		return fmt.Errorf("image command services not configured")
	}
	return nil
}
