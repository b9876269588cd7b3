package command

import (
	"context"
	"fmt"

	"github.com/kapu/nova-discord-bot/internal/adapter"
	"github.com/kapu/nova-discord-bot/internal/domain"
)

// RoomCommand: 공유 시청방을 생성해 입장 URL을 보여주는 명령어
type RoomCommand struct {
	BaseCommand
}

// NewRoomCommand: RoomCommand 인스턴스를 생성합니다.
func NewRoomCommand(deps *Dependencies) *RoomCommand {
	return &RoomCommand{BaseCommand: NewBaseCommand(deps)}
}

// Name: 명령어의 고유 식별자('room')를 반환합니다.
func (c *RoomCommand) Name() string {
	return domain.CommandRoom.String()
}

// Description: 명령어에 대한 사용자용 설명을 반환합니다.
func (c *RoomCommand) Description() string {
	return "Create a Watch2Gether room"
}

// Execute: 방 생성 API를 1회 호출하고 결과를 렌더링합니다. 비디오 URL은 선택 사항이다.
func (c *RoomCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if err := c.ensureDeps(); err != nil {
		return err
	}

	videoURL, _ := params["video_url"].(string)

	return c.respond(ctx, cmdCtx, func() *domain.Reply {
		result := c.Deps().Rooms.CreateRoom(ctx, videoURL)
		c.logCompletion(c.Name(), cmdCtx, videoURL, result.Success)
		return c.Deps().Formatter.FormatResult(adapter.TitleRoom, result)
	})
}

func (c *RoomCommand) ensureDeps() error {
	if err := c.EnsureBaseDeps(); err != nil {
		return err
	}
	if c.Deps().Rooms == nil {
		return fmt.Errorf("room command services not configured")
	}
	return nil
}
