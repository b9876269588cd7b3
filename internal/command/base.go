package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kapu/nova-discord-bot/internal/domain"
)

// BaseCommand: 모든 커맨드가 공통으로 가지는 기본 의존성과 실행 골격을 제공합니다.
type BaseCommand struct {
	deps *Dependencies
}

// NewBaseCommand: 새로운 BaseCommand 인스턴스를 생성합니다.
func NewBaseCommand(deps *Dependencies) BaseCommand {
	return BaseCommand{deps: deps}
}

// EnsureBaseDeps: 기본 의존성이 올바르게 설정되었는지 검증합니다.
// 모든 커맨드에서 공통으로 필요한 Responder, Formatter, Logger를 확인한다.
func (b *BaseCommand) EnsureBaseDeps() error {
	if b == nil || b.deps == nil {
		return fmt.Errorf("command dependencies not configured")
	}

	if b.deps.Responder == nil || b.deps.Formatter == nil {
		return fmt.Errorf("responder or formatter not configured")
	}

	if b.deps.Logger == nil {
		b.deps.Logger = slog.Default()
	}

	return nil
}

// Deps: 의존성 객체를 반환합니다.
func (b *BaseCommand) Deps() *Dependencies {
	if b == nil {
		return nil
	}
	return b.deps
}

// respond: acknowledge → 작업 → finalize 순서를 보장하는 공통 실행 골격.
// work가 반환한 Reply를 최종 응답으로 전달한다. finalize는 acknowledge보다 앞설 수 없다.
func (b *BaseCommand) respond(ctx context.Context, cmdCtx *domain.CommandContext, work func() *domain.Reply) error {
	if err := b.deps.Responder.Acknowledge(ctx, cmdCtx); err != nil {
		return fmt.Errorf("failed to acknowledge command: %w", err)
	}

	reply := work()

	if err := b.deps.Responder.Finalize(ctx, cmdCtx, reply); err != nil {
		return fmt.Errorf("failed to finalize command: %w", err)
	}
	return nil
}

// logCompletion: 성공 여부와 무관하게 명령 1회 완료당 한 줄을 기록한다.
func (b *BaseCommand) logCompletion(name string, cmdCtx *domain.CommandContext, input string, success bool) {
	b.deps.Logger.Info("command completed",
		slog.String("command", name),
		slog.String("user", cmdCtx.UserName),
		slog.String("input", input),
		slog.Bool("success", success))
}
