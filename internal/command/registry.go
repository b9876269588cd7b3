package command

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kapu/nova-discord-bot/internal/domain"
	"github.com/kapu/nova-discord-bot/internal/util"
)

// ErrUnknownCommand: 등록되지 않은 명령어를 호출했을 때 발생하는 오류
var ErrUnknownCommand = errors.New("unknown command")

// Registry: 봇의 모든 명령어 핸들러를 등록하고 관리하며, 이름 기반 조회 및 실행을 담당하는 레지스트리
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Command
}

// NewRegistry: 새로운 명령어 레지스트리 인스턴스를 생성합니다.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Command)}
}

// Register: 새로운 명령어 핸들러를 레지스트리에 등록한다. (이름 정규화 적용)
func (r *Registry) Register(handler Command) {
	if handler == nil {
		return
	}

	name := util.Normalize(handler.Name())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = handler
}

// Execute: 주어진 키(명령어 이름)에 해당하는 핸들러를 찾아 명령을 실행한다. (스레드 안전)
func (r *Registry) Execute(ctx context.Context, cmdCtx *domain.CommandContext, key string, params map[string]any) error {
	if r == nil {
		return fmt.Errorf("command registry is nil")
	}

	handler := r.getHandler(key)
	if handler == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, key)
	}

	if err := handler.Execute(ctx, cmdCtx, params); err != nil {
		return fmt.Errorf("failed to execute command %s: %w", key, err)
	}
	return nil
}

// All: 등록된 모든 명령어 핸들러를 반환합니다. 슬래시 커맨드 등록에 사용한다.
func (r *Registry) All() []Command {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	handlers := make([]Command, 0, len(r.handlers))
	for _, handler := range r.handlers {
		handlers = append(handlers, handler)
	}
	return handlers
}

// Count: 현재 등록된 명령어의 총 개수를 반환합니다.
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

func (r *Registry) getHandler(key string) Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if key == "" {
		return nil
	}
	if handler, ok := r.handlers[util.Normalize(key)]; ok {
		return handler
	}
	return nil
}
