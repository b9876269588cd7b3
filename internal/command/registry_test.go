package command

import (
	"context"
	"errors"
	"testing"

	"github.com/kapu/nova-discord-bot/internal/domain"
)

type stubCommand struct {
	name     string
	executed int
}

func (s *stubCommand) Name() string        { return s.name }
func (s *stubCommand) Description() string { return "stub" }
func (s *stubCommand) Execute(context.Context, *domain.CommandContext, map[string]any) error {
	s.executed++
	return nil
}

func TestRegistryExecutesByNormalizedName(t *testing.T) {
	registry := NewRegistry()
	cmd := &stubCommand{name: "Ping"}
	registry.Register(cmd)

	err := registry.Execute(context.Background(), domain.NewCommandContext("c", "g", "u", "user"), "  PING ", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.executed != 1 {
		t.Fatalf("expected one execution, got %d", cmd.executed)
	}
}

func TestRegistryUnknownCommand(t *testing.T) {
	registry := NewRegistry()

	err := registry.Execute(context.Background(), domain.NewCommandContext("c", "g", "u", "user"), "nope", nil)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestRegistryCount(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubCommand{name: "a"})
	registry.Register(&stubCommand{name: "b"})
	registry.Register(nil)

	if registry.Count() != 2 {
		t.Fatalf("expected 2 commands, got %d", registry.Count())
	}
	if len(registry.All()) != 2 {
		t.Fatalf("expected 2 handlers from All()")
	}
}
