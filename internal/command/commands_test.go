package command

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/kapu/nova-discord-bot/internal/adapter"
	"github.com/kapu/nova-discord-bot/internal/domain"
)

// fakeResponder: acknowledge/finalize 호출 순서를 기록한다.
type fakeResponder struct {
	calls   []string
	replies []*domain.Reply
	ackErr  error
}

func (f *fakeResponder) Acknowledge(_ context.Context, _ *domain.CommandContext) error {
	f.calls = append(f.calls, "acknowledge")
	return f.ackErr
}

func (f *fakeResponder) Finalize(_ context.Context, _ *domain.CommandContext, reply *domain.Reply) error {
	f.calls = append(f.calls, "finalize")
	f.replies = append(f.replies, reply)
	return nil
}

type fakeChatter struct {
	result domain.CommandResult
	calls  int
}

func (f *fakeChatter) ChatComplete(_ context.Context, _ string) domain.CommandResult {
	f.calls++
	return f.result
}

type fakePrices struct {
	result       domain.CommandResult
	lastSymbol   string
	lastCurrency string
}

func (f *fakePrices) GetPrice(_ context.Context, symbol, currency string) domain.CommandResult {
	f.lastSymbol = symbol
	f.lastCurrency = currency
	return f.result
}

type fakeRooms struct {
	result domain.CommandResult
}

func (f *fakeRooms) CreateRoom(_ context.Context, _ string) domain.CommandResult {
	return f.result
}

type fakeProber struct {
	rtt time.Duration
	err error
}

func (f *fakeProber) Measure(_ context.Context) (time.Duration, error) {
	return f.rtt, f.err
}

func testDeps(responder *fakeResponder) *Dependencies {
	return &Dependencies{
		Responder: responder,
		Formatter: adapter.NewResponseFormatter("test"),
	}
}

func testCmdCtx() *domain.CommandContext {
	return domain.NewCommandContext("chan", "guild", "u1", "tester")
}

func TestChatCommandAcknowledgesBeforeFinalizing(t *testing.T) {
	responder := &fakeResponder{}
	deps := testDeps(responder)
	deps.Chatter = &fakeChatter{result: domain.NewCommandResult(true, "answer")}

	cmd := NewChatCommand(deps)
	err := cmd.Execute(context.Background(), testCmdCtx(), map[string]any{"prompt": "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(responder.calls) != 2 || responder.calls[0] != "acknowledge" || responder.calls[1] != "finalize" {
		t.Fatalf("unexpected call order: %v", responder.calls)
	}

	reply := responder.replies[0]
	if !reply.Success || reply.Title != adapter.TitleChat || reply.Description != "answer" {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}

func TestChatCommandFailureRendersPlainText(t *testing.T) {
	responder := &fakeResponder{}
	deps := testDeps(responder)
	deps.Chatter = &fakeChatter{result: domain.NewCommandResult(false, "StatusCode: 500 | boom")}

	cmd := NewChatCommand(deps)
	if err := cmd.Execute(context.Background(), testCmdCtx(), map[string]any{"prompt": "hi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reply := responder.replies[0]
	if reply.Success || reply.Text != "StatusCode: 500 | boom" {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}

func TestChatCommandSkipsAdapterWhenAcknowledgeFails(t *testing.T) {
	chatter := &fakeChatter{result: domain.NewCommandResult(true, "answer")}
	responder := &fakeResponder{ackErr: errors.New("gateway gone")}
	deps := testDeps(responder)
	deps.Chatter = chatter

	cmd := NewChatCommand(deps)
	if err := cmd.Execute(context.Background(), testCmdCtx(), map[string]any{"prompt": "hi"}); err == nil {
		t.Fatalf("expected error when acknowledge fails")
	}

	if chatter.calls != 0 {
		t.Fatalf("adapter must not run when acknowledge fails")
	}
}

func TestCryptoCommandAppliesDefaults(t *testing.T) {
	responder := &fakeResponder{}
	prices := &fakePrices{result: domain.NewCommandResult(true, "50000.00")}
	deps := testDeps(responder)
	deps.Prices = prices

	cmd := NewCryptoCommand(deps)
	if err := cmd.Execute(context.Background(), testCmdCtx(), map[string]any{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if prices.lastSymbol != "BTC" || prices.lastCurrency != "USDT" {
		t.Fatalf("defaults not applied: %s/%s", prices.lastSymbol, prices.lastCurrency)
	}
	if responder.replies[0].Description != "BTC/USDT: 50000.00" {
		t.Fatalf("unexpected description: %q", responder.replies[0].Description)
	}
}

func TestCryptoCommandUppercasesArguments(t *testing.T) {
	responder := &fakeResponder{}
	prices := &fakePrices{result: domain.NewCommandResult(true, "1.00")}
	deps := testDeps(responder)
	deps.Prices = prices

	cmd := NewCryptoCommand(deps)
	params := map[string]any{"symbol": "eth", "currency": "usdt"}
	if err := cmd.Execute(context.Background(), testCmdCtx(), params); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if prices.lastSymbol != "ETH" || prices.lastCurrency != "USDT" {
		t.Fatalf("arguments not normalized: %s/%s", prices.lastSymbol, prices.lastCurrency)
	}
}

func TestRoomCommandPassesThroughMessage(t *testing.T) {
	responder := &fakeResponder{}
	deps := testDeps(responder)
	deps.Rooms = &fakeRooms{result: domain.NewCommandResult(true, "https://w2g.tv/rooms/K")}

	cmd := NewRoomCommand(deps)
	if err := cmd.Execute(context.Background(), testCmdCtx(), map[string]any{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if responder.replies[0].Description != "https://w2g.tv/rooms/K" {
		t.Fatalf("unexpected description: %q", responder.replies[0].Description)
	}
}

func TestPingCommandSuccess(t *testing.T) {
	responder := &fakeResponder{}
	deps := testDeps(responder)
	deps.Prober = &fakeProber{rtt: 42 * time.Millisecond}

	cmd := NewPingCommand(deps)
	if err := cmd.Execute(context.Background(), testCmdCtx(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reply := responder.replies[0]
	if !reply.Success || reply.Description != fmt.Sprintf(adapter.MsgPingResult, int64(42)) {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}

func TestPingCommandFailure(t *testing.T) {
	responder := &fakeResponder{}
	deps := testDeps(responder)
	deps.Prober = &fakeProber{err: errors.New("dial timeout")}

	cmd := NewPingCommand(deps)
	if err := cmd.Execute(context.Background(), testCmdCtx(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reply := responder.replies[0]
	if reply.Success || reply.Text != adapter.ErrPingFailed {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}

func TestCommandMissingServiceDependency(t *testing.T) {
	responder := &fakeResponder{}
	deps := testDeps(responder)

	cmd := NewChatCommand(deps)
	if err := cmd.Execute(context.Background(), testCmdCtx(), nil); err == nil {
		t.Fatalf("expected error when chat service missing")
	}
	if len(responder.calls) != 0 {
		t.Fatalf("responder must not be touched when deps are invalid")
	}
}
