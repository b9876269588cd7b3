package adapter

import (
	"testing"

	"github.com/kapu/nova-discord-bot/internal/domain"
)

func TestFormatResultFailureIsPlainText(t *testing.T) {
	f := NewResponseFormatter("1.0.0")

	reply := f.FormatResult(TitleChat, domain.NewCommandResult(false, "StatusCode: 500 | boom"))

	if reply.Success {
		t.Fatalf("expected failure reply")
	}
	if reply.Text != "StatusCode: 500 | boom" || reply.Title != "" {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}

func TestFormatResultSuccessIsEmbed(t *testing.T) {
	f := NewResponseFormatter("1.0.0")

	reply := f.FormatResult(TitleChat, domain.NewCommandResult(true, "hello"))

	if !reply.Success || reply.Title != TitleChat || reply.Description != "hello" {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}

func TestFormatCrypto(t *testing.T) {
	f := NewResponseFormatter("1.0.0")

	reply := f.FormatCrypto("BTC", "USDT", domain.NewCommandResult(true, "50000.00"))

	if reply.Description != "BTC/USDT: 50000.00" {
		t.Fatalf("unexpected description: %q", reply.Description)
	}
}

func TestFormatPing(t *testing.T) {
	f := NewResponseFormatter("1.0.0")

	reply := f.FormatPing(42)

	if reply.Description != "Pong! Round trip: 42 ms" {
		t.Fatalf("unexpected description: %q", reply.Description)
	}
}
