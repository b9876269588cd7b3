package probe

import (
	"context"
	"net"
	"testing"
	"time"
)

func TestMeasureAgainstLocalListener(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to start listener: %v", err)
	}
	defer func() { _ = listener.Close() }()

	go func() {
		conn, acceptErr := listener.Accept()
		if acceptErr == nil {
			_ = conn.Close()
		}
	}()

	prober := NewProber(listener.Addr().String(), time.Second)
	rtt, err := prober.Measure(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rtt <= 0 {
		t.Fatalf("expected positive round trip time, got %v", rtt)
	}
}

func TestMeasureUnreachableHost(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to start listener: %v", err)
	}
	address := listener.Addr().String()
	_ = listener.Close() // 연결 거부 유도

	prober := NewProber(address, 500*time.Millisecond)
	if _, err := prober.Measure(context.Background()); err == nil {
		t.Fatalf("expected error for unreachable host")
	}
}
