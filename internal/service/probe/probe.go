// Package probe: ping 명령이 사용하는 왕복 시간 측정기.
package probe

import (
	"context"
	"net"
	"time"
)

// Prober: 외부 호스트까지의 왕복 시간을 한 번 측정한다.
type Prober struct {
	address string
	timeout time.Duration
}

// NewProber 는 동작을 수행한다.
func NewProber(address string, timeout time.Duration) *Prober {
	return &Prober{address: address, timeout: timeout}
}

// Measure: TCP 연결 수립에 걸린 시간을 왕복 시간으로 반환한다. 측정 후 연결은 바로 닫는다.
func (p *Prober) Measure(ctx context.Context) (time.Duration, error) {
	dialer := &net.Dialer{Timeout: p.timeout}

	start := time.Now()
	conn, err := dialer.DialContext(ctx, "tcp", p.address)
	if err != nil {
		return 0, err
	}
	elapsed := time.Since(start)
	_ = conn.Close()

	return elapsed, nil
}
