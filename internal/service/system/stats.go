// Package system: 운영용 엔드포인트에 노출하는 프로세스 리소스 통계.
package system

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stats: 시스템 리소스 통계
type Stats struct {
	CPUUsage    float64 `json:"cpuUsage"`    // CPU 사용률 (%)
	MemoryUsage float64 `json:"memoryUsage"` // 메모리 사용률 (%)
	MemoryTotal uint64  `json:"memoryTotal"` // 전체 메모리 (Bytes)
	MemoryUsed  uint64  `json:"memoryUsed"`  // 사용 중인 메모리 (Bytes)
	Goroutines  int     `json:"goroutines"`  // 현재 프로세스 Go 루틴 개수
}

// Collector: 시스템 리소스 통계를 수집하는 서비스입니다.
type Collector struct{}

// NewCollector 는 동작을 수행한다.
func NewCollector() *Collector {
	return &Collector{}
}

// GetCurrentStats: 현재 시스템 리소스 상태를 반환합니다.
func (c *Collector) GetCurrentStats(ctx context.Context) (*Stats, error) {
	v, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get memory stats: %w", err)
	}

	cpus, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu stats: %w", err)
	}

	var cpuUsage float64
	if len(cpus) > 0 {
		cpuUsage = cpus[0]
	}

	return &Stats{
		CPUUsage:    cpuUsage,
		MemoryUsage: v.UsedPercent,
		MemoryTotal: v.Total,
		MemoryUsed:  v.Used,
		Goroutines:  runtime.NumGoroutine(),
	}, nil
}
