package util

import (
	"fmt"
	"time"
)

// FormatUptime: 기준 시각(start) 이후 경과 시간을 "Nd Nh Nm" 형태로 포맷합니다.
func FormatUptime(start, now time.Time) string {
	elapsed := now.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}

	days := int(elapsed.Hours()) / 24
	hours := int(elapsed.Hours()) % 24
	minutes := int(elapsed.Minutes()) % 60

	return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
}
