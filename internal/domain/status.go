package domain

// StatusKind: 상태 텍스트의 표시 방식 (Discord activity 종류에 대응)
type StatusKind string

// StatusKind 상수 목록.
const (
	// StatusWatching 는 상수다.
	StatusWatching  StatusKind = "watching"
	StatusListening StatusKind = "listening"
	StatusPlaying   StatusKind = "playing"
)

// StatusEntry: 로테이션 한 틱이 산출하는 상태 텍스트 한 건
// 매 틱 새로 만들어지고 푸시 후 버려진다.
type StatusEntry struct {
	Text string
	Kind StatusKind
}
