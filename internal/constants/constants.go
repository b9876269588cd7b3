package constants

import "time"

// HTTPConfig 는 패키지 변수다.
var HTTPConfig = struct {
	RequestTimeout time.Duration
	ConnectTimeout time.Duration
}{
	RequestTimeout: 30 * time.Second, // 외부 API 1회 호출 상한
	ConnectTimeout: 5 * time.Second,
}

// StatusRotation 는 패키지 변수다.
var StatusRotation = struct {
	Interval   time.Duration
	SlotCount  int
	MaxRunes   int
	BrandLabel string
}{
	Interval:   20 * time.Second, // 20초 - 한 틱에 슬롯 하나
	SlotCount:  7,
	MaxRunes:   110, // Discord 상태 텍스트 길이 상한
	BrandLabel: "nova-discord-bot",
}

// CryptoDefaults 는 패키지 변수다.
var CryptoDefaults = struct {
	Symbol   string
	Currency string
}{
	Symbol:   "BTC",
	Currency: "USDT",
}

// OpenAIDefaults 는 패키지 변수다.
var OpenAIDefaults = struct {
	ChatModel  string
	ImageModel string
	ImageSize  string
	ImageCount int
}{
	ChatModel:  "gpt-4o-mini",
	ImageModel: "dall-e-3",
	ImageSize:  "1024x1024",
	ImageCount: 1,
}

// ProbeConfig 는 패키지 변수다.
var ProbeConfig = struct {
	Address string
	Timeout time.Duration
}{
	Address: "discord.com:443", // ping 명령의 왕복 시간 측정 대상
	Timeout: 5 * time.Second,
}

// ServerTimeout 는 패키지 변수다.
var ServerTimeout = struct {
	ReadHeader     time.Duration
	Read           time.Duration
	Write          time.Duration
	Idle           time.Duration
	MaxHeaderBytes int
}{
	ReadHeader:     5 * time.Second,
	Read:           30 * time.Second,
	Write:          30 * time.Second,
	Idle:           120 * time.Second,
	MaxHeaderBytes: 1 << 20,
}

// AppTimeout 는 패키지 변수다.
var AppTimeout = struct {
	Build    time.Duration
	Command  time.Duration
	Shutdown time.Duration
}{
	Build:    30 * time.Second,
	Command:  60 * time.Second, // 명령 1회 처리 상한 (확인 응답 + 외부 호출 + 최종 응답)
	Shutdown: 10 * time.Second,
}
