package adapter

// 사용자에게 노출되는 공통 문구 모음.
const (
	// MsgWorking 는 상수다.
	MsgWorking = "Working on it..."

	// MsgPingResult 는 상수다.
	MsgPingResult = "Pong! Round trip: %d ms"

	// ErrPingFailed 는 상수다.
	ErrPingFailed = "Failed to measure latency!"

	// TitleChat 는 상수다.
	TitleChat = "AI Chat"

	// TitleImage 는 상수다.
	TitleImage = "AI Image"

	// TitleWeather 는 상수다.
	TitleWeather = "Weather"

	// TitleCrypto 는 상수다.
	TitleCrypto = "Crypto Price"

	// TitleRoom 는 상수다.
	TitleRoom = "Watch2Gether Room"

	// TitlePing 는 상수다.
	TitlePing = "Ping"
)
