package domain

// CommandResult: 모든 외부 API 서비스가 커맨드 계층으로 돌려주는 정규화된 결과
type CommandResult struct {
	Success bool
	Message string
}

// NewCommandResult 는 동작을 수행한다.
func NewCommandResult(success bool, message string) CommandResult {
	return CommandResult{Success: success, Message: message}
}

// WeatherData: 날씨 조회 결과의 구조화된 페이로드
// 각 필드는 응답 본문에 없으면 nil(미설정)로 남는다. 파싱 실패로 취급하지 않는다.
type WeatherData struct {
	City        string
	Description string
	Temperature *float64 // 섭씨
	Humidity    *int     // %
	WindSpeed   *float64 // m/s
}

// Reply: 커맨드가 프론트엔드로 넘기는 최종 렌더링 지시
// 실패 시 평문(Text)만, 성공 시 임베드 필드가 채워진다.
type Reply struct {
	Success     bool
	Text        string
	Title       string
	Description string
	ImageURL    string
}
