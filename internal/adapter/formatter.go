// Package adapter: 서비스 결과를 사용자 응답(임베드/평문)으로 변환하는 포맷터.
package adapter

import (
	"fmt"

	"github.com/kapu/nova-discord-bot/internal/domain"
)

// ResponseFormatter: 봇의 최종 응답을 생성하는 포맷터
// 실패 결과는 항상 평문으로, 성공 결과는 제목이 붙은 임베드로 렌더링한다.
type ResponseFormatter struct {
	footer string
}

// NewResponseFormatter: 임베드 푸터에 들어갈 버전 문자열을 받아 포맷터를 생성합니다.
func NewResponseFormatter(version string) *ResponseFormatter {
	return &ResponseFormatter{footer: "nova-discord-bot " + version}
}

// Footer: 임베드 푸터 문자열을 반환합니다.
func (f *ResponseFormatter) Footer() string {
	return f.footer
}

// FormatResult: CommandResult를 Reply로 변환한다. 실패면 평문, 성공이면 임베드.
func (f *ResponseFormatter) FormatResult(title string, result domain.CommandResult) *domain.Reply {
	if !result.Success {
		return &domain.Reply{Success: false, Text: result.Message}
	}
	return &domain.Reply{
		Success:     true,
		Title:       title,
		Description: result.Message,
	}
}

// FormatCrypto: 시세 조회 결과를 "SYMBOL/CURRENCY: price" 형태의 임베드로 렌더링한다.
func (f *ResponseFormatter) FormatCrypto(symbol, currency string, result domain.CommandResult) *domain.Reply {
	if !result.Success {
		return &domain.Reply{Success: false, Text: result.Message}
	}
	return &domain.Reply{
		Success:     true,
		Title:       TitleCrypto,
		Description: fmt.Sprintf("%s/%s: %s", symbol, currency, result.Message),
	}
}

// FormatPing: 왕복 시간 측정 결과를 렌더링한다.
func (f *ResponseFormatter) FormatPing(millis int64) *domain.Reply {
	return &domain.Reply{
		Success:     true,
		Title:       TitlePing,
		Description: fmt.Sprintf(MsgPingResult, millis),
	}
}
