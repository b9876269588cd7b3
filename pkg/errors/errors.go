// Package errors: 봇 서비스 전체에서 사용되는 에러 타입들을 정의한다.
// 표준 Go 에러 스타일(Unwrap 지원)을 따른다.
package errors

import "fmt"

// ConfigError: 필수 설정값이 비어 있어 외부 호출 전에 중단된 경우의 에러
type ConfigError struct {
	Provider string // openai, weather, crypto, watch2gether 등
	Key      string // 누락된 설정 키
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("config error provider=%s key=%s", e.Provider, e.Key)
}

// NewConfigError: 설정 에러를 생성한다.
func NewConfigError(provider, key string) *ConfigError {
	return &ConfigError{Provider: provider, Key: key}
}

// PayloadError: HTTP 호출은 성공했으나 응답 본문에서 기대한 필드를 찾지 못한 경우의 에러
type PayloadError struct {
	Provider string // 응답을 보낸 외부 서비스
	Field    string // 누락되거나 파싱 불가능한 필드
	Err      error  // 원인 에러 (없으면 nil)
}

func (e PayloadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("payload error provider=%s field=%s", e.Provider, e.Field)
	}
	return fmt.Sprintf("payload error provider=%s field=%s: %v", e.Provider, e.Field, e.Err)
}

func (e PayloadError) Unwrap() error { return e.Err }

// NewPayloadError: 페이로드 에러를 생성한다.
func NewPayloadError(provider, field string, cause error) *PayloadError {
	return &PayloadError{Provider: provider, Field: field, Err: cause}
}

// TransportError: 네트워크 계층에서 발생한 에러 (연결 실패, 직렬화 실패, 비정상 상태 코드)
type TransportError struct {
	Operation  string // 수행 중이던 작업
	StatusCode int    // HTTP 상태 코드 (0이면 네트워크 오류)
	Err        error  // 원인 에러
}

func (e TransportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("transport error operation=%s status=%d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("transport error operation=%s status=%d: %v", e.Operation, e.StatusCode, e.Err)
}

func (e TransportError) Unwrap() error { return e.Err }

// NewTransportError: 전송 계층 에러를 생성한다.
func NewTransportError(operation string, statusCode int, cause error) *TransportError {
	return &TransportError{Operation: operation, StatusCode: statusCode, Err: cause}
}
