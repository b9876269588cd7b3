// Package transport: 모든 외부 HTTP 호출이 거쳐 가는 단일 창구.
// 호출자에게 에러를 전파하지 않고 항상 (성공 여부, 본문/진단 문자열) 결과로 정규화한다.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	appErrors "github.com/kapu/nova-discord-bot/pkg/errors"
)

// Header: 순서가 보존되는 요청 헤더 한 쌍
type Header struct {
	Name  string
	Value string
}

// Request: 외부 API 1회 호출에 필요한 전체 정보. 생성 후 수정하지 않는다.
type Request struct {
	URL          string
	Method       string // 비어 있으면 GET
	ErrorContext string // 실패 시 공급자 에러 문구보다 우선하는 호출자 제공 진단 문구
	Headers      []Header
	JSONBody     any // nil이 아니면 JSON으로 직렬화하여 본문에 싣는다
}

// Result: 전송 결과. Succeeded가 false이면 Content는 항상 사람이 읽을 수 있는 진단 문구다.
// true이면 Content는 응답 본문 원문이며 비어 있을 수 있다.
type Result struct {
	Succeeded bool
	Content   string
}

// Sender: 서비스 계층이 의존하는 전송 인터페이스. 테스트에서 가짜 구현으로 대체한다.
type Sender interface {
	Send(ctx context.Context, req Request) Result
}

// Client: http.Client 기반 Sender 구현체
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient 는 동작을 수행한다.
func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{httpClient: httpClient, logger: logger}
}

// Send: 요청을 한 번 전송한다. 재시도하지 않는다.
// 전송 계층 실패(직렬화, 연결, 타임아웃)는 "Unknown error: ..." 결과로,
// 비정상 상태 코드는 "StatusCode: <code> | ..." 결과로 변환된다.
func (c *Client) Send(ctx context.Context, req Request) Result {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var bodyReader io.Reader
	if req.JSONBody != nil {
		payload, err := json.Marshal(req.JSONBody)
		if err != nil {
			return c.fail(req, method, fmt.Sprintf("Unknown error: %v", err), err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, bodyReader)
	if err != nil {
		return c.fail(req, method, fmt.Sprintf("Unknown error: %v", err), err)
	}
	for _, h := range req.Headers {
		httpReq.Header.Set(h.Name, h.Value)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return c.fail(req, method, fmt.Sprintf("Unknown error: %v", err), err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(req, method, fmt.Sprintf("Unknown error: %v", err), err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Result{Succeeded: true, Content: string(body)}
	}

	diagnostic := req.ErrorContext
	if diagnostic == "" {
		diagnostic = string(body)
	}
	content := fmt.Sprintf("StatusCode: %d | %s", resp.StatusCode, diagnostic)
	c.logger.Error("http request failed",
		slog.String("url", req.URL),
		slog.String("method", method),
		slog.Any("error", appErrors.NewTransportError(method+" "+req.URL, resp.StatusCode, nil)))
	return Result{Succeeded: false, Content: content}
}

func (c *Client) fail(req Request, method, content string, err error) Result {
	c.logger.Error("http request failed",
		slog.String("url", req.URL),
		slog.String("method", method),
		slog.Any("error", appErrors.NewTransportError(method+" "+req.URL, 0, err)))
	return Result{Succeeded: false, Content: content}
}
