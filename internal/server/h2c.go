package server

import (
	"net/http"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// WrapH2C: 운영 서버 핸들러를 HTTP/2 Cleartext 지원으로 래핑한다.
// TLS 없이도 멀티플렉싱과 헤더 압축을 쓸 수 있다.
func WrapH2C(handler http.Handler) http.Handler {
	return h2c.NewHandler(handler, &http2.Server{})
}
