package watch2gether

import (
	"context"
	"testing"

	"github.com/kapu/nova-discord-bot/internal/config"
	"github.com/kapu/nova-discord-bot/internal/transport"
)

type fakeSender struct {
	result   transport.Result
	requests []transport.Request
}

func (f *fakeSender) Send(_ context.Context, req transport.Request) transport.Result {
	f.requests = append(f.requests, req)
	return f.result
}

func testConfig() config.Watch2GetherConfig {
	return config.Watch2GetherConfig{
		APIKey:        "w2g-key",
		CreateRoomURL: "https://api.w2g.tv/rooms/create.json",
		ShowRoomURL:   "https://w2g.tv/rooms/",
	}
}

func TestCreateRoomMissingConfigSkipsTransport(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Watch2GetherConfig
	}{
		{"no api key", config.Watch2GetherConfig{CreateRoomURL: "c", ShowRoomURL: "s"}},
		{"no create url", config.Watch2GetherConfig{APIKey: "k", ShowRoomURL: "s"}},
		{"no show url", config.Watch2GetherConfig{APIKey: "k", CreateRoomURL: "c"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := &fakeSender{}
			svc := NewService(tc.cfg, sender, nil)

			result := svc.CreateRoom(context.Background(), "https://youtu.be/x")

			if result.Success || result.Message != ErrNotConfigured {
				t.Fatalf("unexpected result: %+v", result)
			}
			if len(sender.requests) != 0 {
				t.Fatalf("transport must not be invoked on config error")
			}
		})
	}
}

func TestCreateRoomComposesShowURL(t *testing.T) {
	sender := &fakeSender{result: transport.Result{Succeeded: true, Content: `{"streamkey":"K"}`}}
	svc := NewService(testConfig(), sender, nil)

	result := svc.CreateRoom(context.Background(), "https://youtu.be/x")

	if !result.Success || result.Message != "https://w2g.tv/rooms/K" {
		t.Fatalf("unexpected result: %+v", result)
	}

	body, ok := sender.requests[0].JSONBody.(createRoomRequest)
	if !ok {
		t.Fatalf("unexpected body type: %T", sender.requests[0].JSONBody)
	}
	if body.APIKey != "w2g-key" || body.Share != "https://youtu.be/x" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestCreateRoomPayloadFailureKeepsTransportSuccess(t *testing.T) {
	// 전송은 성공, 페이로드만 불량: 성공 플래그는 전송 결과를 따라간다.
	cases := []struct {
		name string
		body string
	}{
		{"missing streamkey", `{}`},
		{"malformed json", `not json`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := &fakeSender{result: transport.Result{Succeeded: true, Content: tc.body}}
			svc := NewService(testConfig(), sender, nil)

			result := svc.CreateRoom(context.Background(), "")

			if !result.Success {
				t.Fatalf("success flag must track transport outcome")
			}
			if result.Message != ErrDeserialization {
				t.Fatalf("unexpected message: %q", result.Message)
			}
		})
	}
}

func TestCreateRoomTransportFailurePassesContentThrough(t *testing.T) {
	sender := &fakeSender{result: transport.Result{Succeeded: false, Content: "StatusCode: 403 | bad key"}}
	svc := NewService(testConfig(), sender, nil)

	result := svc.CreateRoom(context.Background(), "")

	if result.Success || result.Message != "StatusCode: 403 | bad key" {
		t.Fatalf("unexpected result: %+v", result)
	}
}
