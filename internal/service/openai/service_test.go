package openai

import (
	"context"
	"net/http"
	"reflect"
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

func testConfig() config.OpenAIConfig {
	return config.OpenAIConfig{
		APIKey:     "sk-test",
		ChatURL:    "https://api.example.com/chat",
		ImageURL:   "https://api.example.com/images",
		ChatModel:  "gpt-4o-mini",
		ImageModel: "dall-e-3",
	}
}

func TestChatCompleteMissingConfigSkipsTransport(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(config.OpenAIConfig{ChatURL: "https://api.example.com/chat"}, sender, nil)

	result := svc.ChatComplete(context.Background(), "hello")

	if result.Success {
		t.Fatalf("expected failure")
	}
	if result.Message != ErrChatNotConfigured {
		t.Fatalf("unexpected message: %q", result.Message)
	}
	if len(sender.requests) != 0 {
		t.Fatalf("transport must not be invoked on config error")
	}
}

func TestChatCompleteSendsBearerAuthAndBody(t *testing.T) {
	sender := &fakeSender{result: transport.Result{
		Succeeded: true,
		Content:   `{"choices":[{"message":{"content":"hi there"}}]}`,
	}}
	svc := NewService(testConfig(), sender, nil)

	result := svc.ChatComplete(context.Background(), "hello")

	if !result.Success || result.Message != "hi there" {
		t.Fatalf("unexpected result: %+v", result)
	}

	req := sender.requests[0]
	if req.Method != http.MethodPost {
		t.Fatalf("expected POST, got %s", req.Method)
	}
	expectedHeaders := []transport.Header{
		{Name: "Authorization", Value: "Bearer sk-test"},
		{Name: "Content-Type", Value: "application/json"},
	}
	if !reflect.DeepEqual(req.Headers, expectedHeaders) {
		t.Fatalf("unexpected headers: %v", req.Headers)
	}
	body, ok := req.JSONBody.(chatRequest)
	if !ok {
		t.Fatalf("unexpected body type: %T", req.JSONBody)
	}
	if body.Model != "gpt-4o-mini" || len(body.Messages) != 1 || body.Messages[0].Role != "user" || body.Messages[0].Content != "hello" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestChatCompleteEmptyCompletionIsPayloadError(t *testing.T) {
	sender := &fakeSender{result: transport.Result{
		Succeeded: true,
		Content:   `{"choices":[{"message":{"content":""}}]}`,
	}}
	svc := NewService(testConfig(), sender, nil)

	result := svc.ChatComplete(context.Background(), "hello")

	if result.Success {
		t.Fatalf("expected failure on empty completion")
	}
	if result.Message != ErrChatDeserialization {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}

func TestChatCompleteTransportFailureTrimsLeadingNewline(t *testing.T) {
	sender := &fakeSender{result: transport.Result{
		Succeeded: false,
		Content:   "\nStatusCode: 500 | server exploded",
	}}
	svc := NewService(testConfig(), sender, nil)

	result := svc.ChatComplete(context.Background(), "hello")

	if result.Success {
		t.Fatalf("expected failure")
	}
	if result.Message != "StatusCode: 500 | server exploded" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}

func TestGenerateImageBuildsFixedSizeRequest(t *testing.T) {
	sender := &fakeSender{result: transport.Result{
		Succeeded: true,
		Content:   `{"data":[{"url":"https://img.example.com/1.png"}]}`,
	}}
	svc := NewService(testConfig(), sender, nil)

	result := svc.GenerateImage(context.Background(), "a cat")

	if !result.Success {
		t.Fatalf("unexpected failure: %q", result.Message)
	}
	if result.Message != "Here is your generated image: https://img.example.com/1.png" {
		t.Fatalf("unexpected message: %q", result.Message)
	}

	body, ok := sender.requests[0].JSONBody.(imageRequest)
	if !ok {
		t.Fatalf("unexpected body type: %T", sender.requests[0].JSONBody)
	}
	if body.N != 1 || body.Size != "1024x1024" || body.Prompt != "a cat" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestGenerateImageMissingURLIsPayloadError(t *testing.T) {
	sender := &fakeSender{result: transport.Result{
		Succeeded: true,
		Content:   `{"data":[{}]}`,
	}}
	svc := NewService(testConfig(), sender, nil)

	result := svc.GenerateImage(context.Background(), "a cat")

	if result.Success || result.Message != ErrImageDeserialization {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestGenerateImageTransportFailurePassesContentThrough(t *testing.T) {
	sender := &fakeSender{result: transport.Result{
		Succeeded: false,
		Content:   "StatusCode: 400 | bad prompt",
	}}
	svc := NewService(testConfig(), sender, nil)

	result := svc.GenerateImage(context.Background(), "a cat")

	if result.Success || result.Message != "StatusCode: 400 | bad prompt" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestAdapterCallsAreIdempotent(t *testing.T) {
	sender := &fakeSender{result: transport.Result{
		Succeeded: true,
		Content:   `{"choices":[{"message":{"content":"same"}}]}`,
	}}
	svc := NewService(testConfig(), sender, nil)

	first := svc.ChatComplete(context.Background(), "hello")
	second := svc.ChatComplete(context.Background(), "hello")

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
	if !reflect.DeepEqual(sender.requests[0], sender.requests[1]) {
		t.Fatalf("expected identical requests")
	}
}
