package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/docentlabs/docent/internal/cache"
)

func cachedProvider(mock *MockProvider, ttl time.Duration) Provider {
	return WithCache(mock, cache.New(), ttl)
}

func TestCache_HitSkipsProvider(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"summary":"first"}`), Usage: Usage{InputTokens: 100}},
	)
	p := cachedProvider(mock, time.Hour)

	req := Request{Messages: []Message{{Role: RoleUser, Content: "summarize this"}}}

	resp1, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Cached {
		t.Fatal("first response should not be cached")
	}

	resp2, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp2.Cached {
		t.Fatal("second response should be served from cache")
	}
	if string(resp2.Content) != `{"summary":"first"}` {
		t.Fatalf("unexpected cached content: %s", resp2.Content)
	}
	if resp2.Usage.InputTokens != 0 {
		t.Fatalf("cached response should carry no usage, got %d input tokens", resp2.Usage.InputTokens)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestCache_DifferentRequestsMiss(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`)},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)
	p := cachedProvider(mock, time.Hour)

	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "one"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "two"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"b":2}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", mock.CallCount())
	}
}

func TestCache_PurposeSeparatesEntries(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`)},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)
	p := cachedProvider(mock, time.Hour)

	req := Request{Messages: []Message{{Role: RoleUser, Content: "same text"}}}

	_, err := p.Generate(WithPurpose(context.Background(), "summary-map"), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = p.Generate(WithPurpose(context.Background(), "keypoint-map"), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls for distinct purposes, got %d", mock.CallCount())
	}
}

func TestCache_NoCacheBypasses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`)},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)
	p := cachedProvider(mock, time.Hour)

	req := Request{Messages: []Message{{Role: RoleUser, Content: "quiz me"}}, NoCache: true}

	_, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Cached {
		t.Fatal("NoCache request must not be served from cache")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", mock.CallCount())
	}
}

func TestCache_ErrorsNotCached(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := cachedProvider(mock, time.Hour)

	req := Request{Messages: []Message{{Role: RoleUser, Content: "hello"}}}

	if _, err := p.Generate(context.Background(), req); err == nil {
		t.Fatal("expected error")
	}

	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Cached {
		t.Fatal("failed generation must not populate the cache")
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestCache_ZeroTTLExpiresImmediately(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`)},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)
	p := cachedProvider(mock, 0)

	req := Request{Messages: []Message{{Role: RoleUser, Content: "hello"}}}

	_, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Cached {
		t.Fatal("zero TTL entry must not be served")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", mock.CallCount())
	}
}

func TestCache_ModelIDDelegates(t *testing.T) {
	p := cachedProvider(NewMockProvider(), time.Hour)
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
