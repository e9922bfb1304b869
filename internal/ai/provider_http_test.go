// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAIGenerateJSON(t *testing.T) {
	var gotAuth, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"{\"slides\":[]}"}}]}`)
	}))
	defer srv.Close()

	p := newOpenAI(ProviderConfig{APIKey: "sk-test", Model: "gpt-4o", BaseURL: srv.URL})
	out, err := p.GenerateJSON(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("GenerateJSON: %v", err)
	}
	if out != `{"slides":[]}` {
		t.Errorf("output: got %q", out)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("auth header: got %q", gotAuth)
	}
	var req openAIRequest
	if err := json.Unmarshal([]byte(gotBody), &req); err != nil {
		t.Fatalf("request body: %v", err)
	}
	if req.ResponseFormat == nil || req.ResponseFormat.Type != "json_object" {
		t.Error("expected response_format json_object in request")
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
		t.Errorf("messages: got %+v", req.Messages)
	}
}

func TestOpenAIAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"error":{"message":"rate limited"}}`)
	}))
	defer srv.Close()

	p := newOpenAI(ProviderConfig{APIKey: "sk-test", Model: "gpt-4o", BaseURL: srv.URL})
	_, err := p.GenerateJSON(context.Background(), "s", "u")
	if err == nil {
		t.Fatal("expected error on 429")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry status: %v", err)
	}
}

func TestGeminiGenerateJSON(t *testing.T) {
	var gotKey, gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"{\"slides\":[]}"}]}}]}`)
	}))
	defer srv.Close()

	p := newGemini(ProviderConfig{APIKey: "g-test", Model: "gemini-2.0-flash", BaseURL: srv.URL})
	out, err := p.GenerateJSON(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("GenerateJSON: %v", err)
	}
	if out != `{"slides":[]}` {
		t.Errorf("output: got %q", out)
	}
	if gotKey != "g-test" {
		t.Errorf("api key header: got %q", gotKey)
	}
	if gotPath != "/v1beta/models/gemini-2.0-flash:generateContent" {
		t.Errorf("path: got %q", gotPath)
	}
	var req geminiRequest
	if err := json.Unmarshal([]byte(gotBody), &req); err != nil {
		t.Fatalf("request body: %v", err)
	}
	if req.GenerationConfig == nil || req.GenerationConfig.ResponseMimeType != "application/json" {
		t.Error("expected responseMimeType application/json in request")
	}
	if req.SystemInstruction == nil || len(req.SystemInstruction.Parts) == 0 {
		t.Error("expected system_instruction in request")
	}
}

func TestGeminiNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"candidates":[]}`)
	}))
	defer srv.Close()

	p := newGemini(ProviderConfig{APIKey: "g-test", Model: "gemini-2.0-flash", BaseURL: srv.URL})
	if _, err := p.GenerateJSON(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error on empty candidates")
	}
}

func TestClaudeGenerateJSON(t *testing.T) {
	var gotKey, gotVersion string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		io.WriteString(w, `{"content":[{"type":"text","text":"{\"slides\":[]}"}]}`)
	}))
	defer srv.Close()

	p := newClaude(ProviderConfig{APIKey: "c-test", Model: "claude-sonnet", BaseURL: srv.URL})
	out, err := p.GenerateJSON(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("GenerateJSON: %v", err)
	}
	if out != `{"slides":[]}` {
		t.Errorf("output: got %q", out)
	}
	if gotKey != "c-test" {
		t.Errorf("api key header: got %q", gotKey)
	}
	if gotVersion == "" {
		t.Error("expected anthropic-version header")
	}
}

func TestRegistrySkipsUnkeyedProviders(t *testing.T) {
	r := NewRegistry("openai", map[string]ProviderConfig{
		"openai": {APIKey: ""},
		"gemini": {APIKey: "g-test", Model: "gemini-2.0-flash"},
	})

	if r.HasActive() {
		t.Error("openai has no key; HasActive should be false")
	}
	if _, err := r.Active(); err == nil {
		t.Error("expected error from Active with unkeyed active provider")
	}
	avail := r.Available()
	if len(avail) != 1 || avail[0] != "gemini" {
		t.Errorf("available: got %v, want [gemini]", avail)
	}
}

type stubProvider struct {
	out string
	err error
}

func (s *stubProvider) GenerateJSON(ctx context.Context, system, user string) (string, error) {
	return s.out, s.err
}

func (s *stubProvider) Name() string { return "stub" }

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry("stub", nil)
	r.Register("stub", &stubProvider{out: "ok"})

	if !r.HasActive() {
		t.Fatal("expected registered provider to be active")
	}
	out, err := r.GenerateJSON(context.Background(), "s", "u")
	if err != nil {
		t.Fatalf("GenerateJSON: %v", err)
	}
	if out != "ok" {
		t.Errorf("got %q, want ok", out)
	}
}
