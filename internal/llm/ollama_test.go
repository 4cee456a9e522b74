package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

func testClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		model:   "llama3",
		client:  http.DefaultClient,
		log:     zerolog.Nop(),
	}
}

func TestAnalyze(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(chatResponse{
			Message: chatMessage{Role: "assistant", Content: "## Summary\nLooks fine."},
		})
	}))
	defer server.Close()

	c := testClient(server.URL)
	analysis, err := c.Analyze(context.Background(), "diff --git a/x b/x\n+y", "en")
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if analysis != "## Summary\nLooks fine." {
		t.Errorf("analysis = %q", analysis)
	}

	if got.Model != "llama3" {
		t.Errorf("request model = %q, want llama3", got.Model)
	}
	if got.Stream {
		t.Error("streaming must be disabled")
	}
	if got.Options.Temperature != analyzeTemperature {
		t.Errorf("temperature = %v, want %v", got.Options.Temperature, analyzeTemperature)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" {
		t.Fatalf("messages = %+v, want system+user", got.Messages)
	}
	if !strings.Contains(got.Messages[0].Content, "English") {
		t.Error("system prompt missing language directive")
	}
	if !strings.Contains(got.Messages[1].Content, "```diff") {
		t.Error("user prompt should fence the diff")
	}
}

func TestAnalyze_EmptyDiffSkipsRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty diff")
	}))
	defer server.Close()

	c := testClient(server.URL)
	analysis, err := c.Analyze(context.Background(), "   \n", "en")
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if !strings.Contains(analysis, "No changes") {
		t.Errorf("analysis = %q", analysis)
	}
}

func TestCommitMessage(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(chatResponse{
			Message: chatMessage{Role: "assistant", Content: `"Add retry to uploader"`},
		})
	}))
	defer server.Close()

	c := testClient(server.URL)
	msg, err := c.CommitMessage(context.Background(), "diff --git a/x b/x\n+y", "auto")
	if err != nil {
		t.Fatalf("CommitMessage error: %v", err)
	}
	if msg != "Add retry to uploader" {
		t.Errorf("msg = %q, surrounding quotes should be stripped", msg)
	}
	if got.Options.Temperature != commitTemperature {
		t.Errorf("temperature = %v, want %v", got.Options.Temperature, commitTemperature)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" {
		t.Fatalf("messages = %+v, want a single user message", got.Messages)
	}
}

func TestCleanCommitMessage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Add feature", "Add feature"},
		{`"Add feature"`, "Add feature"},
		{"'Add feature'", "Add feature"},
		{"`Add feature`", "Add feature"},
		{"  Add feature \n", "Add feature"},
		{"", "Update"},
		{strings.Repeat("a", 100), strings.Repeat("a", 72)},
		{strings.Repeat("я", 100), strings.Repeat("я", 72)},
	}
	for _, tt := range tests {
		if got := cleanCommitMessage(tt.in); got != tt.want {
			t.Errorf("cleanCommitMessage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanCommitMessage_CapsOnRuneBoundary(t *testing.T) {
	got := cleanCommitMessage(strings.Repeat("Добавить ", 20))
	if !utf8.ValidString(got) {
		t.Fatalf("capped message is not valid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 72 {
		t.Errorf("rune count = %d, want 72", n)
	}
}

func TestChat_ModelNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model 'llama3' not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	c := testClient(server.URL)
	_, err := c.Analyze(context.Background(), "+x", "en")
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !IsModelNotFound(err) {
		t.Errorf("IsModelNotFound(%v) = false, want true", err)
	}
	if IsConnectError(err) {
		t.Errorf("404 must not classify as connection error: %v", err)
	}
}

func TestChat_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	c := testClient(server.URL)
	_, err := c.Analyze(context.Background(), "+x", "en")
	if err == nil {
		t.Fatal("expected error for refused connection")
	}
	if !IsConnectError(err) {
		t.Errorf("IsConnectError(%v) = false, want true", err)
	}
}

func TestChat_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := testClient(server.URL)
	_, err := c.Analyze(context.Background(), "+x", "en")
	if err == nil || !strings.Contains(err.Error(), "status 500") {
		t.Errorf("err = %v, want status 500 in message", err)
	}
}

func TestLangInstruction(t *testing.T) {
	if !strings.Contains(langInstruction("en"), "English") {
		t.Error("en instruction should mention English")
	}
	if !strings.Contains(langInstruction("ru"), "по-русски") {
		t.Error("ru instruction should be in Russian")
	}
	auto := langInstruction("auto")
	if !strings.Contains(auto, "same language") {
		t.Errorf("auto instruction = %q", auto)
	}
}
