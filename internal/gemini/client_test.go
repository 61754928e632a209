package gemini

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yutaka-ini/taskplan-cli/internal/model"
)

func TestParseSubtasksFromText(t *testing.T) {
	raw := "Sure, here is the breakdown:\n```json\n" +
		`[{"title": "One", "description": "First step"}, {"title": "Two", "description": "Second step"}]` +
		"\n```\nLet me know if you need more."

	suggestions := parseSubtasksFromText(raw)
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Title != "One" || suggestions[1].Description != "Second step" {
		t.Errorf("unexpected suggestions: %+v", suggestions)
	}
}

func TestParseSubtasksFromTextNoArray(t *testing.T) {
	if got := parseSubtasksFromText("I could not produce a breakdown."); got != nil {
		t.Errorf("expected nil for text without a JSON array, got %+v", got)
	}
	if got := parseSubtasksFromText("] backwards ["); got != nil {
		t.Errorf("expected nil for malformed delimiters, got %+v", got)
	}
}

func TestParseSubtasksFromTextInvalidJSON(t *testing.T) {
	if got := parseSubtasksFromText(`[{"title": }]`); got != nil {
		t.Errorf("expected nil for invalid JSON, got %+v", got)
	}
}

func newGeminiTestServer(t *testing.T, handler http.HandlerFunc) *LiveClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewLiveClient("test-key", "models/gemini-1.5-pro")
	client.baseURL = server.URL
	client.httpClient = server.Client()
	return client
}

func TestLiveClientGenerateSubtasks(t *testing.T) {
	var gotRequest generateRequest

	client := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "models/gemini-1.5-pro:generateContent") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("expected API key in query, got %q", r.URL.RawQuery)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotRequest); err != nil {
			t.Fatalf("bad request body: %v", err)
		}

		reply := `Here you go:
[{"title": "Create meeting agenda", "description": "Outline the key topics."}]`
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": reply}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	})

	suggestions := client.GenerateSubtasks(model.Task{Title: "Plan team meeting", Description: "Q3 kickoff"})
	if len(suggestions) != 1 || suggestions[0].Title != "Create meeting agenda" {
		t.Fatalf("unexpected suggestions: %+v", suggestions)
	}

	if gotRequest.GenerationConfig.Temperature != 0.7 ||
		gotRequest.GenerationConfig.TopK != 40 ||
		gotRequest.GenerationConfig.TopP != 0.95 ||
		gotRequest.GenerationConfig.MaxOutputTokens != 2048 {
		t.Errorf("unexpected generation config: %+v", gotRequest.GenerationConfig)
	}

	prompt := gotRequest.Contents[0].Parts[0].Text
	if !strings.Contains(prompt, "Main task: Plan team meeting") {
		t.Errorf("prompt missing task title: %s", prompt)
	}
	if !strings.Contains(prompt, "Description: Q3 kickoff") {
		t.Errorf("prompt missing task description: %s", prompt)
	}
}

func TestLiveClientAPIError(t *testing.T) {
	client := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	})

	if got := client.GenerateSubtasks(model.Task{Title: "anything"}); got != nil {
		t.Errorf("expected nil on API error, got %+v", got)
	}
}

func TestLiveClientEmptyCandidates(t *testing.T) {
	client := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	})

	if got := client.GenerateSubtasks(model.Task{Title: "anything"}); got != nil {
		t.Errorf("expected nil when no candidates are returned, got %+v", got)
	}
}
