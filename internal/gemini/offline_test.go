package gemini

import (
	"reflect"
	"testing"

	"github.com/yutaka-ini/taskplan-cli/internal/model"
)

func TestOfflineMeetingTasks(t *testing.T) {
	client := NewOfflineClient()

	for _, title := range []string{"Plan team meeting", "Discuss roadmap", "Talk to stakeholders"} {
		suggestions := client.GenerateSubtasks(model.Task{Title: title})
		if len(suggestions) != 5 {
			t.Fatalf("%q: expected 5 suggestions, got %d", title, len(suggestions))
		}
		if suggestions[0].Title != "Create meeting agenda" {
			t.Errorf("%q: unexpected first title %q", title, suggestions[0].Title)
		}
		if suggestions[0].Description != "Outline the key topics to be discussed." {
			t.Errorf("%q: unexpected first description %q", title, suggestions[0].Description)
		}
	}
}

func TestOfflineWritingTasks(t *testing.T) {
	client := NewOfflineClient()

	for _, title := range []string{"Write proposal", "Update design document", "Quarterly report"} {
		suggestions := client.GenerateSubtasks(model.Task{Title: title})
		if len(suggestions) != 7 {
			t.Fatalf("%q: expected 7 suggestions, got %d", title, len(suggestions))
		}
		if suggestions[0].Title != "Research the topic" {
			t.Errorf("%q: unexpected first title %q", title, suggestions[0].Title)
		}
	}
}

func TestOfflineGenericTasks(t *testing.T) {
	client := NewOfflineClient()

	suggestions := client.GenerateSubtasks(model.Task{Title: "Refactor billing module"})
	if len(suggestions) != 6 {
		t.Fatalf("expected 6 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Title != "Define requirements" {
		t.Errorf("unexpected first title %q", suggestions[0].Title)
	}
}

func TestOfflineKeywordMatchIsCaseInsensitive(t *testing.T) {
	client := NewOfflineClient()

	upper := client.GenerateSubtasks(model.Task{Title: "MEETING with vendors"})
	lower := client.GenerateSubtasks(model.Task{Title: "meeting with vendors"})
	if !reflect.DeepEqual(upper, lower) {
		t.Error("expected identical suggestions regardless of title case")
	}
	if len(upper) != 5 {
		t.Errorf("expected the meeting list, got %d suggestions", len(upper))
	}
}

func TestOfflineIsDeterministic(t *testing.T) {
	client := NewOfflineClient()
	task := model.Task{Title: "Write onboarding guide"}

	first := client.GenerateSubtasks(task)
	second := client.GenerateSubtasks(task)
	if !reflect.DeepEqual(first, second) {
		t.Error("expected repeated runs to produce identical suggestions")
	}
}

func TestNewClientSelectsOfflineWithoutKey(t *testing.T) {
	config := model.DefaultConfig()
	config.Gemini.APIKey = ""

	if _, ok := NewClient(config).(*OfflineClient); !ok {
		t.Error("expected the offline generator when no API key is set")
	}

	config.Gemini.APIKey = "real-key"
	if _, ok := NewClient(config).(*LiveClient); !ok {
		t.Error("expected the live client when an API key is set")
	}
}
