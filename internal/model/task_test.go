package model

import "testing"

func TestValidStatus(t *testing.T) {
	for _, status := range []string{StatusPending, StatusInProgress, StatusCompleted} {
		if !ValidStatus(status) {
			t.Errorf("expected %q to be valid", status)
		}
	}
	for _, status := range []string{"", "done", "Pending"} {
		if ValidStatus(status) {
			t.Errorf("expected %q to be invalid", status)
		}
	}
}

func TestValidPriority(t *testing.T) {
	for _, priority := range []string{PriorityLow, PriorityMedium, PriorityHigh} {
		if !ValidPriority(priority) {
			t.Errorf("expected %q to be valid", priority)
		}
	}
	if ValidPriority("urgent") {
		t.Error("expected \"urgent\" to be invalid")
	}
}

func TestTitleize(t *testing.T) {
	cases := map[string]string{
		"pending":     "Pending",
		"in_progress": "In Progress",
		"completed":   "Completed",
		"high":        "High",
		"":            "",
	}
	for in, want := range cases {
		if got := Titleize(in); got != want {
			t.Errorf("Titleize(%q) = %q, want %q", in, got, want)
		}
	}
}
