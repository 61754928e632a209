package model

import "strings"

// Status values shared by tasks and subtasks
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Priority values
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Priority     string `json:"priority"` // low, medium, high
	Status       string `json:"status"`   // pending, in_progress, completed
	NotionPageID string `json:"notion_page_id,omitempty"`
	CreatedAt    string `json:"created_at"` // yyyy-MM-dd HH:mm:ss
	UpdatedAt    string `json:"updated_at"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Titleize converts a stored enum value to its human-readable form,
// e.g. "in_progress" -> "In Progress". This is the form mirrored to Notion.
func Titleize(value string) string {
	words := strings.Split(value, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
