package model

type Subtask struct {
	ID           string `json:"id"`
	TaskID       string `json:"task_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Status       string `json:"status"` // pending, in_progress, completed
	NotionPageID string `json:"notion_page_id,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
