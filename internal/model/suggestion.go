package model

// Suggestion is a candidate subtask produced by the generator. Suggestions
// are staged per task until the user commits a selection or abandons it;
// they are never persisted as records themselves.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
