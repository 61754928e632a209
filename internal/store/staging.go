package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yutaka-ini/taskplan-cli/internal/model"
)

// Staged suggestions live in one JSON file per task. They are discarded
// when the user commits a selection, abandons the flow, or deletes the task.

func stagingJsonPath(taskID string, config model.Config) string {
	return filepath.Join(config.DataDir, "staging", "suggestions_"+taskID+".json")
}

func SaveSuggestions(taskID string, suggestions []model.Suggestion, config model.Config) error {
	return SaveUpdatedJson(suggestions, stagingJsonPath(taskID, config))
}

func LoadSuggestions(taskID string, config model.Config) ([]model.Suggestion, error) {
	var suggestions []model.Suggestion
	err := LoadJson(stagingJsonPath(taskID, config), &suggestions)
	if err != nil {
		return nil, fmt.Errorf("❌ Error loading staged suggestions: %w", err)
	}
	return suggestions, nil
}

func ClearSuggestions(taskID string, config model.Config) error {
	err := os.Remove(stagingJsonPath(taskID, config))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("❌ Failed to clear staged suggestions: %w", err)
	}
	return nil
}
