package store

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yutaka-ini/taskplan-cli/internal/model"
)

func SubtaskJsonPath(config model.Config) string {
	return filepath.Join(config.DataDir, "subtasks.json")
}

func LoadSubtasks(config model.Config) ([]model.Subtask, string, error) {
	subtaskJsonPath := SubtaskJsonPath(config)
	var subtasks []model.Subtask
	err := LoadJson(subtaskJsonPath, &subtasks)
	if err != nil {
		return nil, "", fmt.Errorf("❌ Error loading subtasks from JSON: %w", err)
	}
	return subtasks, subtaskJsonPath, nil
}

// ListSubtasksByTask returns a task's subtasks in creation order. Export
// iterates this same order, so reconciliation order is stable across runs.
func ListSubtasksByTask(taskID string, config model.Config) ([]model.Subtask, error) {
	subtasks, _, err := LoadSubtasks(config)
	if err != nil {
		return nil, err
	}

	listed := []model.Subtask{}
	for _, subtask := range subtasks {
		if subtask.TaskID == taskID {
			listed = append(listed, subtask)
		}
	}
	return listed, nil
}

func GetSubtask(subtaskID string, config model.Config) (model.Subtask, error) {
	subtasks, _, err := LoadSubtasks(config)
	if err != nil {
		return model.Subtask{}, err
	}

	for _, subtask := range subtasks {
		if subtask.ID == subtaskID {
			return subtask, nil
		}
	}
	return model.Subtask{}, fmt.Errorf("❌ Subtask with ID %s not found", subtaskID)
}

// InsertSubtaskToJson creates a new subtask under an existing task.
func InsertSubtaskToJson(taskID, title, description string, config model.Config) (model.Subtask, error) {
	if strings.TrimSpace(title) == "" {
		return model.Subtask{}, fmt.Errorf("❌ Subtask title must not be empty")
	}

	// A subtask has no lifecycle outside its parent task.
	if _, err := GetTask(taskID, config); err != nil {
		return model.Subtask{}, err
	}

	subtasks, subtaskJsonPath, err := LoadSubtasks(config)
	if err != nil {
		return model.Subtask{}, err
	}

	now := time.Now().Format(timeLayout)
	subtask := model.Subtask{
		ID:          uuid.New().String(),
		TaskID:      taskID,
		Title:       title,
		Description: description,
		Status:      model.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	subtasks = append(subtasks, subtask)

	if err := SaveUpdatedJson(subtasks, subtaskJsonPath); err != nil {
		return model.Subtask{}, err
	}
	return subtask, nil
}

func UpdateSubtask(subtask model.Subtask, config model.Config) (model.Subtask, error) {
	if strings.TrimSpace(subtask.Title) == "" {
		return model.Subtask{}, fmt.Errorf("❌ Subtask title must not be empty")
	}
	if !model.ValidStatus(subtask.Status) {
		return model.Subtask{}, fmt.Errorf("❌ Invalid status %q (pending, in_progress, completed)", subtask.Status)
	}

	subtasks, subtaskJsonPath, err := LoadSubtasks(config)
	if err != nil {
		return model.Subtask{}, err
	}

	found := false
	for i := range subtasks {
		if subtasks[i].ID == subtask.ID {
			subtask.TaskID = subtasks[i].TaskID
			subtask.CreatedAt = subtasks[i].CreatedAt
			subtask.UpdatedAt = time.Now().Format(timeLayout)
			subtasks[i] = subtask
			found = true
			break
		}
	}
	if !found {
		return model.Subtask{}, fmt.Errorf("❌ Subtask with ID %s not found", subtask.ID)
	}

	if err := SaveUpdatedJson(subtasks, subtaskJsonPath); err != nil {
		return model.Subtask{}, err
	}
	return subtask, nil
}

func DeleteSubtask(subtaskID string, config model.Config) error {
	subtasks, subtaskJsonPath, err := LoadSubtasks(config)
	if err != nil {
		return err
	}

	updatedSubtasks := []model.Subtask{}
	found := false
	for _, subtask := range subtasks {
		if subtask.ID == subtaskID {
			found = true
			continue
		}
		updatedSubtasks = append(updatedSubtasks, subtask)
	}
	if !found {
		return fmt.Errorf("❌ Subtask with ID %s not found", subtaskID)
	}

	return SaveUpdatedJson(updatedSubtasks, subtaskJsonPath)
}

// DeleteSubtasksByTask removes every subtask owned by a task.
func DeleteSubtasksByTask(taskID string, config model.Config) error {
	subtasks, subtaskJsonPath, err := LoadSubtasks(config)
	if err != nil {
		return err
	}

	updatedSubtasks := []model.Subtask{}
	for _, subtask := range subtasks {
		if subtask.TaskID != taskID {
			updatedSubtasks = append(updatedSubtasks, subtask)
		}
	}

	return SaveUpdatedJson(updatedSubtasks, subtaskJsonPath)
}

// SetSubtaskNotionPageID persists the confirmed Notion page id for a subtask.
// An empty pageID clears a stale mapping.
func SetSubtaskNotionPageID(subtaskID, pageID string, config model.Config) error {
	subtasks, subtaskJsonPath, err := LoadSubtasks(config)
	if err != nil {
		return err
	}

	found := false
	for i := range subtasks {
		if subtasks[i].ID == subtaskID {
			subtasks[i].NotionPageID = pageID
			subtasks[i].UpdatedAt = time.Now().Format(timeLayout)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("❌ Subtask with ID %s not found", subtaskID)
	}

	return SaveUpdatedJson(subtasks, subtaskJsonPath)
}
