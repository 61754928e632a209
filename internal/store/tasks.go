package store

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yutaka-ini/taskplan-cli/internal/model"
)

const timeLayout = "2006-01-02 15:04:05"

func TaskJsonPath(config model.Config) string {
	return filepath.Join(config.DataDir, "tasks.json")
}

func LoadTasks(config model.Config) ([]model.Task, string, error) {
	taskJsonPath := TaskJsonPath(config)
	var tasks []model.Task
	err := LoadJson(taskJsonPath, &tasks)
	if err != nil {
		return nil, "", fmt.Errorf("❌ Error loading tasks from JSON: %w", err)
	}
	return tasks, taskJsonPath, nil
}

// ListTasks returns all tasks, newest first.
func ListTasks(config model.Config) ([]model.Task, error) {
	tasks, _, err := LoadTasks(config)
	if err != nil {
		return nil, err
	}

	listed := make([]model.Task, 0, len(tasks))
	for i := len(tasks) - 1; i >= 0; i-- {
		listed = append(listed, tasks[i])
	}
	return listed, nil
}

func GetTask(taskID string, config model.Config) (model.Task, error) {
	tasks, _, err := LoadTasks(config)
	if err != nil {
		return model.Task{}, err
	}

	for _, task := range tasks {
		if task.ID == taskID {
			return task, nil
		}
	}
	return model.Task{}, fmt.Errorf("❌ Task with ID %s not found", taskID)
}

// InsertTaskToJson creates a new task record and appends it to `tasks.json`.
func InsertTaskToJson(title, description, priority string, config model.Config) (model.Task, error) {
	if strings.TrimSpace(title) == "" {
		return model.Task{}, fmt.Errorf("❌ Task title must not be empty")
	}
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(priority) {
		return model.Task{}, fmt.Errorf("❌ Invalid priority %q (low, medium, high)", priority)
	}

	tasks, taskJsonPath, err := LoadTasks(config)
	if err != nil {
		return model.Task{}, err
	}

	now := time.Now().Format(timeLayout)
	task := model.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      model.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tasks = append(tasks, task)

	if err := SaveUpdatedJson(tasks, taskJsonPath); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// UpdateTask overwrites the stored record for task.ID with the given fields.
func UpdateTask(task model.Task, config model.Config) (model.Task, error) {
	if strings.TrimSpace(task.Title) == "" {
		return model.Task{}, fmt.Errorf("❌ Task title must not be empty")
	}
	if !model.ValidStatus(task.Status) {
		return model.Task{}, fmt.Errorf("❌ Invalid status %q (pending, in_progress, completed)", task.Status)
	}
	if !model.ValidPriority(task.Priority) {
		return model.Task{}, fmt.Errorf("❌ Invalid priority %q (low, medium, high)", task.Priority)
	}

	tasks, taskJsonPath, err := LoadTasks(config)
	if err != nil {
		return model.Task{}, err
	}

	found := false
	for i := range tasks {
		if tasks[i].ID == task.ID {
			task.CreatedAt = tasks[i].CreatedAt
			task.UpdatedAt = time.Now().Format(timeLayout)
			tasks[i] = task
			found = true
			break
		}
	}
	if !found {
		return model.Task{}, fmt.Errorf("❌ Task with ID %s not found", task.ID)
	}

	if err := SaveUpdatedJson(tasks, taskJsonPath); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// DeleteTask removes a task and all of its subtasks (cascade), along with
// any staged suggestions for it.
func DeleteTask(taskID string, config model.Config) error {
	tasks, taskJsonPath, err := LoadTasks(config)
	if err != nil {
		return err
	}

	updatedTasks := []model.Task{}
	found := false
	for _, task := range tasks {
		if task.ID == taskID {
			found = true
			continue
		}
		updatedTasks = append(updatedTasks, task)
	}
	if !found {
		return fmt.Errorf("❌ Task with ID %s not found", taskID)
	}

	if err := SaveUpdatedJson(updatedTasks, taskJsonPath); err != nil {
		return err
	}

	if err := DeleteSubtasksByTask(taskID, config); err != nil {
		return err
	}

	return ClearSuggestions(taskID, config)
}

// SetTaskNotionPageID persists the confirmed Notion page id for a task.
// An empty pageID clears a stale mapping.
func SetTaskNotionPageID(taskID, pageID string, config model.Config) error {
	tasks, taskJsonPath, err := LoadTasks(config)
	if err != nil {
		return err
	}

	found := false
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].NotionPageID = pageID
			tasks[i].UpdatedAt = time.Now().Format(timeLayout)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("❌ Task with ID %s not found", taskID)
	}

	return SaveUpdatedJson(tasks, taskJsonPath)
}
