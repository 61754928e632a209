package notion

import (
	"fmt"
	"log"

	"github.com/yutaka-ini/taskplan-cli/internal/model"
	"github.com/yutaka-ini/taskplan-cli/internal/store"
)

// SubtaskOutcome records how a single subtask fared during an export run.
type SubtaskOutcome struct {
	SubtaskID string
	Title     string
	PageID    string
	Err       error
}

// ExportResult is the outcome of one export run. Success reflects only the
// task-level reconciliation: subtask failures are recorded in Subtasks but
// deliberately do not fail the run, so callers that care about partial
// failure can inspect the outcomes themselves.
type ExportResult struct {
	Success  bool
	PageID   string
	Err      error
	Subtasks []SubtaskOutcome
}

// Exporter mirrors one task and all of its subtasks into the destination
// database as a single export operation.
type Exporter struct {
	client     Client
	reconciler *Reconciler
	config     model.Config
}

func NewExporter(client Client, config model.Config) *Exporter {
	return &Exporter{
		client:     client,
		reconciler: NewReconciler(client, config),
		config:     config,
	}
}

// Export reconciles the task, then each of its subtasks in creation order.
// A task-level failure (unreachable database, cannot create or find the
// task's page) is fatal to the run and no subtasks are attempted. A
// subtask-level failure is logged, recorded, and does not stop its
// siblings.
func (e *Exporter) Export(task model.Task) ExportResult {
	if err := e.client.CheckDatabase(); err != nil {
		return ExportResult{Err: err}
	}

	taskPageID, err := e.reconciler.ReconcileTask(task)
	if err != nil {
		return ExportResult{Err: fmt.Errorf("failed to export task %q: %w", task.Title, err)}
	}

	result := ExportResult{Success: true, PageID: taskPageID}

	subtasks, err := store.ListSubtasksByTask(task.ID, e.config)
	if err != nil {
		// The task itself is synced; a local read failure only means the
		// subtasks get retried on the next run.
		log.Printf("❌ Failed to load subtasks for task %q: %v", task.Title, err)
		return result
	}

	for _, subtask := range subtasks {
		outcome := SubtaskOutcome{SubtaskID: subtask.ID, Title: subtask.Title}
		pageID, err := e.reconciler.ReconcileSubtask(subtask, taskPageID)
		if err != nil {
			log.Printf("❌ Failed to export subtask %q: %v", subtask.Title, err)
			outcome.Err = err
		} else {
			outcome.PageID = pageID
		}
		result.Subtasks = append(result.Subtasks, outcome)
	}

	return result
}
