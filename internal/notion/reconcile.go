package notion

import (
	"fmt"
	"log"
	"strings"

	"github.com/yutaka-ini/taskplan-cli/internal/model"
	"github.com/yutaka-ini/taskplan-cli/internal/store"
)

// Reconciler decides, per local record, whether a matching Notion page
// already exists and whether it should be created or updated in place. The
// confirmed page id is persisted locally before the reconciled id is
// returned, so a later failure in the same run never loses a confirmed
// mapping.
//
// Per record the steps are:
//  1. A remembered page id is verified by fetching that exact page. If it
//     still exists the page is updated (all mirrored fields overwritten).
//     If it was deleted out-of-band the stale id is cleared locally and
//     reconciliation falls through to the search step.
//  2. Without a usable id the database is searched for an exact
//     case-insensitive title match (scoped to the parent relation for
//     subtasks). Exactly one outcome follows: the first match is adopted
//     and updated, or no match exists and a new page is created. The
//     first-match tie-break is a documented soft heuristic, not a
//     uniqueness guarantee.
type Reconciler struct {
	client Client
	config model.Config
}

func NewReconciler(client Client, config model.Config) *Reconciler {
	return &Reconciler{client: client, config: config}
}

// ReconcileTask drives one task to the synced state and returns the
// authoritative page id.
func (r *Reconciler) ReconcileTask(task model.Task) (string, error) {
	if task.NotionPageID != "" {
		exists, err := r.client.PageExists(task.NotionPageID)
		if err != nil {
			return "", err
		}
		if exists {
			if err := r.client.UpdateTaskPage(task.NotionPageID, task); err != nil {
				return "", err
			}
			return task.NotionPageID, nil
		}

		// The remembered page was deleted in Notion. Clear the stale id
		// so the next attempt starts from the search step even if this
		// run fails below.
		log.Printf("⚠️ Notion page %s for task %q no longer exists, clearing stale id", task.NotionPageID, task.Title)
		if err := store.SetTaskNotionPageID(task.ID, "", r.config); err != nil {
			return "", err
		}
		task.NotionPageID = ""
	}

	pages, err := r.client.QueryByTitle(task.Title)
	if err != nil {
		return "", err
	}

	if match, ok := firstTitleMatch(pages, task.Title); ok {
		if err := r.client.UpdateTaskPage(match.ID, task); err != nil {
			return "", err
		}
		if err := store.SetTaskNotionPageID(task.ID, match.ID, r.config); err != nil {
			return "", err
		}
		return match.ID, nil
	}

	pageID, err := r.client.CreateTaskPage(task)
	if err != nil {
		return "", err
	}
	if err := store.SetTaskNotionPageID(task.ID, pageID, r.config); err != nil {
		return "", err
	}
	return pageID, nil
}

// ReconcileSubtask drives one subtask to the synced state. The parent
// task's confirmed page id is a hard precondition: it scopes the title
// search and provides the relation link on create and update.
func (r *Reconciler) ReconcileSubtask(subtask model.Subtask, parentPageID string) (string, error) {
	if parentPageID == "" {
		return "", fmt.Errorf("cannot reconcile subtask %q: %w", subtask.Title, ErrParentNotSynced)
	}

	if subtask.NotionPageID != "" {
		exists, err := r.client.PageExists(subtask.NotionPageID)
		if err != nil {
			return "", err
		}
		if exists {
			if err := r.client.UpdateSubtaskPage(subtask.NotionPageID, subtask, parentPageID); err != nil {
				return "", err
			}
			return subtask.NotionPageID, nil
		}

		log.Printf("⚠️ Notion page %s for subtask %q no longer exists, clearing stale id", subtask.NotionPageID, subtask.Title)
		if err := store.SetSubtaskNotionPageID(subtask.ID, "", r.config); err != nil {
			return "", err
		}
		subtask.NotionPageID = ""
	}

	pages, err := r.client.QueryByTitleAndParent(subtask.Title, parentPageID)
	if err != nil {
		return "", err
	}

	if match, ok := firstTitleMatch(pages, subtask.Title); ok {
		if err := r.client.UpdateSubtaskPage(match.ID, subtask, parentPageID); err != nil {
			return "", err
		}
		if err := store.SetSubtaskNotionPageID(subtask.ID, match.ID, r.config); err != nil {
			return "", err
		}
		return match.ID, nil
	}

	pageID, err := r.client.CreateSubtaskPage(subtask, parentPageID)
	if err != nil {
		return "", err
	}
	if err := store.SetSubtaskNotionPageID(subtask.ID, pageID, r.config); err != nil {
		return "", err
	}
	return pageID, nil
}

// firstTitleMatch picks the first page whose title equals the wanted one,
// ignoring case. External ordering is assumed stable within one run.
func firstTitleMatch(pages []Page, title string) (Page, bool) {
	for _, page := range pages {
		if strings.EqualFold(page.Title, title) {
			return page, true
		}
	}
	return Page{}, false
}
