package notion

import (
	"errors"
	"testing"

	"github.com/yutaka-ini/taskplan-cli/internal/model"
	"github.com/yutaka-ini/taskplan-cli/internal/store"
)

func testConfig(t *testing.T) model.Config {
	t.Helper()
	config := model.DefaultConfig()
	config.DataDir = t.TempDir()
	return config
}

func TestReconcileTaskCreatesWhenNoMatch(t *testing.T) {
	config := testConfig(t)
	client := newFakeClient()
	reconciler := NewReconciler(client, config)

	task, _ := store.InsertTaskToJson("brand new", "", "", config)

	pageID, err := reconciler.ReconcileTask(task)
	if err != nil {
		t.Fatalf("ReconcileTask failed: %v", err)
	}
	if pageID == "" {
		t.Fatal("expected a page id")
	}
	if client.createCount != 1 || client.updateCount != 0 {
		t.Errorf("expected exactly one create and no updates, got %d/%d", client.createCount, client.updateCount)
	}

	got, _ := store.GetTask(task.ID, config)
	if got.NotionPageID != pageID {
		t.Errorf("expected page id %q persisted locally, got %q", pageID, got.NotionPageID)
	}
}

func TestReconcileTaskUpdatesRememberedPage(t *testing.T) {
	config := testConfig(t)
	client := newFakeClient()
	reconciler := NewReconciler(client, config)

	existing := client.addPage("already synced", "")
	task, _ := store.InsertTaskToJson("already synced", "", "", config)
	store.SetTaskNotionPageID(task.ID, existing, config)
	task.NotionPageID = existing

	pageID, err := reconciler.ReconcileTask(task)
	if err != nil {
		t.Fatalf("ReconcileTask failed: %v", err)
	}
	if pageID != existing {
		t.Errorf("expected remembered id %q, got %q", existing, pageID)
	}
	if client.createCount != 0 || client.updateCount != 1 {
		t.Errorf("expected exactly one update and no creates, got %d/%d", client.createCount, client.updateCount)
	}
}

func TestReconcileTaskAdoptsTitleMatch(t *testing.T) {
	config := testConfig(t)
	client := newFakeClient()
	reconciler := NewReconciler(client, config)

	// The page exists remotely but this install never exported it.
	existing := client.addPage("Shared Roadmap", "")
	task, _ := store.InsertTaskToJson("shared roadmap", "", "", config)

	pageID, err := reconciler.ReconcileTask(task)
	if err != nil {
		t.Fatalf("ReconcileTask failed: %v", err)
	}
	if pageID != existing {
		t.Errorf("expected the case-insensitive match %q to be adopted, got %q", existing, pageID)
	}
	if client.createCount != 0 || client.updateCount != 1 {
		t.Errorf("expected update-in-place with no create, got %d/%d", client.createCount, client.updateCount)
	}

	got, _ := store.GetTask(task.ID, config)
	if got.NotionPageID != existing {
		t.Errorf("expected the adopted id to be persisted, got %q", got.NotionPageID)
	}
}

func TestReconcileTaskTieBreaksOnFirstMatch(t *testing.T) {
	config := testConfig(t)
	client := newFakeClient()
	reconciler := NewReconciler(client, config)

	first := client.addPage("duplicated", "")
	client.addPage("duplicated", "")
	task, _ := store.InsertTaskToJson("duplicated", "", "", config)

	pageID, err := reconciler.ReconcileTask(task)
	if err != nil {
		t.Fatalf("ReconcileTask failed: %v", err)
	}
	if pageID != first {
		t.Errorf("expected the first match %q, got %q", first, pageID)
	}
}

func TestReconcileTaskClearsStaleIDThenCreates(t *testing.T) {
	config := testConfig(t)
	client := newFakeClient()
	reconciler := NewReconciler(client, config)

	stale := client.addPage("deleted remotely", "")
	client.archive(stale)

	task, _ := store.InsertTaskToJson("deleted remotely", "", "", config)
	store.SetTaskNotionPageID(task.ID, stale, config)
	task.NotionPageID = stale

	pageID, err := reconciler.ReconcileTask(task)
	if err != nil {
		t.Fatalf("ReconcileTask failed: %v", err)
	}
	if pageID == stale {
		t.Error("expected a fresh page id, not the archived one")
	}
	if client.createCount != 1 || client.updateCount != 0 {
		t.Errorf("expected the search to miss and a create to follow, got %d/%d", client.createCount, client.updateCount)
	}

	got, _ := store.GetTask(task.ID, config)
	if got.NotionPageID != pageID {
		t.Errorf("expected the fresh id to replace the stale one, got %q", got.NotionPageID)
	}
}

func TestReconcileTaskClearsStaleIDEvenWhenCreateFails(t *testing.T) {
	config := testConfig(t)
	client := newFakeClient()
	reconciler := NewReconciler(client, config)

	stale := client.addPage("doomed", "")
	client.archive(stale)
	client.failCreate["doomed"] = true

	task, _ := store.InsertTaskToJson("doomed", "", "", config)
	store.SetTaskNotionPageID(task.ID, stale, config)
	task.NotionPageID = stale

	if _, err := reconciler.ReconcileTask(task); err == nil {
		t.Fatal("expected the create failure to surface")
	}

	// The stale id must not survive the failed run, so the next attempt
	// starts from the search step.
	got, _ := store.GetTask(task.ID, config)
	if got.NotionPageID != "" {
		t.Errorf("expected the stale id to be cleared, got %q", got.NotionPageID)
	}
}

func TestReconcileSubtaskRequiresParentPage(t *testing.T) {
	config := testConfig(t)
	reconciler := NewReconciler(newFakeClient(), config)

	_, err := reconciler.ReconcileSubtask(model.Subtask{Title: "orphan"}, "")
	if !errors.Is(err, ErrParentNotSynced) {
		t.Errorf("expected ErrParentNotSynced, got %v", err)
	}
}

func TestReconcileSubtaskScopesSearchToParent(t *testing.T) {
	config := testConfig(t)
	client := newFakeClient()
	reconciler := NewReconciler(client, config)

	parentA := client.addPage("project a", "")
	parentB := client.addPage("project b", "")
	// Same subtask title under a different parent must not be adopted.
	client.addPage("write summary", parentB)

	task, _ := store.InsertTaskToJson("project a", "", "", config)
	store.SetTaskNotionPageID(task.ID, parentA, config)
	subtask, _ := store.InsertSubtaskToJson(task.ID, "write summary", "", config)

	pageID, err := reconciler.ReconcileSubtask(subtask, parentA)
	if err != nil {
		t.Fatalf("ReconcileSubtask failed: %v", err)
	}

	for _, page := range client.pages {
		if page.ID == pageID && page.Parent != parentA {
			t.Errorf("expected the new page under parent %q, got %q", parentA, page.Parent)
		}
	}
	if client.createCount != 1 {
		t.Errorf("expected a create since the match belongs to another parent, got %d", client.createCount)
	}

	got, _ := store.GetSubtask(subtask.ID, config)
	if got.NotionPageID != pageID {
		t.Errorf("expected the subtask page id to be persisted, got %q", got.NotionPageID)
	}
}

func TestReconcileSubtaskAdoptsMatchUnderParent(t *testing.T) {
	config := testConfig(t)
	client := newFakeClient()
	reconciler := NewReconciler(client, config)

	parent := client.addPage("project", "")
	existing := client.addPage("Write Summary", parent)

	task, _ := store.InsertTaskToJson("project", "", "", config)
	store.SetTaskNotionPageID(task.ID, parent, config)
	subtask, _ := store.InsertSubtaskToJson(task.ID, "write summary", "", config)

	pageID, err := reconciler.ReconcileSubtask(subtask, parent)
	if err != nil {
		t.Fatalf("ReconcileSubtask failed: %v", err)
	}
	if pageID != existing {
		t.Errorf("expected the existing page %q to be adopted, got %q", existing, pageID)
	}
	if client.createCount != 0 || client.updateCount != 1 {
		t.Errorf("expected update-in-place, got %d/%d", client.createCount, client.updateCount)
	}
}
