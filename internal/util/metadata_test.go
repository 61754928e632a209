package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGenerateMetadata(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "tasks.json"), []byte("[]"), 0644)
	os.MkdirAll(filepath.Join(dir, "staging"), 0755)
	os.WriteFile(filepath.Join(dir, "staging", "suggestions_x.json"), []byte("[]"), 0644)
	// The metadata file itself must not be listed.
	os.WriteFile(filepath.Join(dir, metadataFileName), []byte("{}"), 0644)

	metadata, err := GenerateMetadata(dir)
	if err != nil {
		t.Fatalf("GenerateMetadata failed: %v", err)
	}
	if len(metadata) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(metadata), metadata)
	}
	if _, ok := metadata["tasks.json"]; !ok {
		t.Error("expected tasks.json in metadata")
	}
	if _, ok := metadata[filepath.Join("staging", "suggestions_x.json")]; !ok {
		t.Error("expected the staging file in metadata")
	}
	for file, stamp := range metadata {
		if _, err := time.Parse(time.RFC3339, stamp); err != nil {
			t.Errorf("bad timestamp for %s: %v", file, err)
		}
	}
}

func TestSaveAndLoadMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", metadataFileName)

	want := map[string]string{"tasks.json": "2025-06-01T10:00:00Z"}
	if err := SaveMetadata(path, want); err != nil {
		t.Fatalf("SaveMetadata failed: %v", err)
	}

	got, err := LoadMetadata(path)
	if err != nil {
		t.Fatalf("LoadMetadata failed: %v", err)
	}
	if got["tasks.json"] != want["tasks.json"] {
		t.Errorf("round trip mismatch: %v", got)
	}
}

func TestLoadMetadataMissingFile(t *testing.T) {
	got, err := LoadMetadata(filepath.Join(t.TempDir(), metadataFileName))
	if err != nil {
		t.Fatalf("LoadMetadata failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty metadata, got %v", got)
	}
}

func TestDetectChanges(t *testing.T) {
	local := map[string]string{
		"tasks.json":    "2025-06-01T10:00:00Z",
		"subtasks.json": "2025-06-01T10:00:00Z",
		"local-only":    "2025-06-01T10:00:00Z",
	}
	remote := map[string]string{
		"tasks.json":    "2025-06-01T12:00:00Z", // newer on S3
		"subtasks.json": "2025-06-01T10:00:00Z", // identical
		"remote-only":   "2025-06-01T10:00:00Z",
	}

	pull := DetectChanges(local, remote, "s3")
	if len(pull) != 2 {
		t.Errorf("expected tasks.json and remote-only to pull, got %v", pull)
	}

	push := DetectChanges(local, remote, "local")
	if len(push) != 1 || push[0] != "local-only" {
		t.Errorf("expected only local-only to push, got %v", push)
	}
}

func TestNewerThanSlack(t *testing.T) {
	// Differences within one second are treated as equal.
	if newerThan("2025-06-01T10:00:01Z", "2025-06-01T10:00:00Z", "f") {
		t.Error("expected sub-second slack to suppress the diff")
	}
	if !newerThan("2025-06-01T10:00:02Z", "2025-06-01T10:00:00Z", "f") {
		t.Error("expected a 2s difference to count as newer")
	}
	if newerThan("garbage", "2025-06-01T10:00:00Z", "f") {
		t.Error("expected unparseable timestamps to be skipped")
	}
}
