package store

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
data_dir: /tmp/taskplan-test
editor: vim
notion:
  api_key: secret-key
  database_id: db-123
gemini:
  api_key: gem-key
`)
	t.Setenv("TASKPLAN_CONFIG", path)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.DataDir != "/tmp/taskplan-test" {
		t.Errorf("unexpected data dir %q", config.DataDir)
	}
	if config.Notion.APIKey != "secret-key" || config.Notion.DatabaseID != "db-123" {
		t.Errorf("unexpected notion config: %+v", config.Notion)
	}
	if config.Gemini.APIKey != "gem-key" {
		t.Errorf("unexpected gemini key %q", config.Gemini.APIKey)
	}
}

func TestLoadConfigScrubsPlaceholders(t *testing.T) {
	path := writeConfigFile(t, `
data_dir: /tmp/taskplan-test
notion:
  api_key: your_notion_api_key_here
  database_id: your_notion_database_id_here
gemini:
  api_key: your_gemini_api_key_here
`)
	t.Setenv("TASKPLAN_CONFIG", path)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Notion.APIKey != "" || config.Notion.DatabaseID != "" || config.Gemini.APIKey != "" {
		t.Errorf("expected placeholder credentials to be scrubbed: %+v", config)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
data_dir: /tmp/taskplan-test
notion:
  api_key: file-key
`)
	t.Setenv("TASKPLAN_CONFIG", path)
	t.Setenv("NOTION_API_KEY", "env-key")
	t.Setenv("NOTION_DATABASE_ID", "env-db")
	t.Setenv("GEMINI_API_KEY", "env-gem")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Notion.APIKey != "env-key" {
		t.Errorf("expected the env var to win, got %q", config.Notion.APIKey)
	}
	if config.Notion.DatabaseID != "env-db" || config.Gemini.APIKey != "env-gem" {
		t.Errorf("unexpected env overrides: %+v", config)
	}
}

func TestGetConfigPathHonorsOverride(t *testing.T) {
	t.Setenv("TASKPLAN_CONFIG", "/custom/config.yaml")

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if path != "/custom/config.yaml" {
		t.Errorf("expected the override path, got %q", path)
	}
}
