package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/yutaka-ini/taskplan-cli/internal/model"
	"gopkg.in/yaml.v3"
)

// Placeholder values shipped in sample configs count as "no credential".
const (
	placeholderNotionKey = "your_notion_api_key_here"
	placeholderNotionDB  = "your_notion_database_id_here"
	placeholderGeminiKey = "your_gemini_api_key_here"
)

func GetConfigPath() (string, error) {
	// Check if the environment variable `TASKPLAN_CONFIG` is set
	if customConfig := os.Getenv("TASKPLAN_CONFIG"); customConfig != "" {
		return customConfig, nil
	}

	var configPath string

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			configPath = filepath.Join(appData, "taskplan", "config.yaml")
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to determine home directory: %w", err)
			}
			configPath = filepath.Join(homeDir, "AppData", "Roaming", "taskplan", "config.yaml")
		}

	default: // macOS / Linux
		configDir, err := os.UserConfigDir()
		if err != nil {
			homeDir, homeErr := os.UserHomeDir()
			if homeErr != nil {
				return "", fmt.Errorf("failed to determine home directory: %w", homeErr)
			}
			configPath = filepath.Join(homeDir, ".taskplan", "config.yaml")
			log.Printf("⚠️ Failed to get user config directory, using fallback: %s", configPath)
		} else {
			configPath = filepath.Join(configDir, "taskplan", "config.yaml")
		}
	}

	return configPath, nil
}

// Expand `~` to the home directory (Windows included)
func expandHomeDir(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Printf("⚠️ Failed to get home directory: %v", err)
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func LoadConfig() (*model.Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file (%s): %w", configPath, err)
	}

	var config model.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.DataDir = expandHomeDir(config.DataDir)

	applyEnvOverrides(&config)
	scrubPlaceholders(&config)

	return &config, nil
}

func SaveConfig(config model.Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file (%s): %w", configPath, err)
	}

	return nil
}

// applyEnvOverrides lets credentials come from the environment instead of
// the config file. A `.env` in the working directory is honored too.
func applyEnvOverrides(config *model.Config) {
	// Ignore the error: a missing .env file is the normal case.
	_ = godotenv.Load()

	if key := os.Getenv("NOTION_API_KEY"); key != "" {
		config.Notion.APIKey = key
	}
	if dbID := os.Getenv("NOTION_DATABASE_ID"); dbID != "" {
		config.Notion.DatabaseID = dbID
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	}
}

func scrubPlaceholders(config *model.Config) {
	if config.Notion.APIKey == placeholderNotionKey {
		config.Notion.APIKey = ""
	}
	if config.Notion.DatabaseID == placeholderNotionDB {
		config.Notion.DatabaseID = ""
	}
	if config.Gemini.APIKey == placeholderGeminiKey {
		config.Gemini.APIKey = ""
	}
}
