/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yutaka-ini/taskplan-cli/internal/model"
	"github.com/yutaka-ini/taskplan-cli/internal/store"
	"gopkg.in/yaml.v3"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize config.yaml",
	Run: func(cmd *cobra.Command, args []string) {

		configPath, err := store.GetConfigPath()
		if err != nil {
			log.Printf("failed to get config path: %v", err)
		}

		configDir := filepath.Dir(configPath)

		configFile := filepath.Join(configDir, "config.yaml")

		if err := os.MkdirAll(configDir, 0755); err != nil {
			log.Fatalf("❌ Failed to create config directory: %v", err)
		}

		// Placeholder credentials mark where real ones go. They are
		// treated as unset when the config is loaded.
		config := model.DefaultConfig()
		config.Notion.APIKey = "your_notion_api_key_here"
		config.Notion.DatabaseID = "your_notion_database_id_here"
		config.Gemini.APIKey = "your_gemini_api_key_here"

		configData, err := yaml.Marshal(config)
		if err != nil {
			log.Fatalf("❌ Failed to generate config: %v", err)
		}

		if err := os.WriteFile(configFile, configData, 0644); err != nil {
			log.Fatalf("❌ Failed to create config file: %v", err)
		}

		fmt.Println("✅ taskplan initialized successfully!")
		fmt.Println("📄 Config file created at:", configFile)
		fmt.Println("💡 Set NOTION_API_KEY, NOTION_DATABASE_ID and GEMINI_API_KEY (config, env or .env) to go online.")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
