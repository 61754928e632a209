/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/yutaka-ini/taskplan-cli/internal/model"
	"github.com/yutaka-ini/taskplan-cli/internal/notion"
	"github.com/yutaka-ini/taskplan-cli/internal/store"
)

var exportTaskCmd = &cobra.Command{
	Use:   "export [Task ID]",
	Short: "Export a task and its subtasks to Notion",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		taskID := args[0]

		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		runExport(taskID, *config)
	},
}

// runExport drives one export run and reports the outcome. It is shared
// with `task pick --export`.
func runExport(taskID string, config model.Config) {
	task, err := store.GetTask(taskID, config)
	if err != nil {
		log.Printf("%v\n", err)
		os.Exit(1)
	}

	if config.Notion.APIKey == "" || config.Notion.DatabaseID == "" {
		log.Println("💡 No Notion credentials configured, simulating export.")
	} else {
		log.Println("🔄 Exporting to Notion...")
	}

	client := notion.NewClient(config)
	exporter := notion.NewExporter(client, config)
	result := exporter.Export(task)

	if !result.Success {
		switch {
		case errors.Is(result.Err, notion.ErrAuth):
			log.Printf("❌ Failed to export to Notion: %v\n", result.Err)
		case errors.Is(result.Err, notion.ErrDatabaseNotFound):
			log.Printf("❌ Failed to export to Notion: %v\n", result.Err)
		default:
			log.Printf("❌ Error exporting to Notion: %v\n", result.Err)
		}
		os.Exit(1)
	}

	fmt.Println("✅ Task and subtasks exported to Notion successfully!")
	urlStyle := color.New(color.FgCyan).SprintFunc()
	fmt.Printf("📄 %s\n", urlStyle(notion.PageURL(result.PageID)))

	for _, outcome := range result.Subtasks {
		if outcome.Err != nil {
			fmt.Printf("  ❌ %s: %v\n", outcome.Title, outcome.Err)
		} else {
			fmt.Printf("  ✅ %s\n", outcome.Title)
		}
	}
}

func init() {
	taskCmd.AddCommand(exportTaskCmd)
}
