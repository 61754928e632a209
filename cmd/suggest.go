/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/yutaka-ini/taskplan-cli/internal/gemini"
	"github.com/yutaka-ini/taskplan-cli/internal/store"
)

var suggestTaskCmd = &cobra.Command{
	Use:   "suggest [Task ID]",
	Short: "Generate candidate subtasks for a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		taskID := args[0]

		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		task, err := store.GetTask(taskID, *config)
		if err != nil {
			log.Printf("%v\n", err)
			os.Exit(1)
		}

		if config.Gemini.APIKey == "" {
			log.Println("💡 No Gemini API key configured, using offline suggestions.")
		} else {
			log.Println("🔄 Generating subtasks with Gemini...")
		}

		generator := gemini.NewClient(*config)
		suggestions := generator.GenerateSubtasks(task)

		if len(suggestions) == 0 {
			log.Println("❌ Failed to generate subtasks. Please try again.")
			os.Exit(1)
		}

		if err := store.SaveSuggestions(taskID, suggestions, *config); err != nil {
			log.Printf("❌ Failed to stage suggestions: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(strings.Repeat("=", 30))
		fmt.Printf("Suggestions for %q: %d candidates\n", task.Title, len(suggestions))
		fmt.Println(strings.Repeat("=", 30))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("#"),
			text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
			text.FgGreen.Sprintf("Description"),
		})

		for i, suggestion := range suggestions {
			t.AppendRow(table.Row{i, suggestion.Title, suggestion.Description})
		}

		t.Render()

		fmt.Printf("\n💡 Run `taskplan task pick %s 0 2 ...` to save a selection, or `taskplan task pick %s` for the interactive picker.\n", taskID, taskID)
	},
}

func init() {
	taskCmd.AddCommand(suggestTaskCmd)
}
