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
	"github.com/yutaka-ini/taskplan-cli/internal/store"
)

var subtaskDescription string
var subtaskNewTitle string
var subtaskNewDescription string
var subtaskNewStatus string

// subtaskCmd represents the subtask command
var subtaskCmd = &cobra.Command{
	Use:     "subtask",
	Short:   "Manage subtasks of a task",
	Aliases: []string{"st"},
}

var addSubtaskCmd = &cobra.Command{
	Use:     "add [Task ID] [title]",
	Short:   "Add a subtask to a task",
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"a"},
	Run: func(cmd *cobra.Command, args []string) {
		taskID := args[0]
		subtaskTitle := args[1]

		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		subtask, err := store.InsertSubtaskToJson(taskID, subtaskTitle, subtaskDescription, *config)
		if err != nil {
			log.Printf("❌ Failed to create subtask: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Subtask %q has been created successfully. (ID: %s)\n", subtask.Title, subtask.ID)
	},
}

var listSubtaskCmd = &cobra.Command{
	Use:     "list [Task ID]",
	Short:   "List a task's subtasks",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"ls"},
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

		subtasks, err := store.ListSubtasksByTask(taskID, *config)
		if err != nil {
			log.Printf("❌ Error loading subtasks: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(strings.Repeat("=", 30))
		fmt.Printf("Subtasks of %q: %v shown\n", task.Title, len(subtasks))
		fmt.Println(strings.Repeat("=", 30))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Subtask ID"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
			text.FgGreen.Sprintf("Status"),
			text.FgGreen.Sprintf("Notion"),
			text.FgGreen.Sprintf("Created"),
		})

		for _, subtask := range subtasks {
			notionMark := "-"
			if subtask.NotionPageID != "" {
				notionMark = text.FgHiGreen.Sprintf("✓")
			}

			t.AppendRow(table.Row{
				subtask.ID,
				subtask.Title,
				statusColored(subtask.Status),
				notionMark,
				subtask.CreatedAt,
			})
		}

		t.Render()
	},
}

var updateSubtaskCmd = &cobra.Command{
	Use:   "update [Subtask ID]",
	Short: "Update subtask fields",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		subtaskID := args[0]

		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		subtask, err := store.GetSubtask(subtaskID, *config)
		if err != nil {
			log.Printf("%v\n", err)
			os.Exit(1)
		}

		if subtaskNewTitle != "" {
			subtask.Title = subtaskNewTitle
		}
		if cmd.Flags().Changed("description") {
			subtask.Description = subtaskNewDescription
		}
		if subtaskNewStatus != "" {
			subtask.Status = subtaskNewStatus
		}

		subtask, err = store.UpdateSubtask(subtask, *config)
		if err != nil {
			log.Printf("❌ Failed to update subtask: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Subtask %s updated successfully\n", subtask.ID)
	},
}

var removeSubtaskCmd = &cobra.Command{
	Use:     "remove [Subtask ID]",
	Short:   "Delete a subtask",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		subtaskID := args[0]

		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := store.DeleteSubtask(subtaskID, *config); err != nil {
			log.Printf("❌ Failed to delete subtask: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Subtask %s was deleted\n", subtaskID)
	},
}

func init() {
	subtaskCmd.AddCommand(addSubtaskCmd)
	subtaskCmd.AddCommand(listSubtaskCmd)
	subtaskCmd.AddCommand(updateSubtaskCmd)
	subtaskCmd.AddCommand(removeSubtaskCmd)
	rootCmd.AddCommand(subtaskCmd)
	addSubtaskCmd.Flags().StringVarP(&subtaskDescription, "description", "d", "", "Subtask description")
	updateSubtaskCmd.Flags().StringVar(&subtaskNewTitle, "title", "", "New title")
	updateSubtaskCmd.Flags().StringVarP(&subtaskNewDescription, "description", "d", "", "New description")
	updateSubtaskCmd.Flags().StringVar(&subtaskNewStatus, "status", "", "New status (pending, in_progress, completed)")
}
