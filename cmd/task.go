/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/yutaka-ini/taskplan-cli/internal/model"
	"github.com/yutaka-ini/taskplan-cli/internal/notion"
	"github.com/yutaka-ini/taskplan-cli/internal/store"
)

var taskDescription string
var taskPriority string
var taskStatusFilter string
var taskNewTitle string
var taskNewDescription string
var taskNewStatus string
var taskNewPriority string
var taskMeta bool

func statusColored(status string) string {
	switch status {
	case model.StatusPending:
		return text.FgHiRed.Sprintf("%s", model.Titleize(status))
	case model.StatusInProgress:
		return text.FgHiYellow.Sprintf("%s", model.Titleize(status))
	case model.StatusCompleted:
		return text.FgHiGreen.Sprintf("%s", model.Titleize(status))
	default:
		return status
	}
}

func priorityColored(priority string) string {
	switch priority {
	case model.PriorityHigh:
		return text.FgHiRed.Sprintf("%s", model.Titleize(priority))
	case model.PriorityMedium:
		return text.FgHiYellow.Sprintf("%s", model.Titleize(priority))
	case model.PriorityLow:
		return text.FgHiBlue.Sprintf("%s", model.Titleize(priority))
	default:
		return priority
	}
}

// taskCmd represents the task command
var taskCmd = &cobra.Command{
	Use:     "task",
	Short:   "Manage tasks",
	Aliases: []string{"t"},
}

var newTaskCmd = &cobra.Command{
	Use:     "new [title]",
	Short:   "Add a new task",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"n"},
	Run: func(cmd *cobra.Command, args []string) {
		taskTitle := args[0]

		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		task, err := store.InsertTaskToJson(taskTitle, taskDescription, taskPriority, *config)
		if err != nil {
			log.Printf("❌ Failed to create task: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Task %q has been created successfully. (ID: %s)\n", task.Title, task.ID)
		fmt.Printf("💡 Run `taskplan task suggest %s` to generate subtasks.\n", task.ID)
	},
}

var listTaskCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all tasks",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {

		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		tasks, err := store.ListTasks(*config)
		if err != nil {
			log.Printf("❌ Error loading tasks: %v\n", err)
			os.Exit(1)
		}

		filteredTasks := []model.Task{}
		for _, task := range tasks {
			if taskStatusFilter != "" && task.Status != taskStatusFilter {
				continue
			}
			filteredTasks = append(filteredTasks, task)
		}

		fmt.Println(strings.Repeat("=", 30))
		fmt.Printf("Tasks: %v tasks shown\n", len(filteredTasks))
		fmt.Println(strings.Repeat("=", 30))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Task ID"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
			text.FgGreen.Sprintf("Priority"),
			text.FgGreen.Sprintf("Status"),
			text.FgGreen.Sprintf("Notion"),
			text.FgGreen.Sprintf("Created"), text.FgGreen.Sprintf("Updated"),
		})

		for _, task := range filteredTasks {
			notionMark := "-"
			if task.NotionPageID != "" {
				notionMark = text.FgHiGreen.Sprintf("✓")
			}

			t.AppendRow(table.Row{
				task.ID,
				task.Title,
				priorityColored(task.Priority),
				statusColored(task.Status),
				notionMark,
				task.CreatedAt,
				task.UpdatedAt,
			})
		}

		t.Render()
	},
}

var showTaskCmd = &cobra.Command{
	Use:     "show [Task ID]",
	Short:   "Show task detail",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"s"},
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

		titleStyle := color.New(color.FgCyan, color.Bold).SprintFunc()
		fieldStyle := color.New(color.FgHiGreen).SprintFunc()

		fmt.Printf("[%v] %v\n", titleStyle(task.ID), titleStyle(task.Title))
		fmt.Println(strings.Repeat("-", 50))
		fmt.Printf("Priority: %v\n", fieldStyle(model.Titleize(task.Priority)))
		fmt.Printf("Status: %v\n", fieldStyle(model.Titleize(task.Status)))
		if task.NotionPageID != "" {
			fmt.Printf("Notion: %v\n", fieldStyle(notion.PageURL(task.NotionPageID)))
		}
		fmt.Printf("Created at: %v\n", fieldStyle(task.CreatedAt))
		fmt.Printf("Updated at: %v\n", fieldStyle(task.UpdatedAt))

		// Render the description as markdown unless --meta is used
		if !taskMeta && task.Description != "" {
			renderedContent, err := glamour.Render(task.Description, "dark")
			if err != nil {
				log.Printf("⚠️ Failed to render markdown content: %v", err)
			} else {
				fmt.Println(renderedContent)
			}
		}

		subtasks, err := store.ListSubtasksByTask(taskID, *config)
		if err != nil {
			log.Printf("❌ Error loading subtasks: %v\n", err)
			os.Exit(1)
		}

		if len(subtasks) > 0 {
			fmt.Println(strings.Repeat("-", 50))
			fmt.Printf("Subtasks: %d\n", len(subtasks))
			for _, subtask := range subtasks {
				fmt.Printf("  [%s] %s (%s)\n", subtask.ID, subtask.Title, statusColored(subtask.Status))
			}
		}
	},
}

var updateTaskCmd = &cobra.Command{
	Use:   "update [Task ID]",
	Short: "Update task fields",
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

		if taskNewTitle != "" {
			task.Title = taskNewTitle
		}
		if cmd.Flags().Changed("description") {
			task.Description = taskNewDescription
		}
		if taskNewStatus != "" {
			task.Status = taskNewStatus
		}
		if taskNewPriority != "" {
			task.Priority = taskNewPriority
		}

		task, err = store.UpdateTask(task, *config)
		if err != nil {
			log.Printf("❌ Failed to update task: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Task %s updated successfully\n", task.ID)
	},
}

var removeTaskCmd = &cobra.Command{
	Use:     "remove [Task ID]",
	Short:   "Delete a task and its subtasks",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		taskID := args[0]

		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := store.DeleteTask(taskID, *config); err != nil {
			log.Printf("❌ Failed to delete task: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Task %s and its subtasks were deleted\n", taskID)
	},
}

func init() {
	taskCmd.AddCommand(newTaskCmd)
	taskCmd.AddCommand(listTaskCmd)
	taskCmd.AddCommand(showTaskCmd)
	taskCmd.AddCommand(updateTaskCmd)
	taskCmd.AddCommand(removeTaskCmd)
	rootCmd.AddCommand(taskCmd)
	newTaskCmd.Flags().StringVarP(&taskDescription, "description", "d", "", "Task description")
	newTaskCmd.Flags().StringVarP(&taskPriority, "priority", "p", "", "Task priority (low, medium, high)")
	listTaskCmd.Flags().StringVar(&taskStatusFilter, "status", "", "Filter by status")
	showTaskCmd.Flags().BoolVar(&taskMeta, "meta", false, "Show only metadata without the description")
	updateTaskCmd.Flags().StringVar(&taskNewTitle, "title", "", "New title")
	updateTaskCmd.Flags().StringVarP(&taskNewDescription, "description", "d", "", "New description")
	updateTaskCmd.Flags().StringVar(&taskNewStatus, "status", "", "New status (pending, in_progress, completed)")
	updateTaskCmd.Flags().StringVarP(&taskNewPriority, "priority", "p", "", "New priority (low, medium, high)")
}
