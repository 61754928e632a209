/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yutaka-ini/taskplan-cli/internal/store"
	"github.com/yutaka-ini/taskplan-cli/internal/util"
)

var editTaskCmd = &cobra.Command{
	Use:     "edit [Task ID]",
	Short:   "Edit a task's description in your editor",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"e"},
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

		tmpFile := filepath.Join(os.TempDir(), "taskplan_"+task.ID+".md")
		if err := os.WriteFile(tmpFile, []byte(task.Description), 0644); err != nil {
			log.Printf("❌ Failed to prepare edit buffer: %v\n", err)
			os.Exit(1)
		}
		defer os.Remove(tmpFile)

		if err := util.OpenEditor(tmpFile, *config); err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		edited, err := os.ReadFile(tmpFile)
		if err != nil {
			log.Printf("❌ Failed to read edited description: %v\n", err)
			os.Exit(1)
		}

		newDescription := strings.TrimRight(string(edited), "\n")
		if newDescription == task.Description {
			fmt.Println("No changes.")
			return
		}

		task.Description = newDescription
		if _, err := store.UpdateTask(task, *config); err != nil {
			log.Printf("❌ Failed to update task: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Task %s updated successfully\n", task.ID)
	},
}

func init() {
	taskCmd.AddCommand(editTaskCmd)
}
