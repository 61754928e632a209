/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskplan",
	Short: "Break tasks into AI-suggested subtasks and mirror them to Notion",
	Long: `taskplan manages tasks and subtasks locally, generates candidate
subtasks with the Gemini API (or a deterministic offline fallback), and
exports a task with its subtasks into a Notion database.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
