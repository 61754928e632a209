/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/yutaka-ini/taskplan-cli/internal/store"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Mirror the local data directory to S3",
}

var backupPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload local changes to S3",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Println("🔄 Running `taskplan backup push`...")
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			return fmt.Errorf("❌ Error loading config: %w", err)
		}

		err = BackupWithS3(*config, "push")
		if err != nil {
			log.Printf("❌ Backup failed: %v", err)
			return fmt.Errorf("❌ Backup failed: %w", err)
		}

		log.Println("✅ `taskplan backup push` completed successfully.")
		return nil
	},
}

var backupPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download latest changes from S3",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Println("🔄 Running `taskplan backup pull`...")
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			return fmt.Errorf("❌ Error loading config: %w", err)
		}

		err = BackupWithS3(*config, "pull")
		if err != nil {
			log.Printf("❌ Backup failed: %v", err)
			return fmt.Errorf("❌ Backup failed: %w", err)
		}

		log.Println("✅ `taskplan backup pull` completed successfully.")
		return nil
	},
}

var backupStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show differences between local and S3 files",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := store.LoadConfig()
		if err != nil {
			log.Fatalf("❌ Error loading config: %v", err)
		}

		return ShowBackupStatus(*config)
	},
}

func init() {
	backupCmd.AddCommand(backupPushCmd, backupPullCmd, backupStatusCmd)
	rootCmd.AddCommand(backupCmd)
}
