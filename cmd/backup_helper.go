package cmd

import (
	"fmt"
	"log"

	"github.com/yutaka-ini/taskplan-cli/internal/model"
	"github.com/yutaka-ini/taskplan-cli/internal/util"
)

// BackupWithS3 - S3 とのバックアップ同期処理
func BackupWithS3(config model.Config, direction string) error {
	if !config.Backup.Enable || config.Backup.Bucket == "" {
		return fmt.Errorf("❌ Backup is not configured (set backup.enable and backup.bucket in config.yaml)")
	}

	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	if direction == "pull" {
		log.Println("🔄 Downloading metadata from S3...")

		remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
		if err != nil {
			return fmt.Errorf("❌ Failed to download metadata from S3: %w", err)
		}

		localMetadata, _ := util.LoadMetadata(util.MetadataPath(config))

		fileList := util.DetectChanges(localMetadata, remoteMetadata, "s3")

		if len(fileList) == 0 {
			log.Println("✅ No changes detected. Everything is up-to-date.")
		} else {
			log.Println("🔄 Downloading changed files from S3...")
			err = util.SyncFilesToS3(config, "pull", fileList)
			if err != nil {
				return fmt.Errorf("❌ Backup failed: %w", err)
			}
		}

		log.Println("🔄 Saving updated metadata...")
		err = util.SaveMetadata(util.MetadataPath(config), remoteMetadata)
		if err != nil {
			return fmt.Errorf("❌ Failed to save metadata: %w", err)
		}

		log.Println("✅ Backup pull completed successfully.")
		return nil

	} else if direction == "push" {
		log.Println("🔄 Generating metadata for push...")

		localMetadata, err := util.GenerateMetadata(config.DataDir)
		if err != nil {
			return fmt.Errorf("❌ Failed to generate metadata: %w", err)
		}

		err = util.SaveMetadata(util.MetadataPath(config), localMetadata)
		if err != nil {
			return fmt.Errorf("❌ Failed to save metadata: %w", err)
		}

		remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
		if err != nil {
			return fmt.Errorf("❌ Failed to download metadata from S3: %w", err)
		}

		fileList := util.DetectChanges(localMetadata, remoteMetadata, "local")

		if len(fileList) == 0 {
			log.Println("✅ No changes detected. Everything is up-to-date.")
		} else {
			log.Println("🔄 Uploading changed files to S3...")
			err = util.SyncFilesToS3(config, "push", fileList)
			if err != nil {
				return fmt.Errorf("❌ Backup failed: %w", err)
			}
		}

		log.Println("🔄 Uploading metadata to S3...")
		err = util.UploadMetadataToS3(s3Client, config)
		if err != nil {
			return fmt.Errorf("❌ Failed to upload metadata: %w", err)
		}

		log.Println("✅ Backup push completed successfully.")
		return nil
	}
	return fmt.Errorf("❌ Unknown backup direction: %s", direction)
}

// ShowBackupStatus - S3 とのバックアップ状態を表示
func ShowBackupStatus(config model.Config) error {
	if !config.Backup.Enable || config.Backup.Bucket == "" {
		return fmt.Errorf("❌ Backup is not configured (set backup.enable and backup.bucket in config.yaml)")
	}

	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	localMetadata, _ := util.LoadMetadata(util.MetadataPath(config))

	remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
	if err != nil {
		return err
	}

	pullDiff := util.DetectChanges(localMetadata, remoteMetadata, "s3")
	pushDiff := util.DetectChanges(localMetadata, remoteMetadata, "local")

	log.Println("📌 Files to be updated from S3:")
	for _, file := range pullDiff {
		log.Println("   -", file)
	}
	log.Println("📌 Files to be uploaded to S3:")
	for _, file := range pushDiff {
		log.Println("   -", file)
	}

	return nil
}
