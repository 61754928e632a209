package util

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/yutaka-ini/taskplan-cli/internal/model"
)

const (
	metadataFileName = "metadata_data.json"
	s3DataPrefix     = "data/"
)

// GenerateMetadata - データディレクトリのファイル一覧と更新日時を取得
func GenerateMetadata(dir string) (map[string]string, error) {
	metadata := make(map[string]string)

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Printf("⚠️ Failed to access path: %s (%v)", path, err)
			return nil
		}

		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			log.Printf("⚠️ Failed to get relative path for: %s (%v)", path, err)
			return nil
		}

		if relPath == metadataFileName {
			return nil
		}

		metadata[relPath] = info.ModTime().Format(time.RFC3339)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("❌ Failed to scan directory: %w", err)
	}

	return metadata, nil
}

func MetadataPath(config model.Config) string {
	return filepath.Join(config.DataDir, metadataFileName)
}

func SaveMetadata(metadataPath string, metadata map[string]string) error {
	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("❌ Failed to marshal %s: %w", metadataFileName, err)
	}

	if err := os.MkdirAll(filepath.Dir(metadataPath), 0755); err != nil {
		return fmt.Errorf("❌ Failed to create data directory: %w", err)
	}

	err = os.WriteFile(metadataPath, data, 0644)
	if err != nil {
		return fmt.Errorf("❌ Failed to write %s: %w", metadataFileName, err)
	}

	return nil
}

func LoadMetadata(metadataPath string) (map[string]string, error) {
	data, err := os.ReadFile(metadataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("❌ Failed to read %s: %w", metadataFileName, err)
	}

	var metadata map[string]string
	err = json.Unmarshal(data, &metadata)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to parse %s: %w", metadataFileName, err)
	}

	return metadata, nil
}

func UploadMetadataToS3(s3Client *s3.Client, config model.Config) error {
	s3Key := s3DataPrefix + metadataFileName

	log.Printf("🔄 Uploading %s to S3...", s3Key)
	return UploadToS3(s3Client, config.Backup.Bucket, MetadataPath(config), s3Key)
}

func DownloadMetadataFromS3(s3Client *s3.Client, config model.Config) (map[string]string, error) {
	s3Key := s3DataPrefix + metadataFileName

	resp, err := s3Client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(config.Backup.Bucket),
		Key:    aws.String(s3Key),
	})
	if err != nil {
		if isNotFoundErr(err) {
			log.Printf("⚠️ No %s found on S3, returning empty metadata.", s3Key)
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("❌ Failed to download %s from S3: %w", s3Key, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to read %s from S3: %w", s3Key, err)
	}

	var metadata map[string]string
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, fmt.Errorf("❌ Failed to parse %s from S3: %w", metadataFileName, err)
	}

	return metadata, nil
}

// DetectChanges - ローカルと S3 のメタデータを比較して差分ファイルを返す
func DetectChanges(localMeta, remoteMeta map[string]string, source string) []string {
	var filesToSync []string

	if source == "s3" {
		for file, remoteTimeStr := range remoteMeta {
			localTimeStr, exists := localMeta[file]

			if !exists {
				log.Printf("📌 File missing locally, adding to sync (pull): %s", file)
				filesToSync = append(filesToSync, file)
				continue
			}

			if newerThan(remoteTimeStr, localTimeStr, file) {
				log.Printf("📌 Newer version on S3, adding to sync (pull): %s", file)
				filesToSync = append(filesToSync, file)
			}
		}
		return filesToSync
	}

	for file, localTimeStr := range localMeta {
		remoteTimeStr, exists := remoteMeta[file]

		if !exists {
			log.Printf("📌 File missing on S3, adding to sync (push): %s", file)
			filesToSync = append(filesToSync, file)
			continue
		}

		if newerThan(localTimeStr, remoteTimeStr, file) {
			log.Printf("📌 Newer version locally, adding to sync (push): %s", file)
			filesToSync = append(filesToSync, file)
		}
	}
	return filesToSync
}

// newerThan reports whether a is more than one second newer than b. The
// one-second slack absorbs filesystem timestamp truncation.
func newerThan(a, b, file string) bool {
	aTime, err := time.Parse(time.RFC3339, a)
	if err != nil {
		log.Printf("⚠️ Failed to parse timestamp for %s: %v", file, err)
		return false
	}
	bTime, err := time.Parse(time.RFC3339, b)
	if err != nil {
		log.Printf("⚠️ Failed to parse timestamp for %s: %v", file, err)
		return false
	}
	return aTime.After(bTime.Add(1 * time.Second))
}

// SyncFilesToS3 - 差分ファイルをアップロードまたはダウンロード
func SyncFilesToS3(config model.Config, direction string, files []string) error {
	s3Client, err := NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	for _, file := range files {
		localPath := filepath.Join(config.DataDir, file)
		s3Key := s3DataPrefix + filepath.ToSlash(file)

		switch direction {
		case "push":
			if err := UploadToS3(s3Client, config.Backup.Bucket, localPath, s3Key); err != nil {
				return err
			}
		case "pull":
			if err := DownloadFromS3(s3Client, config.Backup.Bucket, s3Key, localPath); err != nil {
				return err
			}
		default:
			return fmt.Errorf("❌ Unknown sync direction: %s", direction)
		}
	}

	return nil
}
