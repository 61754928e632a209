package notion

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yutaka-ini/taskplan-cli/internal/model"
)

// ErrAuth indicates the configured Notion API key was rejected.
var ErrAuth = errors.New("authentication failed, please check your Notion API key")

// ErrDatabaseNotFound indicates the destination database is missing or not
// shared with the integration.
var ErrDatabaseNotFound = errors.New("database not found")

// ErrParentNotSynced is returned when a subtask is reconciled before its
// parent task has a confirmed page id.
var ErrParentNotSynced = errors.New("parent task has no confirmed Notion page id")

// Page is one record returned by a database query.
type Page struct {
	ID    string
	Title string
}

// Client is the set of Notion operations the reconciler consumes. All
// operations are scoped to one configured destination database.
type Client interface {
	// CheckDatabase verifies the destination database is reachable.
	CheckDatabase() error
	// PageExists fetches a page by id and reports whether it still exists.
	// Pages moved to the trash count as gone.
	PageExists(pageID string) (bool, error)
	// QueryByTitle returns database pages whose title equals the given one.
	QueryByTitle(title string) ([]Page, error)
	// QueryByTitleAndParent narrows the title query to pages whose
	// "Parent Task" relation contains parentPageID.
	QueryByTitleAndParent(title, parentPageID string) ([]Page, error)
	CreateTaskPage(task model.Task) (string, error)
	UpdateTaskPage(pageID string, task model.Task) error
	CreateSubtaskPage(subtask model.Subtask, parentPageID string) (string, error)
	UpdateSubtaskPage(pageID string, subtask model.Subtask, parentPageID string) error
}

// NewClient selects the live Notion client when both an API key and a
// database id are configured, and the offline stand-in otherwise.
func NewClient(config model.Config) Client {
	if config.Notion.APIKey == "" || config.Notion.DatabaseID == "" {
		return NewOfflineClient()
	}
	return NewLiveClient(config.Notion.APIKey, config.Notion.DatabaseID)
}

// FormatDatabaseID normalizes a bare 32-character database id to the
// hyphenated UUID form the API expects. Ids that already contain hyphens,
// or are not 32 characters long, pass through unchanged.
func FormatDatabaseID(id string) string {
	if strings.Contains(id, "-") {
		return id
	}
	if len(id) != 32 {
		return id
	}
	return fmt.Sprintf("%s-%s-%s-%s-%s", id[0:8], id[8:12], id[12:16], id[16:20], id[20:32])
}

// PageURL builds the public notion.so URL for a page id.
func PageURL(pageID string) string {
	if pageID == "" {
		return ""
	}
	return "https://notion.so/" + strings.ReplaceAll(pageID, "-", "")
}
