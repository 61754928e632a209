package notion

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/yutaka-ini/taskplan-cli/internal/model"
)

// OfflineClient stands in for the Notion API when no credential or
// destination database is configured. It hands out placeholder page ids so
// the export flow stays usable and testable end to end; remembered
// placeholder ids are treated as still existing, which makes repeated
// offline exports converge on the update path just like live ones.
type OfflineClient struct{}

func NewOfflineClient() *OfflineClient {
	return &OfflineClient{}
}

func mockPageID() string {
	b := make([]byte, 10)
	rand.Read(b)
	return "mock-page-id-" + hex.EncodeToString(b)
}

func (c *OfflineClient) CheckDatabase() error {
	return nil
}

func (c *OfflineClient) PageExists(pageID string) (bool, error) {
	return pageID != "", nil
}

func (c *OfflineClient) QueryByTitle(title string) ([]Page, error) {
	return nil, nil
}

func (c *OfflineClient) QueryByTitleAndParent(title, parentPageID string) ([]Page, error) {
	return nil, nil
}

func (c *OfflineClient) CreateTaskPage(task model.Task) (string, error) {
	return mockPageID(), nil
}

func (c *OfflineClient) UpdateTaskPage(pageID string, task model.Task) error {
	return nil
}

func (c *OfflineClient) CreateSubtaskPage(subtask model.Subtask, parentPageID string) (string, error) {
	return mockPageID(), nil
}

func (c *OfflineClient) UpdateSubtaskPage(pageID string, subtask model.Subtask, parentPageID string) error {
	return nil
}
