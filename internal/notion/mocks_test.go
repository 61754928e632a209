package notion

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yutaka-ini/taskplan-cli/internal/model"
)

// fakeClient is an in-memory Client that records pages in insertion order
// and counts the mutating calls, so tests can assert exactly one of create
// or update happened per record.
type fakeClient struct {
	pages []fakePage
	seq   int

	createCount int
	updateCount int

	checkErr   error
	failCreate map[string]bool
	failUpdate map[string]bool
}

type fakePage struct {
	ID       string
	Title    string
	Parent   string
	Archived bool
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		failCreate: map[string]bool{},
		failUpdate: map[string]bool{},
	}
}

func (c *fakeClient) addPage(title, parent string) string {
	c.seq++
	id := fmt.Sprintf("page-%d", c.seq)
	c.pages = append(c.pages, fakePage{ID: id, Title: title, Parent: parent})
	return id
}

func (c *fakeClient) archive(pageID string) {
	for i := range c.pages {
		if c.pages[i].ID == pageID {
			c.pages[i].Archived = true
		}
	}
}

func (c *fakeClient) CheckDatabase() error {
	return c.checkErr
}

func (c *fakeClient) PageExists(pageID string) (bool, error) {
	for _, page := range c.pages {
		if page.ID == pageID {
			return !page.Archived, nil
		}
	}
	return false, nil
}

func (c *fakeClient) QueryByTitle(title string) ([]Page, error) {
	var out []Page
	for _, page := range c.pages {
		if !page.Archived && strings.EqualFold(page.Title, title) {
			out = append(out, Page{ID: page.ID, Title: page.Title})
		}
	}
	return out, nil
}

func (c *fakeClient) QueryByTitleAndParent(title, parentPageID string) ([]Page, error) {
	var out []Page
	for _, page := range c.pages {
		if !page.Archived && page.Parent == parentPageID && strings.EqualFold(page.Title, title) {
			out = append(out, Page{ID: page.ID, Title: page.Title})
		}
	}
	return out, nil
}

func (c *fakeClient) CreateTaskPage(task model.Task) (string, error) {
	if c.failCreate[task.Title] {
		return "", errors.New("create rejected")
	}
	c.createCount++
	return c.addPage(task.Title, ""), nil
}

func (c *fakeClient) UpdateTaskPage(pageID string, task model.Task) error {
	if c.failUpdate[task.Title] {
		return errors.New("update rejected")
	}
	exists, _ := c.PageExists(pageID)
	if !exists {
		return fmt.Errorf("no such page %s", pageID)
	}
	c.updateCount++
	return nil
}

func (c *fakeClient) CreateSubtaskPage(subtask model.Subtask, parentPageID string) (string, error) {
	if c.failCreate[subtask.Title] {
		return "", errors.New("create rejected")
	}
	c.createCount++
	return c.addPage(subtask.Title, parentPageID), nil
}

func (c *fakeClient) UpdateSubtaskPage(pageID string, subtask model.Subtask, parentPageID string) error {
	if c.failUpdate[subtask.Title] {
		return errors.New("update rejected")
	}
	exists, _ := c.PageExists(pageID)
	if !exists {
		return fmt.Errorf("no such page %s", pageID)
	}
	c.updateCount++
	return nil
}
