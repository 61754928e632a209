package notion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yutaka-ini/taskplan-cli/internal/model"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"
	notionVersion  = "2022-06-28"
)

// LiveClient talks to the Notion REST API with bearer auth and the
// versioned protocol header.
type LiveClient struct {
	apiKey     string
	databaseID string
	baseURL    string
	httpClient *http.Client
}

func NewLiveClient(apiKey, databaseID string) *LiveClient {
	return &LiveClient{
		apiKey:     apiKey,
		databaseID: FormatDatabaseID(databaseID),
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *LiveClient) doRequest(method, path string, body any) (*http.Response, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", notionVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("Notion API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read Notion response: %w", err)
	}

	return resp, respBody, nil
}

func (c *LiveClient) CheckDatabase() error {
	resp, body, err := c.doRequest(http.MethodGet, "/databases/"+c.databaseID, nil)
	if err != nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%w: please check that:\n"+
			"1. Your database ID is correct: %s\n"+
			"2. You've shared the database with your integration\n"+
			"3. Your integration token has access to the database",
			ErrDatabaseNotFound, c.databaseID)
	case http.StatusUnauthorized:
		return ErrAuth
	default:
		return fmt.Errorf("Notion API error: %d - %s", resp.StatusCode, string(body))
	}
}

func (c *LiveClient) PageExists(pageID string) (bool, error) {
	resp, body, err := c.doRequest(http.MethodGet, "/pages/"+pageID, nil)
	if err != nil {
		return false, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// A page in the trash still returns 200 with archived set.
		var page struct {
			Archived bool `json:"archived"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			return false, fmt.Errorf("failed to decode Notion page: %w", err)
		}
		return !page.Archived, nil
	case http.StatusNotFound:
		return false, nil
	case http.StatusUnauthorized:
		return false, ErrAuth
	default:
		return false, fmt.Errorf("Notion API error: %d - %s", resp.StatusCode, string(body))
	}
}

// Query request/response shapes, reduced to the fields consumed here.

type queryRequest struct {
	Filter json.RawMessage `json:"filter"`
}

type queryResponse struct {
	Results []struct {
		ID         string `json:"id"`
		Properties struct {
			Name struct {
				Title []struct {
					PlainText string `json:"plain_text"`
				} `json:"title"`
			} `json:"Name"`
		} `json:"properties"`
	} `json:"results"`
}

func (c *LiveClient) query(filter any) ([]Page, error) {
	filterJson, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build query filter: %w", err)
	}

	resp, body, err := c.doRequest(http.MethodPost, "/databases/"+c.databaseID+"/query", queryRequest{Filter: filterJson})
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrAuth
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrDatabaseNotFound, c.databaseID)
	default:
		return nil, fmt.Errorf("Notion API error: %d - %s", resp.StatusCode, string(body))
	}

	var queryResp queryResponse
	if err := json.Unmarshal(body, &queryResp); err != nil {
		return nil, fmt.Errorf("failed to decode Notion query response: %w", err)
	}

	pages := make([]Page, 0, len(queryResp.Results))
	for _, result := range queryResp.Results {
		page := Page{ID: result.ID}
		if len(result.Properties.Name.Title) > 0 {
			page.Title = result.Properties.Name.Title[0].PlainText
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func titleFilter(title string) map[string]any {
	return map[string]any{
		"property": "Name",
		"title":    map[string]any{"equals": title},
	}
}

func (c *LiveClient) QueryByTitle(title string) ([]Page, error) {
	return c.query(titleFilter(title))
}

func (c *LiveClient) QueryByTitleAndParent(title, parentPageID string) ([]Page, error) {
	return c.query(map[string]any{
		"and": []map[string]any{
			titleFilter(title),
			{
				"property": "Parent Task",
				"relation": map[string]any{"contains": parentPageID},
			},
		},
	})
}

// taskProperties builds the mirrored fields for a task page. All fields are
// overwritten on update, so local values always win.
func (c *LiveClient) taskProperties(task model.Task) map[string]any {
	return map[string]any{
		"Name": map[string]any{
			"title": []map[string]any{
				{"text": map[string]any{"content": task.Title}},
			},
		},
		"Description": map[string]any{
			"rich_text": []map[string]any{
				{"text": map[string]any{"content": task.Description}},
			},
		},
		"Status": map[string]any{
			"select": map[string]any{"name": model.Titleize(task.Status)},
		},
		"Priority": map[string]any{
			"select": map[string]any{"name": model.Titleize(task.Priority)},
		},
		"Parent Task": map[string]any{
			"relation": []map[string]any{},
		},
	}
}

func (c *LiveClient) subtaskProperties(subtask model.Subtask, parentPageID string) map[string]any {
	return map[string]any{
		"Name": map[string]any{
			"title": []map[string]any{
				{"text": map[string]any{"content": subtask.Title}},
			},
		},
		"Description": map[string]any{
			"rich_text": []map[string]any{
				{"text": map[string]any{"content": subtask.Description}},
			},
		},
		"Status": map[string]any{
			"select": map[string]any{"name": model.Titleize(subtask.Status)},
		},
		"Parent Task": map[string]any{
			"relation": []map[string]any{
				{"id": parentPageID},
			},
		},
	}
}

func (c *LiveClient) createPage(properties map[string]any) (string, error) {
	reqBody := map[string]any{
		"parent":     map[string]any{"database_id": c.databaseID},
		"properties": properties,
	}

	resp, body, err := c.doRequest(http.MethodPost, "/pages", reqBody)
	if err != nil {
		return "", err
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return "", ErrAuth
	default:
		return "", fmt.Errorf("failed to create Notion page: %d %s", resp.StatusCode, string(body))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("failed to decode created Notion page: %w", err)
	}
	return created.ID, nil
}

func (c *LiveClient) updatePage(pageID string, properties map[string]any) error {
	reqBody := map[string]any{"properties": properties}

	resp, body, err := c.doRequest(http.MethodPatch, "/pages/"+pageID, reqBody)
	if err != nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return ErrAuth
	default:
		return fmt.Errorf("failed to update Notion page: %d %s", resp.StatusCode, string(body))
	}
}

func (c *LiveClient) CreateTaskPage(task model.Task) (string, error) {
	return c.createPage(c.taskProperties(task))
}

func (c *LiveClient) UpdateTaskPage(pageID string, task model.Task) error {
	return c.updatePage(pageID, c.taskProperties(task))
}

func (c *LiveClient) CreateSubtaskPage(subtask model.Subtask, parentPageID string) (string, error) {
	return c.createPage(c.subtaskProperties(subtask, parentPageID))
}

func (c *LiveClient) UpdateSubtaskPage(pageID string, subtask model.Subtask, parentPageID string) error {
	return c.updatePage(pageID, c.subtaskProperties(subtask, parentPageID))
}
