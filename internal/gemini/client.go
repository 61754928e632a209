package gemini

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/yutaka-ini/taskplan-cli/internal/model"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1"

// Generator produces candidate subtasks for a task. It never returns an
// error: any upstream failure yields an empty list and the caller decides
// how to surface that.
type Generator interface {
	GenerateSubtasks(task model.Task) []model.Suggestion
}

// NewClient selects the live Gemini client when an API key is configured,
// and the deterministic offline generator otherwise.
func NewClient(config model.Config) Generator {
	if config.Gemini.APIKey == "" {
		return NewOfflineClient()
	}
	return NewLiveClient(config.Gemini.APIKey, config.Gemini.Model)
}

// LiveClient calls the Gemini generateContent endpoint.
type LiveClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewLiveClient(apiKey, geminiModel string) *LiveClient {
	if geminiModel == "" {
		geminiModel = "models/gemini-1.5-pro"
	}
	return &LiveClient{
		apiKey:  apiKey,
		model:   geminiModel,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// Request and response shapes for generateContent
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *LiveClient) GenerateSubtasks(task model.Task) []model.Suggestion {
	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	reqBody := generateRequest{
		Contents: []content{
			{
				Role:  "user",
				Parts: []part{{Text: buildSubtaskPrompt(task)}},
			},
		},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 2048,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		log.Printf("❌ Failed to build Gemini request: %v", err)
		return nil
	}

	resp, err := c.httpClient.Post(endpoint, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		log.Printf("❌ Gemini API request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("❌ Failed to read Gemini response: %v", err)
		return nil
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("❌ Gemini API error: %d %s", resp.StatusCode, string(body))
		return nil
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		log.Printf("❌ Failed to decode Gemini response: %v", err)
		return nil
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		log.Printf("❌ Gemini response contained no candidates")
		return nil
	}

	return parseSubtasksFromText(genResp.Candidates[0].Content.Parts[0].Text)
}

func buildSubtaskPrompt(task model.Task) string {
	var sb strings.Builder
	sb.WriteString("You are a task management assistant. Please help break down the following task into 5-7 logical subtasks.\n")
	sb.WriteString("For each subtask, provide a clear title and a brief description.\n\n")
	sb.WriteString(fmt.Sprintf("Main task: %s\n", task.Title))
	sb.WriteString(fmt.Sprintf("Description: %s\n\n", task.Description))
	sb.WriteString("Please format your response as a JSON array of objects with 'title' and 'description' keys for each subtask.\n")
	sb.WriteString("Example format:\n")
	sb.WriteString("[\n")
	sb.WriteString(`  {"title": "First subtask", "description": "Description of first subtask"},` + "\n")
	sb.WriteString(`  {"title": "Second subtask", "description": "Description of second subtask"}` + "\n")
	sb.WriteString("]\n\n")
	sb.WriteString("Only respond with the JSON array, no additional text or explanations.\n")
	return sb.String()
}

// parseSubtasksFromText extracts the first top-level JSON array from the
// model's free-text reply: everything from the first `[` to the last `]`.
func parseSubtasksFromText(text string) []model.Suggestion {
	jsonStart := strings.Index(text, "[")
	jsonEnd := strings.LastIndex(text, "]")

	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		log.Printf("❌ Failed to extract JSON from Gemini response: %s", text)
		return nil
	}

	var suggestions []model.Suggestion
	if err := json.Unmarshal([]byte(text[jsonStart:jsonEnd+1]), &suggestions); err != nil {
		log.Printf("❌ JSON parsing error: %v (raw: %s)", err, text)
		return nil
	}

	return suggestions
}
