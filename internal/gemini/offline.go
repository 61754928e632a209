package gemini

import (
	"strings"

	"github.com/yutaka-ini/taskplan-cli/internal/model"
)

// OfflineClient generates subtasks without any network dependency. The
// lists are fixed per title category so the output is fully deterministic.
type OfflineClient struct{}

func NewOfflineClient() *OfflineClient {
	return &OfflineClient{}
}

func (c *OfflineClient) GenerateSubtasks(task model.Task) []model.Suggestion {
	title := strings.ToLower(task.Title)

	switch {
	case containsAny(title, "meeting", "discuss", "talk"):
		return []model.Suggestion{
			{Title: "Create meeting agenda", Description: "Outline the key topics to be discussed."},
			{Title: "Send calendar invites", Description: "Schedule the meeting and invite all participants."},
			{Title: "Prepare presentation", Description: "Create slides or materials needed for the meeting."},
			{Title: "Book meeting room", Description: "Reserve an appropriate space for the meeting."},
			{Title: "Follow up with minutes", Description: "Document decisions and action items after the meeting."},
		}
	case containsAny(title, "write", "document", "report"):
		return []model.Suggestion{
			{Title: "Research the topic", Description: "Gather information and data needed for the document."},
			{Title: "Create outline", Description: "Structure the document with main sections and points."},
			{Title: "Write first draft", Description: "Complete an initial version of the document."},
			{Title: "Review and edit", Description: "Check for errors and improve clarity."},
			{Title: "Format document", Description: "Add proper formatting, citations, and references."},
			{Title: "Seek feedback", Description: "Get input from colleagues or stakeholders."},
			{Title: "Finalize and submit", Description: "Make final revisions and submit the document."},
		}
	default:
		return []model.Suggestion{
			{Title: "Define requirements", Description: "Clearly specify what needs to be accomplished."},
			{Title: "Research options", Description: "Explore potential approaches and solutions."},
			{Title: "Create action plan", Description: "Outline the steps needed to complete the task."},
			{Title: "Execute the plan", Description: "Carry out the necessary actions."},
			{Title: "Test and validate", Description: "Ensure the results meet the requirements."},
			{Title: "Review and finalize", Description: "Make any necessary adjustments and complete the task."},
		}
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
