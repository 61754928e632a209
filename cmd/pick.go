/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/yutaka-ini/taskplan-cli/internal/model"
	"github.com/yutaka-ini/taskplan-cli/internal/store"
)

var pickExport bool

// pickerModel is the interactive multi-select over staged suggestions.
type pickerModel struct {
	cursor      int
	suggestions []model.Suggestion
	selected    map[int]bool
	aborted     bool
}

func newPickerModel(suggestions []model.Suggestion) *pickerModel {
	return &pickerModel{
		cursor:      0,
		suggestions: suggestions,
		selected:    map[int]bool{},
	}
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.suggestions)-1 {
				m.cursor++
			}
		case " ":
			m.selected[m.cursor] = !m.selected[m.cursor]
		case "enter":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *pickerModel) View() string {
	var s strings.Builder
	s.WriteString("📄 Select subtasks to save\n\n")

	for i, suggestion := range m.suggestions {
		cursor := "  "
		if m.cursor == i {
			cursor = "👉"
		}

		checked := "[ ]"
		if m.selected[i] {
			checked = "[x]"
		}

		s.WriteString(fmt.Sprintf("%s %s %s — %s\n", cursor, checked, suggestion.Title, suggestion.Description))
	}

	s.WriteString("\n⬆️⬇️ to move, Space to toggle, Enter to save, Q to abort\n")
	return s.String()
}

func (m *pickerModel) indices() []int {
	var indices []int
	for i, isSelected := range m.selected {
		if isSelected {
			indices = append(indices, i)
		}
	}
	sort.Ints(indices)
	return indices
}

// saveSelectedSubtasks commits the chosen staged suggestions as pending
// subtasks and clears the staging area.
func saveSelectedSubtasks(task model.Task, suggestions []model.Suggestion, indices []int, config model.Config) (int, error) {
	saved := 0
	for _, index := range indices {
		if index < 0 || index >= len(suggestions) {
			return saved, fmt.Errorf("❌ Suggestion index %d is out of range (0-%d)", index, len(suggestions)-1)
		}
		suggestion := suggestions[index]
		if _, err := store.InsertSubtaskToJson(task.ID, suggestion.Title, suggestion.Description, config); err != nil {
			return saved, err
		}
		saved++
	}

	if err := store.ClearSuggestions(task.ID, config); err != nil {
		return saved, err
	}
	return saved, nil
}

var pickTaskCmd = &cobra.Command{
	Use:   "pick [Task ID] [index]...",
	Short: "Save selected suggestions as subtasks",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		taskID := args[0]

		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		task, err := store.GetTask(taskID, *config)
		if err != nil {
			log.Printf("%v\n", err)
			os.Exit(1)
		}

		suggestions, err := store.LoadSuggestions(taskID, *config)
		if err != nil {
			log.Printf("❌ Error loading staged suggestions: %v\n", err)
			os.Exit(1)
		}

		if len(suggestions) == 0 {
			log.Printf("❌ No suggestions staged for task %s. Run `taskplan task suggest %s` first.\n", taskID, taskID)
			os.Exit(1)
		}

		var indices []int
		if len(args) > 1 {
			for _, arg := range args[1:] {
				index, err := strconv.Atoi(arg)
				if err != nil {
					log.Printf("❌ Invalid suggestion index %q\n", arg)
					os.Exit(1)
				}
				indices = append(indices, index)
			}
		} else {
			picker := newPickerModel(suggestions)
			finalModel, err := tea.NewProgram(picker).Run()
			if err != nil {
				log.Printf("❌ Picker failed: %v\n", err)
				os.Exit(1)
			}
			m := finalModel.(*pickerModel)
			if m.aborted {
				fmt.Println("Aborted, staged suggestions kept.")
				return
			}
			indices = m.indices()
		}

		if len(indices) == 0 {
			log.Println("❌ No subtasks were selected.")
			os.Exit(1)
		}

		saved, err := saveSelectedSubtasks(task, suggestions, indices, *config)
		if err != nil {
			log.Printf("❌ Failed to save subtasks: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ %d subtasks were saved successfully!\n", saved)

		if pickExport {
			runExport(task.ID, *config)
		}
	},
}

func init() {
	taskCmd.AddCommand(pickTaskCmd)
	pickTaskCmd.Flags().BoolVar(&pickExport, "export", false, "Export the task to Notion after saving")
}
