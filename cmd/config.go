/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/yutaka-ini/taskplan-cli/internal/model"
	"github.com/yutaka-ini/taskplan-cli/internal/store"
	"gopkg.in/yaml.v3"
)

type configModel struct {
	cursor    int
	fields    []string
	config    model.Config
	textInput textinput.Model
	editMode  bool
}

func newConfigModel(config model.Config) tea.Model {
	return &configModel{
		cursor:    0,
		fields:    configFieldList(),
		config:    config,
		textInput: textinput.New(),
		editMode:  false,
	}
}

func configFieldList() []string {
	return []string{
		"DataDir", "Editor",
		"Gemini.APIKey", "Gemini.Model",
		"Notion.APIKey", "Notion.DatabaseID",
		"Backup.Enable", "Backup.Bucket", "Backup.AWSProfile", "Backup.AWSRegion",
		"Save & Exit",
	}
}

func (m *configModel) Init() tea.Cmd {
	return nil
}

func (m *configModel) forceRedraw() tea.Msg {
	return tea.WindowSizeMsg{}
}

func (m *configModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editMode {
			switch msg.String() {
			case "enter":
				m.updateConfig()
				m.editMode = false
				m.textInput.Blur()
				return m, tea.Batch(tea.ClearScreen, m.forceRedraw)
			case "esc":
				m.editMode = false
				m.textInput.Blur()
			default:
				m.textInput, _ = m.textInput.Update(msg)
			}
			return m, nil
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.fields)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor == len(m.fields)-1 {
				if err := store.SaveConfig(m.config); err != nil {
					log.Printf("⚠️ Failed to save config file: %v", err)
				}
				return m, tea.Quit
			}
			m.editMode = true
			m.textInput.SetValue(m.getFieldValue(m.fields[m.cursor]))
			m.textInput.Focus()
		}
	}

	return m, nil
}

func (m *configModel) View() string {
	var s strings.Builder
	s.WriteString("\033[H\033[2J")
	s.WriteString("📄 Configure taskplan\n\n")

	for i, field := range m.fields {
		cursor := "  "
		if m.cursor == i {
			cursor = "👉"
		}

		s.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, field, m.getFieldValue(field)))
	}

	if m.editMode {
		s.WriteString("\n✏️  Editing: " + m.fields[m.cursor] + "\n")
		s.WriteString(m.textInput.View() + "\n")
		s.WriteString("(Enter to save, ESC to cancel)\n")
	} else {
		s.WriteString("\n⬆️⬇️ to move, Enter to edit, Q to quit\n")
	}

	return s.String()
}

func (m *configModel) getFieldValue(field string) string {
	switch field {
	case "DataDir":
		return m.config.DataDir
	case "Editor":
		return m.config.Editor
	case "Gemini.APIKey":
		return m.config.Gemini.APIKey
	case "Gemini.Model":
		return m.config.Gemini.Model
	case "Notion.APIKey":
		return m.config.Notion.APIKey
	case "Notion.DatabaseID":
		return m.config.Notion.DatabaseID
	case "Backup.Enable":
		return strconv.FormatBool(m.config.Backup.Enable)
	case "Backup.Bucket":
		return m.config.Backup.Bucket
	case "Backup.AWSProfile":
		return m.config.Backup.AWSProfile
	case "Backup.AWSRegion":
		return m.config.Backup.AWSRegion
	default:
		return "UNKNOWN"
	}
}

func (m *configModel) updateConfig() {
	newValue := m.textInput.Value()

	switch m.fields[m.cursor] {
	case "DataDir":
		m.config.DataDir = newValue
	case "Editor":
		m.config.Editor = newValue
	case "Gemini.APIKey":
		m.config.Gemini.APIKey = newValue
	case "Gemini.Model":
		m.config.Gemini.Model = newValue
	case "Notion.APIKey":
		m.config.Notion.APIKey = newValue
	case "Notion.DatabaseID":
		m.config.Notion.DatabaseID = newValue
	case "Backup.Enable":
		if newBool, err := strconv.ParseBool(newValue); err == nil {
			m.config.Backup.Enable = newBool
		}
	case "Backup.Bucket":
		m.config.Backup.Bucket = newValue
	case "Backup.AWSProfile":
		m.config.Backup.AWSProfile = newValue
	case "Backup.AWSRegion":
		m.config.Backup.AWSRegion = newValue
	}

	if err := store.SaveConfig(m.config); err != nil {
		log.Printf("⚠️ Failed to save config file: %v", err)
	}
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure config.yaml interactively",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, err := store.GetConfigPath()
		if err != nil {
			log.Printf("failed to get config path: %v", err)
		}

		fmt.Println(configPath)

		configByte, err := os.ReadFile(configPath)
		if err != nil {
			log.Printf("❌ Failed to read config file: %v", err)
			os.Exit(1)
		}

		var config model.Config

		if err = yaml.Unmarshal(configByte, &config); err != nil {
			log.Printf("failed to parse YAML: %v", err)
		}

		if _, err := tea.NewProgram(newConfigModel(config)).Run(); err != nil {
			log.Fatalf("❌ Error running TUI: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
