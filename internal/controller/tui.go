package controller

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var pickerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))

// TUI implements UI with an interactive Bubble Tea contract picker on top of
// the simple text output.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// SelectContract shows a list picker and returns the chosen contract name.
func (t *TUI) SelectContract(ctx context.Context, candidates []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(candidates) == 1 {
		return candidates[0], nil
	}

	if len(candidates) == 0 {
		return "", ErrNoContractSelected
	}

	model := newPickerModel(candidates)

	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return "", fmt.Errorf("contract picker: %w", err)
	}

	picker, ok := final.(pickerModel)
	if !ok || picker.choice == "" {
		return "", ErrNoContractSelected
	}

	return picker.choice, nil
}

type contractItem string

func (i contractItem) Title() string       { return string(i) }
func (i contractItem) Description() string { return "" }
func (i contractItem) FilterValue() string { return string(i) }

type pickerModel struct {
	list   list.Model
	choice string
}

func newPickerModel(candidates []string) pickerModel {
	items := make([]list.Item, 0, len(candidates))
	for _, name := range candidates {
		items = append(items, contractItem(name))
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(items, delegate, 0, listHeight(len(items)))
	l.Title = "Select a contract to mock"
	l.Styles.Title = pickerTitleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return pickerModel{list: l}
}

func listHeight(items int) int {
	const chrome = 6

	height := items*2 + chrome
	if height > 24 {
		height = 24
	}

	return height
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(contractItem); ok {
				m.choice = string(item)
			}

			return m, tea.Quit
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m pickerModel) View() string {
	return m.list.View()
}
