package console

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ilyavolkan/tui-fable/internal/story"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#875FAF")).
			Bold(true).
			Padding(0, 1)

	menuFrameStyle = lipgloss.NewStyle().Margin(1, 2)
)

// menuItem adapts story metadata to the bubbles list item interface.
type menuItem struct {
	info story.Info
}

func (i menuItem) Title() string { return i.info.Title }

func (i menuItem) Description() string {
	desc := fmt.Sprintf("%d rooms", i.info.Rooms)
	if i.info.Author != "" {
		desc = i.info.Author + ", " + desc
	}
	return desc
}

func (i menuItem) FilterValue() string { return i.info.Title }

// menuModel is the Bubble Tea model for the story picker.
type menuModel struct {
	list     list.Model
	selected *story.Info
	quitting bool
}

func newMenuModel(infos []story.Info) menuModel {
	items := make([]list.Item, 0, len(infos))
	for _, info := range infos {
		items = append(items, menuItem{info: info})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Pick a story"
	l.Styles.Title = menuTitleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return menuModel{list: l}
}

// Init implements tea.Model.
func (m menuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.list.FilterState() != list.Filtering {
				m.quitting = true
				return m, tea.Quit
			}
		case "enter":
			if m.list.FilterState() == list.Filtering {
				break
			}
			if item, ok := m.list.SelectedItem().(menuItem); ok {
				info := item.info
				m.selected = &info
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		h, v := menuFrameStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m menuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}
	return menuFrameStyle.Render(m.list.View())
}

// RunMenu shows the interactive story picker and returns the chosen story
// ID. Returns "" if the user backed out.
func RunMenu(infos []story.Info) (string, error) {
	p := tea.NewProgram(newMenuModel(infos), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("console: menu failed: %w", err)
	}

	m, ok := final.(menuModel)
	if !ok || m.selected == nil {
		return "", nil
	}
	return m.selected.ID, nil
}
