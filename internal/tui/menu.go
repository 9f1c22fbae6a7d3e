package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nikhiloz/generic/internal/config"
	"github.com/nikhiloz/generic/internal/demo"
	"github.com/nikhiloz/generic/internal/transport"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#25A065")).
			Bold(true)
)

// ScreenType defines which screen is currently active
type ScreenType int

const (
	MenuScreen ScreenType = iota
	OutputScreen
)

// MenuModel represents the Bubble Tea model for the demo menu
type MenuModel struct {
	demos         []demo.Demo
	selectedIndex int
	viewport      viewport.Model
	ready         bool
	err           error
	activeScreen  ScreenType

	cfg       *config.Config
	transport transport.Transport

	// Captured output of the last demo run
	output  string
	lastRun string
	running bool
}

// Init initializes the Bubble Tea model
func (m MenuModel) Init() tea.Cmd {
	return loadCatalog
}

// loadCatalog fetches the demo catalog
func loadCatalog() tea.Msg {
	demos := demo.All()
	if len(demos) == 0 {
		return errMsg{fmt.Errorf("no demos registered")}
	}
	return catalogMsg{demos}
}

type catalogMsg struct {
	demos []demo.Demo
}

type errMsg struct {
	err error
}

type outputMsg struct {
	name string
	text string
	err  error
}

// Update handles input and updates the model
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Initialize the viewport with the window size
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.viewport.Style = lipgloss.NewStyle()
			m.ready = true

			if len(m.demos) > 0 {
				m.viewport.SetContent(m.renderMenu())
			}
		} else {
			// Just update viewport dimensions
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}

	case catalogMsg:
		m.demos = msg.demos
		if m.ready {
			m.viewport.SetContent(m.renderMenu())
		}

	case errMsg:
		m.err = msg.err

	case outputMsg:
		m.running = false
		m.lastRun = msg.name
		m.output = msg.text
		if msg.err != nil {
			m.output += fmt.Sprintf("\nError: %v\n", msg.err)
		}
		m.activeScreen = OutputScreen
		if m.ready {
			m.viewport.SetContent(m.output)
			m.viewport.GotoTop()
		}

	case tea.KeyMsg:
		// First check for keys that should work everywhere
		if key.Matches(msg, key.NewBinding(key.WithKeys("q", "ctrl+c"))) {
			return m, tea.Quit
		}

		// Then handle screen-specific keys
		if m.activeScreen == MenuScreen {
			switch {
			case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
				if m.selectedIndex > 0 {
					m.selectedIndex--
					m.viewport.SetContent(m.renderMenu())
				}

			case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
				if m.selectedIndex < len(m.demos)-1 {
					m.selectedIndex++
					m.viewport.SetContent(m.renderMenu())
				}

			case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
				if len(m.demos) > 0 && !m.running {
					m.running = true
					return m, m.runSelected()
				}
			}
		} else if m.activeScreen == OutputScreen {
			switch {
			case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
				// Return to the menu
				m.activeScreen = MenuScreen
				m.viewport.SetContent(m.renderMenu())

			case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
				if !m.running {
					m.running = true
					return m, m.runSelected()
				}
			}
		}
	}

	// Handle viewport updates
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// runSelected builds a command that runs the selected demo and
// delivers its captured output as a message. The run happens off the
// update loop, so a long counter run never freezes the UI.
func (m MenuModel) runSelected() tea.Cmd {
	selected := m.demos[m.selectedIndex]
	cfg := m.cfg
	tr := m.transport

	return func() tea.Msg {
		var buf bytes.Buffer
		ctx := demo.NewContext(&buf, cfg, tr)
		err := demo.Run(ctx, []string{selected.Name})
		return outputMsg{name: selected.Name, text: buf.String(), err: err}
	}
}

// View renders the UI
func (m MenuModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress any key to exit.", m.err)
	}

	var title, help string

	if m.activeScreen == MenuScreen {
		title = titleStyle.Render("Bit Trick Demos")
		if m.running {
			help = infoStyle.Render("Running...")
		} else {
			help = infoStyle.Render("↑/↓: Navigate • Enter: Run • q: Quit")
		}
	} else {
		title = titleStyle.Render("Demo Output: " + m.lastRun)
		help = infoStyle.Render("↑/↓: Scroll • Enter: Run Again • Esc: Back • q: Quit")
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", title, m.viewport.View(), help)
}

// renderMenu formats the demo list
func (m MenuModel) renderMenu() string {
	var sb strings.Builder

	if len(m.demos) == 0 {
		return "No demos registered."
	}

	for i, d := range m.demos {
		entry := fmt.Sprintf("[%d] %s\n", i+1, d.Name)
		entry += fmt.Sprintf("    %s\n", d.Summary)

		if i == m.selectedIndex {
			entry = highlightStyle.Render(entry)
		}

		sb.WriteString(entry)
		sb.WriteString("\n")
	}

	return sb.String()
}

// NewMenuModel creates a new menu model
func NewMenuModel(cfg *config.Config, tr transport.Transport) MenuModel {
	if cfg == nil {
		cfg = config.New()
	}
	return MenuModel{
		selectedIndex: 0,
		activeScreen:  MenuScreen,
		cfg:           cfg,
		transport:     tr,
	}
}

// StartMenuUI launches the Bubble Tea TUI for browsing and running
// the demo catalog
func StartMenuUI(cfg *config.Config, tr transport.Transport) error {
	p := tea.NewProgram(
		NewMenuModel(cfg, tr),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
