// Package tui implements the interactive selector: pick a target profile
// and package manager, preview the script, and generate it.
package tui

import (
	"fmt"
	"path/filepath"

	"dsw/internal/core"
	"dsw/internal/domain"
	"dsw/internal/output"
	"dsw/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewType represents different screens in the TUI
type ViewType int

const (
	ViewSwitcher ViewType = iota
	ViewHistory
)

// GenerateResult is what a completed TUI session produced
type GenerateResult struct {
	Path   string
	Script domain.Script
}

// App is the main TUI application model
type App struct {
	service     *core.Service
	keys        *views.KeyMap
	currentView ViewType
	width       int
	height      int
	err         error

	currentID  string // Detected profile ID; empty when unrecognized
	currentRaw string

	switcher tea.Model
	history  tea.Model

	result *GenerateResult
}

// NewApp creates a new TUI application. currentID may be empty when the
// running desktop was not recognized.
func NewApp(service *core.Service, currentID, currentRaw string) App {
	app := App{
		service:     service,
		keys:        views.NewKeyMap(""),
		currentView: ViewSwitcher,
		width:       80,
		height:      24,
		currentID:   currentID,
		currentRaw:  currentRaw,
	}

	if service == nil {
		return app
	}

	app.keys = views.NewKeyMap(service.Config().Keybindings)

	var current domain.Profile
	hasCurrent := false
	if currentID != "" {
		if p, err := service.Catalog().Lookup(currentID); err == nil {
			current = p
			hasCurrent = true
		}
	}

	app.switcher = views.NewSwitcher(
		service.Catalog().Profiles(),
		current, hasCurrent, currentRaw,
		service.Config().DefaultManager,
		app.keys,
	)

	return app
}

// CurrentView returns the current view type
func (a App) CurrentView() ViewType {
	return a.currentView
}

// Result returns what the session generated, or nil when the user quit
// without generating.
func (a App) Result() *GenerateResult {
	return a.result
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a.updateCurrentView(msg)

	case views.GenerateMsg:
		result, err := a.generate(msg)
		if err != nil {
			a.err = err
			return a, nil
		}
		a.result = result
		return a, tea.Quit
	}

	return a.updateCurrentView(msg)
}

func (a App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the path input has focus everything belongs to the view
	if s, ok := a.switcher.(views.Switcher); ok && a.currentView == ViewSwitcher && s.IsEditingPath() {
		return a.updateCurrentView(msg)
	}

	switch {
	case a.keys.IsQuit(msg):
		return a, tea.Quit

	case msg.String() == "1":
		a.currentView = ViewSwitcher
		return a, nil

	case msg.String() == "2":
		if a.service != nil {
			generations, err := a.service.History(50)
			if err != nil {
				a.err = err
				return a, nil
			}
			a.history = views.NewHistory(generations, a.keys)
		}
		a.currentView = ViewHistory
		return a, nil
	}

	return a.updateCurrentView(msg)
}

func (a App) updateCurrentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case ViewSwitcher:
		if a.switcher != nil {
			a.switcher, cmd = a.switcher.Update(msg)
		}
	case ViewHistory:
		if a.history != nil {
			a.history, cmd = a.history.Update(msg)
		}
	}

	return a, cmd
}

// generate composes the script, writes it to disk, and records it.
func (a App) generate(msg views.GenerateMsg) (*GenerateResult, error) {
	script, err := a.service.Generate(a.currentID, msg.TargetID, msg.Manager)
	if err != nil {
		return nil, err
	}

	path := msg.OutputPath
	if path == "" {
		path = script.Filename
		if dir := a.service.Config().OutputDir; dir != "" {
			path = filepath.Join(dir, script.Filename)
		}
	}

	if err := output.Write(path, script.Text); err != nil {
		return nil, err
	}

	if err := a.service.RecordGeneration(script, path); err != nil {
		return nil, err
	}

	return &GenerateResult{Path: path, Script: script}, nil
}

// View implements tea.Model
func (a App) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	activeTabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	header := titleStyle.Render("dsw - desktop switch script generator")

	tabs := []string{"[1]Switch", "[2]History"}
	tabBar := ""
	for i, tab := range tabs {
		if ViewType(i) == a.currentView {
			tabBar += activeTabStyle.Render(tab) + "  "
		} else {
			tabBar += tabStyle.Render(tab) + "  "
		}
	}

	content := a.renderCurrentView()

	if a.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		content = errStyle.Render(fmt.Sprintf("Error: %v", a.err))
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	footer := footerStyle.Render("q: quit  tab: cycle manager  enter: generate")

	return lipgloss.JoinVertical(lipgloss.Left, header, tabBar, content, footer)
}

func (a App) renderCurrentView() string {
	switch a.currentView {
	case ViewSwitcher:
		if a.switcher != nil {
			return a.switcher.View()
		}
		return "No catalog loaded."

	case ViewHistory:
		if a.history != nil {
			return a.history.View()
		}
		return "No history loaded."

	default:
		return "Unknown view"
	}
}

// Run starts the TUI application and returns what it generated, if
// anything.
func Run(service *core.Service, currentID, currentRaw string) (*GenerateResult, error) {
	app := NewApp(service, currentID, currentRaw)
	p := tea.NewProgram(app, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	if a, ok := final.(App); ok {
		return a.Result(), nil
	}
	return nil, nil
}
