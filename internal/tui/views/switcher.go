package views

import (
	"fmt"
	"strings"

	"dsw/internal/core"
	"dsw/internal/domain"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// GenerateMsg is sent when the user asks for a script to be generated
type GenerateMsg struct {
	TargetID   string
	Manager    domain.PackageManager
	OutputPath string // Empty means the default location
}

const previewLines = 18

// Switcher is the main selection view: target profile list, package-manager
// choice, and a live preview of the script that would be generated.
type Switcher struct {
	profiles    []domain.Profile
	current     domain.Profile // Zero value when the desktop was not recognized
	hasCurrent  bool
	currentRaw  string // Raw XDG_CURRENT_DESKTOP value for the info pane
	keys        *KeyMap
	selected    int
	manager     domain.PackageManager
	editingPath bool
	pathInput   textinput.Model
	width       int
	height      int
}

// NewSwitcher creates the switcher view. profiles must be non-empty and in
// the order the list should display them.
func NewSwitcher(profiles []domain.Profile, current domain.Profile, hasCurrent bool, currentRaw string, manager domain.PackageManager, keys *KeyMap) Switcher {
	ti := textinput.New()
	ti.Placeholder = "Output path (default: ./<generated name>)"
	ti.CharLimit = 200
	ti.Width = 50

	if keys == nil {
		keys = NewKeyMap("")
	}

	return Switcher{
		profiles:   profiles,
		current:    current,
		hasCurrent: hasCurrent,
		currentRaw: currentRaw,
		keys:       keys,
		manager:    manager,
		pathInput:  ti,
		width:      80,
		height:     24,
	}
}

// Selected returns the currently selected index
func (s Switcher) Selected() int {
	return s.selected
}

// SelectedProfile returns the currently selected target profile
func (s Switcher) SelectedProfile() domain.Profile {
	if len(s.profiles) == 0 {
		return domain.Profile{}
	}
	return s.profiles[s.selected]
}

// Manager returns the currently selected package manager
func (s Switcher) Manager() domain.PackageManager {
	return s.manager
}

// IsEditingPath returns whether the output-path input has focus
func (s Switcher) IsEditingPath() bool {
	return s.editingPath
}

// Init implements tea.Model
func (s Switcher) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s Switcher) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.editingPath {
			return s.handlePathMode(msg)
		}
		return s.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil
	}

	return s, nil
}

func (s Switcher) handlePathMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		s.editingPath = false
		s.pathInput.Reset()
		s.pathInput.Blur()
		return s, nil

	case tea.KeyEnter:
		s.editingPath = false
		s.pathInput.Blur()
		return s, nil

	default:
		var cmd tea.Cmd
		s.pathInput, cmd = s.pathInput.Update(msg)
		return s, cmd
	}
}

func (s Switcher) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case s.keys.IsUp(msg):
		if len(s.profiles) > 0 {
			s.selected--
			if s.selected < 0 {
				s.selected = len(s.profiles) - 1
			}
		}
		return s, nil

	case s.keys.IsDown(msg):
		if len(s.profiles) > 0 {
			s.selected = (s.selected + 1) % len(s.profiles)
		}
		return s, nil

	case s.keys.IsCycle(msg):
		managers := domain.PackageManagers()
		s.manager = managers[(int(s.manager)+1)%len(managers)]
		return s, nil

	case msg.String() == "o":
		s.editingPath = true
		s.pathInput.Focus()
		return s, textinput.Blink

	case s.keys.IsConfirm(msg):
		if len(s.profiles) == 0 {
			return s, nil
		}
		target := s.SelectedProfile()
		manager := s.manager
		path := s.pathInput.Value()
		return s, func() tea.Msg {
			return GenerateMsg{TargetID: target.ID, Manager: manager, OutputPath: path}
		}
	}

	return s, nil
}

// View implements tea.Model
func (s Switcher) View() string {
	listStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("35")).
		Padding(0, 1)

	infoStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1)

	previewStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("205")).
		Padding(0, 1)

	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	currentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Faint(true)

	// Target profile list
	var list strings.Builder
	list.WriteString("Target profile\n\n")
	for i, p := range s.profiles {
		cursor := "  "
		if i == s.selected {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s", cursor, p.Name)
		switch {
		case i == s.selected:
			line = selectedStyle.Render(line)
		case s.hasCurrent && p.ID == s.current.ID:
			line = currentStyle.Render(line + " (current)")
		}
		list.WriteString(line + "\n")
	}

	// Info pane
	currentName := "unknown"
	if s.hasCurrent {
		currentName = s.current.Name
	}
	raw := s.currentRaw
	if raw == "" {
		raw = "unset"
	}
	nav := "j/k"
	if s.keys.Mode() != "vim" {
		nav = "up/down"
	}
	info := fmt.Sprintf(
		"Detected: %s (XDG: %s)\nManager:  %s (tab to cycle)\n\n%s navigate, o set output path\nenter generates, q quits",
		currentName, raw, s.manager, nav,
	)
	if s.editingPath {
		info += "\n\nOutput path:\n" + s.pathInput.View()
	} else if v := s.pathInput.Value(); v != "" {
		info += "\n\nOutput path: " + v
	}

	top := lipgloss.JoinHorizontal(
		lipgloss.Top,
		listStyle.Render(list.String()),
		infoStyle.Render(info),
	)

	return lipgloss.JoinVertical(lipgloss.Left, top, previewStyle.Render(s.preview()))
}

// preview renders the first lines of the script the current selection
// would produce.
func (s Switcher) preview() string {
	if len(s.profiles) == 0 {
		return "No profiles in catalog."
	}

	target := s.SelectedProfile()
	script, err := core.Compose(s.current, target, s.manager)
	if err != nil {
		return fmt.Sprintf("Preview unavailable: %v", err)
	}

	lines := strings.Split(script.Text, "\n")
	if len(lines) > previewLines {
		lines = append(lines[:previewLines], "...")
	}
	return fmt.Sprintf("Preview: %s\n\n%s", script.Filename, strings.Join(lines, "\n"))
}
