package views

import (
	"fmt"
	"strings"

	"dsw/internal/storage/db"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// History shows previously generated scripts, newest first.
type History struct {
	generations []db.Generation
	keys        *KeyMap
	selected    int
	width       int
	height      int
}

// NewHistory creates the history view
func NewHistory(generations []db.Generation, keys *KeyMap) History {
	if keys == nil {
		keys = NewKeyMap("")
	}
	return History{
		generations: generations,
		keys:        keys,
		width:       80,
		height:      24,
	}
}

// Selected returns the currently selected index
func (h History) Selected() int {
	return h.selected
}

// Count returns the number of history entries
func (h History) Count() int {
	return len(h.generations)
}

// Init implements tea.Model
func (h History) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (h History) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case h.keys.IsUp(msg):
			if len(h.generations) > 0 {
				h.selected--
				if h.selected < 0 {
					h.selected = len(h.generations) - 1
				}
			}
		case h.keys.IsDown(msg):
			if len(h.generations) > 0 {
				h.selected = (h.selected + 1) % len(h.generations)
			}
		}
		return h, nil

	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height
		return h, nil
	}

	return h, nil
}

// View implements tea.Model
func (h History) View() string {
	if len(h.generations) == 0 {
		return "No scripts generated yet.\n\nSwitch to the generator with '1' and press enter on a target profile."
	}

	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("Generated scripts\n\n")
	for i, gen := range h.generations {
		cursor := "  "
		if i == h.selected {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s  %s -> %s  (%s)",
			cursor,
			gen.CreatedAt.Format("2006-01-02 15:04"),
			gen.CurrentProfile, gen.TargetProfile, gen.Manager,
		)
		if i == h.selected {
			b.WriteString(selectedStyle.Render(line) + "\n")
			b.WriteString(dimStyle.Render("    "+gen.OutputPath) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}
