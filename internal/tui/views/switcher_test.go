package views_test

import (
	"testing"

	"dsw/internal/domain"
	"dsw/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProfiles = []domain.Profile{
	{ID: "gnome", Name: "GNOME", Packages: []string{"gnome-shell", "gdm"}, DisplayManager: "gdm"},
	{ID: "i3", Name: "i3 Window Manager", Packages: []string{"i3-wm", "lightdm"}, DisplayManager: "lightdm"},
	{ID: "kde-plasma", Name: "KDE Plasma", Packages: []string{"plasma-desktop", "sddm"}, DisplayManager: "sddm"},
}

func newTestSwitcher() views.Switcher {
	return views.NewSwitcher(testProfiles, testProfiles[0], true, "GNOME", domain.Pacman, views.NewKeyMap("vim"))
}

func TestSwitcher_InitialState(t *testing.T) {
	model := newTestSwitcher()

	assert.Equal(t, 0, model.Selected())
	assert.Equal(t, domain.Pacman, model.Manager())
	assert.False(t, model.IsEditingPath())
	assert.NotEmpty(t, model.View())
}

func TestSwitcher_Navigate(t *testing.T) {
	model := newTestSwitcher()

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	updated := newModel.(views.Switcher)
	assert.Equal(t, 1, updated.Selected())
	assert.Equal(t, "i3", updated.SelectedProfile().ID)

	// Wraps at the ends
	newModel, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	updated = newModel.(views.Switcher)
	assert.Equal(t, 2, updated.Selected())
}

func TestSwitcher_VimKeysNavigate(t *testing.T) {
	model := newTestSwitcher()

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	updated := newModel.(views.Switcher)
	assert.Equal(t, 1, updated.Selected())

	newModel, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	updated = newModel.(views.Switcher)
	assert.Equal(t, 0, updated.Selected())
}

func TestSwitcher_StandardKeymapIgnoresVimKeys(t *testing.T) {
	model := views.NewSwitcher(testProfiles, testProfiles[0], true, "GNOME", domain.Pacman, views.NewKeyMap("standard"))

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	updated := newModel.(views.Switcher)
	assert.Equal(t, 0, updated.Selected())

	newModel, _ = updated.Update(tea.KeyMsg{Type: tea.KeyDown})
	updated = newModel.(views.Switcher)
	assert.Equal(t, 1, updated.Selected())
}

func TestSwitcher_CycleManager(t *testing.T) {
	model := newTestSwitcher()

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	updated := newModel.(views.Switcher)
	assert.Equal(t, domain.Yay, updated.Manager())

	newModel, _ = updated.Update(tea.KeyMsg{Type: tea.KeyTab})
	updated = newModel.(views.Switcher)
	assert.Equal(t, domain.Paru, updated.Manager())

	newModel, _ = updated.Update(tea.KeyMsg{Type: tea.KeyTab})
	updated = newModel.(views.Switcher)
	assert.Equal(t, domain.Pacman, updated.Manager())
}

func TestSwitcher_GenerateOnEnter(t *testing.T) {
	model := newTestSwitcher()

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	newModel, _ = newModel.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := newModel.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg := cmd()
	genMsg, ok := msg.(views.GenerateMsg)
	require.True(t, ok)
	assert.Equal(t, "kde-plasma", genMsg.TargetID)
	assert.Equal(t, domain.Pacman, genMsg.Manager)
	assert.Empty(t, genMsg.OutputPath)
}

func TestSwitcher_EditOutputPath(t *testing.T) {
	model := newTestSwitcher()

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	updated := newModel.(views.Switcher)
	assert.True(t, updated.IsEditingPath())

	// While editing, navigation keys go to the input, not the list
	newModel, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	updated = newModel.(views.Switcher)
	assert.Equal(t, 0, updated.Selected())

	// Esc leaves edit mode
	newModel, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated = newModel.(views.Switcher)
	assert.False(t, updated.IsEditingPath())
}

func TestSwitcher_ViewShowsPreviewAndCurrent(t *testing.T) {
	model := newTestSwitcher()

	// Move to KDE so the preview is a real switch
	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	newModel, _ = newModel.Update(tea.KeyMsg{Type: tea.KeyDown})
	view := newModel.(views.Switcher).View()

	assert.Contains(t, view, "GNOME")
	assert.Contains(t, view, "(current)")
	assert.Contains(t, view, "#!/bin/sh")
	assert.Contains(t, view, "dsw_gnome_to_kde-plasma.sh")
}

func TestSwitcher_UnknownCurrent(t *testing.T) {
	model := views.NewSwitcher(testProfiles, domain.Profile{}, false, "", domain.Pacman, nil)

	view := model.View()
	assert.Contains(t, view, "unknown")
	assert.NotContains(t, view, "(current)")
}
