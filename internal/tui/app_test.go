package tui_test

import (
	"os"
	"path/filepath"
	"testing"

	"dsw/internal/core"
	"dsw/internal/domain"
	"dsw/internal/tui"
	"dsw/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) tui.App {
	t.Helper()

	svc, err := core.NewService(core.ServiceConfig{
		ConfigDir: t.TempDir(),
		DataDir:   t.TempDir(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })

	return tui.NewApp(svc, "gnome", "GNOME")
}

func TestNewApp_InitialState(t *testing.T) {
	app := tui.NewApp(nil, "", "")

	assert.Equal(t, tui.ViewSwitcher, app.CurrentView())
	assert.Nil(t, app.Result())
	assert.NotEmpty(t, app.View())
}

func TestApp_QuitOnQ(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)

	msg := cmd()
	_, isQuit := msg.(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestApp_SwitchToHistoryView(t *testing.T) {
	app := newTestApp(t)

	newApp, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	updated := newApp.(tui.App)

	assert.Equal(t, tui.ViewHistory, updated.CurrentView())
	assert.Contains(t, updated.View(), "No scripts generated yet")

	newApp, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	updated = newApp.(tui.App)
	assert.Equal(t, tui.ViewSwitcher, updated.CurrentView())
}

func TestApp_KeybindingsFromConfig(t *testing.T) {
	configDir := t.TempDir()
	data := "keybindings: standard\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(data), 0o644))

	svc, err := core.NewService(core.ServiceConfig{
		ConfigDir: configDir,
		DataDir:   t.TempDir(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })

	app := tui.NewApp(svc, "gnome", "GNOME")
	before := app.View()

	// In standard mode the vim keys do nothing
	newApp, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, before, newApp.(tui.App).View())

	newApp, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.NotEqual(t, before, newApp.(tui.App).View())
}

func TestApp_ViewShowsCatalogAndDetectedDesktop(t *testing.T) {
	app := newTestApp(t)

	view := app.View()
	assert.Contains(t, view, "dsw")
	assert.Contains(t, view, "KDE Plasma")
	assert.Contains(t, view, "(current)")
}

func TestApp_GenerateWritesScriptAndQuits(t *testing.T) {
	app := newTestApp(t)
	outPath := filepath.Join(t.TempDir(), "switch.sh")

	newApp, cmd := app.Update(views.GenerateMsg{
		TargetID:   "kde-plasma",
		Manager:    domain.Pacman,
		OutputPath: outPath,
	})
	updated := newApp.(tui.App)

	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)

	result := updated.Result()
	require.NotNil(t, result)
	assert.Equal(t, outPath, result.Path)
	assert.Equal(t, "kde-plasma", result.Script.To)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sudo systemctl enable sddm")
}

func TestApp_GenerateUnknownTargetShowsError(t *testing.T) {
	app := newTestApp(t)

	newApp, cmd := app.Update(views.GenerateMsg{
		TargetID: "xfce-unlisted",
		Manager:  domain.Pacman,
	})
	updated := newApp.(tui.App)

	assert.Nil(t, cmd)
	assert.Nil(t, updated.Result())
	assert.Contains(t, updated.View(), "Error:")
}

func TestApp_ViewRendersWithoutService(t *testing.T) {
	app := tui.NewApp(nil, "", "")

	view := app.View()
	assert.Contains(t, view, "No catalog loaded")
}
