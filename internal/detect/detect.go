// Package detect identifies the running desktop environment so the
// generator knows which profile's packages are currently installed.
// Detection only reads the environment; it never executes commands.
package detect

import (
	"fmt"
	"os"
	"strings"

	"dsw/internal/domain"
)

// Raw returns the running desktop's name as reported by
// XDG_CURRENT_DESKTOP. The variable may hold a colon-separated list
// (e.g. "ubuntu:GNOME"); the last component is the desktop itself.
func Raw() string {
	value := os.Getenv("XDG_CURRENT_DESKTOP")
	if value == "" {
		return ""
	}
	parts := strings.Split(value, ":")
	return parts[len(parts)-1]
}

// ProfileID maps a raw desktop name to its catalog profile ID.
// Returns ErrUnknownDesktop when the name is empty or unrecognized; the
// caller then treats the machine as having no known current profile.
func ProfileID(raw string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "GNOME":
		return "gnome", nil
	case "KDE", "PLASMA":
		return "kde-plasma", nil
	case "XFCE":
		return "xfce4", nil
	case "CINNAMON", "X-CINNAMON":
		return "cinnamon", nil
	case "MATE":
		return "mate", nil
	case "BUDGIE":
		return "budgie", nil
	case "LXQT":
		return "lxqt", nil
	case "LXDE":
		return "lxde", nil
	case "I3":
		return "i3", nil
	case "COSMIC":
		return "cosmic", nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownDesktop, raw)
	}
}

// Current detects the running desktop and resolves it to a profile ID.
func Current() (string, error) {
	return ProfileID(Raw())
}
