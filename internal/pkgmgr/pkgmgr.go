// Package pkgmgr maps a package-manager choice to the shell command lines
// the generated script uses for removal and installation.
package pkgmgr

import (
	"fmt"
	"strings"

	"dsw/internal/domain"
)

// Commands renders removal and installation command lines for one package
// manager. It is a pure value; construction never touches the system.
type Commands struct {
	manager domain.PackageManager
	sudo    bool
}

// For returns the command renderer for the given manager.
// Returns ErrUnsupportedManager for managers outside the known set.
func For(manager domain.PackageManager) (Commands, error) {
	switch manager {
	case domain.Pacman:
		// pacman has no privilege escalation of its own
		return Commands{manager: manager, sudo: true}, nil
	case domain.Yay, domain.Paru:
		// AUR helpers must run unprivileged and call sudo themselves
		return Commands{manager: manager}, nil
	default:
		return Commands{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedManager, manager)
	}
}

// Manager returns the package manager these commands render for.
func (c Commands) Manager() domain.PackageManager {
	return c.manager
}

// Remove renders the removal command line for the given packages.
// An empty package list renders the empty string, not a bare command.
func (c Commands) Remove(packages []string) string {
	return c.render([]string{"-Rns", "--noconfirm"}, packages)
}

// Install renders the installation command line for the given packages.
// --needed makes reinstalling an already-present package a no-op, which is
// what keeps the generated script idempotent.
func (c Commands) Install(packages []string) string {
	return c.render([]string{"-S", "--needed", "--noconfirm"}, packages)
}

func (c Commands) render(flags, packages []string) string {
	if len(packages) == 0 {
		return ""
	}

	parts := make([]string, 0, 2+len(flags)+len(packages))
	if c.sudo {
		parts = append(parts, "sudo")
	}
	parts = append(parts, c.manager.String())
	parts = append(parts, flags...)
	parts = append(parts, packages...)
	return strings.Join(parts, " ")
}
