package domain

import "fmt"

// PackageManager identifies which package-manager front end the generated
// script should use
type PackageManager int

const (
	Pacman PackageManager = iota // Default: stock pacman (needs sudo)
	Yay                          // AUR helper, escalates internally
	Paru                         // AUR helper, escalates internally
)

func (m PackageManager) String() string {
	switch m {
	case Pacman:
		return "pacman"
	case Yay:
		return "yay"
	case Paru:
		return "paru"
	default:
		return "unknown"
	}
}

// ParsePackageManager converts a string to a PackageManager.
// Returns ErrUnsupportedManager for anything outside the known set.
func ParsePackageManager(s string) (PackageManager, error) {
	switch s {
	case "pacman":
		return Pacman, nil
	case "yay":
		return Yay, nil
	case "paru":
		return Paru, nil
	default:
		return Pacman, fmt.Errorf("%w: %q", ErrUnsupportedManager, s)
	}
}

// PackageManagers returns all supported managers in display order.
func PackageManagers() []PackageManager {
	return []PackageManager{Pacman, Yay, Paru}
}
