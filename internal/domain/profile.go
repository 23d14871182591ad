package domain

// Profile describes a desktop environment or window manager known to the
// catalog: the packages it requires and the display manager it runs under.
// Profiles are immutable once the catalog is built.
type Profile struct {
	ID             string   // Stable identifier, e.g. "kde-plasma"
	Name           string   // Human-readable label, e.g. "KDE Plasma"
	Packages       []string // Packages the profile requires (order irrelevant)
	DisplayManager string   // Login-screen service, e.g. "sddm"; empty for bare WMs
}

// HasDisplayManager reports whether the profile expects a display manager.
func (p Profile) HasDisplayManager() bool {
	return p.DisplayManager != ""
}
