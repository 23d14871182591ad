package domain

// DiffResult holds the package operations needed to move between two
// profiles. Both slices are sorted lexicographically and deduplicated.
// ToRemove never intersects the target profile's package set.
type DiffResult struct {
	ToRemove  []string
	ToInstall []string
}

// Empty reports whether the diff requires no package operations.
func (d DiffResult) Empty() bool {
	return len(d.ToRemove) == 0 && len(d.ToInstall) == 0
}

// DMTransition is the display-manager service switch between two profiles.
// A zero value means the service stays as it is.
type DMTransition struct {
	Disable string // Service to disable; empty when the old profile has none
	Enable  string // Service to enable; empty when the new profile has none
}

// Empty reports whether the transition is a no-op.
func (t DMTransition) Empty() bool {
	return t.Disable == "" && t.Enable == ""
}

// Script is the generated switch script. It is a value created once per
// generation request; persistence is the caller's concern.
type Script struct {
	From     string // Current profile ID; empty when the desktop was not recognized
	To       string // Target profile ID
	Manager  PackageManager
	Filename string // Suggested filename, e.g. "dsw_gnome_to_kde-plasma.sh"
	Text     string // Complete script text
}
