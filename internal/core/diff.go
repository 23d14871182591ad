package core

import (
	"sort"

	"dsw/internal/domain"
)

// Diff computes the package operations needed to move from current to
// target: remove what only the current profile uses, install what only the
// target uses. This is plain set subtraction; dependency resolution is left
// to the package manager when the script runs.
//
// Both result slices come back sorted and deduplicated so generated scripts
// are byte-identical for identical inputs.
func Diff(current, target domain.Profile) domain.DiffResult {
	return domain.DiffResult{
		ToRemove:  subtract(current.Packages, target.Packages),
		ToInstall: subtract(target.Packages, current.Packages),
	}
}

// subtract returns the sorted, deduplicated elements of from not in drop.
func subtract(from, drop []string) []string {
	excluded := make(map[string]struct{}, len(drop))
	for _, pkg := range drop {
		excluded[pkg] = struct{}{}
	}

	seen := make(map[string]struct{}, len(from))
	var out []string
	for _, pkg := range from {
		if _, ok := excluded[pkg]; ok {
			continue
		}
		if _, ok := seen[pkg]; ok {
			continue
		}
		seen[pkg] = struct{}{}
		out = append(out, pkg)
	}

	sort.Strings(out)
	return out
}
