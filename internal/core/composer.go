package core

import (
	"fmt"
	"strings"

	"dsw/internal/domain"
	"dsw/internal/pkgmgr"
)

// Compose renders the complete switch script for moving from current to
// target with the given package manager. current may be the zero Profile
// when the running desktop was not recognized; the script then only
// installs and enables.
//
// Composition is all-or-nothing: on error no partial script is returned.
// The output is byte-identical for identical inputs.
func Compose(current, target domain.Profile, manager domain.PackageManager) (domain.Script, error) {
	cmds, err := pkgmgr.For(manager)
	if err != nil {
		return domain.Script{}, err
	}

	diff := Diff(current, target)
	transition := PlanTransition(current, target)

	fromLabel := current.Name
	if fromLabel == "" {
		fromLabel = "unknown"
	}

	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString("# Generated by dsw\n")
	fmt.Fprintf(&b, "# From: %s  To: %s  Manager: %s\n", fromLabel, target.Name, manager)
	b.WriteString("#\n")
	b.WriteString("# REVIEW THIS SCRIPT BEFORE RUNNING IT.\n")
	b.WriteString("# It removes and installs packages and changes the enabled display manager.\n")
	b.WriteString("# Run it from a TTY outside the graphical session.\n")

	if line := cmds.Remove(diff.ToRemove); line != "" {
		b.WriteString("\necho \"Removing packages no longer needed...\"\n")
		b.WriteString(line + "\n")
	}

	if line := cmds.Install(diff.ToInstall); line != "" {
		fmt.Fprintf(&b, "\necho \"Installing packages for %s...\"\n", target.Name)
		b.WriteString(line + "\n")
	}

	if !transition.Empty() {
		b.WriteString("\n")
		switch {
		case transition.Disable != "" && transition.Enable != "":
			fmt.Fprintf(&b, "echo \"Switching display manager to %s...\"\n", transition.Enable)
			fmt.Fprintf(&b, "sudo systemctl disable %s\n", transition.Disable)
			fmt.Fprintf(&b, "sudo systemctl enable %s\n", transition.Enable)
		case transition.Enable != "":
			fmt.Fprintf(&b, "echo \"Enabling display manager %s...\"\n", transition.Enable)
			fmt.Fprintf(&b, "sudo systemctl enable %s\n", transition.Enable)
		default:
			// Target runs without a display manager
			fmt.Fprintf(&b, "echo \"Disabling display manager %s...\"\n", transition.Disable)
			fmt.Fprintf(&b, "sudo systemctl disable %s\n", transition.Disable)
		}
	}

	b.WriteString("\necho \"Switch complete. Reboot to finish.\"\n")
	b.WriteString("printf \"Reboot now? [y/N]: \"\n")
	b.WriteString("read -r answer\n")
	b.WriteString("case \"$answer\" in\n")
	b.WriteString("    [yY]*) sudo reboot ;;\n")
	b.WriteString("    *) echo \"Reboot manually to complete the switch.\" ;;\n")
	b.WriteString("esac\n")

	return domain.Script{
		From:     current.ID,
		To:       target.ID,
		Manager:  manager,
		Filename: Filename(current, target),
		Text:     b.String(),
	}, nil
}

// Filename derives the suggested script filename for a switch.
func Filename(current, target domain.Profile) string {
	from := current.ID
	if from == "" {
		from = "unknown"
	}
	return fmt.Sprintf("dsw_%s_to_%s.sh", from, target.ID)
}
