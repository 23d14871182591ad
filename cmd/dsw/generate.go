package main

import (
	"fmt"

	"dsw/internal/output"

	"github.com/spf13/cobra"
)

var (
	generateTarget  string
	generateFrom    string
	generateManager string
	generateOutput  string
	generateStdout  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a switch script without the TUI",
	Long: `Generate a desktop switch script non-interactively.

The current desktop is detected from XDG_CURRENT_DESKTOP unless --from is
given; --from none forces an install-only script.

Examples:
  dsw generate --target kde-plasma
  dsw generate --target i3 --from gnome --manager yay
  dsw generate --target xfce4 --stdout`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateTarget, "target", "t", "", "target profile ID (required)")
	generateCmd.Flags().StringVarP(&generateFrom, "from", "f", "", "current profile ID ('none' to skip removal)")
	generateCmd.Flags().StringVarP(&generateManager, "manager", "m", "", "package manager: pacman, yay, or paru")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output path (default: <output_dir>/<generated name>)")
	generateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "print the script instead of writing a file")
	generateCmd.MarkFlagRequired("target")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return err
	}
	defer svc.Close()

	manager, err := resolveManager(svc.Config(), generateManager)
	if err != nil {
		return err
	}

	currentID, err := resolveCurrentProfile(svc.Catalog(), generateFrom)
	if err != nil {
		return err
	}

	script, err := svc.Generate(currentID, generateTarget, manager)
	if err != nil {
		return err
	}

	if generateStdout {
		fmt.Print(script.Text)
		return nil
	}

	path := generateOutput
	if path == "" {
		path = defaultOutputPath(svc.Config(), script.Filename)
	}

	if err := output.Write(path, script.Text); err != nil {
		return err
	}
	if err := svc.RecordGeneration(script, path); err != nil {
		return err
	}

	printNextSteps(path)
	return nil
}
