package main

import (
	"errors"
	"fmt"

	"dsw/internal/detect"
	"dsw/internal/domain"

	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the detected current desktop",
	Long: `Show what XDG_CURRENT_DESKTOP reports and which catalog profile it maps
to. An unrecognized desktop is not an error: generation then produces an
install-only script.`,
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	raw := detect.Raw()
	if raw == "" {
		fmt.Println("XDG_CURRENT_DESKTOP is not set.")
		return nil
	}

	fmt.Printf("Desktop:  %s\n", raw)

	id, err := detect.ProfileID(raw)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownDesktop) {
			fmt.Println("Profile:  not in the catalog (scripts will skip package removal)")
			return nil
		}
		return err
	}

	fmt.Printf("Profile:  %s\n", id)
	return nil
}
