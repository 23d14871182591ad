package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"dsw/internal/detect"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the desktop profiles in the catalog",
	Long: `List all desktop profiles the catalog knows, with their display manager
and package count. The detected current desktop is marked with *.

Add your own profiles with a profiles.yaml in the config directory; it
uses the same schema as the built-in catalog.`,
	RunE: runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return err
	}
	defer svc.Close()

	currentID, _ := detect.Current()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDISPLAY MANAGER\tPACKAGES")
	for _, p := range svc.Catalog().Profiles() {
		marker := ""
		if p.ID == currentID {
			marker = " *"
		}
		dm := p.DisplayManager
		if dm == "" {
			dm = "-"
		}
		fmt.Fprintf(w, "%s%s\t%s\t%s\t%d\n", p.ID, marker, p.Name, dm, len(p.Packages))
	}
	return w.Flush()
}
