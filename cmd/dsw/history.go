package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously generated scripts",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum entries to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return err
	}
	defer svc.Close()

	generations, err := svc.History(historyLimit)
	if err != nil {
		return err
	}

	if len(generations) == 0 {
		fmt.Println("No scripts generated yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tFROM\tTO\tMANAGER\tPATH")
	for _, gen := range generations {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			gen.CreatedAt.Format("2006-01-02 15:04"),
			gen.CurrentProfile, gen.TargetProfile, gen.Manager, gen.OutputPath,
		)
	}
	return w.Flush()
}
