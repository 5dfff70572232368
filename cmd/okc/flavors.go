package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okc-dev/okc/internal/flavor"
)

var flavorsJSON bool

var flavorsCmd = &cobra.Command{
	Use:   "flavors",
	Short: "List server flavors and the versions they support",
	Args:  exactArgs(0),
	RunE:  runFlavors,
}

func init() {
	flavorsCmd.Flags().BoolVar(&flavorsJSON, "json", false, "Output in JSON format")
}

type flavorOutput struct {
	Name      flavor.Flavor `json:"name"`
	Supports  string        `json:"supports"`
	Snapshots bool          `json:"snapshots"`
}

func runFlavors(cmd *cobra.Command, args []string) error {
	checker := flavor.Default()

	var rows []flavorOutput
	for _, f := range flavor.All() {
		rows = append(rows, flavorOutput{
			Name:      f,
			Supports:  checker.Range(f).String(),
			Snapshots: f.AllowsSnapshots(),
		})
	}

	out := cmd.OutOrStdout()
	if flavorsJSON {
		return printJSON(out, rows)
	}
	for _, r := range rows {
		snapshots := "releases only"
		if r.Snapshots {
			snapshots = "releases and snapshots"
		}
		fmt.Fprintf(out, "%-8s  %s, %s\n", r.Name, r.Supports, snapshots)
	}
	return nil
}
