package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var resolveJSON bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <version>",
	Short: "Resolve a version identifier",
	Long: `Resolve a version identifier to its record.

Examples:
  okc resolve 1.19.4
  okc resolve latest
  okc resolve snapshot --json`,
	Args: exactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Output in JSON format")
}

func runResolve(cmd *cobra.Command, args []string) error {
	v, err := resolveVersion(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if resolveJSON {
		return printJSON(out, v)
	}

	fmt.Fprintf(out, "%s (%s)\n", v.ID, v.Kind)
	fmt.Fprintf(out, "  Released:   %s\n", v.ReleaseTime.Format(time.RFC3339))
	fmt.Fprintf(out, "  Manifest:   %s\n", v.URL)
	fmt.Fprintf(out, "  SHA-1:      %s\n", v.SHA1)
	fmt.Fprintf(out, "  Server jar: %s\n", v.ServerURL)
	return nil
}
