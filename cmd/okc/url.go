package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okc-dev/okc/internal/flavor"
)

var urlFlavor string

var urlCmd = &cobra.Command{
	Use:   "url <version>",
	Short: "Print the server download URL",
	Long: `Print the server download URL for a flavor at a version.

Examples:
  okc url 1.19.4
  okc url --flavor paper latest`,
	Args: exactArgs(1),
	RunE: runURL,
}

func init() {
	urlCmd.Flags().StringVarP(&urlFlavor, "flavor", "f", flavor.Vanilla.String(), "Server flavor")
}

func runURL(cmd *cobra.Command, args []string) error {
	f, err := parseFlavor(urlFlavor)
	if err != nil {
		return err
	}
	v, err := resolveVersion(args[0])
	if err != nil {
		return err
	}

	checker := flavor.Default()
	if err := checker.Require(f, v); err != nil {
		return err
	}
	u, ok := checker.URL(f, v)
	if !ok {
		return fmt.Errorf("%s %s: %w", f, v.ID, errNoDownload)
	}
	fmt.Fprintln(cmd.OutOrStdout(), u)
	return nil
}
