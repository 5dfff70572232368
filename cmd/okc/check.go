package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okc-dev/okc/internal/flavor"
)

var checkCmd = &cobra.Command{
	Use:   "check <flavor> <version>",
	Short: "Check whether a flavor can run a version",
	Long: `Check whether a server flavor can run a version. Exits with status 5
when it cannot.

Examples:
  okc check paper 1.19.4
  okc check vanilla snapshot`,
	Args: exactArgs(2),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	f, err := parseFlavor(args[0])
	if err != nil {
		return err
	}
	v, err := resolveVersion(args[1])
	if err != nil {
		return err
	}

	if err := flavor.Default().Require(f, v); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s supports %s %s\n", f, v.Kind, v.ID)
	return nil
}
