package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/okc-dev/okc/internal/errmsg"
	"github.com/okc-dev/okc/internal/flavor"
	"github.com/okc-dev/okc/internal/log"
	"github.com/okc-dev/okc/internal/mcversion"
)

// printJSON marshals v as indented JSON to w.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// printError prints an error to w with suggestions if available.
func printError(w io.Writer, err error) {
	errmsg.Fprint(w, err)
}

// exactArgs is cobra.ExactArgs reported as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// resolveVersion resolves id against the compiled table and logs the outcome.
func resolveVersion(id string) (mcversion.Version, error) {
	v, err := mcversion.Resolve(id)
	if err != nil {
		return mcversion.Version{}, err
	}
	log.Default().Debug("resolved version", "input", id, "id", v.ID, "kind", v.Kind)
	return v, nil
}

func parseFlavor(name string) (flavor.Flavor, error) {
	f, err := flavor.Parse(name)
	if err != nil {
		return 0, err
	}
	log.Default().Debug("parsed flavor", "input", name, "flavor", f)
	return f, nil
}
