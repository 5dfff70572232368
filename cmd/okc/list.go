package main

import (
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/okc-dev/okc/internal/flavor"
	"github.com/okc-dev/okc/internal/log"
	"github.com/okc-dev/okc/internal/mcversion"
)

var (
	listSnapshots  bool
	listConstraint string
	listFlavor     string
	listLimit      int
	listJSON       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List known versions, newest first",
	Long: `List the versions compiled into okc, newest release time first.
Releases only unless --snapshots is given.

A semantic version constraint narrows the list to releases whose id
parses as a version. Snapshots never match a constraint.

Examples:
  okc list
  okc list --snapshots --limit 10
  okc list --constraint ">=1.16, <1.20"
  okc list --flavor paper --json`,
	Args: exactArgs(0),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listSnapshots, "snapshots", false, "Include snapshots")
	listCmd.Flags().StringVar(&listConstraint, "constraint", "", "Only releases matching a semver constraint")
	listCmd.Flags().StringVarP(&listFlavor, "flavor", "f", "", "Only versions this flavor supports")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Show at most this many versions (0 = all)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}

// versionFilter decides which versions list prints.
type versionFilter struct {
	snapshots  bool
	constraint *semver.Constraints
	flavor     *flavor.Flavor
}

func (vf versionFilter) match(v mcversion.Version) bool {
	if v.Kind == mcversion.Snapshot && !vf.snapshots {
		return false
	}
	if vf.flavor != nil && !flavor.Default().CheckVersion(*vf.flavor, v) {
		return false
	}
	if vf.constraint != nil {
		if v.Kind != mcversion.Release {
			return false
		}
		sv, err := semver.NewVersion(v.ID)
		if err != nil {
			log.Default().Debug("skipping id that is not a semantic version", "id", v.ID, "error", err)
			return false
		}
		return vf.constraint.Check(sv)
	}
	return true
}

func newVersionFilter() (versionFilter, error) {
	vf := versionFilter{snapshots: listSnapshots}
	if listConstraint != "" {
		c, err := semver.NewConstraint(listConstraint)
		if err != nil {
			return vf, usageError{fmt.Errorf("invalid constraint %q: %w", listConstraint, err)}
		}
		vf.constraint = c
	}
	if listFlavor != "" {
		f, err := parseFlavor(listFlavor)
		if err != nil {
			return vf, err
		}
		vf.flavor = &f
	}
	return vf, nil
}

func runList(cmd *cobra.Command, args []string) error {
	vf, err := newVersionFilter()
	if err != nil {
		return err
	}

	var versions []mcversion.Version
	for _, v := range mcversion.All() {
		if !vf.match(v) {
			continue
		}
		versions = append(versions, v)
		if listLimit > 0 && len(versions) == listLimit {
			break
		}
	}

	out := cmd.OutOrStdout()
	if listJSON {
		if versions == nil {
			versions = []mcversion.Version{}
		}
		return printJSON(out, versions)
	}

	if len(versions) == 0 {
		fmt.Fprintln(out, "No matching versions.")
		return nil
	}
	for _, v := range versions {
		fmt.Fprintf(out, "  %-20s  %-8s  %s\n", v.ID, v.Kind, v.ReleaseTime.Format(time.DateOnly))
	}
	return nil
}
