// Command okc resolves Minecraft versions and checks server flavor support
// against the version table compiled into the binary. It never touches the
// network.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/okc-dev/okc/internal/buildinfo"
	"github.com/okc-dev/okc/internal/log"
)

// verbosity is the -v count shared by every command.
var verbosity int

var rootCmd = &cobra.Command{
	Use:   "okc",
	Short: "Resolve Minecraft server versions and flavors",
	Long: `okc answers which Minecraft version an identifier names and whether a
server flavor can run it. The version table is compiled in at build time,
so every answer is offline.

Identifiers are exact version ids (1.19.4, 23w14a) or one of the aliases
latest, snapshot and latest_snapshot.`,
	Version:       buildinfo.Version(),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetDefault(log.NewCLI(cmd.ErrOrStderr(), verbosity))
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(flavorsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		exitWithCode(exitCodeFor(err))
	}
	os.Exit(ExitSuccess)
}
