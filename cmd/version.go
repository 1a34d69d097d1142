package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Version is injected via ldflags at build time.
	Version = "dev"
	// Build is the CI build number, injected via ldflags.
	Build = "local"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build number",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "termrpg %s (build %s)\n", Version, Build)
		fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
