package cmd

import (
	"fmt"

	"github.com/harlequix/hamfec/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Build Date:", version.BuildDate)
		fmt.Fprintln(out, "Git Commit:", version.GitCommit)
		fmt.Fprintln(out, "Version:", version.Version)
		fmt.Fprintln(out, "Go Version:", version.GoVersion)
		fmt.Fprintln(out, "OS / Arch:", version.OsArch)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
