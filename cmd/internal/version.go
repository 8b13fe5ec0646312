package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var flagVersionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print version information and exit",
	Run:   versionRun,
}

func init() {
	versionCmd.Flags().BoolVarP(&flagVersionShort, "short", "s", false, "Print only the version number")
	RootCmd.AddCommand(versionCmd)
}

func versionRun(cmd *cobra.Command, args []string) {
	if flagVersionShort {
		fmt.Fprintln(cmd.OutOrStdout(), Version)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "aws-cognito %s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
