package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/segmentio/aws-cognito/cmd/internal/analytics"
)

var envFlags loginOpts

// envCmd represents the env command
var envCmd = &cobra.Command{
	Use:     "env <profile>",
	Short:   "env prints out export commands for the specified profile",
	RunE:    envRun,
	Example: "source <(aws-cognito env test)",
}

func init() {
	RootCmd.AddCommand(envCmd)
	addLoginFlags(envCmd, &envFlags)
}

const AnalyticsCommandNameEnv = "env"

func envRun(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &ErrBadArgCount{
			Actual:   len(args),
			Expected: 1,
		}
	}
	profileName := args[0]
	Analytics.TrackRanCommand(AnalyticsCommandNameEnv, [2]string{analytics.PropertyProfileName, profileName})

	env := kvEnv{}
	if err := loginEnv(cmd, profileName, envFlags, env); err != nil {
		return err
	}

	for _, line := range env.Exports(os.Getenv("SHELL")) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
