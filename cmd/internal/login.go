package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/segmentio/aws-cognito/cmd/internal/analytics"
)

var loginFlags loginOpts

var loginCmd = &cobra.Command{
	Use:   "login <profile>",
	Short: "login checks your Cognito login for a profile and reports the result",
	RunE:  loginRun,
}

func init() {
	RootCmd.AddCommand(loginCmd)
	addLoginFlags(loginCmd, &loginFlags)
}

func addLoginFlags(cmd *cobra.Command, opts *loginOpts) {
	cmd.Flags().StringVarP(&opts.AccountAlias, "account-alias", "", "", "Account alias (default `default`)")
	cmd.Flags().BoolVarP(&opts.Prompt, "prompt", "", false, "Prompt for username and password instead of using the keyring")
	cmd.Flags().DurationVarP(&opts.Timeout, "timeout", "", defaultLoginTimeout, "Give up on the login after this long")
}

const AnalyticsCommandNameLogin = "login"

func loginRun(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &ErrBadArgCount{
			Actual:   len(args),
			Expected: 1,
		}
	}
	profileName := args[0]
	Analytics.TrackRanCommand(AnalyticsCommandNameLogin, [2]string{analytics.PropertyProfileName, profileName})

	res, err := loginProfile(cmd.Context(), profileName, loginFlags)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, outcomeMessage(res.Outcome))
	if expiry, ok := res.Outcome.SessionExpiry(); ok {
		fmt.Fprintf(os.Stderr, "Session valid until %s\n", expiry.Local().Format("2006-01-02 15:04:05 MST"))
	}
	if creds, ok := res.Outcome.Credentials(); ok {
		fmt.Fprintf(os.Stderr, "Identity %s, credentials valid until %s\n", creds.IdentityID, creds.ExpiresAt.Local().Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}
