package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cognitocredskeyring "github.com/segmentio/aws-cognito/lib/keyrings/cognitocreds"
)

var (
	FlagAccountAlias    string
	FlagCredsNoValidate bool
	FlagAddProfile      string
)

func init() {
	var addCmd = &cobra.Command{
		Use:   "add <username>",
		Short: "add your Cognito user pool login to the keyring",
		RunE:  add,
	}
	RootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&FlagAccountAlias, "account-alias", "", "", "Account alias (default `default`)")
	addCmd.Flags().BoolVarP(&FlagCredsNoValidate, "no-validate", "", false, "Disable credentials validation with Cognito")
	addCmd.Flags().StringVarP(&FlagAddProfile, "profile", "p", "", "Profile to validate the login against")
}

const AnalyticsCommandNameAdd = "add"

func add(cmd *cobra.Command, args []string) error {
	Analytics.TrackRanCommand(AnalyticsCommandNameAdd)

	if len(args) != 1 {
		return &ErrBadArgCount{
			Actual:   len(args),
			Expected: 1,
		}
	}
	username := args[0]
	accountAlias := accountAliasOrDefault(FlagAccountAlias)

	password, err := stdPrompter.askSecret("Cognito password")
	if err != nil {
		return fmt.Errorf("Failed to prompt for password: %w", err)
	}
	creds := cognitocredskeyring.Creds{
		Username: username,
		Password: password,
	}

	if !FlagCredsNoValidate && FlagAddProfile != "" {
		fmt.Fprintf(os.Stderr, "Validating credentials...\n")
		if err := validateCreds(cmd, creds); err != nil {
			return fmt.Errorf("Failed to validate credentials: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Credentials validated!\n")
	}

	if err := keyringCredsPut(accountAlias, creds); err != nil {
		return fmt.Errorf("Failed to save credentials: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Saved credentials to keyring for user %s (%s)\n", username, accountAlias)
	return nil
}

func validateCreds(cmd *cobra.Command, creds cognitocredskeyring.Creds) error {
	ps, err := loadProfile(FlagAddProfile)
	if err != nil {
		return err
	}
	cfg, err := ps.AttemptConfig(FlagAddProfile)
	if err != nil {
		return err
	}
	a, err := newAttempter(ps, FlagAddProfile, cfg, defaultLoginTimeout)
	if err != nil {
		return err
	}
	o, ok := a.Attempt(cmd.Context(), creds.Username, creds.Password)
	if !ok {
		return &ErrLoginFailed{Profile: FlagAddProfile, Outcome: o}
	}
	return nil
}
