package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/segmentio/aws-cognito/cmd/internal/analytics"
	"github.com/segmentio/aws-cognito/cmd/internal/configload"
)

var FlagOpenStdout bool

var openCmd = &cobra.Command{
	Use:   "open <profile>",
	Short: "open the user pool's hosted sign-in page in a browser",
	RunE:  openRun,
}

func init() {
	RootCmd.AddCommand(openCmd)
	openCmd.Flags().BoolVarP(&FlagOpenStdout, "stdout", "", false, "Print the sign-in URL instead of opening a browser")
}

const AnalyticsCommandNameOpen = "open"

var defaultHostedUIScopes = []string{"openid", "email", "profile"}

func openRun(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &ErrBadArgCount{
			Actual:   len(args),
			Expected: 1,
		}
	}
	profileName := args[0]
	Analytics.TrackRanCommand(AnalyticsCommandNameOpen, [2]string{analytics.PropertyProfileName, profileName})

	ps, err := loadProfile(profileName)
	if err != nil {
		return err
	}
	signinURL, err := hostedUIURL(ps, profileName, uuid.NewString())
	if err != nil {
		return err
	}

	if FlagOpenStdout {
		fmt.Fprintln(cmd.OutOrStdout(), signinURL)
		return nil
	}
	return open.Run(signinURL)
}

// hostedUIURL is the authorization code URL of the profile's hosted UI.
func hostedUIURL(ps configload.Profiles, profileName, state string) (string, error) {
	domain, err := ps.Get(profileName, configload.KeyHostedUIDomain)
	if err != nil {
		return "", fmt.Errorf("hosted UI domain: %w", err)
	}
	clientID, err := ps.Get(profileName, configload.KeyClientID)
	if err != nil {
		return "", fmt.Errorf("client id: %w", err)
	}
	if !strings.Contains(domain, "://") {
		domain = "https://" + domain
	}
	domain = strings.TrimSuffix(domain, "/")

	conf := &oauth2.Config{
		ClientID: clientID,
		Endpoint: oauth2.Endpoint{
			AuthURL:  domain + "/oauth2/authorize",
			TokenURL: domain + "/oauth2/token",
		},
		RedirectURL: ps.GetWithDefault(profileName, configload.KeyRedirectURL, ""),
		Scopes:      defaultHostedUIScopes,
	}
	return conf.AuthCodeURL(state), nil
}
