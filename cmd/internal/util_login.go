package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/segmentio/aws-cognito/cmd/internal/configload"
	"github.com/segmentio/aws-cognito/lib/attempt"
	"github.com/segmentio/aws-cognito/lib/cognitoidentity"
	"github.com/segmentio/aws-cognito/lib/cognitoidp"
	cognitocredskeyring "github.com/segmentio/aws-cognito/lib/keyrings/cognitocreds"
	"github.com/segmentio/aws-cognito/lib/loginstate"
	"github.com/segmentio/aws-cognito/lib/outcome"
	"github.com/segmentio/aws-cognito/lib/transport"
)

const defaultLoginTimeout = 30 * time.Second

// loginOpts are the flags shared by the commands that log in.
type loginOpts struct {
	AccountAlias string
	Prompt       bool
	Timeout      time.Duration
}

type loginResult struct {
	Profile string
	Config  attempt.Config
	Outcome outcome.Outcome
}

func loadProfile(profileName string) (configload.Profiles, error) {
	ps, err := configload.FindAndParse()
	if err != nil {
		return configload.Profiles{}, err
	}
	if !ps.Has(profileName) {
		return configload.Profiles{}, fmt.Errorf("Profile '%s' not found in your config. Use `list` to see configured profiles.", profileName)
	}
	return ps, nil
}

// newAttempter wires the user pool and identity pool clients for cfg.
func newAttempter(ps configload.Profiles, profileName string, cfg attempt.Config, timeout time.Duration) (*attempt.Attempter, error) {
	httpClient, err := transport.NewHTTPClient(&transport.Options{HTTPClientTimeout: &timeout})
	if err != nil {
		return nil, err
	}

	poolSess, err := transport.NewAWSSession(cfg.PoolRegion(), httpClient)
	if err != nil {
		return nil, err
	}
	idp, err := cognitoidp.New(poolSess, cfg.ClientID, cognitoidp.Opts{ClientSecret: cfg.ClientSecret})
	if err != nil {
		return nil, err
	}

	identitySess, err := transport.NewAWSSession(cfg.IdentityRegion(), httpClient)
	if err != nil {
		return nil, err
	}
	broker, err := cognitoidentity.New(identitySess, cognitoidentity.Opts{
		IdentityPoolID:  cfg.IdentityPoolID,
		AuthRoleARN:     cfg.AuthRoleARN,
		RoleSessionName: ps.GetWithDefault(profileName, configload.KeyRoleSessionName, ""),
	})
	if err != nil {
		return nil, err
	}

	return attempt.New(cfg, idp, broker, attempt.Opts{
		Observer: attempt.Observers{Metrics, Analytics},
	})
}

// loginCreds returns the stored login for alias, prompting when asked to or
// when nothing is stored.
func loginCreds(opts loginOpts) (cognitocredskeyring.Creds, error) {
	alias := accountAliasOrDefault(opts.AccountAlias)
	if !opts.Prompt {
		creds, err := keyringCredsGet(alias)
		if err == nil {
			return creds, nil
		}
		log.Debugf("no stored login for %s: %s", alias, err)
	}

	username, err := stdPrompter.ask("Username")
	if err != nil {
		return cognitocredskeyring.Creds{}, fmt.Errorf("Failed to prompt for username: %w", err)
	}
	password, err := stdPrompter.askSecret("Password")
	if err != nil {
		return cognitocredskeyring.Creds{}, fmt.Errorf("Failed to prompt for password: %w", err)
	}
	return cognitocredskeyring.Creds{Username: username, Password: password}, nil
}

// loginProfile runs one login for profileName. A failed login is returned as
// *ErrLoginFailed.
func loginProfile(ctx context.Context, profileName string, opts loginOpts) (loginResult, error) {
	ps, err := loadProfile(profileName)
	if err != nil {
		return loginResult{}, err
	}
	cfg, err := ps.AttemptConfig(profileName)
	if err != nil {
		return loginResult{}, err
	}

	a, err := newAttempter(ps, profileName, cfg, opts.Timeout)
	if err != nil {
		return loginResult{}, err
	}

	creds, err := loginCreds(opts)
	if err != nil {
		return loginResult{}, err
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	state := loginstate.New(a)
	state.OnChange = func(s loginstate.Snapshot) {
		if s.Busy {
			fmt.Fprintf(os.Stderr, "Logging in to %s as %s...\n", profileName, creds.Username)
		}
	}
	if _, err := state.Login(ctx, creds.Username, creds.Password); err != nil {
		return loginResult{}, err
	}

	res := loginResult{Profile: profileName, Config: cfg, Outcome: state.Outcome()}
	if !state.IsLoggedIn() {
		return res, &ErrLoginFailed{Profile: profileName, Outcome: res.Outcome}
	}
	return res, nil
}
