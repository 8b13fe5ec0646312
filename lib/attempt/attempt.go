// Package attempt logs a user into a Cognito user pool and trades the
// resulting session for temporary AWS credentials, reporting the result as an
// outcome.Outcome instead of an error.
package attempt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	awscognito "github.com/segmentio/aws-cognito/lib"
	"github.com/segmentio/aws-cognito/lib/outcome"
)

// IdentityProvider runs the password login against the user pool.
type IdentityProvider interface {
	StartPasswordAuth(ctx context.Context, username, password string) (*awscognito.AuthResponse, error)
}

// TrustBroker trades an identity token for short-lived AWS credentials.
type TrustBroker interface {
	ExchangeToken(ctx context.Context, providerKey, idToken string) (awscognito.AWSCreds, error)
}

// identifiedClient is implemented by identity providers that can name the
// network client they send requests with.
type identifiedClient interface {
	UserAgent() string
}

// Observer receives one call per finished attempt.
type Observer interface {
	ObserveAttempt(kind outcome.Kind, elapsed time.Duration)
}

type Observers []Observer

func (obs Observers) ObserveAttempt(kind outcome.Kind, elapsed time.Duration) {
	for _, o := range obs {
		o.ObserveAttempt(kind, elapsed)
	}
}

type Opts struct {
	Log *logrus.Logger

	// if unset, attempts are only logged
	Observer Observer

	// Now is used for session validity checks and elapsed time.
	Now func() time.Time
}

func (o *Opts) ApplyDefaults() *Opts {
	if o.Log == nil {
		o.Log = logrus.StandardLogger()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Observer == nil {
		o.Observer = Observers(nil)
	}
	return o
}

type Attempter struct {
	cfg    Config
	idp    IdentityProvider
	broker TrustBroker
	opts   Opts
}

func New(cfg Config, idp IdentityProvider, broker TrustBroker, opts Opts) (*Attempter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	if idp == nil || broker == nil {
		return nil, fmt.Errorf("identity provider and trust broker are required")
	}
	opts.ApplyDefaults()
	return &Attempter{
		cfg:    cfg,
		idp:    idp,
		broker: broker,
		opts:   opts,
	}, nil
}

// Attempt logs username in once and classifies what happened. The bool is
// true iff the outcome is Success. Cancelling ctx during either network call
// yields TimedOut. No retries are made.
func (a *Attempter) Attempt(ctx context.Context, username, password string) (outcome.Outcome, bool) {
	start := a.opts.Now()
	lctx := a.opts.Log.WithFields(logrus.Fields{
		"attempt":  uuid.NewString(),
		"username": username,
	})

	lctx.Debug("starting password auth")
	resp, err := a.idp.StartPasswordAuth(ctx, username, password)

	var o outcome.Outcome
	switch {
	case err != nil:
		o = outcome.Failed(Classify(err), username, err, a.clientIdentifier())
	case resp.IsNewPasswordRequired():
		o = outcome.ChallengeRequired(*resp.Challenge)
	default:
		var session *awscognito.Session
		if resp != nil {
			session = resp.Session
		}
		lctx.Debugf("getting credentials (%.1fs elapsed)", a.opts.Now().Sub(start).Seconds())
		creds, err := a.ExchangeForCredentials(ctx, session)
		if err != nil {
			o = outcome.Failed(ClassifyExchange(err), username, err, a.clientIdentifier())
		} else {
			o = outcome.Succeeded(session.ExpiresAt, creds)
		}
	}

	elapsed := a.opts.Now().Sub(start)
	lctx = lctx.WithFields(logrus.Fields{
		"outcome": o.Kind().String(),
		"elapsed": elapsed.Round(time.Millisecond).String(),
	})
	if o.Succeeded() {
		lctx.Infof("login completed after %.1fs", elapsed.Seconds())
	} else {
		lctx.WithField("cause", o.CauseDescription()).Infof("login failed after %.1fs", elapsed.Seconds())
	}
	a.opts.Observer.ObserveAttempt(o.Kind(), elapsed)

	return o, o.Succeeded()
}

// ExchangeForCredentials presents the session's identity token to the trust
// broker. A missing or expired session fails with awscognito.ErrSessionInvalid
// without a network call.
func (a *Attempter) ExchangeForCredentials(ctx context.Context, session *awscognito.Session) (awscognito.AWSCreds, error) {
	if !session.Valid(a.opts.Now()) {
		return awscognito.AWSCreds{}, awscognito.ErrSessionInvalid
	}
	creds, err := a.broker.ExchangeToken(ctx, a.cfg.ProviderKey(), session.IDToken)
	if err != nil {
		return awscognito.AWSCreds{}, fmt.Errorf("exchanging identity token: %w", err)
	}
	return creds, nil
}

// Config returns the configuration the Attempter was built with.
func (a *Attempter) Config() Config {
	return a.cfg
}

func (a *Attempter) clientIdentifier() string {
	if c, ok := a.idp.(identifiedClient); ok {
		return c.UserAgent()
	}
	return ""
}
