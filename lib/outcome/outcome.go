// Package outcome holds the classified, write-once result of a login attempt.
//
// An Outcome can only be built through the constructors in this package, which
// keep the payload consistent with the kind:
//
//   - SessionExpiry and Credentials are set only for Success.
//   - PendingChallenge is set only for PasswordChangeRequired.
//   - Username, CauseDescription and ClientIdentifier are set only for failures.
package outcome

import (
	"time"

	awscognito "github.com/segmentio/aws-cognito/lib"
)

type Outcome struct {
	kind Kind

	username         string
	cause            error
	clientIdentifier string

	sessionExpiry time.Time
	credentials   *awscognito.AWSCreds
	challenge     *awscognito.Challenge
}

// Succeeded is the outcome of a login whose credential exchange went through.
// expiry is the identity provider session expiry, not the credential lease.
func Succeeded(expiry time.Time, creds awscognito.AWSCreds) Outcome {
	return Outcome{
		kind:          Success,
		sessionExpiry: expiry,
		credentials:   &creds,
	}
}

// ChallengeRequired is the outcome of a login that ended in a forced password
// change.
func ChallengeRequired(challenge awscognito.Challenge) Outcome {
	challenge.Parameters = copyParams(challenge.Parameters)
	return Outcome{
		kind:      PasswordChangeRequired,
		challenge: &challenge,
	}
}

// Failed is the outcome of a login that did not get through. A kind that is
// not a failure kind is recorded as GenericError.
func Failed(kind Kind, username string, cause error, clientIdentifier string) Outcome {
	if !kind.IsFailure() {
		kind = GenericError
	}
	return Outcome{
		kind:             kind,
		username:         username,
		cause:            cause,
		clientIdentifier: clientIdentifier,
	}
}

func (o Outcome) Kind() Kind {
	return o.kind
}

// Succeeded is shorthand for Kind() == Success.
func (o Outcome) Succeeded() bool {
	return o.kind == Success
}

func (o Outcome) Username() string {
	return o.username
}

// CauseDescription is the raw failure text. It is diagnostic only and not
// meant for end users.
func (o Outcome) CauseDescription() string {
	if o.cause == nil {
		return ""
	}
	return o.cause.Error()
}

func (o Outcome) Cause() error {
	return o.cause
}

// ClientIdentifier names the network client that handled the attempt.
func (o Outcome) ClientIdentifier() string {
	return o.clientIdentifier
}

func (o Outcome) SessionExpiry() (time.Time, bool) {
	if o.kind != Success {
		return time.Time{}, false
	}
	return o.sessionExpiry, true
}

func (o Outcome) Credentials() (awscognito.AWSCreds, bool) {
	if o.credentials == nil {
		return awscognito.AWSCreds{}, false
	}
	return *o.credentials, true
}

// PendingChallenge returns a copy of the challenge to thread into the follow
// up call.
func (o Outcome) PendingChallenge() (awscognito.Challenge, bool) {
	if o.challenge == nil {
		return awscognito.Challenge{}, false
	}
	c := *o.challenge
	c.Parameters = copyParams(c.Parameters)
	return c, true
}

func (o Outcome) String() string {
	if o.username == "" {
		return o.kind.String()
	}
	return o.kind.String() + " (" + o.username + ")"
}

func copyParams(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
