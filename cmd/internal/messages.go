package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/segmentio/aws-cognito/lib/outcome"
)

var outcomeMessages = map[outcome.Kind]string{
	outcome.Unset:                  "No login attempt was made.",
	outcome.Success:                "Logged in.",
	outcome.PasswordChangeRequired: "Your password must be changed before you can log in. Change it in the hosted UI (`aws-cognito open`), then run `add` again.",
	outcome.Registered:             "Registered.",
	outcome.NotAuthorized:          "Incorrect username or password.",
	outcome.GenericError:           "Login failed.",
	outcome.UserNotFound:           "No such user in this user pool.",
	outcome.UsernameTaken:          "That username is already taken.",
	outcome.EmailTaken:             "That email address is already in use.",
	outcome.WeakPassword:           "The password does not meet the pool's requirements.",
	outcome.NotConfirmed:           "Your account has not been confirmed yet.",
	outcome.TimedOut:               "The login timed out.",
	outcome.Offline:                "Could not reach AWS; check your network connection.",
}

// outcomeMessage picks the user-facing text by kind only. The raw cause goes
// to the debug log.
func outcomeMessage(o outcome.Outcome) string {
	if cause := o.CauseDescription(); cause != "" {
		log.Debugf("login failed with %s: %s", o.Kind(), cause)
	}
	msg, ok := outcomeMessages[o.Kind()]
	if !ok {
		msg = o.Kind().String()
	}
	return msg
}

// ErrLoginFailed is returned by commands whose login did not succeed.
type ErrLoginFailed struct {
	Profile string
	Outcome outcome.Outcome
}

func (e *ErrLoginFailed) Error() string {
	return fmt.Sprintf("login to %s failed: %s", e.Profile, outcomeMessage(e.Outcome))
}

// ExitCode is 2 for a pending password change, 1 otherwise.
func (e *ErrLoginFailed) ExitCode() int {
	if e.Outcome.Kind() == outcome.PasswordChangeRequired {
		return 2
	}
	return 1
}
