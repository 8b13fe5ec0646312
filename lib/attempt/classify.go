package attempt

import (
	"context"
	"errors"
	"net"
	"strings"

	awscognito "github.com/segmentio/aws-cognito/lib"
	"github.com/segmentio/aws-cognito/lib/outcome"
)

// OfflineMarkers are matched case-insensitively against the failure text. The
// first is what the Windows resolver says; the second is what the Go resolver
// says.
var OfflineMarkers = []string{
	"no such host is known",
	"no such host",
}

type rule struct {
	kind  outcome.Kind
	match func(error) bool
}

// failureRules are evaluated top to bottom; the first match wins.
var failureRules = []rule{
	{outcome.NotAuthorized, is(awscognito.ErrNotAuthorized)},
	{outcome.UserNotFound, is(awscognito.ErrUserNotFound)},
	{outcome.NotConfirmed, is(awscognito.ErrUserNotConfirmed)},
	{outcome.TimedOut, isCancellation},
	{outcome.Offline, isOffline},
}

// Classify maps a login failure to its Kind, GenericError if nothing matches.
func Classify(err error) outcome.Kind {
	return classify(err, outcome.GenericError)
}

// ClassifyExchange maps a credential exchange failure to its Kind. An
// exchange that fails for an unrecognized reason is NotAuthorized, so it
// never reads as a usable login.
func ClassifyExchange(err error) outcome.Kind {
	return classify(err, outcome.NotAuthorized)
}

func classify(err error, fallback outcome.Kind) outcome.Kind {
	for _, r := range failureRules {
		if r.match(err) {
			return r.kind
		}
	}
	return fallback
}

func is(target error) func(error) bool {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

func isCancellation(err error) bool {
	if errors.Is(err, awscognito.ErrCanceled) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isOffline(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range OfflineMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
