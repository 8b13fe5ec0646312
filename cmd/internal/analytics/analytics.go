package analytics

import (
	"log"
	"time"

	analytics "github.com/segmentio/analytics-go"

	"github.com/segmentio/aws-cognito/lib/outcome"
)

// Client is a convenience wrapper an analytics-go Client. A zero value
// client will no-op all its methods
type Client struct {
	client analytics.Client

	// global properties
	UserId         string
	KeyringBackend string
	Version        string
}

// New creates a new Client. Global properties should be set on returned Client.
func New(writeKey string) Client {
	cl, _ := analytics.NewWithConfig(writeKey, analytics.Config{
		BatchSize: 1,
	})
	return Client{
		client: cl,
	}
}

const (
	TraitVersion = "aws-cognito-version"

	PropertyVersion        = "aws-cognito-version"
	PropertyKeyringBackend = "backend"

	EventRanCommand     = "Ran Command"
	PropertyCommandName = "command"
	PropertyProfileName = "profile"

	EventLoginAttempt   = "Login Attempt"
	PropertyOutcome     = "outcome"
	PropertyElapsedSecs = "elapsed-seconds"
)

var AllProperties = map[string]struct{}{
	PropertyVersion:        {},
	PropertyKeyringBackend: {},
	PropertyCommandName:    {},
	PropertyProfileName:    {},
}

func (a Client) Identify() {
	if a.client == nil {
		return
	}
	a.client.Enqueue(analytics.Identify{
		UserId: a.UserId,
		Traits: analytics.NewTraits().
			Set(TraitVersion, a.Version),
	})
}

func (a Client) TrackRanCommand(commandName string, extraProps ...[2]string) {
	if a.client == nil {
		return
	}
	props := a.baseProperties().
		Set(PropertyCommandName, commandName)
	for _, p := range extraProps {
		k := p[0]
		v := p[1]

		if _, ok := AllProperties[k]; !ok {
			log.Fatalf("invalid analytics property %s", k)
		}
		props.Set(k, v)
	}
	a.client.Enqueue(analytics.Track{
		UserId:     a.UserId,
		Event:      EventRanCommand,
		Properties: props,
	})
}

// ObserveAttempt reports the outcome kind of a login; never the username.
func (a Client) ObserveAttempt(kind outcome.Kind, elapsed time.Duration) {
	if a.client == nil {
		return
	}
	a.client.Enqueue(analytics.Track{
		UserId: a.UserId,
		Event:  EventLoginAttempt,
		Properties: a.baseProperties().
			Set(PropertyOutcome, kind.String()).
			Set(PropertyElapsedSecs, elapsed.Seconds()),
	})
}

func (a Client) baseProperties() analytics.Properties {
	return analytics.NewProperties().
		Set(PropertyKeyringBackend, a.KeyringBackend).
		Set(PropertyVersion, a.Version)
}

func (a Client) Close() {
	if a.client == nil {
		return
	}
	a.client.Close()
}
