package cognitoidentity

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	MaxSessionDuration = time.Hour * 12
	MinSessionDuration = time.Minute * 15

	DefaultSessionDuration = time.Hour

	DefaultRoleSessionName = "aws-cognito"
)

type Opts struct {
	IdentityPoolID string

	// when set, credentials come from sts AssumeRoleWithWebIdentity on this
	// role (basic flow) instead of the identity pool's role mapping
	AuthRoleARN string

	// only used by the basic flow
	SessionDuration time.Duration
	RoleSessionName string

	Log *logrus.Logger
}

func (o *Opts) ApplyDefaults() *Opts {
	if o.SessionDuration == 0 {
		o.SessionDuration = DefaultSessionDuration
	}
	if o.RoleSessionName == "" {
		o.RoleSessionName = DefaultRoleSessionName
	}
	if o.Log == nil {
		o.Log = logrus.StandardLogger()
	}
	return o
}

type ErrSessionDurationOOB struct {
	Min    time.Duration
	Max    time.Duration
	Actual time.Duration
}

func (e *ErrSessionDurationOOB) Error() string {
	if e.Actual < e.Min {
		return fmt.Sprintf("actual SessionDuration %s < minimum %s", e.Actual, e.Min)
	}
	return fmt.Sprintf("actual SessionDuration %s > maximum %s", e.Actual, e.Max)
}

func (o *Opts) Validate() error {
	if o.IdentityPoolID == "" {
		return fmt.Errorf("identity pool id is required")
	}
	if o.SessionDuration < MinSessionDuration || o.SessionDuration > MaxSessionDuration {
		return &ErrSessionDurationOOB{
			Min:    MinSessionDuration,
			Max:    MaxSessionDuration,
			Actual: o.SessionDuration,
		}
	}
	return nil
}
