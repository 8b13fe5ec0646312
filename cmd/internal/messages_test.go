package cmd

import (
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	awscognito "github.com/segmentio/aws-cognito/lib"
	"github.com/segmentio/aws-cognito/lib/outcome"
)

func TestEveryKindHasAMessage(t *testing.T) {
	for _, k := range outcome.Kinds() {
		_, ok := outcomeMessages[k]
		assert.True(t, ok, "no message for %s", k)
	}
}

func TestErrLoginFailed(t *testing.T) {
	defer log.SetLevel(log.GetLevel())
	log.SetLevel(log.DebugLevel)
	hook := test.NewGlobal()
	defer hook.Reset()

	err := &ErrLoginFailed{
		Profile: "dev",
		Outcome: outcome.Failed(outcome.GenericError, "alice", errors.New("InternalErrorException: boom"), ""),
	}
	assert.Equal(t, "login to dev failed: Login failed.", err.Error())
	assert.NotContains(t, err.Error(), "boom")
	assert.Equal(t, 1, err.ExitCode())

	if assert.NotNil(t, hook.LastEntry()) {
		assert.Equal(t, log.DebugLevel, hook.LastEntry().Level)
		assert.Contains(t, hook.LastEntry().Message, "InternalErrorException: boom")
	}

	err = &ErrLoginFailed{
		Profile: "dev",
		Outcome: outcome.ChallengeRequired(awscognito.Challenge{Name: awscognito.ChallengeNewPasswordRequired}),
	}
	assert.Equal(t, 2, err.ExitCode())

	var ec exitCoder
	assert.True(t, errors.As(error(err), &ec))
}
