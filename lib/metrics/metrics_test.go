package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/aws-cognito/lib/outcome"
)

func TestObserveAttempt(t *testing.T) {
	r := NewRecorder()
	r.ObserveAttempt(outcome.Success, 800*time.Millisecond)
	r.ObserveAttempt(outcome.NotAuthorized, 300*time.Millisecond)
	r.ObserveAttempt(outcome.NotAuthorized, 200*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.AttemptsTotal.WithLabelValues("Success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.AttemptsTotal.WithLabelValues("NotAuthorized")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.AttemptsTotal.WithLabelValues("Offline")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.AttemptDuration))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.ObserveAttempt(outcome.TimedOut, time.Second)

	filename := filepath.Join(t.TempDir(), "aws_cognito.prom")
	require.NoError(t, r.WriteTextfile(filename))

	b, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), `aws_cognito_login_attempts_total{outcome="TimedOut"} 1`))

	err = testutil.GatherAndCompare(r.Gatherer(), strings.NewReader(`
# HELP aws_cognito_login_attempts_total Total number of login attempts by outcome
# TYPE aws_cognito_login_attempts_total counter
aws_cognito_login_attempts_total{outcome="TimedOut"} 1
`), "aws_cognito_login_attempts_total")
	assert.NoError(t, err)
}

func TestWriteTextfileBadPath(t *testing.T) {
	r := NewRecorder()
	err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	assert.Error(t, err)
}
