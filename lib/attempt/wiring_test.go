package attempt_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gock "gopkg.in/h2non/gock.v1"

	"github.com/segmentio/aws-cognito/lib/attempt"
	"github.com/segmentio/aws-cognito/lib/cognitoidentity"
	"github.com/segmentio/aws-cognito/lib/cognitoidp"
	"github.com/segmentio/aws-cognito/lib/metrics"
	"github.com/segmentio/aws-cognito/lib/outcome"
	"github.com/segmentio/aws-cognito/lib/transport"
)

const (
	userPoolEndpoint = "https://cognito-idp.us-east-1.amazonaws.com"
	identityEndpoint = "https://cognito-identity.us-east-1.amazonaws.com"
)

var wiringNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newWiredAttempter(t *testing.T, rec *metrics.Recorder) *attempt.Attempter {
	httpClient := &http.Client{}
	gock.InterceptClient(httpClient)
	sess, err := transport.NewAWSSession("us-east-1", httpClient)
	require.NoError(t, err)

	cfg := attempt.Config{
		UserPoolID:     "us-east-1_AbCdEfGhI",
		ClientID:       "7ak8n2qvkd1kq6u3v4fe2vbd7p",
		IdentityPoolID: "us-east-1:5f2e6a1b-9c3d-4e7f-8a0b-1c2d3e4f5a6b",
	}
	now := func() time.Time { return wiringNow }
	idp, err := cognitoidp.New(sess, cfg.ClientID, cognitoidp.Opts{Now: now})
	require.NoError(t, err)

	logger, _ := test.NewNullLogger()
	broker, err := cognitoidentity.New(sess, cognitoidentity.Opts{
		IdentityPoolID: cfg.IdentityPoolID,
		Log:            logger,
	})
	require.NoError(t, err)

	a, err := attempt.New(cfg, idp, broker, attempt.Opts{Log: logger, Now: now, Observer: rec})
	require.NoError(t, err)
	return a
}

func TestWiredAttempt(t *testing.T) {
	defer gock.Off()

	rec := metrics.NewRecorder()
	a := newWiredAttempter(t, rec)

	t.Run("success", func(t *testing.T) {
		gock.New(userPoolEndpoint).
			Post("/").
			MatchHeader("X-Amz-Target", "AWSCognitoIdentityProviderService.InitiateAuth").
			Reply(200).
			JSON(map[string]interface{}{
				"AuthenticationResult": map[string]interface{}{
					"AccessToken": "access-token",
					"IdToken":     "id-token",
					"ExpiresIn":   3600,
				},
			})
		gock.New(identityEndpoint).
			Post("/").
			MatchHeader("X-Amz-Target", "AWSCognitoIdentityService.GetId").
			Reply(200).
			JSON(map[string]string{"IdentityId": "us-east-1:identity"})
		gock.New(identityEndpoint).
			Post("/").
			MatchHeader("X-Amz-Target", "AWSCognitoIdentityService.GetCredentialsForIdentity").
			Reply(200).
			JSON(map[string]interface{}{
				"IdentityId": "us-east-1:identity",
				"Credentials": map[string]interface{}{
					"AccessKeyId":  "ASIAEXAMPLE",
					"SecretKey":    "secret",
					"SessionToken": "token",
					"Expiration":   wiringNow.Add(time.Hour).Unix(),
				},
			})

		o, ok := a.Attempt(context.Background(), "alice", "correctpw")
		require.True(t, ok, o.String())
		expiry, _ := o.SessionExpiry()
		assert.Equal(t, wiringNow.Add(time.Hour), expiry)
		creds, _ := o.Credentials()
		assert.Equal(t, "ASIAEXAMPLE", creds.AccessKeyID)
		assert.Equal(t, "us-east-1:identity", creds.IdentityID)
	})

	t.Run("wrong password", func(t *testing.T) {
		gock.New(userPoolEndpoint).
			Post("/").
			Reply(400).
			JSON(map[string]string{"__type": "NotAuthorizedException", "message": "Incorrect username or password."})

		o, ok := a.Attempt(context.Background(), "alice", "wrongpw")
		assert.False(t, ok)
		assert.Equal(t, outcome.NotAuthorized, o.Kind())
		assert.Equal(t, "alice", o.Username())
		assert.Contains(t, o.CauseDescription(), "Incorrect username or password.")
		assert.Contains(t, o.ClientIdentifier(), "aws-sdk-go")
	})

	t.Run("unknown user", func(t *testing.T) {
		gock.New(userPoolEndpoint).
			Post("/").
			Reply(400).
			JSON(map[string]string{"__type": "UserNotFoundException", "message": "User does not exist."})

		o, _ := a.Attempt(context.Background(), "ghost", "pw")
		assert.Equal(t, outcome.UserNotFound, o.Kind())
	})

	t.Run("password flow disabled on app client", func(t *testing.T) {
		gock.New(userPoolEndpoint).
			Post("/").
			Reply(400).
			JSON(map[string]string{
				"__type":  "InvalidParameterException",
				"message": "USER_PASSWORD_AUTH flow not enabled for this client",
			})

		o, ok := a.Attempt(context.Background(), "alice", "correctpw")
		assert.False(t, ok)
		assert.Equal(t, outcome.GenericError, o.Kind())
		assert.Contains(t, o.CauseDescription(), "USER_PASSWORD_AUTH flow not enabled")
	})

	t.Run("unresolvable host", func(t *testing.T) {
		gock.New(userPoolEndpoint).
			Post("/").
			ReplyError(&net.DNSError{Err: "no such host", Name: "cognito-idp.us-east-1.amazonaws.com", IsNotFound: true})

		o, _ := a.Attempt(context.Background(), "alice", "correctpw")
		assert.Equal(t, outcome.Offline, o.Kind())
	})

	t.Run("deadline passes while waiting on the user pool", func(t *testing.T) {
		gock.New(userPoolEndpoint).
			Post("/").
			Reply(200).
			Delay(2 * time.Second).
			JSON(map[string]interface{}{})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		o, ok := a.Attempt(ctx, "alice", "correctpw")
		assert.False(t, ok)
		assert.Equal(t, outcome.TimedOut, o.Kind())
		assert.Equal(t, "alice", o.Username())
		assert.Contains(t, o.CauseDescription(), "RequestCanceled")
	})

	t.Run("token rejected by identity pool", func(t *testing.T) {
		gock.New(userPoolEndpoint).
			Post("/").
			Reply(200).
			JSON(map[string]interface{}{
				"AuthenticationResult": map[string]interface{}{
					"AccessToken": "access-token",
					"IdToken":     "id-token",
					"ExpiresIn":   3600,
				},
			})
		gock.New(identityEndpoint).
			Post("/").
			Reply(400).
			JSON(map[string]string{"__type": "ResourceNotFoundException", "message": "IdentityPool not found"})

		o, ok := a.Attempt(context.Background(), "alice", "correctpw")
		assert.False(t, ok)
		assert.Equal(t, outcome.NotAuthorized, o.Kind())
	})

	assert.True(t, gock.IsDone())
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.AttemptsTotal.WithLabelValues("Success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.AttemptsTotal.WithLabelValues("NotAuthorized")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.AttemptsTotal.WithLabelValues("Offline")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.AttemptsTotal.WithLabelValues("TimedOut")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.AttemptsTotal.WithLabelValues("GenericError")))
}
