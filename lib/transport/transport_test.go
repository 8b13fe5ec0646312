package transport

import (
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClientDefaults(t *testing.T) {
	client, err := NewHTTPClient(nil)
	require.NoError(t, err)
	assert.Equal(t, Timeout, client.Timeout)
	assert.NotNil(t, client.Jar)

	tr, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, Timeout, tr.TLSHandshakeTimeout)
	assert.NotNil(t, tr.Proxy)
}

func TestNewHTTPClientOptions(t *testing.T) {
	supplied := &http.Client{}
	client, err := NewHTTPClient(&Options{HTTPClient: supplied})
	require.NoError(t, err)
	assert.Same(t, supplied, client)

	timeout := 5 * time.Second
	client, err = NewHTTPClient(&Options{HTTPClientTimeout: &timeout})
	require.NoError(t, err)
	assert.Equal(t, timeout, client.Timeout)
}

func TestNewAWSSession(t *testing.T) {
	client := &http.Client{}
	sess, err := NewAWSSession("eu-west-1", client)
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", aws.StringValue(sess.Config.Region))
	assert.Equal(t, 0, aws.IntValue(sess.Config.MaxRetries))
	assert.Same(t, client, sess.Config.HTTPClient)
}

func TestUserAgent(t *testing.T) {
	assert.Contains(t, UserAgent(), aws.SDKName+"/"+aws.SDKVersion)
	assert.Contains(t, UserAgent(), "aws-cognito/")
}
