package awserror

import (
	"errors"
	"net"
	"testing"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/stretchr/testify/assert"

	awscognito "github.com/segmentio/aws-cognito/lib"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		code     string
		sentinel error
	}{
		{CodeNotAuthorized, awscognito.ErrNotAuthorized},
		{CodeUserNotFound, awscognito.ErrUserNotFound},
		{CodeUserNotConfirmed, awscognito.ErrUserNotConfirmed},
		{CodeUsernameExists, awscognito.ErrUsernameExists},
		{CodeAliasExists, awscognito.ErrEmailExists},
		{CodeInvalidPassword, awscognito.ErrInvalidPassword},
		{request.CanceledErrorCode, awscognito.ErrCanceled},
	}
	for _, c := range cases {
		t.Run(c.code, func(t *testing.T) {
			orig := awserr.New(c.code, "some message", nil)
			err := Translate(orig)
			assert.ErrorIs(t, err, c.sentinel)
			assert.Equal(t, orig.Error(), err.Error())

			var aerr awserr.Error
			if assert.ErrorAs(t, err, &aerr) {
				assert.Equal(t, c.code, aerr.Code())
			}
		})
	}
}

func TestTranslateExposesTransportError(t *testing.T) {
	dnsErr := &net.DNSError{Err: "no such host", Name: "cognito-idp.us-east-1.amazonaws.com", IsNotFound: true}
	orig := awserr.New(request.ErrCodeRequestError, "send request failed", dnsErr)

	err := Translate(orig)
	var got *net.DNSError
	assert.ErrorAs(t, err, &got)
	assert.Contains(t, err.Error(), "no such host")
	assert.NotErrorIs(t, err, awscognito.ErrNotAuthorized)
}

func TestTranslateKeepsSDKError(t *testing.T) {
	orig := awserr.New(request.ErrCodeResponseTimeout, "read timed out", errors.New("i/o timeout"))

	var err error = Translate(orig)
	assert.Equal(t, orig.Error(), err.Error())

	var aerr awserr.Error
	if assert.ErrorAs(t, err, &aerr) {
		assert.Equal(t, request.ErrCodeResponseTimeout, aerr.Code())
		assert.Equal(t, "read timed out", aerr.Message())
		assert.EqualError(t, aerr.OrigErr(), "i/o timeout")
	}
	assert.EqualError(t, errors.Unwrap(err), "i/o timeout")

	coded := Translate(awserr.New(CodeNotAuthorized, "nope", nil))
	assert.ErrorIs(t, coded, awscognito.ErrNotAuthorized)
	if assert.ErrorAs(t, coded, &aerr) {
		assert.Equal(t, CodeNotAuthorized, aerr.Code())
		assert.NoError(t, aerr.OrigErr())
	}
}

func TestTranslatePassesThrough(t *testing.T) {
	assert.NoError(t, Translate(nil))
	plain := errors.New("plain")
	assert.Same(t, plain, Translate(plain))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "code=NotAuthorizedException message=nope", Describe(awserr.New(CodeNotAuthorized, "nope", nil)))
	assert.Equal(t, "plain", Describe(errors.New("plain")))
}
