// translates aws-sdk-go errors into the failure sentinels of package awscognito
package awserror

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"

	awscognito "github.com/segmentio/aws-cognito/lib"
)

// Error codes shared by the user pool and identity pool APIs.
const (
	CodeNotAuthorized    = "NotAuthorizedException"
	CodeUserNotFound     = "UserNotFoundException"
	CodeUserNotConfirmed = "UserNotConfirmedException"
	CodeUsernameExists   = "UsernameExistsException"
	CodeAliasExists      = "AliasExistsException"
	CodeInvalidPassword  = "InvalidPasswordException"
)

var sentinels = map[string]error{
	CodeNotAuthorized:         awscognito.ErrNotAuthorized,
	CodeUserNotFound:          awscognito.ErrUserNotFound,
	CodeUserNotConfirmed:      awscognito.ErrUserNotConfirmed,
	CodeUsernameExists:        awscognito.ErrUsernameExists,
	CodeAliasExists:           awscognito.ErrEmailExists,
	CodeInvalidPassword:       awscognito.ErrInvalidPassword,
	request.CanceledErrorCode: awscognito.ErrCanceled,
}

// sdkError exposes the transport error under an SDK error to errors.As.
type sdkError struct {
	aerr awserr.Error
}

func (e sdkError) Error() string   { return e.aerr.Error() }
func (e sdkError) Code() string    { return e.aerr.Code() }
func (e sdkError) Message() string { return e.aerr.Message() }
func (e sdkError) OrigErr() error  { return e.aerr.OrigErr() }

func (e sdkError) Unwrap() error {
	return e.aerr.OrigErr()
}

// Translate returns err joined with the sentinel for its SDK error code, if
// there is one. The result's Error() text is the SDK text unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return err
	}
	wrapped := sdkError{aerr: aerr}
	if sentinel, ok := sentinels[aerr.Code()]; ok {
		return &codedError{sentinel: sentinel, err: wrapped}
	}
	return wrapped
}

type codedError struct {
	sentinel error
	err      error
}

func (e *codedError) Error() string {
	return e.err.Error()
}

func (e *codedError) Unwrap() []error {
	return []error{e.sentinel, e.err}
}

// Describe formats an SDK error for debug logs.
func Describe(err error) string {
	var aerr awserr.Error
	if errors.As(err, &aerr) {
		return fmt.Sprintf("code=%s message=%s", aerr.Code(), aerr.Message())
	}
	return err.Error()
}
