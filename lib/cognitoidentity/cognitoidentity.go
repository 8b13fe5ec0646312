// Package cognitoidentity trades user pool identity tokens for temporary AWS
// credentials through a Cognito identity pool.
package cognitoidentity

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/cognitoidentity"
	"github.com/aws/aws-sdk-go/service/cognitoidentity/cognitoidentityiface"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/aws/aws-sdk-go/service/sts/stsiface"
	"github.com/pkg/errors"

	awscognito "github.com/segmentio/aws-cognito/lib"
	"github.com/segmentio/aws-cognito/lib/internal/awserror"
)

var errNoCredentials = errors.Wrap(awscognito.ErrNotAuthorized, "no credentials in response")

type Broker struct {
	identity cognitoidentityiface.CognitoIdentityAPI
	sts      stsiface.STSAPI

	// Opts must have had ApplyDefaults and Validate called
	opts Opts
}

// New returns a Broker whose clients use p.
func New(p client.ConfigProvider, opts Opts) (*Broker, error) {
	return NewWithAPI(cognitoidentity.New(p), sts.New(p), opts)
}

func NewWithAPI(identity cognitoidentityiface.CognitoIdentityAPI, stsAPI stsiface.STSAPI, opts Opts) (*Broker, error) {
	opts.ApplyDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validating opts: %w", err)
	}
	return &Broker{
		identity: identity,
		sts:      stsAPI,
		opts:     opts,
	}, nil
}

// ExchangeToken resolves the identity idToken belongs to in the pool, then
// gets credentials for it. providerKey names the user pool that issued the
// token.
func (b *Broker) ExchangeToken(ctx context.Context, providerKey, idToken string) (awscognito.AWSCreds, error) {
	logins := map[string]*string{providerKey: aws.String(idToken)}

	b.opts.Log.Debugf("getting identity id from %s", b.opts.IdentityPoolID)
	idOut, err := b.identity.GetIdWithContext(ctx, &cognitoidentity.GetIdInput{
		IdentityPoolId: aws.String(b.opts.IdentityPoolID),
		Logins:         logins,
	})
	if err != nil {
		return awscognito.AWSCreds{}, errors.Wrap(awserror.Translate(err), "getting identity id")
	}
	identityID := aws.StringValue(idOut.IdentityId)

	if b.opts.AuthRoleARN != "" {
		return b.assumeRole(ctx, identityID, logins)
	}
	return b.credentialsForIdentity(ctx, identityID, logins)
}

// enhanced flow: the identity pool picks the role
func (b *Broker) credentialsForIdentity(ctx context.Context, identityID string, logins map[string]*string) (awscognito.AWSCreds, error) {
	b.opts.Log.Debugf("getting credentials for identity %s", identityID)
	out, err := b.identity.GetCredentialsForIdentityWithContext(ctx, &cognitoidentity.GetCredentialsForIdentityInput{
		IdentityId: aws.String(identityID),
		Logins:     logins,
	})
	if err != nil {
		return awscognito.AWSCreds{}, errors.Wrap(awserror.Translate(err), "getting credentials for identity")
	}
	c := out.Credentials
	if c == nil || c.AccessKeyId == nil {
		return awscognito.AWSCreds{}, errNoCredentials
	}
	return awscognito.AWSCreds{
		AWSCredsMeta: awscognito.AWSCredsMeta{
			ExpiresAt:  aws.TimeValue(c.Expiration),
			IdentityID: identityID,
		},
		AccessKeyID:     aws.StringValue(c.AccessKeyId),
		SecretAccessKey: aws.StringValue(c.SecretKey),
		SessionToken:    aws.StringValue(c.SessionToken),
	}, nil
}

// basic flow: an OpenID token from the pool is presented to sts
func (b *Broker) assumeRole(ctx context.Context, identityID string, logins map[string]*string) (awscognito.AWSCreds, error) {
	b.opts.Log.Debugf("getting open id token for identity %s", identityID)
	tokOut, err := b.identity.GetOpenIdTokenWithContext(ctx, &cognitoidentity.GetOpenIdTokenInput{
		IdentityId: aws.String(identityID),
		Logins:     logins,
	})
	if err != nil {
		return awscognito.AWSCreds{}, errors.Wrap(awserror.Translate(err), "getting open id token")
	}

	b.opts.Log.Debugf("assuming role %s", b.opts.AuthRoleARN)
	out, err := b.sts.AssumeRoleWithWebIdentityWithContext(ctx, &sts.AssumeRoleWithWebIdentityInput{
		RoleArn:          aws.String(b.opts.AuthRoleARN),
		RoleSessionName:  aws.String(b.opts.RoleSessionName),
		WebIdentityToken: tokOut.Token,
		DurationSeconds:  aws.Int64(int64(b.opts.SessionDuration.Seconds())),
	})
	if err != nil {
		return awscognito.AWSCreds{}, errors.Wrap(awserror.Translate(err), "assuming role with web identity")
	}
	c := out.Credentials
	if c == nil || c.AccessKeyId == nil {
		return awscognito.AWSCreds{}, errNoCredentials
	}
	return awscognito.AWSCreds{
		AWSCredsMeta: awscognito.AWSCredsMeta{
			ExpiresAt:  aws.TimeValue(c.Expiration),
			IdentityID: identityID,
			RoleARN:    b.opts.AuthRoleARN,
		},
		AccessKeyID:     aws.StringValue(c.AccessKeyId),
		SecretAccessKey: aws.StringValue(c.SecretAccessKey),
		SessionToken:    aws.StringValue(c.SessionToken),
	}, nil
}
