// Package cognitoidp runs password logins against a Cognito user pool.
package cognitoidp

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go/service/cognitoidentityprovider/cognitoidentityprovideriface"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	awscognito "github.com/segmentio/aws-cognito/lib"
	"github.com/segmentio/aws-cognito/lib/internal/awserror"
	"github.com/segmentio/aws-cognito/lib/transport"
)

// auth parameter names
const (
	paramUsername   = "USERNAME"
	paramPassword   = "PASSWORD"
	paramSecretHash = "SECRET_HASH"

	// set by the pool on challenges when the login alias differs from the
	// internal user name
	paramUserIDForSRP = "USER_ID_FOR_SRP"
)

type Opts struct {
	// app client secret, only for app clients created with one
	ClientSecret string

	// defaults to time.Now
	Now func() time.Time
}

type Client struct {
	api      cognitoidentityprovideriface.CognitoIdentityProviderAPI
	clientID string
	secret   string
	now      func() time.Time
}

// New returns a Client for the user pool app client clientID.
func New(p client.ConfigProvider, clientID string, opts Opts) (*Client, error) {
	if clientID == "" {
		return nil, errors.New("client id is required")
	}
	return NewWithAPI(cognitoidentityprovider.New(p), clientID, opts), nil
}

// NewWithAPI wraps an existing user pool API client.
func NewWithAPI(api cognitoidentityprovideriface.CognitoIdentityProviderAPI, clientID string, opts Opts) *Client {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Client{
		api:      api,
		clientID: clientID,
		secret:   opts.ClientSecret,
		now:      now,
	}
}

// StartPasswordAuth sends username and password with the USER_PASSWORD_AUTH
// flow. The app client must have ALLOW_USER_PASSWORD_AUTH enabled; otherwise
// Cognito answers InvalidParameterException, which has no sentinel. Errors
// are translated with awserror.Translate.
func (c *Client) StartPasswordAuth(ctx context.Context, username, password string) (*awscognito.AuthResponse, error) {
	params := map[string]*string{
		paramUsername: aws.String(username),
		paramPassword: aws.String(password),
	}
	if c.secret != "" {
		params[paramSecretHash] = aws.String(SecretHash(username, c.clientID, c.secret))
	}

	log.Debugf("initiating auth for %s", username)
	out, err := c.api.InitiateAuthWithContext(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow:       aws.String(cognitoidentityprovider.AuthFlowTypeUserPasswordAuth),
		AuthParameters: params,
		ClientId:       aws.String(c.clientID),
	})
	if err != nil {
		log.Debugf("initiate auth failed: %s", awserror.Describe(err))
		return nil, awserror.Translate(err)
	}
	return c.toResponse(username, out), nil
}

func (c *Client) toResponse(username string, out *cognitoidentityprovider.InitiateAuthOutput) *awscognito.AuthResponse {
	resp := &awscognito.AuthResponse{}
	if out == nil {
		return resp
	}

	if name := aws.StringValue(out.ChallengeName); name != "" {
		ch := &awscognito.Challenge{
			Name:       name,
			Session:    aws.StringValue(out.Session),
			Username:   username,
			Parameters: aws.StringValueMap(out.ChallengeParameters),
		}
		if id := ch.Parameters[paramUserIDForSRP]; id != "" {
			ch.Username = id
		}
		log.Debugf("user pool answered with challenge %s", name)
		resp.Challenge = ch
	}

	if r := out.AuthenticationResult; r != nil {
		resp.Session = &awscognito.Session{
			IDToken:      aws.StringValue(r.IdToken),
			AccessToken:  aws.StringValue(r.AccessToken),
			RefreshToken: aws.StringValue(r.RefreshToken),
			TokenType:    aws.StringValue(r.TokenType),
			ExpiresAt:    c.now().Add(time.Duration(aws.Int64Value(r.ExpiresIn)) * time.Second),
		}
	}
	return resp
}

// UserAgent identifies the network client requests are sent with.
func (c *Client) UserAgent() string {
	return transport.UserAgent()
}

// SecretHash is the keyed digest app clients with a secret must send next to
// the user name.
func SecretHash(username, clientID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(username + clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
