package awscognito

import (
	"time"

	"github.com/aws/aws-sdk-go/aws/credentials"
)

// ProviderName is reported as credentials.Value.ProviderName.
const ProviderName = "cognito"

type AWSCredsMeta struct {
	ExpiresAt time.Time

	// the Cognito identity the credentials were issued to
	IdentityID string

	// may be blank when the enhanced flow picked the role
	RoleARN string
}

// a copy/extension of https://docs.aws.amazon.com/sdk-for-go/api/aws/credentials/#Value
type AWSCreds struct {
	AWSCredsMeta

	AccessKeyID string

	SecretAccessKey string

	SessionToken string
}

// Value converts to the SDK credentials representation.
func (c AWSCreds) Value() credentials.Value {
	return credentials.Value{
		AccessKeyID:     c.AccessKeyID,
		SecretAccessKey: c.SecretAccessKey,
		SessionToken:    c.SessionToken,
		ProviderName:    ProviderName,
	}
}

// Expired reports whether the lease is over at now.
func (c AWSCreds) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}
