package attempt

import (
	"fmt"
	"strings"
)

// Config names the user pool, app client and identity pool an Attempter
// logs into. It replaces any compiled-in identifiers.
type Config struct {
	Region         string
	UserPoolID     string
	ClientID       string
	ClientSecret   string
	IdentityPoolID string

	// AuthRoleARN switches credential exchange to the classic flow
	// (GetOpenIdToken + sts:AssumeRoleWithWebIdentity).
	AuthRoleARN string
}

type ErrMissingSetting struct {
	Name string
}

func (e *ErrMissingSetting) Error() string {
	return fmt.Sprintf("%s must be set", e.Name)
}

// Validate checks the settings are present. It does not check them against
// AWS.
func (c Config) Validate() error {
	switch {
	case c.UserPoolID == "":
		return &ErrMissingSetting{Name: "user_pool_id"}
	case c.ClientID == "":
		return &ErrMissingSetting{Name: "client_id"}
	case c.IdentityPoolID == "":
		return &ErrMissingSetting{Name: "identity_pool_id"}
	case c.Region == "" && c.PoolRegion() == "":
		return &ErrMissingSetting{Name: "region"}
	}
	return nil
}

// PoolRegion is the region prefix of the user pool id, e.g. "us-east-1" for
// "us-east-1_Bp9zDy6qR". It falls back to Region.
func (c Config) PoolRegion() string {
	if i := strings.Index(c.UserPoolID, "_"); i > 0 {
		return c.UserPoolID[:i]
	}
	return c.Region
}

// ProviderKey is the login provider name the identity pool knows the user
// pool by.
func (c Config) ProviderKey() string {
	return "cognito-idp." + c.PoolRegion() + ".amazonaws.com/" + c.UserPoolID
}

// IdentityRegion is the region prefix of the identity pool id, e.g.
// "us-east-1" for "us-east-1:0f5c...". It falls back to PoolRegion.
func (c Config) IdentityRegion() string {
	if i := strings.Index(c.IdentityPoolID, ":"); i > 0 {
		return c.IdentityPoolID[:i]
	}
	return c.PoolRegion()
}
