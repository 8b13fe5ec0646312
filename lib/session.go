// shared types passed between the identity provider, the trust broker and
// the attempt core
package awscognito

import "time"

// Challenge names understood by the attempt core. Anything else is carried
// through untouched.
const (
	ChallengeNewPasswordRequired = "NEW_PASSWORD_REQUIRED"
)

// Session is the token set issued by the user pool after a password login.
type Session struct {
	IDToken      string
	AccessToken  string
	RefreshToken string
	TokenType    string

	// absolute time the tokens stop being accepted
	ExpiresAt time.Time
}

// Valid reports whether s holds a usable token pair at now. A nil session is
// never valid.
func (s *Session) Valid(now time.Time) bool {
	if s == nil {
		return false
	}
	if s.IDToken == "" || s.AccessToken == "" {
		return false
	}
	return s.ExpiresAt.After(now)
}

// Challenge is an intermediate auth state the user pool wants answered before
// it grants a session. Session is opaque and must be handed back verbatim to
// RespondToAuthChallenge.
type Challenge struct {
	Name       string
	Session    string
	Username   string
	Parameters map[string]string
}

// AuthResponse is what a password login produced: either a challenge or a
// session. Both may be nil for challenges the caller does not understand.
type AuthResponse struct {
	Challenge *Challenge
	Session   *Session
}

// IsNewPasswordRequired reports whether the response is the forced password
// change challenge.
func (r *AuthResponse) IsNewPasswordRequired() bool {
	return r != nil && r.Challenge != nil && r.Challenge.Name == ChallengeNewPasswordRequired
}
