package outcome

import "fmt"

// Kind classifies the result of one login attempt.
type Kind int

const (
	Unset Kind = iota
	Success
	PasswordChangeRequired
	// Registered, UsernameTaken, EmailTaken and WeakPassword belong to the
	// sign-up flow and are never produced by a password login.
	Registered
	NotAuthorized
	GenericError
	UserNotFound
	UsernameTaken
	EmailTaken
	WeakPassword
	NotConfirmed
	TimedOut
	Offline
)

var kindNames = [...]string{
	Unset:                  "Unset",
	Success:                "Success",
	PasswordChangeRequired: "PasswordChangeRequired",
	Registered:             "Registered",
	NotAuthorized:          "NotAuthorized",
	GenericError:           "GenericError",
	UserNotFound:           "UserNotFound",
	UsernameTaken:          "UsernameTaken",
	EmailTaken:             "EmailTaken",
	WeakPassword:           "WeakPassword",
	NotConfirmed:           "NotConfirmed",
	TimedOut:               "TimedOut",
	Offline:                "Offline",
}

// Kinds lists every defined Kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		ks = append(ks, Kind(k))
	}
	return ks
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= Unset && int(k) < len(kindNames)
}

// IsFailure reports whether k is produced by a failed attempt and therefore
// carries a username and cause.
func (k Kind) IsFailure() bool {
	switch k {
	case NotAuthorized, GenericError, UserNotFound, UsernameTaken, EmailTaken,
		WeakPassword, NotConfirmed, TimedOut, Offline:
		return true
	}
	return false
}

// MarshalText lets a Kind be used as a JSON value or log field.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid outcome kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown outcome kind %q", string(b))
}
