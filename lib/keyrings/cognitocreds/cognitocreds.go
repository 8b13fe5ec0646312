// Package cognitocredskeyring stores user pool logins in the OS keyring.
package cognitocredskeyring

import (
	"encoding/json"
	"fmt"

	"github.com/99designs/keyring"
	log "github.com/sirupsen/logrus"
)

// changing any of these will break keyring compatibility
const (
	keyringServiceName             = "aws-cognito"
	keyringLibSecretCollectionName = "aws-cognito"

	keyringFileDir = "~/.aws-cognito/"
)

type Creds struct {
	Username string
	Password string
}

type Keyring struct {
	BackendType      string
	FilePasswordFunc func(prompt string) (string, error)

	keyring keyring.Keyring
}

// NewWithKeyring wraps an already open keyring.
func NewWithKeyring(kr keyring.Keyring) *Keyring {
	return &Keyring{keyring: kr}
}

// After Open, BackendType, FilePasswordFunc must not be changed.
func (k *Keyring) Open() error {
	var allowedBackends []keyring.BackendType
	if k.BackendType != "" {
		allowedBackends = append(allowedBackends, keyring.BackendType(k.BackendType))
	}

	kr, err := keyring.Open(keyring.Config{
		AllowedBackends:          allowedBackends,
		KeychainTrustApplication: true,
		ServiceName:              keyringServiceName,
		LibSecretCollectionName:  keyringLibSecretCollectionName,
		FileDir:                  keyringFileDir,
		FilePasswordFunc:         k.FilePasswordFunc,
	})
	if err != nil {
		return err
	}
	k.keyring = kr
	return nil
}

// Put will Open if not open already
func (k *Keyring) Put(accountAlias string, creds Creds) error {
	log.Tracef("keyring %s putting creds for %s", accountAlias, creds.Username)
	if k.keyring == nil {
		if err := k.Open(); err != nil {
			return fmt.Errorf("opening keyring: %w", err)
		}
	}
	encoded, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshalling creds: %w", err)
	}

	item := keyring.Item{
		Key:                         accountAlias,
		Data:                        encoded,
		Label:                       fmt.Sprintf("Cognito credentials (%s)", accountAlias),
		KeychainNotTrustApplication: false,
	}
	return k.keyring.Set(item)
}

func (k *Keyring) Get(accountAlias string) (Creds, error) {
	log.Tracef("keyring %s getting creds", accountAlias)
	if k.keyring == nil {
		if err := k.Open(); err != nil {
			return Creds{}, fmt.Errorf("opening keyring: %w", err)
		}
	}

	item, err := k.keyring.Get(accountAlias)
	if err != nil {
		return Creds{}, fmt.Errorf("getting %s from keyring: %w", accountAlias, err)
	}

	var creds Creds
	if err = json.Unmarshal(item.Data, &creds); err != nil {
		return creds, fmt.Errorf("unmarshalling cognito creds: %w", err)
	}

	log.Tracef("keyring %s got creds for %s", accountAlias, creds.Username)
	return creds, nil
}

// Aliases lists the account aliases with stored credentials.
func (k *Keyring) Aliases() ([]string, error) {
	if k.keyring == nil {
		if err := k.Open(); err != nil {
			return nil, fmt.Errorf("opening keyring: %w", err)
		}
	}
	return k.keyring.Keys()
}
