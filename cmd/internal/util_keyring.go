package cmd

import (
	cognitocredskeyring "github.com/segmentio/aws-cognito/lib/keyrings/cognitocreds"
)

const defaultAccountAlias = "default"

func filePasswordFunc(label string) (string, error) {
	return stdPrompter.askSecret(label)
}

func newKeyring() *cognitocredskeyring.Keyring {
	return &cognitocredskeyring.Keyring{
		BackendType:      FlagKeyringBackend,
		FilePasswordFunc: filePasswordFunc,
	}
}

func keyringCredsPut(accountAlias string, creds cognitocredskeyring.Creds) error {
	return newKeyring().Put(accountAlias, creds)
}

func keyringCredsGet(accountAlias string) (cognitocredskeyring.Creds, error) {
	return newKeyring().Get(accountAlias)
}

func accountAliasOrDefault(alias string) string {
	if alias == "" {
		return defaultAccountAlias
	}
	return alias
}
