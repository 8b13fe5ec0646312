package cognitocredskeyring

import (
	"errors"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGet(t *testing.T) {
	k := NewWithKeyring(keyring.NewArrayKeyring([]keyring.Item{}))

	creds := Creds{Username: "alice", Password: "correctpw"}
	require.NoError(t, k.Put("default", creds))

	got, err := k.Get("default")
	require.NoError(t, err)
	assert.Equal(t, creds, got)

	aliases, err := k.Aliases()
	require.NoError(t, err)
	assert.Equal(t, []string{"default"}, aliases)
}

func TestGetMissing(t *testing.T) {
	k := NewWithKeyring(keyring.NewArrayKeyring([]keyring.Item{}))
	_, err := k.Get("default")
	if assert.Error(t, err) {
		assert.True(t, errors.Is(err, keyring.ErrKeyNotFound))
	}
}

func TestGetCorrupt(t *testing.T) {
	k := NewWithKeyring(keyring.NewArrayKeyring([]keyring.Item{
		{Key: "default", Data: []byte("not json")},
	}))
	_, err := k.Get("default")
	assert.Error(t, err)
}
