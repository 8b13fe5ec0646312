package logging

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureFile(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	file := filepath.Join(t.TempDir(), "logs", "aws-cognito.log")
	require.NoError(t, Configure(Opts{Debug: true, File: file}))
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	log.WithField("outcome", "Success").Info("login completed")
	Close()

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), "login completed")
	assert.Contains(t, string(b), "outcome=Success")
}

func TestConfigureStderr(t *testing.T) {
	require.NoError(t, Configure(Opts{}))
	assert.Equal(t, os.Stderr, log.StandardLogger().Out)
}
