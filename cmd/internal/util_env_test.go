package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	awscognito "github.com/segmentio/aws-cognito/lib"
)

func TestKvEnvLoadFromEnviron(t *testing.T) {
	e := kvEnv{}
	e.LoadFromEnviron("HOME=/home/alice", "BROKEN", "EQ=a=b")
	assert.Equal(t, kvEnv{"HOME": "/home/alice", "EQ": "a=b"}, e)
	assert.Equal(t, []string{"EQ=a=b", "HOME=/home/alice"}, e.Environ())
}

func TestKvEnvAddCredsAndInfo(t *testing.T) {
	expiry := time.Date(2026, 10, 19, 13, 0, 0, 0, time.UTC)
	e := kvEnv{}
	e.AddCreds(awscognito.AWSCreds{
		AccessKeyID:     "ASIAEXAMPLE",
		SecretAccessKey: "secret",
		SessionToken:    "token",
	})
	e.AddInfo(infoEnvs{
		Region:      "us-east-1",
		ProfileName: "dev",
		IdentityID:  "us-east-1:abc",
		RoleARN:     "arn:aws:iam::123456789012:role/path/ops",
		ExpiresAt:   expiry,
	})

	assert.Equal(t, kvEnv{
		"AWS_ACCESS_KEY_ID":              "ASIAEXAMPLE",
		"AWS_SECRET_ACCESS_KEY":          "secret",
		"AWS_SESSION_TOKEN":              "token",
		"AWS_SECURITY_TOKEN":             "token",
		"AWS_REGION":                     "us-east-1",
		"AWS_DEFAULT_REGION":             "us-east-1",
		"AWS_COGNITO_PROFILE":            "dev",
		"AWS_COGNITO_IDENTITY_ID":        "us-east-1:abc",
		"AWS_COGNITO_ROLE_ARN":           "arn:aws:iam::123456789012:role/path/ops",
		"AWS_COGNITO_ROLE_NAME":          "ops",
		"AWS_COGNITO_SESSION_EXPIRATION": "1792414800",
	}, e)
}

func TestKvEnvExports(t *testing.T) {
	e := kvEnv{"A": "plain", "B": "has space"}
	assert.Equal(t, []string{"export A=plain", "export B='has space'"}, e.Exports("/bin/bash"))
	assert.Equal(t, []string{"set -x A plain", "set -x B 'has space'"}, e.Exports("/usr/local/bin/fish"))
}
