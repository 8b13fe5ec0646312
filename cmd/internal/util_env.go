package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alessio/shellescape"

	awscognito "github.com/segmentio/aws-cognito/lib"
)

type kvEnv map[string]string

func (e kvEnv) LoadFromEnviron(kevs ...string) {
	for _, kev := range kevs {
		kv := strings.SplitN(kev, "=", 2)
		if len(kv) != 2 {
			// skip invalid
			continue
		}
		e[kv[0]] = kv[1]
	}
}

// Environ returns KEY=value pairs sorted by key.
func (e kvEnv) Environ() []string {
	r := []string{}
	for _, k := range e.keys() {
		r = append(r, fmt.Sprintf("%s=%s", k, e[k]))
	}
	return r
}

// Exports returns one shell-quoted export statement per key, sorted by key.
// fish gets `set -x`.
func (e kvEnv) Exports(shell string) []string {
	format := "export %s=%s"
	if strings.Contains(shell, "fish") {
		format = "set -x %s %s"
	}
	r := []string{}
	for _, k := range e.keys() {
		r = append(r, fmt.Sprintf(format, k, shellescape.Quote(e[k])))
	}
	return r
}

func (e kvEnv) keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (e kvEnv) AddCreds(creds awscognito.AWSCreds) {
	e["AWS_SESSION_TOKEN"] = creds.SessionToken
	e["AWS_SECURITY_TOKEN"] = creds.SessionToken
	e["AWS_ACCESS_KEY_ID"] = creds.AccessKeyID
	e["AWS_SECRET_ACCESS_KEY"] = creds.SecretAccessKey
}

type infoEnvs struct {
	Region      string
	ProfileName string
	IdentityID  string
	RoleARN     string
	ExpiresAt   time.Time
}

func (e kvEnv) AddInfo(ie infoEnvs) {
	e["AWS_COGNITO_PROFILE"] = ie.ProfileName

	if ie.Region != "" {
		e["AWS_REGION"] = ie.Region
		e["AWS_DEFAULT_REGION"] = ie.Region
	}

	e["AWS_COGNITO_IDENTITY_ID"] = ie.IdentityID
	if ie.RoleARN != "" {
		e["AWS_COGNITO_ROLE_ARN"] = ie.RoleARN
		if spl := strings.Split(ie.RoleARN, "/"); len(spl) > 1 {
			e["AWS_COGNITO_ROLE_NAME"] = spl[len(spl)-1]
		}
	}
	e["AWS_COGNITO_SESSION_EXPIRATION"] = fmt.Sprintf("%d", ie.ExpiresAt.Unix())
}
