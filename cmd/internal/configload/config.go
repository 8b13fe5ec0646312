package configload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/vaughan0/go-ini"

	"github.com/segmentio/aws-cognito/lib/attempt"
	"github.com/segmentio/aws-cognito/lib/profiles"
)

const (
	EnvConfigFile = "AWS_COGNITO_CONFIG_FILE"

	// prefix of per-key overrides, e.g. AWS_COGNITO_CLIENT_ID
	envKeyPrefix = "AWS_COGNITO_"

	defaultConfigFile = ".aws-cognito/config"
)

// profile keys
const (
	KeyRegion          = "region"
	KeyUserPoolID      = "user_pool_id"
	KeyClientID        = "client_id"
	KeyClientSecret    = "client_secret"
	KeyIdentityPoolID  = "identity_pool_id"
	KeyAuthRoleARN     = "auth_role_arn"
	KeyRoleSessionName = "role_session_name"
	KeyHostedUIDomain  = "hosted_ui_domain"
	KeyRedirectURL     = "redirect_url"
)

type fileConfig struct {
	file string
}

// LoadDotEnv loads .env from the working directory into the environment.
// Variables already set win. A missing file is not an error.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

func FindAndParse() (Profiles, error) {
	c, err := NewFromEnv()
	if err != nil {
		return Profiles{}, fmt.Errorf("failed to load profiles from config: %w", err)
	}

	return c.Parse()
}

func NewFromEnv() (*fileConfig, error) {
	file := os.Getenv(EnvConfigFile)
	if file == "" {
		home, err := homedir.Dir()
		if err != nil {
			return nil, err
		}
		file = filepath.Join(home, defaultConfigFile)
		if _, err := os.Stat(file); os.IsNotExist(err) {
			file = ""
		}
	}
	return &fileConfig{file: file}, nil
}

func (c *fileConfig) Parse() (Profiles, error) {
	ps := Profiles{Profiles: profiles.Profiles{profiles.DefaultProfile: profiles.Profile{}}}
	if c.file == "" {
		return ps, nil
	}

	log.Debugf("Parsing config file %s", c.file)
	f, err := ini.LoadFile(c.file)
	if err != nil {
		return Profiles{}, fmt.Errorf("Error parsing config file %q: %v", c.file, err)
	}

	for sectionName, section := range f {
		ps.Profiles[strings.TrimPrefix(sectionName, "profile ")] = profiles.Profile(section)
	}

	return ps, nil
}

// Profiles layers environment overrides over the config file.
type Profiles struct {
	profiles.Profiles

	// defaults to os.LookupEnv
	LookupEnv func(string) (string, bool)
}

// Get returns the AWS_COGNITO_<KEY> environment variable if set, otherwise
// the profile lookup result.
func (p Profiles) Get(profileName, key string) (string, error) {
	lookup := p.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(envKeyPrefix + strings.ToUpper(key)); ok {
		return v, nil
	}
	return p.Profiles.Get(profileName, key)
}

func (p Profiles) GetWithDefault(profileName, key, defaultValue string) string {
	v, err := p.Get(profileName, key)
	if err != nil {
		return defaultValue
	}
	return v
}

// Has reports whether profileName is a section of the config file.
func (p Profiles) Has(profileName string) bool {
	_, ok := p.Profiles[profileName]
	return ok
}

// AttemptConfig builds the login settings of profileName. Missing required
// settings are reported by Validate.
func (p Profiles) AttemptConfig(profileName string) (attempt.Config, error) {
	cfg := attempt.Config{
		Region:         p.GetWithDefault(profileName, KeyRegion, ""),
		UserPoolID:     p.GetWithDefault(profileName, KeyUserPoolID, ""),
		ClientID:       p.GetWithDefault(profileName, KeyClientID, ""),
		ClientSecret:   p.GetWithDefault(profileName, KeyClientSecret, ""),
		IdentityPoolID: p.GetWithDefault(profileName, KeyIdentityPoolID, ""),
		AuthRoleARN:    p.GetWithDefault(profileName, KeyAuthRoleARN, ""),
	}
	if err := cfg.Validate(); err != nil {
		return attempt.Config{}, fmt.Errorf("profile %s: %w", profileName, err)
	}
	return cfg, nil
}
