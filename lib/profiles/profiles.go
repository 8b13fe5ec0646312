// Package profiles resolves settings from named config file sections.
package profiles

import "fmt"

// DefaultProfile is the section consulted when neither a profile nor its
// source_profile set a key.
const DefaultProfile = "cognito"

const keySourceProfile = "source_profile"

type ErrNotFound struct {
	Profile       string
	Key           string
	SourceProfile string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("key '%s' not found in profile '%s', or source profile '%s', or base profile '%s'", e.Key, e.Profile, e.SourceProfile, DefaultProfile)
}

type Profile map[string]string

type Profiles map[string]Profile

// SourceProfile returns the source_profile of p, or p if it has none.
func (p Profiles) SourceProfile(profileName string) string {
	if source := p[profileName][keySourceProfile]; source != "" {
		return source
	}
	return profileName
}

// Get looks key up in profileName, then its source_profile (one level only),
// then DefaultProfile.
func (p Profiles) Get(profileName string, key string) (value string, err error) {
	value, _, err = p.Lookup(profileName, key)
	return
}

// Lookup is Get that also reports which profile supplied the value.
func (p Profiles) Lookup(profileName string, key string) (string, string, error) {
	if value, ok := p[profileName][key]; ok {
		return value, profileName, nil
	}

	sourceProfile, ok := p[profileName][keySourceProfile]
	if ok {
		if value, ok := p[sourceProfile][key]; ok {
			return value, sourceProfile, nil
		}
	}

	if value, ok := p[DefaultProfile][key]; ok {
		return value, DefaultProfile, nil
	}

	return "", "", &ErrNotFound{
		Profile:       profileName,
		Key:           key,
		SourceProfile: sourceProfile,
	}
}

func (p Profiles) GetWithDefault(profileName string, key string, defaultValue string) string {
	v, err := p.Get(profileName, key)
	if err != nil {
		return defaultValue
	}
	return v
}
