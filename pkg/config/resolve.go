// Package config resolves Langfuse credentials and settings from flags,
// environment variables, the profile file, and the system keyring, in that
// order of precedence.
package config

import (
	"fmt"
	"os"

	"github.com/kazuma-desu/lf/pkg/logger"
)

// DefaultHost is the hosted Langfuse cloud endpoint.
const DefaultHost = "https://cloud.langfuse.com"

// DefaultLimit is the listing cap applied when neither a flag nor the config
// file sets one.
const DefaultLimit = 50

// Credentials is the fully resolved connection configuration for one
// invocation.
type Credentials struct {
	Host      string
	PublicKey string
	SecretKey string
	Profile   string
}

// Resolve builds credentials using the precedence chain
// flags > environment > config file profile > keyring > defaults.
// It fails when no key pair can be found anywhere.
func Resolve(flagHost, flagProfile string) (*Credentials, error) {
	cfg, err := LoadConfig()
	if err != nil {
		logger.Log.Debugw("Failed to load config, using defaults", "error", err)
		cfg = &Config{Profiles: make(map[string]*Profile)}
	}

	profileName := firstNonEmpty(flagProfile, os.Getenv("LANGFUSE_PROFILE"), cfg.CurrentProfile, "default")
	profile := cfg.Profiles[profileName]
	if profile == nil {
		profile = &Profile{}
	}

	host := firstNonEmpty(
		flagHost,
		os.Getenv("LANGFUSE_HOST"),
		profile.Host,
		os.Getenv("LANGFUSE_BASEURL"), // SDK compatibility
		DefaultHost,
	)

	publicKey := firstNonEmpty(
		os.Getenv("LANGFUSE_PUBLIC_KEY"),
		profile.PublicKey,
	)
	if publicKey == "" {
		publicKey = getKeyringSecret(profileName + "/public-key")
	}

	secretKey := firstNonEmpty(
		os.Getenv("LANGFUSE_SECRET_KEY"),
		profile.SecretKey,
	)
	if secretKey == "" {
		secretKey = getKeyringSecret(profileName + "/secret-key")
	}

	if publicKey == "" || secretKey == "" {
		return nil, fmt.Errorf("no credentials configured for profile %q - run 'lf login' or set LANGFUSE_PUBLIC_KEY/LANGFUSE_SECRET_KEY", profileName)
	}

	return &Credentials{
		Host:      host,
		PublicKey: publicKey,
		SecretKey: secretKey,
		Profile:   profileName,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
