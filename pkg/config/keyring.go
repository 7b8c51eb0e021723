package config

import (
	"github.com/zalando/go-keyring"

	"github.com/kazuma-desu/lf/pkg/logger"
)

const keyringService = "lf"

// getKeyringSecret retrieves a secret from the system keyring. An unavailable
// keyring is not an error here; resolution falls through to the next source.
func getKeyringSecret(account string) string {
	value, err := keyring.Get(keyringService, account)
	if err != nil {
		logger.Log.Debugw("Keyring lookup failed", "account", account, "error", err)
		return ""
	}
	return value
}

// SetKeyringSecret stores a secret in the system keyring.
func SetKeyringSecret(account, secret string) error {
	return keyring.Set(keyringService, account, secret)
}

// DeleteKeyringSecret removes a secret from the system keyring. Missing
// entries are ignored.
func DeleteKeyringSecret(account string) {
	if err := keyring.Delete(keyringService, account); err != nil {
		logger.Log.Debugw("Keyring delete failed", "account", account, "error", err)
	}
}
