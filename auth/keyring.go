// Package auth provides a high-level API for persisting and retrieving the Tenor API key.
//
// The key is resolved from configuration (which includes the GIFGRAB_API_KEY environment
// variable) first, then from the system keyring.
package auth

import (
	"errors"

	"github.com/gifgrab-cli/gifgrab/key"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

const (
	service = "gifgrab-cli"
	user    = "tenor-api-key"
)

// ErrNoKey indicates that no API key is available from any source.
// The message doubles as the user-facing remediation hint.
var ErrNoKey = errors.New(
	"no Tenor API key configured: run \"gifgrab auth set\" or export GIFGRAB_API_KEY")

// Key resolves the Tenor API key, preferring the configuration/environment value
// over the keyring-persisted one.
func Key() (string, error) {
	if k := viper.GetString(key.APIKey); k != "" {
		return k, nil
	}

	k, err := keyring.Get(service, user)
	if err != nil || k == "" {
		return "", ErrNoKey
	}
	return k, nil
}

// SetKey persists the Tenor API key to the system keyring.
func SetKey(k string) error {
	return keyring.Set(service, user, k)
}

// DeleteKey removes the Tenor API key from the system keyring.
func DeleteKey() error {
	return keyring.Delete(service, user)
}
