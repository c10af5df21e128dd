package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Secret is a reference to a secret value, e.g. "env:AOC_SESSION", rather
// than the value itself.
type Secret string

type SecretType string

var Env SecretType = "env"
var Raw SecretType = "raw"
var File SecretType = "file"

var errInvalidSecret = errors.New("invalid secret source for: ***")

func (s Secret) Load() (string, error) {
	return GetSecret(string(s))
}

func (s Secret) LoadOrBlank() string {
	deref, _ := GetSecret(string(s))
	return deref
}

// String never prints a raw secret.
func (s Secret) String() string {
	if !HasTypePrefix(string(s)) || strings.HasPrefix(string(s), string(Raw)+":") {
		return "<REDACTED>"
	}
	return string(s)
}

func NewRawSecret(secret string) Secret {
	return Secret(fmt.Sprintf("raw:%s", secret))
}

func HasTypePrefix(secretRef string) bool {
	switch SecretType(strings.Split(secretRef, ":")[0]) {
	case Env, Raw, File:
		return true
	}
	return false
}

// GetSecret resolves a secret reference.
func GetSecret(uri string) (string, error) {
	key, path, ok := strings.Cut(uri, ":")
	if !ok {
		return "", errInvalidSecret
	}

	switch SecretType(key) {
	case Env:
		return strings.TrimSpace(os.Getenv(path)), nil
	case Raw:
		return path, nil
	case File:
		if len(path) > 1 && path[0] == '~' {
			path = strings.Replace(path, "~", os.Getenv("HOME"), 1)
		}
		result, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(result)), nil
	}
	return "", errInvalidSecret
}
