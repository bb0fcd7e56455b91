package crypt

import (
	"errors"
	"fmt"
)

var (
	// ErrNoKey is returned when a keyring contains no entities.
	ErrNoKey = errors.New("crypt: no key found")

	// ErrNoEncryptionKey is returned when no key in the keyring can encrypt.
	ErrNoEncryptionKey = errors.New("crypt: no encryption-capable key")

	// ErrEncryption is returned when encryption fails.
	ErrEncryption = errors.New("crypt: encryption failed")
)

// FetchError reports a non-success HTTP response while fetching a key.
type FetchError struct {
	URL    string
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("crypt: fetch public key %s: status %d", e.URL, e.Status)
}
