package crypt

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// armorHeader starts every armored OpenPGP block.
const armorHeader = "-----BEGIN PGP"

// Key is a set of OpenPGP public keys used as encryption recipients.
type Key struct {
	entities openpgp.EntityList
}

// ReadKey parses an armored or binary OpenPGP keyring.
//
// Every entity must have a key usable for encryption at the current time.
func ReadKey(r io.Reader) (*Key, error) {
	br := bufio.NewReader(r)
	var (
		entities openpgp.EntityList
		err      error
	)
	if isArmored(br) {
		entities, err = openpgp.ReadArmoredKeyRing(br)
	} else {
		entities, err = openpgp.ReadKeyRing(br)
	}
	if err != nil {
		return nil, fmt.Errorf("crypt: read key: %w", err)
	}
	if len(entities) == 0 {
		return nil, ErrNoKey
	}
	now := time.Now()
	for _, e := range entities {
		if _, ok := e.EncryptionKey(now); !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoEncryptionKey, fingerprint(e))
		}
	}
	return &Key{entities: entities}, nil
}

// LoadKeyFile reads a keyring from the named file.
func LoadKeyFile(path string) (*Key, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadKey(f)
}

// Fingerprint returns the lowercase hex fingerprint of the first primary key,
// or "" for a Key that holds no entities.
func (k *Key) Fingerprint() string {
	if k == nil || len(k.entities) == 0 {
		return ""
	}
	return fingerprint(k.entities[0])
}

// Fingerprints returns the fingerprints of all recipients in keyring order.
func (k *Key) Fingerprints() []string {
	if k == nil {
		return nil
	}
	out := make([]string, 0, len(k.entities))
	for _, e := range k.entities {
		out = append(out, fingerprint(e))
	}
	return out
}

func fingerprint(e *openpgp.Entity) string {
	return hex.EncodeToString(e.PrimaryKey.Fingerprint)
}

// isArmored reports whether the next non-space bytes of br start an armor block.
func isArmored(br *bufio.Reader) bool {
	peek, _ := br.Peek(512)
	return bytes.HasPrefix(bytes.TrimLeft(peek, " \t\r\n"), []byte(armorHeader))
}
