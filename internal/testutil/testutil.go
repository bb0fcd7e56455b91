// Package testutil provides shared helpers for tests.
package testutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
	"github.com/stretchr/testify/require"
)

// NewEntity generates an Ed25519/Curve25519 OpenPGP key pair for tests.
func NewEntity(t testing.TB) *openpgp.Entity {
	t.Helper()
	e, err := openpgp.NewEntity("Test Recipient", "", "test@example.com", &packet.Config{
		Algorithm: packet.PubKeyAlgoEdDSA,
	})
	require.NoError(t, err)
	return e
}

// PublicKey serializes the public half of e, armored or binary.
func PublicKey(t testing.TB, e *openpgp.Entity, armored bool) []byte {
	t.Helper()
	var buf bytes.Buffer
	if !armored {
		require.NoError(t, e.Serialize(&buf))
		return buf.Bytes()
	}
	w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
	require.NoError(t, err)
	require.NoError(t, e.Serialize(w))
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// messageType is the armor block type of an encrypted message.
const messageType = "PGP MESSAGE"

// Decrypt decrypts ciphertext with e's private key and returns the
// plaintext and the literal data file name.
func Decrypt(t testing.TB, e *openpgp.Entity, ciphertext []byte, armored bool) (plaintext []byte, fileName string) {
	t.Helper()
	plaintext, literal := DecryptLiteral(t, e, ciphertext, armored)
	return plaintext, literal.FileName
}

// DecryptLiteral decrypts ciphertext with e's private key and returns the
// plaintext with its literal data packet, which records the file name and
// whether the payload was marked binary or text.
func DecryptLiteral(t testing.TB, e *openpgp.Entity, ciphertext []byte, armored bool) ([]byte, *packet.LiteralData) {
	t.Helper()
	var r io.Reader = bytes.NewReader(ciphertext)
	if armored {
		block, err := armor.Decode(r)
		require.NoError(t, err)
		require.Equal(t, messageType, block.Type)
		r = block.Body
	}
	md, err := openpgp.ReadMessage(r, openpgp.EntityList{e}, nil, nil)
	require.NoError(t, err)
	plaintext, err := io.ReadAll(md.UnverifiedBody)
	require.NoError(t, err)
	return plaintext, md.LiteralData
}

// WriteKeyFile writes e's armored public key into dir and returns its path.
func WriteKeyFile(t testing.TB, e *openpgp.Entity, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "pubkey.asc")
	require.NoError(t, os.WriteFile(path, PublicKey(t, e, true), 0o600))
	return path
}

// CreateTestFiles creates files in dir from a map of relative path to content.
func CreateTestFiles(t testing.TB, dir string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		fullPath := filepath.Join(dir, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	}
}
