package crypt

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
)

// MessageType is the armor block type of an encrypted message.
const MessageType = "PGP MESSAGE"

type encryptConfig struct {
	armor    bool
	text     bool
	fileName string
	config   *packet.Config
}

// EncryptOption configures Encrypt.
type EncryptOption func(*encryptConfig)

// WithArmor selects ASCII-armored output instead of binary packets.
func WithArmor(enabled bool) EncryptOption {
	return func(cfg *encryptConfig) {
		cfg.armor = enabled
	}
}

// WithText marks the plaintext as UTF-8 text in the literal data packet
// instead of binary data.
func WithText(enabled bool) EncryptOption {
	return func(cfg *encryptConfig) {
		cfg.text = enabled
	}
}

// WithFileName records name in the literal data packet.
func WithFileName(name string) EncryptOption {
	return func(cfg *encryptConfig) {
		cfg.fileName = name
	}
}

// WithPacketConfig overrides the OpenPGP packet configuration
// (cipher, compression, clock).
func WithPacketConfig(c *packet.Config) EncryptOption {
	return func(cfg *encryptConfig) {
		cfg.config = c
	}
}

// Extension returns the file extension matching the output encoding.
func Extension(armored bool) string {
	if armored {
		return "asc"
	}
	return "gpg"
}

// Encrypt encrypts plaintext to every recipient in key.
func Encrypt(ctx context.Context, plaintext []byte, key *Key, opts ...EncryptOption) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if key == nil || len(key.entities) == 0 {
		return nil, ErrNoKey
	}
	cfg := encryptConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var out bytes.Buffer
	var sink io.Writer = &out
	var armorW io.WriteCloser
	if cfg.armor {
		w, err := armor.Encode(&out, MessageType, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncryption, err)
		}
		armorW = w
		sink = w
	}

	hints := &openpgp.FileHints{IsBinary: !cfg.text, FileName: cfg.fileName}
	pw, err := openpgp.Encrypt(sink, key.entities, nil, hints, cfg.config)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	if _, err := pw.Write(plaintext); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	if err := pw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	if armorW != nil {
		if err := armorW.Close(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncryption, err)
		}
	}
	return out.Bytes(), nil
}
