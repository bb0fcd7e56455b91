package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/meigma/tarseal/crypt"
)

const (
	EncryptDescription = "Encrypt a text message to the recipient key"
	EncryptHelp        = EncryptDescription + "\n\n" +
		"The message is taken from --message, or read from standard input\n" +
		"when --message is not set. The ciphertext is ASCII-armored and\n" +
		"written to standard output unless --binary or --output is given."

	// maxMessageSize bounds a message read from standard input.
	maxMessageSize = 16 << 20
)

var errMessageTooLarge = errors.New("message too large")

// Encrypt represents the `encrypt` command of the tarseal cli tool.
type Encrypt struct {
	KeyOptions `group:"Key Options"`

	Message string `short:"m" long:"message" description:"Message to encrypt. Read from standard input when empty"`
	Binary  bool   `long:"binary" description:"Write binary OpenPGP packets instead of ASCII armor"`
	Output  string `short:"o" long:"output" description:"Write the ciphertext to this file instead of standard output"`

	in  io.Reader
	out io.Writer
}

// Execute encrypts the message, it honors the go-flags.Commander interface.
func (c *Encrypt) Execute(args []string) error {
	return c.run(context.Background())
}

func (c *Encrypt) run(ctx context.Context) error {
	key, err := c.load(ctx)
	if err != nil {
		return err
	}

	message, err := c.message()
	if err != nil {
		return err
	}

	ciphertext, err := crypt.Encrypt(ctx, message, key,
		crypt.WithArmor(!c.Binary),
		crypt.WithText(true),
	)
	if err != nil {
		return err
	}

	if c.Output != "" {
		return os.WriteFile(c.Output, ciphertext, 0o600)
	}
	_, err = stdout(c.out).Write(ciphertext)
	return err
}

func (c *Encrypt) message() ([]byte, error) {
	if c.Message != "" {
		return []byte(c.Message), nil
	}
	in := c.in
	if in == nil {
		in = os.Stdin
	}
	data, err := io.ReadAll(io.LimitReader(in, maxMessageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read message: %w", err)
	}
	if len(data) > maxMessageSize {
		return nil, errMessageTooLarge
	}
	return data, nil
}
