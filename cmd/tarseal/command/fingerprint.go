package command

import (
	"context"
	"fmt"
	"io"
)

const (
	FingerprintDescription = "Print the fingerprint of the recipient key"
	FingerprintHelp        = FingerprintDescription + "\n\n" +
		"Compare the printed fingerprint with the one published by the\n" +
		"recipient before sealing anything to the key."
)

// Fingerprint represents the `fingerprint` command of the tarseal cli tool.
type Fingerprint struct {
	KeyOptions `group:"Key Options"`

	out io.Writer
}

// Execute loads the key and prints the fingerprint of every key it contains,
// it honors the go-flags.Commander interface.
func (c *Fingerprint) Execute(args []string) error {
	key, err := c.load(context.Background())
	if err != nil {
		return err
	}
	for _, fp := range key.Fingerprints() {
		if _, err := fmt.Fprintln(stdout(c.out), fp); err != nil {
			return err
		}
	}
	return nil
}
