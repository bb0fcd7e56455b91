package main

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/meigma/tarseal/cmd/tarseal/command"
)

const (
	name = "tarseal"
)

// Set at build time via -ldflags.
var (
	version = "dev"
	build   = "unknown"
)

func main() {
	parser := flags.NewNamedParser(name, flags.Default)

	parser.AddCommand("seal", command.SealDescription, command.SealHelp,
		&command.Seal{})

	parser.AddCommand("encrypt", command.EncryptDescription, command.EncryptHelp,
		&command.Encrypt{})

	parser.AddCommand("fingerprint", command.FingerprintDescription, command.FingerprintHelp,
		&command.Fingerprint{})

	parser.AddCommand("version", command.VersionDescription, command.VersionHelp,
		&command.Version{
			Name:    name,
			Version: version,
			Build:   build,
		})

	_, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrCommandRequired {
			parser.WriteHelp(os.Stdout)
		}

		os.Exit(1)
	}
}
