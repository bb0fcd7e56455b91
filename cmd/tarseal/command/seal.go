package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	orasregistry "oras.land/oras-go/v2/registry"

	"github.com/meigma/tarseal"
	"github.com/meigma/tarseal/registry"
)

const (
	SealDescription = "Archive files and encrypt them to a public key"
	SealHelp        = SealDescription + "\n\n" +
		"Each path argument is one input set. Files are archived under their\n" +
		"base name and directories are walked recursively, keeping the\n" +
		"directory name. When a path appears in more than one set the last\n" +
		"one wins. Symbolic links and special files are skipped.\n\n" +
		"The result is written to --out as encrypted-<timestamp>.tar.<ext>\n" +
		"and, with --push, also pushed to an OCI registry."

	userAgent  = "tarseal/1.0"
	defaultTag = "latest"
)

// Seal represents the `seal` command of the tarseal cli tool.
type Seal struct {
	KeyOptions `group:"Key Options"`

	Out         string `short:"o" long:"out" default:"." description:"Directory the sealed archive is written to"`
	Armor       bool   `short:"a" long:"armor" description:"ASCII-armor the encrypted output (.asc instead of .gpg)"`
	Compression string `short:"c" long:"compression" default:"none" choice:"none" choice:"zstd" choice:"gzip" description:"Compress the archive before encryption"`
	Push        string `long:"push" description:"Also push the sealed archive to this OCI reference (registry/repository[:tag])"`
	PlainHTTP   bool   `long:"plain-http" description:"Use plain HTTP when pushing, for local registries"`
	Concurrency int    `long:"concurrency" description:"Maximum number of files read in parallel. By default, it's the number of CPU cores."`
	LogLevel    string `long:"log-level" env:"TARSEAL_LOG_LEVEL" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info" description:"logging level"`

	Args struct {
		Paths []string `positional-arg-name:"path" required:"1" description:"Files or directories to seal"`
	} `positional-args:"yes"`

	out    io.Writer
	logOut io.Writer
}

// Execute seals the selected paths, it honors the go-flags.Commander
// interface.
func (c *Seal) Execute(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return c.run(ctx)
}

func (c *Seal) run(ctx context.Context) error {
	logOut := c.logOut
	if logOut == nil {
		logOut = os.Stderr
	}
	logger, err := newLogger(logOut, c.LogLevel)
	if err != nil {
		return err
	}

	compression, err := tarseal.ParseCompression(c.Compression)
	if err != nil {
		return err
	}

	key, err := c.load(ctx)
	if err != nil {
		return err
	}
	logger.Info("loaded recipient key", "fingerprint", key.Fingerprint())

	sel, err := selectInputs(ctx, c.Args.Paths)
	if err != nil {
		return err
	}
	defer sel.Close()

	opts := []tarseal.SealOption{
		tarseal.WithLogger(logger),
		tarseal.WithCompression(compression),
		tarseal.WithArmor(c.Armor),
	}
	if c.Concurrency > 0 {
		opts = append(opts, tarseal.WithReadConcurrency(c.Concurrency))
	}

	sealed, err := tarseal.Seal(ctx, key, sel.sets, opts...)
	if err != nil {
		return err
	}

	written, err := sealed.WriteFile(c.Out)
	if err != nil {
		return err
	}
	logger.Info("sealed archive written",
		"path", written,
		"entries", len(sealed.Entries),
		"size", sealed.Size(),
		"digest", sealed.Digest.String())

	if c.Push != "" {
		if err := c.push(ctx, logger, sealed); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(stdout(c.out), written)
	return err
}

func (c *Seal) push(ctx context.Context, logger *slog.Logger, sealed *tarseal.Sealed) error {
	ref, err := orasregistry.ParseReference(c.Push)
	if err != nil {
		return fmt.Errorf("%w: %v", registry.ErrInvalidReference, err)
	}
	tag := ref.Reference
	if tag == "" {
		tag = defaultTag
	}
	ref.Reference = ""

	repo, err := registry.NewRepository(ref.String(),
		registry.WithDockerConfig(),
		registry.WithPlainHTTP(c.PlainHTTP),
		registry.WithUserAgent(userAgent),
	)
	if err != nil {
		return err
	}

	desc, err := registry.Push(ctx, repo, tag, sealed)
	if err != nil {
		return fmt.Errorf("push %s: %w", c.Push, err)
	}
	logger.Info("sealed archive pushed", "ref", c.Push, "tag", tag, "manifest", desc.Digest.String())
	return nil
}
