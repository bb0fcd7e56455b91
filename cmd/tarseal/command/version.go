package command

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

const (
	VersionDescription = "Show the version information"
	VersionHelp        = VersionDescription

	openpgpModule = "github.com/ProtonMail/go-crypto"
)

// Version represents the `version` command of the tarseal cli tool.
type Version struct {
	// Name of the cli binary
	Name string
	// Version of the cli binary
	Version string
	// Build of the cli binary
	Build string

	out io.Writer
}

// Execute prints the build information provided by the compilation tools, it
// honors the go-flags.Commander interface.
func (c *Version) Execute(args []string) error {
	w := stdout(c.out)
	if _, err := fmt.Fprintf(w, "%s (%s) - build %s\n", c.Name, c.Version, c.Build); err != nil {
		return err
	}
	if v := moduleVersion(openpgpModule); v != "" {
		_, err := fmt.Fprintf(w, "openpgp: %s %s\n", openpgpModule, v)
		return err
	}
	return nil
}

// moduleVersion returns the version of the named dependency linked into the
// binary, or "" when build information is unavailable.
func moduleVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, dep := range info.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return ""
}

func stdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
