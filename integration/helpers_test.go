//go:build integration

package integration

import (
	"archive/tar"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"oras.land/oras-go/v2/registry/remote"

	"github.com/meigma/tarseal/crypt"
	"github.com/meigma/tarseal/internal/testutil"
	"github.com/meigma/tarseal/registry"
)

// --- Registry Container Setup ---

var (
	registryOnce sync.Once
	registryAddr string
	registryErr  error
)

// getRegistry returns the shared registry address, starting the container if needed.
// The container is shared across all tests.
func getRegistry(tb testing.TB) string {
	tb.Helper()

	if os.Getenv("SKIP_DOCKER_TESTS") == "1" {
		tb.Skip("SKIP_DOCKER_TESTS is set")
	}

	registryOnce.Do(func() {
		registryAddr, registryErr = startRegistryContainer(context.Background())
	})

	if registryErr != nil {
		tb.Fatalf("start registry container: %v", registryErr)
	}

	return registryAddr
}

// startRegistryContainer starts a registry:2 container and returns the host:port address.
func startRegistryContainer(ctx context.Context) (string, error) {
	req := testcontainers.ContainerRequest{
		Image:        "registry:2",
		ExposedPorts: []string{"5000/tcp"},
		WaitingFor:   wait.ForHTTP("/v2/").WithPort("5000/tcp").WithStatusCodeMatcher(isOKStatus),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start registry container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve registry host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5000/tcp")
	if err != nil {
		return "", fmt.Errorf("resolve registry port: %w", err)
	}

	return fmt.Sprintf("%s:%s", host, port.Port()), nil
}

func isOKStatus(status int) bool {
	return status >= 200 && status < 300
}

// --- Test Repository Factory ---

// newTestRepository returns a plain-HTTP repository on the local test registry.
// The repository name is derived from the test name to avoid collisions.
func newTestRepository(tb testing.TB, addr, name string) *remote.Repository {
	tb.Helper()

	repo, err := registry.NewRepository(fmt.Sprintf("%s/test/%s", addr, name),
		registry.WithPlainHTTP(true),
		registry.WithUserAgent("tarseal-integration"),
	)
	require.NoError(tb, err, "create test repository")
	return repo
}

// --- Key and Archive Helpers ---

// newRecipient generates a key pair and returns the private entity and the
// public key as the sealing side loads it.
func newRecipient(tb testing.TB) (*openpgp.Entity, *crypt.Key) {
	tb.Helper()
	entity := testutil.NewEntity(tb)
	key, err := crypt.ReadKey(bytes.NewReader(testutil.PublicKey(tb, entity, true)))
	require.NoError(tb, err)
	return entity, key
}

// readTar returns the entries of a tar stream as path → content.
func readTar(tb testing.TB, archive []byte) map[string][]byte {
	tb.Helper()
	files := make(map[string][]byte)
	tr := tar.NewReader(bytes.NewReader(archive))
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return files
		}
		require.NoError(tb, err)
		data, err := io.ReadAll(tr)
		require.NoError(tb, err)
		files[hdr.Name] = data
	}
}

// makeCompressibleContent creates content that benefits from compression.
func makeCompressibleContent(size int) []byte {
	pattern := []byte("This is a repeating pattern for compression testing. ")
	result := make([]byte, 0, size)
	for len(result) < size {
		result = append(result, pattern...)
	}
	return result[:size]
}
