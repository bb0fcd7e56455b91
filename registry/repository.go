package registry

import (
	"context"
	"fmt"
	"net/http"

	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"
	"oras.land/oras-go/v2/registry/remote/retry"
)

// Option configures a remote repository.
type Option func(*repoConfig) error

type repoConfig struct {
	plainHTTP  bool
	userAgent  string
	credential auth.CredentialFunc
}

// WithDockerConfig reads credentials from the docker config file
// (~/.docker/config.json and its credential helpers).
func WithDockerConfig() Option {
	return func(cfg *repoConfig) error {
		store, err := credentials.NewStoreFromDocker(credentials.StoreOptions{})
		if err != nil {
			return fmt.Errorf("load docker credentials: %w", err)
		}
		cfg.credential = credentials.Credential(store)
		return nil
	}
}

// WithStaticCredentials uses a fixed username and password for every host.
func WithStaticCredentials(username, password string) Option {
	return func(cfg *repoConfig) error {
		cred := auth.Credential{Username: username, Password: password}
		cfg.credential = func(context.Context, string) (auth.Credential, error) {
			return cred, nil
		}
		return nil
	}
}

// WithPlainHTTP enables plain HTTP (no TLS), for local registries.
func WithPlainHTTP(enabled bool) Option {
	return func(cfg *repoConfig) error {
		cfg.plainHTTP = enabled
		return nil
	}
}

// WithUserAgent sets the User-Agent header for registry requests.
func WithUserAgent(ua string) Option {
	return func(cfg *repoConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// NewRepository returns a remote repository for ref
// (e.g. "ghcr.io/org/sealed"). A tag in ref is ignored; pass it to Push.
func NewRepository(ref string, opts ...Option) (*remote.Repository, error) {
	cfg := repoConfig{userAgent: "tarseal/1.0"}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	repo, err := remote.NewRepository(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	repo.PlainHTTP = cfg.plainHTTP
	repo.Client = &auth.Client{
		Client: retry.DefaultClient,
		Cache:  auth.NewCache(),
		Credential: func(ctx context.Context, hostport string) (auth.Credential, error) {
			if cfg.credential == nil {
				return auth.EmptyCredential, nil
			}
			return cfg.credential(ctx, hostport)
		},
		Header: http.Header{
			"User-Agent": []string{cfg.userAgent},
		},
	}
	return repo, nil
}
