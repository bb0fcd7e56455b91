package command

import (
	"context"
	"errors"

	"github.com/meigma/tarseal/crypt"
)

var errKeyConflict = errors.New("use either --key or --key-url, not both")

// KeyOptions selects the recipient public key. Exactly one source is used.
type KeyOptions struct {
	Key    string `short:"k" long:"key" env:"TARSEAL_KEY" description:"Path to an OpenPGP public key (armored or binary)"`
	KeyURL string `long:"key-url" env:"TARSEAL_KEY_URL" description:"URL to fetch the OpenPGP public key from"`
}

func (o *KeyOptions) load(ctx context.Context) (*crypt.Key, error) {
	switch {
	case o.Key != "" && o.KeyURL != "":
		return nil, errKeyConflict
	case o.Key != "":
		return crypt.LoadKeyFile(o.Key)
	case o.KeyURL != "":
		return crypt.FetchKey(ctx, o.KeyURL, crypt.WithUserAgent(userAgent))
	default:
		return nil, crypt.ErrNoKey
	}
}
