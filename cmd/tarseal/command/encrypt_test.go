package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/tarseal/crypt"
	"github.com/meigma/tarseal/internal/testutil"
)

func TestEncryptCommand(t *testing.T) {
	t.Parallel()

	entity := testutil.NewEntity(t)
	keyFile := testutil.WriteKeyFile(t, entity, t.TempDir())
	message := "会議は15時からです。\nsee you there\n"

	tests := []struct {
		name string
		cmd  Encrypt
	}{
		{
			name: "message flag",
			cmd:  Encrypt{Message: message},
		},
		{
			name: "standard input",
			cmd:  Encrypt{in: strings.NewReader(message)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			cmd := tt.cmd
			cmd.KeyOptions = KeyOptions{Key: keyFile}
			cmd.out = &out
			require.NoError(t, cmd.run(context.Background()))

			assert.True(t, strings.HasPrefix(out.String(), "-----BEGIN PGP MESSAGE-----"), out.String())
			plain, literal := testutil.DecryptLiteral(t, entity, out.Bytes(), true)
			assert.Equal(t, message, string(plain))
			assert.False(t, literal.IsBinary, "message must be a text literal")
		})
	}
}

func TestEncryptCommandBinaryOutputFile(t *testing.T) {
	t.Parallel()

	entity := testutil.NewEntity(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "message.gpg")

	var out bytes.Buffer
	cmd := &Encrypt{
		KeyOptions: KeyOptions{Key: testutil.WriteKeyFile(t, entity, dir)},
		Message:    "hello",
		Binary:     true,
		Output:     output,
		out:        &out,
	}
	require.NoError(t, cmd.run(context.Background()))
	assert.Zero(t, out.Len())

	ciphertext, err := os.ReadFile(output)
	require.NoError(t, err)
	plain, literal := testutil.DecryptLiteral(t, entity, ciphertext, false)
	assert.Equal(t, "hello", string(plain))
	assert.False(t, literal.IsBinary)

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestEncryptCommandErrors(t *testing.T) {
	t.Parallel()

	cmd := &Encrypt{Message: "x", out: &bytes.Buffer{}}
	require.ErrorIs(t, cmd.run(context.Background()), crypt.ErrNoKey)

	entity := testutil.NewEntity(t)
	big := &Encrypt{
		KeyOptions: KeyOptions{Key: testutil.WriteKeyFile(t, entity, t.TempDir())},
		in:         bytes.NewReader(make([]byte, maxMessageSize+1)),
		out:        &bytes.Buffer{},
	}
	require.ErrorIs(t, big.run(context.Background()), errMessageTooLarge)
}
