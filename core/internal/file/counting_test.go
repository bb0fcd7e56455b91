package file

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountingWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cw := &CountingWriter{W: &buf}

	_, err := cw.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, cw.WriteZeros(1200))
	require.NoError(t, cw.WriteZeros(0))

	assert.Equal(t, int64(1205), cw.N)
	assert.Equal(t, 1205, buf.Len())
	assert.Equal(t, make([]byte, 1200), buf.Bytes()[5:])
}

type failWriter struct{ after int }

func (f *failWriter) Write(p []byte) (int, error) {
	if len(p) > f.after {
		n := f.after
		f.after = 0
		return n, errors.New("disk full")
	}
	f.after -= len(p)
	return len(p), nil
}

func TestCountingWriterPartialWrite(t *testing.T) {
	t.Parallel()

	cw := &CountingWriter{W: &failWriter{after: 700}}
	err := cw.WriteZeros(1024)
	require.Error(t, err)
	assert.Equal(t, int64(700), cw.N)
}

func TestCountingWriterOverflow(t *testing.T) {
	t.Parallel()

	cw := &CountingWriter{W: &bytes.Buffer{}, N: 1<<63 - 2}
	_, err := cw.Write([]byte("ab"))
	require.ErrorIs(t, err, ErrOverflow)
}
