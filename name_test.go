package tarseal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFileName(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 10, 18, 9, 5, 7, 987_000_000, time.UTC)
	tests := []struct {
		name string
		t    time.Time
		ext  string
		want string
	}{
		{"binary", at, "gpg", "encrypted-20261018T090507.tar.gpg"},
		{"armored", at, "asc", "encrypted-20261018T090507.tar.asc"},
		{"leading dot", at, ".gpg", "encrypted-20261018T090507.tar.gpg"},
		{"compressed", at, "zst.gpg", "encrypted-20261018T090507.tar.zst.gpg"},
		{"no extension", at, "", "encrypted-20261018T090507.tar"},
		{"converted to utc", at.In(time.FixedZone("JST", 9*3600)), "gpg", "encrypted-20261018T090507.tar.gpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FileName(tt.t, tt.ext))
		})
	}
}
