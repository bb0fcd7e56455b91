package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "a.txt", "a.txt"},
		{"nested", "dir/sub/a.txt", "dir/sub/a.txt"},
		{"leading slash", "/etc/nginx", "etc/nginx"},
		{"multiple leading slashes", "///etc/nginx", "etc/nginx"},
		{"backslashes", `dir\sub\a.txt`, "dir/sub/a.txt"},
		{"leading backslash", `\dir\a.txt`, "dir/a.txt"},
		{"dot slash", "./a.txt", "a.txt"},
		{"only one dot slash stripped", "././a.txt", "./a.txt"},
		{"slash then dot slash", "/./a.txt", "a.txt"},
		{"dot slash then slash kept", ".//a.txt", "/a.txt"},
		{"trailing slash kept", "dir/", "dir/"},
		{"interior dotdot kept", "a/../b", "a/../b"},
		{"empty", "", FallbackName},
		{"root", "/", FallbackName},
		{"only slashes", "///", FallbackName},
		{"dot slash only", "./", FallbackName},
		{"backslash only", `\`, FallbackName},
		{"unicode", "/データ/ファイル.txt", "データ/ファイル.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}
