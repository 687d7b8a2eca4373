package naming

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPath(t *testing.T) {
	got := OutputPath("out", "full-match-", "Match_3", "mkv")
	assert.Equal(t, filepath.Join("out", "full-match-Match_3.mkv"), got)
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Match_3", "Match_3"},
		{"spaces kept", "Quarterfinal 1", "Quarterfinal 1"},
		{"path separators", "finals/day2", "finals_day2"},
		{"windows separators", `a\b:c`, "a_b_c"},
		{"control chars dropped", "semi\x00final\n", "semifinal"},
		{"empty", "", "unnamed"},
		{"only hostile runes", "///", "___"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.in))
		})
	}
}
