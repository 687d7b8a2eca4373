package matches

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matches.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeExport(t, `{
		"matches": [
			{"number": 1, "MATCH_START": 1000, "MATCH_POST": 5000},
			{"number": 2, "name": "Semifinal", "MATCH_START": 60000}
		]
	}`)

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 1.0, records[0].Number)
	assert.Equal(t, "Semifinal", records[1].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeExport(t, `{"matches": [`)

	_, err := Load(path)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMatchesKey)
}

func TestLoadMissingMatchesKey(t *testing.T) {
	path := writeExport(t, `{"events": []}`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrMatchesKey)
}

func TestLoadEmptyMatches(t *testing.T) {
	path := writeExport(t, `{"matches": []}`)

	records, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, records)
}
