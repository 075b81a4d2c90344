package score

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/noteseq/music"
	"github.com/stretchr/testify/assert"
)

func writeScore(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "score.txt")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("could not write score file: %v", err)
	}
	return path
}

func TestParseFileJoinsLines(t *testing.T) {
	path := writeScore(t, "c4'' d\ne f\n")
	seq, err := ParseFile(path, music.DefaultScoreVolume)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(4, seq.Len())
	// octave carries across the line break
	assert.Equal(6, seq.At(2).(music.Note).Octave)
	assert.Equal(6, seq.At(3).(music.Note).Octave)
}

func TestParseFileBadToken(t *testing.T) {
	path := writeScore(t, "c d nope\n")
	_, err := ParseFile(path, music.DefaultScoreVolume)

	assert := assert.New(t)
	assert.ErrorIs(err, music.ErrBadToken)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.txt"), music.DefaultScoreVolume)

	assert := assert.New(t)
	assert.Error(err)
}
