package score

import (
	"fmt"
	"os"

	"github.com/jsphweid/noteseq/music"
)

// ParseFile reads a score file and parses every whitespace-separated token
// across all lines as one flat stream. Line breaks carry no musical meaning.
func ParseFile(path string, volume int) (*music.NoteSeq, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read score %v: %w", path, err)
	}
	return music.ParseNoteSeq(string(data), volume)
}
