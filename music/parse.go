package music

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultOctave is the central octave.
	DefaultOctave = 5
	// DefaultDur is a quarter note.
	DefaultDur = 1.0
	// DefaultNoteVolume is the velocity of a note built from raw fields.
	DefaultNoteVolume = 100
	// DefaultScoreVolume is the velocity applied to a parsed batch of tokens.
	DefaultScoreVolume = 120
)

var ErrBadToken = errors.New("token does not match note grammar")

// pitch class per letter, diatonic C scale
var pitchClasses = map[byte]int{
	'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11,
}

// token holds the raw character runs scanned from one notation token:
// <pitch><accidentals><digits><dots><octave markers>.
type token struct {
	pitch   byte
	accs    string
	digits  string
	dots    string
	octaves string
}

// scanToken splits a token into its character runs. The whole token must be
// consumed, anything left over is a grammar error.
func scanToken(s string) (token, error) {
	var tok token
	lower := strings.ToLower(s)
	if lower == "" {
		return tok, fmt.Errorf("%w: empty token", ErrBadToken)
	}
	p := lower[0]
	if _, ok := pitchClasses[p]; !ok && p != 'r' {
		return tok, fmt.Errorf("%w: %q", ErrBadToken, s)
	}
	tok.pitch = p

	i := 1
	start := i
	for i < len(lower) && (lower[i] == 'b' || lower[i] == '#') {
		i++
	}
	tok.accs = lower[start:i]

	start = i
	for i < len(lower) && lower[i] >= '0' && lower[i] <= '9' {
		i++
	}
	tok.digits = lower[start:i]

	start = i
	for i < len(lower) && lower[i] == '.' {
		i++
	}
	tok.dots = lower[start:i]

	start = i
	for i < len(lower) && (lower[i] == '\'' || lower[i] == ',') {
		i++
	}
	tok.octaves = lower[start:i]

	if i != len(lower) {
		return tok, fmt.Errorf("%w: %q", ErrBadToken, s)
	}
	return tok, nil
}

// parseAccidental counts accidental characters. Any flat makes the whole run
// negative.
func parseAccidental(accs string) int {
	n := len(accs)
	if strings.Contains(accs, "b") {
		return -n
	}
	return n
}

// parseOctave counts occurrences of the first marker char. Apostrophes raise
// from octave 4 (one apostrophe is the central octave 5), commas lower from 5.
func parseOctave(octaves string) int {
	count := strings.Count(octaves, octaves[:1])
	if octaves[0] == '\'' {
		return count + 4
	}
	return 5 - count
}

// parseDur turns a duration denominator into a quarter-note-relative value,
// e.g. "8" is 0.5. One or more dots multiply the value by 1.5 exactly once.
func parseDur(digits, dots string) (float64, error) {
	denom, err := strconv.Atoi(digits)
	if err != nil || denom == 0 {
		return 0, fmt.Errorf("%w: bad duration %q", ErrBadToken, digits)
	}
	value := 4.0 / float64(denom)
	if dots != "" {
		value += value / 2.0
	}
	return value, nil
}

// ParseNote decodes one token into a Note or a Rest. Octave and duration fall
// back to the previous token's resolved values when not spelled out.
func ParseNote(s string, volume, prevOctave int, prevDur float64) (Event, error) {
	ev, _, _, err := parseNote(s, volume, prevOctave, prevDur)
	return ev, err
}

// parseNote also returns the resolved octave and duration for carry-over.
// The carried octave is the parsed one, before NewNote folds any accidental
// overflow into the register: "b#" sounds at octave 6 but carries octave 5.
func parseNote(s string, volume, prevOctave int, prevDur float64) (Event, int, float64, error) {
	tok, err := scanToken(s)
	if err != nil {
		return nil, 0, 0, err
	}

	octave := prevOctave
	if tok.octaves != "" {
		octave = parseOctave(tok.octaves)
	}

	dur := prevDur
	if tok.digits != "" {
		dur, err = parseDur(tok.digits, tok.dots)
		if err != nil {
			return nil, 0, 0, err
		}
	}

	if tok.pitch == 'r' {
		return NewRest(dur), octave, dur, nil
	}
	value := pitchClasses[tok.pitch] + parseAccidental(tok.accs)
	return NewNote(value, octave, dur, volume), octave, dur, nil
}

// ParseNotes decodes a stream of tokens, carrying octave and duration forward.
// Only notes update the carried octave; rests update only the duration.
func ParseNotes(tokens []string, volume int) ([]Event, error) {
	prevOctave := DefaultOctave
	prevDur := DefaultDur

	var result []Event
	for _, tok := range tokens {
		ev, octave, dur, err := parseNote(tok, volume, prevOctave, prevDur)
		if err != nil {
			return nil, err
		}
		result = append(result, ev)
		if _, ok := ev.(Note); ok {
			prevOctave = octave
		}
		prevDur = dur
	}
	return result, nil
}
