package music

import (
	"testing"

	"github.com/jsphweid/noteseq/model"
	"github.com/stretchr/testify/assert"
)

func TestNewNoteFoldsOverflowIntoOctave(t *testing.T) {
	tests := []struct {
		name           string
		value          int
		octave         int
		expectedValue  int
		expectedOctave int
	}{
		{name: "in range", value: 7, octave: 5, expectedValue: 7, expectedOctave: 5},
		{name: "one octave up", value: 12, octave: 5, expectedValue: 0, expectedOctave: 6},
		{name: "below zero", value: -1, octave: 5, expectedValue: 11, expectedOctave: 4},
		{name: "two octaves up", value: 25, octave: 5, expectedValue: 1, expectedOctave: 7},
		{name: "far below zero", value: -13, octave: 5, expectedValue: 11, expectedOctave: 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := NewNote(tc.value, tc.octave, 1, 100)
			assert := assert.New(t)
			assert.Equal(tc.expectedValue, n.Value)
			assert.Equal(tc.expectedOctave, n.Octave)
		})
	}
}

func TestMidiNumber(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(60, NewNote(0, 5, 1, 100).MidiNumber())
	assert.Equal(69, NewNote(9, 5, 1, 100).MidiNumber())
	assert.Equal(48, NewNote(0, 4, 1, 100).MidiNumber())
}

func TestSubMatchesMidiNumbers(t *testing.T) {
	a := NewNote(4, 5, 1, 100)
	b := NewNote(11, 4, 1, 100)

	assert := assert.New(t)
	assert.Equal(a.MidiNumber()-b.MidiNumber(), a.Sub(b))
	assert.Equal(5, a.Sub(b))
	assert.Equal(-5, b.Sub(a))
}

func TestNoteTransposition(t *testing.T) {
	n := NewNote(10, 5, 0.5, 90)
	up := n.Transposition(4)

	assert := assert.New(t)
	assert.Equal(2, up.Value)
	assert.Equal(6, up.Octave)
	assert.Equal(0.5, up.Dur)
	assert.Equal(90, up.Volume)
	// original untouched
	assert.Equal(10, n.Value)
}

func TestNoteInversion(t *testing.T) {
	n := NewNote(4, 5, 1, 100)

	assert := assert.New(t)
	// reflecting E around C gives Ab below
	assert.Equal(NewNote(-4, 5, 1, 100), n.Inversion(0))
	// involution holds when both reflections share one octave frame
	assert.True(n.InversionAround(0, 5).InversionAround(0, 5).Equal(n))
}

func TestNoteInversionAroundReferenceOctave(t *testing.T) {
	n := NewNote(11, 4, 1, 100)
	inverted := n.InversionAround(0, 5)

	// value relative to octave 5 is -1, reflected to 1
	assert := assert.New(t)
	assert.Equal(1, inverted.Value)
	assert.Equal(5, inverted.Octave)
}

func TestNoteStretchDur(t *testing.T) {
	n := NewNote(0, 5, 1, 100)
	stretched := n.StretchDur(1.5)

	assert := assert.New(t)
	assert.Equal(Note{Value: 0, Octave: 5, Dur: 1.5, Volume: 100}, stretched)
	assert.Equal(1.0, n.Dur)
}

func TestNoteEqualIgnoresVolume(t *testing.T) {
	assert := assert.New(t)
	assert.True(NewNote(3, 5, 1, 100).Equal(NewNote(3, 5, 1, 40)))
	assert.False(NewNote(3, 5, 1, 100).Equal(NewNote(3, 4, 1, 100)))
	assert.False(NewNote(3, 5, 1, 100).Equal(NewNote(3, 5, 2, 100)))
	assert.False(NewNote(3, 5, 1, 100).Equal(NewRest(1)))
}

func TestNoteFromString(t *testing.T) {
	n, err := NoteFromString("c#4'")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(Note{Value: 1, Octave: 5, Dur: 1, Volume: 120}, n)
}

func TestNoteFromStringRejectsRests(t *testing.T) {
	_, err := NoteFromString("r4")

	assert := assert.New(t)
	assert.ErrorIs(err, ErrBadToken)
}

func TestNoteTuple(t *testing.T) {
	n := NewNote(2, 6, 0.5, 80)

	assert := assert.New(t)
	assert.Equal(model.NoteTuple{Value: 2, Octave: 6, Dur: 0.5, Volume: 80}, n.Tuple())
	assert.True(n.Pitched())
}

func TestRest(t *testing.T) {
	r := NewRest(2)

	assert := assert.New(t)
	assert.False(r.Pitched())
	assert.Equal(model.NoteTuple{Value: -1, Octave: 0, Dur: 2, Volume: 0}, r.Tuple())
	assert.Equal(Rest{Dur: 3}, r.StretchDur(1.5))
	assert.True(r.Equal(NewRest(2)))
	assert.False(r.Equal(NewRest(1)))
	assert.False(r.Equal(NewNote(0, 5, 2, 100)))
}
