package music

import (
	"fmt"

	"github.com/jsphweid/noteseq/model"
)

// Note is a pitched event. Value is the pitch class (0-11 after folding),
// Octave the register (5 is central), Dur the quarter-note-relative duration
// and Volume the MIDI velocity.
type Note struct {
	Value  int
	Octave int
	Dur    float64
	Volume int
}

// NewNote folds any multiple-of-12 overflow in value into the octave, so
// NewNote(12, 5, ...) stores value 0 at octave 6 and NewNote(-1, 5, ...)
// stores value 11 at octave 4.
func NewNote(value, octave int, dur float64, volume int) Note {
	offset, val := divmod(value, 12)
	return Note{
		Value:  val,
		Octave: octave + offset,
		Dur:    dur,
		Volume: volume,
	}
}

// NoteFromValue builds a note at the central octave with default duration
// and volume. Used where a bare pitch integer stands in for a note.
func NoteFromValue(value int) Note {
	return NewNote(value, DefaultOctave, DefaultDur, DefaultNoteVolume)
}

// NoteFromString parses a single notation token, e.g. "c#4'". Rest tokens
// are rejected.
func NoteFromString(token string) (Note, error) {
	ev, err := ParseNote(token, DefaultScoreVolume, DefaultOctave, DefaultDur)
	if err != nil {
		return Note{}, err
	}
	n, ok := ev.(Note)
	if !ok {
		return Note{}, fmt.Errorf("%w: %q is a rest", ErrBadToken, token)
	}
	return n, nil
}

// MidiNumber is the absolute semitone pitch, value + 12*octave.
func (n Note) MidiNumber() int {
	return n.Value + 12*n.Octave
}

// Sub returns the signed semitone interval between two notes.
func (n Note) Sub(other Note) int {
	return n.MidiNumber() - other.MidiNumber()
}

func (n Note) Transposition(index int) Note {
	return NewNote(n.Value+index, n.Octave, n.Dur, n.Volume)
}

// valueInOctave re-expresses the pitch relative to another octave, e.g. a
// note with value 11 at octave 4 has value -1 in terms of octave 5.
func (n Note) valueInOctave(octave int) int {
	return n.Value + 12*(n.Octave-octave)
}

// Inversion reflects the pitch around 2*axis within the note's own octave.
func (n Note) Inversion(axis int) Note {
	return n.InversionAround(axis, n.Octave)
}

// InversionAround reflects the pitch around 2*axis after re-expressing the
// note relative to refOctave, so a whole sequence can share one octave frame.
func (n Note) InversionAround(axis, refOctave int) Note {
	value := n.valueInOctave(refOctave)
	return NewNote(2*axis-value, refOctave, n.Dur, n.Volume)
}

func (n Note) StretchDur(factor float64) Event {
	return Note{Value: n.Value, Octave: n.Octave, Dur: n.Dur * factor, Volume: n.Volume}
}

func (n Note) Tuple() model.NoteTuple {
	return model.NoteTuple{Value: n.Value, Octave: n.Octave, Dur: n.Dur, Volume: n.Volume}
}

func (n Note) Pitched() bool {
	return true
}

// Equal ignores volume.
func (n Note) Equal(other Event) bool {
	o, ok := other.(Note)
	return ok && o.Value == n.Value && o.Octave == n.Octave && o.Dur == n.Dur
}

func (n Note) String() string {
	return fmt.Sprintf("<Note: %v.%v>", n.Value, n.Octave)
}

func (n Note) isEvent() {}

// divmod is floor division, matching the octave fold for negative values:
// divmod(-1, 12) is (-1, 11).
func divmod(a, b int) (int, int) {
	q := a / b
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		q--
		r += b
	}
	return q, r
}
