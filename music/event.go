package music

import (
	"github.com/jsphweid/noteseq/model"
)

// Event is one element of a sequence: either a Note or a Rest. The interface
// is closed so a NoteSeq can only ever hold those two variants.
type Event interface {
	// Tuple flattens the event into the shared 4-field shape consumed by
	// the MIDI writer.
	Tuple() model.NoteTuple

	// StretchDur returns a copy with the duration multiplied by factor.
	StretchDur(factor float64) Event

	// Pitched reports whether the event carries a pitch (false for rests).
	Pitched() bool

	// Equal compares two events. Events of different variants are never
	// equal.
	Equal(other Event) bool

	isEvent()
}
