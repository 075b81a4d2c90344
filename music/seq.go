package music

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/noteseq/model"
	"github.com/jsphweid/noteseq/util"
)

var (
	ErrNotNoteOrRest = errors.New("every element must be a Note or a Rest")
	ErrEmptySeq      = errors.New("sequence is empty")
	ErrUnpitched     = errors.New("operation needs a pitched note, got a rest")
)

// NoteSeq is an ordered, mutable sequence of Note and Rest events. Container
// operations mutate in place, transformations return new sequences.
type NoteSeq struct {
	items []Event
}

// NewNoteSeq copies events into a fresh sequence. Nil or foreign elements
// fail the whole construction.
func NewNoteSeq(events []Event) (*NoteSeq, error) {
	items := make([]Event, len(events))
	for i, ev := range events {
		switch ev.(type) {
		case Note, Rest:
		default:
			return nil, fmt.Errorf("%w, element %v is %T", ErrNotNoteOrRest, i, ev)
		}
		items[i] = ev
	}
	return &NoteSeq{items: items}, nil
}

// EmptyNoteSeq returns a sequence with no elements.
func EmptyNoteSeq() *NoteSeq {
	return &NoteSeq{}
}

// ParseNoteSeq parses whitespace-separated notation, e.g. "c4 d8 r8 e".
func ParseNoteSeq(notation string, volume int) (*NoteSeq, error) {
	events, err := ParseNotes(strings.Fields(notation), volume)
	if err != nil {
		return nil, err
	}
	return &NoteSeq{items: events}, nil
}

func (s *NoteSeq) Len() int {
	return len(s.items)
}

func (s *NoteSeq) At(i int) Event {
	return s.items[i]
}

// Slice returns a copy of the half-open range [i, j).
func (s *NoteSeq) Slice(i, j int) *NoteSeq {
	items := make([]Event, j-i)
	copy(items, s.items[i:j])
	return &NoteSeq{items: items}
}

func (s *NoteSeq) Set(i int, ev Event) {
	s.items[i] = ev
}

func (s *NoteSeq) Insert(i int, ev Event) {
	s.items = append(s.items, nil)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = ev
}

func (s *NoteSeq) Delete(i int) {
	s.items = append(s.items[:i], s.items[i+1:]...)
}

func (s *NoteSeq) Append(ev Event) {
	s.items = append(s.items, ev)
}

// Events returns a copy of the element slice.
func (s *NoteSeq) Events() []Event {
	items := make([]Event, len(s.items))
	copy(items, s.items)
	return items
}

// Concat returns a new sequence with other's elements appended.
func (s *NoteSeq) Concat(other *NoteSeq) *NoteSeq {
	items := make([]Event, 0, len(s.items)+len(other.items))
	items = append(items, s.items...)
	items = append(items, other.items...)
	return &NoteSeq{items: items}
}

// Repeat returns a new sequence with the elements repeated n times.
func (s *NoteSeq) Repeat(n int) *NoteSeq {
	var items []Event
	for i := 0; i < n; i++ {
		items = append(items, s.items...)
	}
	return &NoteSeq{items: items}
}

// Equal is element-wise; sequences of different lengths are never equal.
func (s *NoteSeq) Equal(other *NoteSeq) bool {
	if other == nil || len(s.items) != len(other.items) {
		return false
	}
	for i, ev := range s.items {
		if !ev.Equal(other.items[i]) {
			return false
		}
	}
	return true
}

// Tuples flattens the sequence into the shape consumed by the MIDI writer.
func (s *NoteSeq) Tuples() []model.NoteTuple {
	res := make([]model.NoteTuple, len(s.items))
	for i, ev := range s.items {
		res[i] = ev.Tuple()
	}
	return res
}

// Retrograde returns the sequence reversed.
func (s *NoteSeq) Retrograde() *NoteSeq {
	return &NoteSeq{items: util.Reverse(s.items)}
}

// Rotate cyclically left-rotates by n mod length.
func (s *NoteSeq) Rotate(n int) (*NoteSeq, error) {
	if len(s.items) == 0 {
		return nil, fmt.Errorf("rotate: %w", ErrEmptySeq)
	}
	m := n % len(s.items)
	if m < 0 {
		m += len(s.items)
	}
	items := make([]Event, 0, len(s.items))
	items = append(items, s.items[m:]...)
	items = append(items, s.items[:m]...)
	return &NoteSeq{items: items}, nil
}

// Transposition shifts every note by index semitones. Rests pass through.
func (s *NoteSeq) Transposition(index int) *NoteSeq {
	items := make([]Event, len(s.items))
	for i, ev := range s.items {
		if n, ok := ev.(Note); ok {
			items[i] = n.Transposition(index)
		} else {
			items[i] = ev
		}
	}
	return &NoteSeq{items: items}
}

// TranspositionStartsWith transposes so the first note becomes start.
func (s *NoteSeq) TranspositionStartsWith(start Note) (*NoteSeq, error) {
	first, err := s.firstNote()
	if err != nil {
		return nil, fmt.Errorf("transposition startswith: %w", err)
	}
	return s.Transposition(start.Sub(first)), nil
}

// Inversion reflects every note around 2*axis, with the first element's
// octave as the shared reference frame. Rests pass through.
func (s *NoteSeq) Inversion(axis int) (*NoteSeq, error) {
	first, err := s.firstNote()
	if err != nil {
		return nil, fmt.Errorf("inversion: %w", err)
	}
	items := make([]Event, len(s.items))
	for i, ev := range s.items {
		if n, ok := ev.(Note); ok {
			items[i] = n.InversionAround(axis, first.Octave)
		} else {
			items[i] = ev
		}
	}
	return &NoteSeq{items: items}, nil
}

// InversionStartsWith inverts the sequence anchored so that the first
// resulting note equals start.
func (s *NoteSeq) InversionStartsWith(start Note) (*NoteSeq, error) {
	zero := NewNote(0, start.Octave, DefaultDur, DefaultNoteVolume)
	shifted, err := s.TranspositionStartsWith(zero)
	if err != nil {
		return nil, err
	}
	inv, err := shifted.Inversion(0)
	if err != nil {
		return nil, err
	}
	return inv.TranspositionStartsWith(start)
}

// Intervals returns the successive pitch-value differences between
// consecutive elements, excluding the wraparound pair: length-1 values.
// Every element must be pitched.
func (s *NoteSeq) Intervals() ([]int, error) {
	if len(s.items) == 0 {
		return nil, fmt.Errorf("intervals: %w", ErrEmptySeq)
	}
	values := make([]int, len(s.items))
	for i, ev := range s.items {
		n, ok := ev.(Note)
		if !ok {
			return nil, fmt.Errorf("intervals: %w", ErrUnpitched)
		}
		values[i] = n.Value
	}
	res := make([]int, 0, len(values)-1)
	for i := 0; i < len(values)-1; i++ {
		res = append(res, values[i+1]-values[i])
	}
	return res, nil
}

// StretchInterval rebuilds the sequence from its first note, widening (or
// narrowing) every step interval by factor semitones.
func (s *NoteSeq) StretchInterval(factor int) (*NoteSeq, error) {
	intervals, err := s.Intervals()
	if err != nil {
		return nil, fmt.Errorf("stretch interval: %w", err)
	}
	note := s.items[0].(Note)
	items := []Event{note}
	for _, interval := range intervals {
		note = note.Transposition(interval + factor)
		items = append(items, note)
	}
	return &NoteSeq{items: items}, nil
}

// StretchDur scales every element's duration by factor.
func (s *NoteSeq) StretchDur(factor float64) *NoteSeq {
	items := make([]Event, len(s.items))
	for i, ev := range s.items {
		items[i] = ev.StretchDur(factor)
	}
	return &NoteSeq{items: items}
}

func (s *NoteSeq) String() string {
	return fmt.Sprintf("<Seq: %v>", s.items)
}

func (s *NoteSeq) firstNote() (Note, error) {
	if len(s.items) == 0 {
		return Note{}, ErrEmptySeq
	}
	n, ok := s.items[0].(Note)
	if !ok {
		return Note{}, ErrUnpitched
	}
	return n, nil
}
