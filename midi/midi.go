package midi

import (
	"fmt"

	"github.com/jsphweid/noteseq/constants"
	"github.com/jsphweid/noteseq/model"
	"github.com/jsphweid/noteseq/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const channel = 0

// NewSMF builds a single-track standard MIDI file from flattened note
// tuples. Rests accumulate delta time before the next note-on.
func NewSMF(tuples []model.NoteTuple, bpm float64) (*smf.SMF, error) {
	clock := smf.MetricTicks(constants.TicksPerQuarter)
	s := smf.New()
	s.TimeFormat = clock

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName("noteseq"))
	tr.Add(0, smf.MetaTempo(bpm))

	var pending uint32
	for _, t := range tuples {
		durTicks := uint32(t.Dur * float64(clock.Ticks4th()))
		if !t.Pitched() {
			pending += durTicks
			continue
		}
		key := t.MidiNumber()
		if key < 0 || key > 127 {
			return nil, fmt.Errorf("note out of midi range: %v", key)
		}
		vel := uint8(util.Clamp(t.Volume, 0, 127))
		tr.Add(pending, midi.NoteOn(channel, uint8(key), vel))
		tr.Add(durTicks, midi.NoteOff(channel, uint8(key)))
		pending = 0
	}
	tr.Close(0)
	s.Add(tr)
	return s, nil
}
