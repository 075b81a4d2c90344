package model

// NoteTuple is the flattened (value, octave, duration, volume) shape shared
// by notes and rests. Rests use Value -1 so heterogeneous sequences can be
// serialized uniformly.
type NoteTuple struct {
	Value  int
	Octave int
	Dur    float64
	Volume int
}

func (t NoteTuple) Pitched() bool {
	return t.Value >= 0
}

// MidiNumber is the absolute semitone pitch. Octave 5 maps C to 60.
func (t NoteTuple) MidiNumber() int {
	return t.Value + 12*t.Octave
}
