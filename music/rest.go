package music

import (
	"fmt"

	"github.com/jsphweid/noteseq/model"
)

// Rest is a silent event carrying only a duration.
type Rest struct {
	Dur float64
}

func NewRest(dur float64) Rest {
	return Rest{Dur: dur}
}

// Tuple uses -1 as the pitch placeholder so rests flatten to the same shape
// as notes.
func (r Rest) Tuple() model.NoteTuple {
	return model.NoteTuple{Value: -1, Octave: 0, Dur: r.Dur, Volume: 0}
}

func (r Rest) StretchDur(factor float64) Event {
	return Rest{Dur: r.Dur * factor}
}

func (r Rest) Pitched() bool {
	return false
}

func (r Rest) Equal(other Event) bool {
	o, ok := other.(Rest)
	return ok && o.Dur == r.Dur
}

func (r Rest) String() string {
	return fmt.Sprintf("<Rest: %v>", r.Dur)
}

func (r Rest) isEvent() {}
