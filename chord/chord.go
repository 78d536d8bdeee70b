package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/jianpu/model"
)

// CreateChordKey names a voicing by its sorted MIDI keys, e.g. "60-64-67".
func CreateChordKey(notes []model.Note) string {
	keys := make([]int, 0, len(notes))
	for _, n := range notes {
		keys = append(keys, n.MIDIKey())
	}
	sort.Ints(keys)
	var res string
	for i, key := range keys {
		res += fmt.Sprintf("%v", key)
		if i < len(keys)-1 {
			res += "-"
		}
	}
	return res
}

// RootFinder picks the harmonic root of a set of chord tones. ok is false
// when the tones form no recognized quality.
type RootFinder interface {
	Root(notes []model.Note) (root model.Note, ok bool)
}

// Reducer collapses a chord event into one representative note: the root
// when the finder recognizes one, the bass otherwise.
type Reducer struct {
	Finder RootFinder
}

func NewReducer(finder RootFinder) *Reducer {
	if finder == nil {
		finder = TriadRootFinder{}
	}
	return &Reducer{Finder: finder}
}

func (r *Reducer) Reduce(e model.Event) (model.Note, error) {
	if e.Kind != model.KindChord {
		return model.Note{}, model.NewInvalidInputError(fmt.Sprintf("cannot reduce a %v to a single note", e.Kind))
	}
	if _, err := e.Classify(); err != nil {
		return model.Note{}, err
	}

	if root, ok := r.Finder.Root(e.Notes); ok {
		return root, nil
	}
	bass, _ := model.Bass(e.Notes)
	return bass, nil
}
