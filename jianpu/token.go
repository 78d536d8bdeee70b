package jianpu

import (
	"github.com/jsphweid/jianpu/chord"
	"github.com/jsphweid/jianpu/model"
)

// EncodeNote renders a single pitched note of duration d.
func EncodeNote(n model.Note, d model.Duration) string {
	return EncodePitch(n) + NoteSuffix(d)
}

// Assembler turns score events into tokens and feeds the melody of the
// Result it is given.
type Assembler struct {
	reducer *chord.Reducer
}

func NewAssembler(finder chord.RootFinder) *Assembler {
	return &Assembler{reducer: chord.NewReducer(finder)}
}

// Token encodes e and appends its representative note (or the rest itself)
// to res.
func (a *Assembler) Token(e model.Event, res *Result) (string, error) {
	kind, err := e.Classify()
	if err != nil {
		return "", err
	}

	switch kind {
	case model.KindRest:
		res.appendMelody(model.NewRest(e.QuarterLength, e.Dots))
		return RestToken(e.Duration), nil
	case model.KindChord:
		root, err := a.reducer.Reduce(e)
		if err != nil {
			return "", err
		}
		res.appendMelody(model.Event{Kind: model.KindNote, Duration: e.Duration, Note: root})
		return EncodeNote(root, e.Duration), nil
	default:
		res.appendMelody(model.Event{Kind: model.KindNote, Duration: e.Duration, Note: e.Note})
		return EncodeNote(e.Note, e.Duration), nil
	}
}
