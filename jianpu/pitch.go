package jianpu

import (
	"strings"

	"github.com/jsphweid/jianpu/model"
)

var jianpuDigits = map[model.Step]string{
	model.StepC: "1",
	model.StepD: "2",
	model.StepE: "3",
	model.StepF: "4",
	model.StepG: "5",
	model.StepA: "6",
	model.StepB: "7",
}

// EncodePitch renders the scale degree of n with its accidental prefix and
// octave marks. An unknown step renders as an empty digit.
func EncodePitch(n model.Note) string {
	var b strings.Builder
	switch n.Alter {
	case 1:
		b.WriteString(Sharp)
	case -1:
		b.WriteString(Flat)
	}

	b.WriteString(jianpuDigits[n.Step])

	if n.Octave < model.ReferenceOctave {
		b.WriteString(strings.Repeat(LowOctave, model.ReferenceOctave-n.Octave))
	} else if n.Octave > model.ReferenceOctave {
		b.WriteString(strings.Repeat(HighOctave, n.Octave-model.ReferenceOctave))
	}
	return b.String()
}
