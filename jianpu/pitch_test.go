package jianpu

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jsphweid/jianpu/model"
	"github.com/stretchr/testify/assert"
)

var allSteps = []model.Step{
	model.StepC, model.StepD, model.StepE, model.StepF, model.StepG, model.StepA, model.StepB,
}

func TestPlainDegrees(t *testing.T) {
	assert := assert.New(t)
	for i, step := range allSteps {
		n := model.Note{Step: step, Octave: 4}
		assert.Equal(fmt.Sprint(i+1), EncodeNote(n, model.Duration{QuarterLength: 1}))
	}
}

func TestOctaveMarks(t *testing.T) {
	for octave := 0; octave <= 8; octave++ {
		t.Run(fmt.Sprintf("octave %d", octave), func(t *testing.T) {
			got := EncodePitch(model.Note{Step: model.StepG, Octave: octave})

			low, high := 0, 0
			if octave < 4 {
				low = 4 - octave
			}
			if octave > 4 {
				high = octave - 4
			}
			assert := assert.New(t)
			assert.Equal(low, strings.Count(got, LowOctave))
			assert.Equal(high, strings.Count(got, HighOctave))
			assert.True(strings.HasPrefix(got, "5"))
		})
	}
}

func TestAccidentals(t *testing.T) {
	cases := []struct {
		note model.Note
		want string
	}{
		{model.Note{Step: model.StepF, Alter: 1, Octave: 4}, "♯4"},
		{model.Note{Step: model.StepB, Alter: -1, Octave: 3}, "♭7" + LowOctave},
		{model.Note{Step: model.StepE, Alter: 0, Octave: 5}, "3" + HighOctave},
		// double sharps have no glyph
		{model.Note{Step: model.StepC, Alter: 2, Octave: 4}, "1"},
	}

	for _, c := range cases {
		t.Run(c.note.String(), func(t *testing.T) {
			assert.Equal(t, c.want, EncodePitch(c.note))
		})
	}
}

func TestUnknownStepKeepsDecorations(t *testing.T) {
	got := EncodePitch(model.Note{Step: 'H', Alter: 1, Octave: 2})
	assert.Equal(t, Sharp+LowOctave+LowOctave, got)
}
