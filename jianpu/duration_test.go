package jianpu

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jsphweid/jianpu/model"
	"github.com/stretchr/testify/assert"
)

var subBeatMarks = []string{EighthMark, SixteenthMark, ThirtySecondMark, SixtyFourthMark}

func countSubBeatMarks(s string) int {
	var n int
	for _, m := range subBeatMarks {
		n += strings.Count(s, m)
	}
	return n
}

func TestClassifyDuration(t *testing.T) {
	cases := map[float64]DurationClass{
		4:      Whole,
		2:      Half,
		1:      Quarter,
		0.5:    Eighth,
		0.25:   Sixteenth,
		0.125:  ThirtySecond,
		0.0625: SixtyFourth,
		1.5:    Unrecognized,
		1.0 / 3: Unrecognized,
		0:      Unrecognized,
		8:      Unrecognized,
	}
	for ql, want := range cases {
		assert.Equal(t, want, ClassifyDuration(ql), "quarter length %v", ql)
	}
}

func TestNoteDurations(t *testing.T) {
	c4 := model.Note{Step: model.StepC, Octave: 4}
	cases := []struct {
		ql     float64
		want   string
		dashes int
		marks  int
	}{
		{4, "1  -  -  -", 3, 0},
		{2, "1  -", 1, 0},
		{1, "1", 0, 0},
		{0.5, "1" + EighthMark, 0, 1},
		{0.25, "1" + SixteenthMark, 0, 1},
		{0.125, "1" + ThirtySecondMark, 0, 1},
		{0.0625, "1" + SixtyFourthMark, 0, 1},
		{0.75, "1", 0, 0},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("ql %v", c.ql), func(t *testing.T) {
			got := EncodeNote(c4, model.Duration{QuarterLength: c.ql})

			assert := assert.New(t)
			assert.Equal(c.want, got)
			assert.Equal(c.dashes, strings.Count(got, "-"))
			assert.Equal(c.marks, countSubBeatMarks(got))
		})
	}
}

func TestRestTokens(t *testing.T) {
	cases := []struct {
		d    model.Duration
		want string
	}{
		{model.Duration{QuarterLength: 4}, "0000"},
		{model.Duration{QuarterLength: 2}, "00"},
		{model.Duration{QuarterLength: 1}, "0"},
		{model.Duration{QuarterLength: 0.5}, "0" + EighthMark},
		{model.Duration{QuarterLength: 0.0625}, "0" + SixtyFourthMark},
		{model.Duration{QuarterLength: 3}, "0"},
		{model.Duration{QuarterLength: 1, Dots: 1}, "0·"},
		{model.Duration{QuarterLength: 2, Dots: 2}, "00··"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RestToken(c.d), "%+v", c.d)
	}
}

func TestDotsAreAdditive(t *testing.T) {
	assert := assert.New(t)
	for _, step := range allSteps {
		for _, ql := range []float64{4, 2, 1, 0.5, 0.25, 0.125, 0.0625, 1.5} {
			n := model.Note{Step: step, Octave: 3, Alter: -1}
			plain := EncodeNote(n, model.Duration{QuarterLength: ql})
			assert.Equal(plain+DotMark, EncodeNote(n, model.Duration{QuarterLength: ql, Dots: 1}))
			assert.Equal(plain+DotMark+DotMark, EncodeNote(n, model.Duration{QuarterLength: ql, Dots: 2}))
		}
	}
}

func TestUnsupportedDotCount(t *testing.T) {
	assert.Equal(t, "", DotSuffix(3))
	assert.Equal(t, "", DotSuffix(0))
}
