package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMIDIKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(60, Note{Step: StepC, Octave: 4}.MIDIKey())
	assert.Equal(69, Note{Step: StepA, Octave: 4}.MIDIKey())
	assert.Equal(58, Note{Step: StepB, Alter: -1, Octave: 3}.MIDIKey())
	assert.Equal(0, Note{Step: StepB, Alter: 1, Octave: 3}.PitchClass())
}

func TestSounding(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1.0, Duration{QuarterLength: 1}.Sounding())
	assert.Equal(1.5, Duration{QuarterLength: 1, Dots: 1}.Sounding())
	assert.Equal(3.5, Duration{QuarterLength: 2, Dots: 2}.Sounding())
}

func TestClassify(t *testing.T) {
	cases := []struct {
		event Event
		kind  Kind
		valid bool
	}{
		{NewNote(StepC, 0, 4, 1, 0), KindNote, true},
		{NewRest(1, 0), KindRest, true},
		{NewChord(1, 0, Note{Step: StepC, Octave: 4}), KindChord, true},
		{NewChord(1, 0), 0, false},
		{Event{Kind: KindNote, Notes: []Note{{Step: StepC}}}, 0, false},
		{Event{Kind: KindRest, Note: Note{Step: StepD}}, 0, false},
		{Event{}, 0, false},
	}

	for _, c := range cases {
		kind, err := c.event.Classify()
		if c.valid {
			assert.NoError(t, err)
			assert.Equal(t, c.kind, kind)
			continue
		}
		var invalid *InvalidInputError
		assert.True(t, errors.As(err, &invalid), "%+v", c.event)
	}
}

func TestBassBreaksEnharmonicTies(t *testing.T) {
	eSharp := Note{Step: StepE, Alter: 1, Octave: 3}
	f := Note{Step: StepF, Octave: 3}

	a, _ := Bass([]Note{f, eSharp})
	b, _ := Bass([]Note{eSharp, f})
	assert.Equal(t, eSharp, a)
	assert.Equal(t, eSharp, b)
}
