package jianpu

import (
	"strings"

	"github.com/jsphweid/jianpu/model"
)

type DurationClass int

const (
	// Unrecognized covers every quarter length outside the table below. It
	// renders like Quarter.
	Unrecognized DurationClass = iota
	Whole
	Half
	Quarter
	Eighth
	Sixteenth
	ThirtySecond
	SixtyFourth
)

var durationClasses = map[float64]DurationClass{
	4:      Whole,
	2:      Half,
	1:      Quarter,
	0.5:    Eighth,
	0.25:   Sixteenth,
	0.125:  ThirtySecond,
	0.0625: SixtyFourth,
}

type classGlyphs struct {
	name       string
	noteSuffix string
	rest       string
}

var glyphs = map[DurationClass]classGlyphs{
	Whole:        {"whole", strings.Repeat(ExtensionDash, 3), "0000"},
	Half:         {"half", ExtensionDash, "00"},
	Quarter:      {"quarter", "", RestDigit},
	Eighth:       {"eighth", EighthMark, RestDigit + EighthMark},
	Sixteenth:    {"16th", SixteenthMark, RestDigit + SixteenthMark},
	ThirtySecond: {"32nd", ThirtySecondMark, RestDigit + ThirtySecondMark},
	SixtyFourth:  {"64th", SixtyFourthMark, RestDigit + SixtyFourthMark},
	Unrecognized: {"unrecognized", "", RestDigit},
}

func (c DurationClass) String() string {
	return glyphs[c].name
}

func ClassifyDuration(quarterLength float64) DurationClass {
	if c, ok := durationClasses[quarterLength]; ok {
		return c
	}
	return Unrecognized
}

func DotSuffix(dots int) string {
	switch dots {
	case 1:
		return DotMark
	case 2:
		return DotMark + DotMark
	}
	return ""
}

// NoteSuffix is the duration decoration appended after a note's pitch:
// extension dashes or a sub-beat mark, then dots.
func NoteSuffix(d model.Duration) string {
	return glyphs[ClassifyDuration(d.QuarterLength)].noteSuffix + DotSuffix(d.Dots)
}

// RestToken is the complete token for a rest of duration d.
func RestToken(d model.Duration) string {
	return glyphs[ClassifyDuration(d.QuarterLength)].rest + DotSuffix(d.Dots)
}
