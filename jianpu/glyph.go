package jianpu

// Marks used in Jianpu tokens. The octave and sub-beat marks are Unicode
// combining characters that attach to the preceding digit.
const (
	Sharp = "♯" // U+266F
	Flat  = "♭" // U+266D

	HighOctave = "̇"
	LowOctave  = "̣"

	EighthMark       = "̱"
	SixteenthMark    = "̳"
	ThirtySecondMark = "̹"
	SixtyFourthMark  = "̺"

	DotMark = "·" // U+00B7

	ExtensionDash = "  -"
	RestDigit     = "0"
)
