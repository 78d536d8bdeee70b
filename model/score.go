package model

import "fmt"

type Step byte

const (
	StepC Step = 'C'
	StepD Step = 'D'
	StepE Step = 'E'
	StepF Step = 'F'
	StepG Step = 'G'
	StepA Step = 'A'
	StepB Step = 'B'
)

func (s Step) String() string {
	if s == 0 {
		return "?"
	}
	return string(rune(s))
}

// ReferenceOctave is the octave written without octave marks.
const ReferenceOctave = 4

var stepSemitones = map[Step]int{
	StepC: 0, StepD: 2, StepE: 4, StepF: 5, StepG: 7, StepA: 9, StepB: 11,
}

type Note struct {
	Step   Step
	Octave int
	// -1 flat, 0 natural, 1 sharp
	Alter int
}

// MIDIKey returns the semitone number of the note, C4 = 60. An unknown step
// counts as C.
func (n Note) MIDIKey() int {
	return (n.Octave+1)*12 + stepSemitones[n.Step] + n.Alter
}

func (n Note) PitchClass() int {
	return ((n.MIDIKey() % 12) + 12) % 12
}

func (n Note) String() string {
	acc := ""
	switch n.Alter {
	case 1:
		acc = "#"
	case -1:
		acc = "b"
	}
	return fmt.Sprintf("%v%v%d", n.Step, acc, n.Octave)
}

type Duration struct {
	// undotted face value in quarter notes
	QuarterLength float64
	Dots          int
}

// Sounding returns the length in quarter notes including dots.
func (d Duration) Sounding() float64 {
	total := d.QuarterLength
	add := d.QuarterLength
	for i := 0; i < d.Dots; i++ {
		add /= 2
		total += add
	}
	return total
}

type Kind uint8

const (
	KindNote Kind = iota + 1
	KindRest
	KindChord
)

func (k Kind) String() string {
	switch k {
	case KindNote:
		return "note"
	case KindRest:
		return "rest"
	case KindChord:
		return "chord"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

type Event struct {
	Kind Kind
	Duration

	// set for KindNote
	Note Note
	// set for KindChord
	Notes []Note
}

// Classify reports the kind of the event, checking that the payload matches
// the declared kind.
func (e Event) Classify() (Kind, error) {
	switch e.Kind {
	case KindRest:
		if len(e.Notes) > 0 || e.Note.Step != 0 {
			return 0, NewInvalidInputError("rest carries pitch data")
		}
		return KindRest, nil
	case KindNote:
		if len(e.Notes) > 0 {
			return 0, NewInvalidInputError("note carries chord tones")
		}
		return KindNote, nil
	case KindChord:
		if len(e.Notes) == 0 {
			return 0, NewInvalidInputError("chord has no notes")
		}
		return KindChord, nil
	}
	return 0, NewInvalidInputError("unknown event " + e.Kind.String())
}

func NewNote(step Step, alter, octave int, quarterLength float64, dots int) Event {
	return Event{
		Kind:     KindNote,
		Duration: Duration{QuarterLength: quarterLength, Dots: dots},
		Note:     Note{Step: step, Octave: octave, Alter: alter},
	}
}

func NewRest(quarterLength float64, dots int) Event {
	return Event{
		Kind:     KindRest,
		Duration: Duration{QuarterLength: quarterLength, Dots: dots},
	}
}

func NewChord(quarterLength float64, dots int, notes ...Note) Event {
	return Event{
		Kind:     KindChord,
		Duration: Duration{QuarterLength: quarterLength, Dots: dots},
		Notes:    notes,
	}
}

type Measure struct {
	// 1-based
	Number int
	Events []Event
}

type Part struct {
	ID       string
	Name     string
	Measures []Measure
}

type Score struct {
	Title string
	Parts []Part
}
