package model

type PitchClassSet = map[int]bool

// Lower orders notes by sounding pitch. Enharmonic spellings of one pitch
// are ordered by octave, step and alteration so the order never depends on
// how tones were listed.
func Lower(a, b Note) bool {
	if a.MIDIKey() != b.MIDIKey() {
		return a.MIDIKey() < b.MIDIKey()
	}
	if a.Octave != b.Octave {
		return a.Octave < b.Octave
	}
	if a.Step != b.Step {
		return a.Step < b.Step
	}
	return a.Alter < b.Alter
}

// Bass returns the lowest sounding tone.
func Bass(notes []Note) (Note, bool) {
	if len(notes) == 0 {
		return Note{}, false
	}
	bass := notes[0]
	for _, n := range notes[1:] {
		if Lower(n, bass) {
			bass = n
		}
	}
	return bass, true
}

func PitchClasses(notes []Note) PitchClassSet {
	res := make(PitchClassSet)
	for _, n := range notes {
		res[n.PitchClass()] = true
	}
	return res
}
