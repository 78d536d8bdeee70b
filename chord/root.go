package chord

import (
	"sort"

	"github.com/jsphweid/jianpu/model"
	"github.com/jsphweid/jianpu/util"
)

type Quality struct {
	Name string
	// semitones above the root, ascending
	Intervals []int
}

var qualities = []Quality{
	{"unison", nil},
	{"major", []int{4, 7}},
	{"minor", []int{3, 7}},
	{"diminished", []int{3, 6}},
	{"augmented", []int{4, 8}},
	{"dominant seventh", []int{4, 7, 10}},
	{"major seventh", []int{4, 7, 11}},
	{"minor seventh", []int{3, 7, 10}},
	{"minor-major seventh", []int{3, 7, 11}},
	{"half-diminished seventh", []int{3, 6, 10}},
	{"diminished seventh", []int{3, 6, 9}},
	{"augmented major seventh", []int{4, 8, 11}},
	{"dominant seventh", []int{4, 10}},
	{"major seventh", []int{4, 11}},
	{"minor seventh", []int{3, 10}},
}

type Analysis struct {
	Root    model.Note
	Quality Quality
}

// TriadRootFinder recognizes triads and seventh chords (sevenths also with
// the fifth omitted) over the pitch-class set of the tones.
type TriadRootFinder struct{}

func (f TriadRootFinder) Root(notes []model.Note) (model.Note, bool) {
	a, ok := f.Analyze(notes)
	return a.Root, ok
}

func (TriadRootFinder) Analyze(notes []model.Note) (Analysis, bool) {
	pcs := model.PitchClasses(notes)
	if len(pcs) == 0 {
		return Analysis{}, false
	}
	sorted := util.GetKeys(pcs)
	sort.Ints(sorted)

	var candidates []int
	matched := make(map[int]Quality)
	for _, pc := range sorted {
		if q, ok := matchQuality(pcs, pc); ok {
			candidates = append(candidates, pc)
			matched[pc] = q
		}
	}
	if len(candidates) == 0 {
		return Analysis{}, false
	}

	// symmetric chords (augmented, diminished seventh) match on several
	// roots: the bass wins, then the lowest sounding candidate
	bass, _ := model.Bass(notes)
	root := -1
	for _, pc := range candidates {
		if pc == bass.PitchClass() {
			root = pc
		}
	}
	if root < 0 {
		var lowest *model.Note
		for i, n := range notes {
			if _, ok := matched[n.PitchClass()]; !ok {
				continue
			}
			if lowest == nil || model.Lower(n, *lowest) {
				lowest = &notes[i]
			}
		}
		root = lowest.PitchClass()
	}

	return Analysis{
		Root:    lowestWithPitchClass(notes, root),
		Quality: matched[root],
	}, true
}

func matchQuality(pcs model.PitchClassSet, root int) (Quality, bool) {
	var intervals []int
	for pc := range pcs {
		if pc != root {
			intervals = append(intervals, (pc-root+12)%12)
		}
	}
	sort.Ints(intervals)

	for _, q := range qualities {
		if equalInts(q.Intervals, intervals) {
			return q, true
		}
	}
	return Quality{}, false
}

func lowestWithPitchClass(notes []model.Note, pc int) model.Note {
	var res model.Note
	found := false
	for _, n := range notes {
		if n.PitchClass() != pc {
			continue
		}
		if !found || model.Lower(n, res) {
			res = n
			found = true
		}
	}
	return res
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
