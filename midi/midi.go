package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading midi file")
	}
	return ReadMidi(bytes.NewReader(dat))
}

func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = errors.Errorf("error parsing midi file: %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing midi file")
	}
	return res, nil
}

// NoteEvent is a sounding note with start and length in quarter notes.
type NoteEvent struct {
	Track  int
	Key    uint8
	Start  float64
	Length float64
}

func (n NoteEvent) String() string {
	return fmt.Sprintf("track %d key %d at %.3f for %.3f", n.Track, n.Key, n.Start, n.Length)
}

// ReadNotes pairs note starts with their ends across all tracks, ordered by
// start time.
func ReadNotes(s *smf.SMF) []NoteEvent {
	resolution := float64(TicksPerQuarter)
	if mt, ok := s.TimeFormat.(smf.MetricTicks); ok {
		resolution = float64(mt)
	}

	var res []NoteEvent
	for i, events := range s.Tracks {
		var absTicks int64
		pressed := make(map[uint8]int64)
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			var isEnd bool
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				if velocity > 0 {
					pressed[key] = absTicks
					continue
				}
				isEnd = true
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				isEnd = true
			}
			if isEnd {
				start, ok := pressed[key]
				if !ok {
					continue
				}
				delete(pressed, key)
				res = append(res, NoteEvent{
					Track:  i,
					Key:    key,
					Start:  float64(start) / resolution,
					Length: float64(absTicks-start) / resolution,
				})
			}
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Start < res[j].Start
	})
	return res
}
