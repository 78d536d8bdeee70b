package midi

import (
	"io"
	"math"
	"os"

	"github.com/jsphweid/jianpu/model"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	TicksPerQuarter = 960
	DefaultTempo    = 120.0

	melodyChannel  = 0
	melodyVelocity = 100
)

func ticks(quarters float64) uint32 {
	return uint32(math.Round(quarters * TicksPerQuarter))
}

func midiKey(n model.Note) uint8 {
	key := n.MIDIKey()
	if key < 0 {
		return 0
	}
	if key > 127 {
		return 127
	}
	return uint8(key)
}

// MelodyToSMF lays the melody out on a single track, one note after the
// other. Rests only advance time.
func MelodyToSMF(melody model.Melody, name string) *smf.SMF {
	var conductor smf.Track
	conductor.Add(0, smf.MetaMeter(4, 4))
	conductor.Add(0, smf.MetaTempo(DefaultTempo))
	conductor.Close(0)

	var track smf.Track
	if name != "" {
		track.Add(0, smf.MetaTrackSequenceName(name))
	}
	var pending uint32
	for _, e := range melody {
		length := ticks(e.Sounding())
		if e.Kind != model.KindNote {
			pending += length
			continue
		}
		key := midiKey(e.Note)
		track.Add(pending, gomidi.NoteOn(melodyChannel, key, melodyVelocity))
		track.Add(length, gomidi.NoteOff(melodyChannel, key))
		pending = 0
	}
	track.Close(pending)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)
	s.Add(conductor)
	s.Add(track)
	return s
}

func WriteMelody(w io.Writer, melody model.Melody, name string) error {
	if _, err := MelodyToSMF(melody, name).WriteTo(w); err != nil {
		return errors.Wrap(err, "could not write melody")
	}
	return nil
}

func WriteMelodyFile(path string, melody model.Melody, name string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %v", path)
	}
	defer f.Close()

	if err := WriteMelody(f, melody, name); err != nil {
		return err
	}
	return f.Close()
}
