package musicxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"math"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jsphweid/jianpu/model"
	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

var typeQuarterLengths = map[string]float64{
	"maxima":  32,
	"long":    16,
	"breve":   8,
	"whole":   4,
	"half":    2,
	"quarter": 1,
	"eighth":  0.5,
	"16th":    0.25,
	"32nd":    0.125,
	"64th":    0.0625,
	"128th":   0.03125,
	"256th":   0.015625,
}

func ReadFile(p string) (*model.Score, error) {
	dat, err := os.ReadFile(p)
	if err != nil {
		return nil, errors.Wrap(err, "error reading score")
	}
	if strings.EqualFold(filepath.Ext(p), ".mxl") {
		return DecodeCompressed(dat)
	}
	return Decode(bytes.NewReader(dat))
}

func Decode(r io.Reader) (*model.Score, error) {
	var doc Doc
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "error decoding MusicXML")
	}
	return doc.ToScore()
}

type container struct {
	Rootfiles []struct {
		FullPath string `xml:"full-path,attr"`
	} `xml:"rootfiles>rootfile"`
}

// DecodeCompressed reads a zipped .mxl archive.
func DecodeCompressed(dat []byte) (*model.Score, error) {
	zr, err := zip.NewReader(bytes.NewReader(dat), int64(len(dat)))
	if err != nil {
		return nil, errors.Wrap(err, "error opening mxl archive")
	}

	files := make(map[string]*zip.File)
	for _, f := range zr.File {
		files[f.Name] = f
	}

	var root string
	if f, ok := files["META-INF/container.xml"]; ok {
		var c container
		if err := decodeZipFile(f, &c); err != nil {
			return nil, errors.Wrap(err, "error reading mxl container")
		}
		if len(c.Rootfiles) > 0 {
			root = c.Rootfiles[0].FullPath
		}
	}
	if root == "" {
		for _, f := range zr.File {
			if !strings.HasPrefix(f.Name, "META-INF/") && strings.EqualFold(path.Ext(f.Name), ".xml") {
				root = f.Name
				break
			}
		}
	}

	f, ok := files[root]
	if !ok {
		return nil, errors.New("mxl archive has no score file")
	}
	rc, err := f.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "error opening %v", root)
	}
	defer rc.Close()
	return Decode(rc)
}

func decodeZipFile(f *zip.File, v interface{}) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	return xml.NewDecoder(rc).Decode(v)
}

func (d *Doc) Title() string {
	if d.Work.Title != "" {
		return d.Work.Title
	}
	return d.MovementTitle
}

func (d *Doc) ToScore() (*model.Score, error) {
	names := make(map[string]string)
	for _, sp := range d.PartList {
		names[sp.Id] = strings.TrimSpace(sp.Name)
	}

	score := &model.Score{Title: d.Title()}
	for _, p := range d.Parts {
		part, err := convertPart(p)
		if err != nil {
			return nil, errors.Wrapf(err, "part %v", p.Id)
		}
		part.Name = names[p.Id]
		score.Parts = append(score.Parts, part)
	}
	return score, nil
}

// convertPart keeps the first voice of every measure: notes after a
// <backup> or in another <voice> belong to voices the melody ignores.
func convertPart(p Part) (model.Part, error) {
	res := model.Part{ID: p.Id}
	divisions := 1
	voice := ""

	for i, m := range p.Measures {
		measure := model.Measure{Number: i + 1}
		backedUp := false
		for _, ev := range m.Events {
			switch v := ev.(type) {
			case Attributes:
				if v.Divisions > 0 {
					divisions = v.Divisions
				}
			case Backup:
				backedUp = true
			case Note:
				if v.Grace != nil || backedUp {
					continue
				}
				if voice == "" {
					voice = v.Voice
				}
				if v.Voice != "" && v.Voice != voice {
					continue
				}
				if err := addNote(&measure, v, divisions); err != nil {
					return res, errors.Wrapf(err, "measure %v", m.Number)
				}
			}
		}
		res.Measures = append(res.Measures, measure)
	}
	return res, nil
}

func duration(n Note, divisions int) model.Duration {
	if ql, ok := typeQuarterLengths[n.Type]; ok {
		return model.Duration{QuarterLength: ql, Dots: len(n.Dots)}
	}
	return model.Duration{QuarterLength: float64(n.Duration) / float64(divisions)}
}

func toNote(p Pitch) (model.Note, error) {
	step := strings.ToUpper(strings.TrimSpace(p.Step))
	if len(step) != 1 {
		return model.Note{}, errors.Errorf("invalid step %q", p.Step)
	}
	return model.Note{
		Step:   model.Step(step[0]),
		Octave: p.Octave,
		Alter:  int(math.Round(p.Alter)),
	}, nil
}

func addNote(m *model.Measure, n Note, divisions int) error {
	if n.Rest != nil {
		d := duration(n, divisions)
		m.Events = append(m.Events, model.NewRest(d.QuarterLength, d.Dots))
		return nil
	}

	note, err := toNote(n.Pitch)
	if err != nil {
		return err
	}

	if n.Chord != nil && len(m.Events) > 0 {
		last := &m.Events[len(m.Events)-1]
		switch last.Kind {
		case model.KindNote:
			last.Kind = model.KindChord
			last.Notes = []model.Note{last.Note, note}
			last.Note = model.Note{}
			return nil
		case model.KindChord:
			last.Notes = append(last.Notes, note)
			return nil
		}
	}

	d := duration(n, divisions)
	m.Events = append(m.Events, model.NewNote(note.Step, note.Alter, note.Octave, d.QuarterLength, d.Dots))
	return nil
}
