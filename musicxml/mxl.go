package musicxml

import (
	"encoding/xml"
	"io"
)

// Doc holds the parts of a partwise MusicXML document that the converter
// reads.
type Doc struct {
	XMLName       xml.Name    `xml:"score-partwise"`
	Work          Work        `xml:"work"`
	MovementTitle string      `xml:"movement-title"`
	PartList      []ScorePart `xml:"part-list>score-part"`
	Parts         []Part      `xml:"part"`
}

type Work struct {
	Title string `xml:"work-title"`
}

type ScorePart struct {
	Id   string `xml:"id,attr"`
	Name string `xml:"part-name"`
}

type Part struct {
	Id       string    `xml:"id,attr"`
	Measures []Measure `xml:"measure"`
}

type Measure struct {
	Number string
	Attrs  []Attributes
	// Note, Backup and Forward values in document order
	Events []interface{}
}

func (m *Measure) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "number" {
			m.Number = attr.Value
		}
	}

	for {
		token, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if _, ok := token.(xml.EndElement); ok {
			return nil
		}
		t, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch t.Name.Local {
		case "attributes":
			var attrs Attributes
			if err := d.DecodeElement(&attrs, &t); err != nil {
				return err
			}
			m.Attrs = append(m.Attrs, attrs)
			m.Events = append(m.Events, attrs)
		case "note":
			var n Note
			if err := d.DecodeElement(&n, &t); err != nil {
				return err
			}
			m.Events = append(m.Events, n)
		case "backup":
			var b Backup
			if err := d.DecodeElement(&b, &t); err != nil {
				return err
			}
			m.Events = append(m.Events, b)
		case "forward":
			var f Forward
			if err := d.DecodeElement(&f, &t); err != nil {
				return err
			}
			m.Events = append(m.Events, f)
		default:
			if err := d.Skip(); err != nil {
				return err
			}
		}
	}
	return nil
}

type Attributes struct {
	Divisions int `xml:"divisions"`
}

type Backup struct {
	Duration int `xml:"duration"`
}

type Forward struct {
	Duration int `xml:"duration"`
}

// marker is an element whose presence is all that matters, like <rest/>.
type marker struct{}

type Note struct {
	Pitch    Pitch    `xml:"pitch"`
	Duration int      `xml:"duration"`
	Voice    string   `xml:"voice"`
	Type     string   `xml:"type"`
	Dots     []marker `xml:"dot"`
	Rest     *marker  `xml:"rest"`
	Chord    *marker  `xml:"chord"`
	Grace    *marker  `xml:"grace"`
}

type Pitch struct {
	Step   string  `xml:"step"`
	Alter  float64 `xml:"alter"`
	Octave int     `xml:"octave"`
}
