package jianpu

import (
	"strconv"
	"strings"

	"github.com/jsphweid/jianpu/chord"
	"github.com/jsphweid/jianpu/model"
	"github.com/pkg/errors"
)

const (
	Header          = "简谱转换结果:\n"
	PartLabelPrefix = "声部"

	DefaultMeasuresPerLine = 4

	measureSeparator = "    "
	lineTerminator   = "\n\n\n"
)

type Options struct {
	// measures per output line; values below 1 mean DefaultMeasuresPerLine
	MeasuresPerLine int
	// 1-based part indices to convert, empty for all parts
	Parts []int
	// drop parts with invalid events instead of failing the whole pass
	SkipInvalidParts bool
	// nil means chord.TriadRootFinder
	RootFinder chord.RootFinder
}

// Result accumulates the two outputs of one formatting pass. It must not be
// shared between passes.
type Result struct {
	text   strings.Builder
	melody model.Melody

	// parts dropped under SkipInvalidParts
	Skipped []error
}

func newResult() *Result {
	res := &Result{}
	res.text.WriteString(Header)
	return res
}

func (r *Result) Text() string {
	return r.text.String()
}

func (r *Result) Melody() model.Melody {
	return r.melody
}

func (r *Result) appendMelody(e model.Event) {
	r.melody = append(r.melody, e)
}

type Formatter struct {
	opts      Options
	assembler *Assembler
}

func NewFormatter(opts Options) *Formatter {
	if opts.MeasuresPerLine < 1 {
		opts.MeasuresPerLine = DefaultMeasuresPerLine
	}
	return &Formatter{
		opts:      opts,
		assembler: NewAssembler(opts.RootFinder),
	}
}

func (f *Formatter) MeasuresPerLine() int {
	return f.opts.MeasuresPerLine
}

// BracketMeasure joins the tokens of one measure between bar lines.
func BracketMeasure(tokens []string) string {
	return "|  " + strings.Join(tokens, " ") + "  |"
}

// PartLabel is the name shown above a part: its name, or "声部 <id>" with the
// 1-based index standing in for a missing id.
func PartLabel(p model.Part, index int) string {
	if p.Name != "" {
		return p.Name
	}
	id := p.ID
	if id == "" {
		id = strconv.Itoa(index)
	}
	return PartLabelPrefix + " " + id
}

func (f *Formatter) FormatMeasure(m model.Measure, res *Result) (string, error) {
	tokens := make([]string, 0, len(m.Events))
	for i, e := range m.Events {
		token, err := f.assembler.Token(e, res)
		if err != nil {
			return "", errors.Wrapf(err, "measure %d event %d", m.Number, i+1)
		}
		tokens = append(tokens, token)
	}
	return BracketMeasure(tokens), nil
}

// FormatPart appends the labelled block of p to res. On error nothing of p
// is kept in res.
func (f *Formatter) FormatPart(p model.Part, index int, res *Result) error {
	label := PartLabel(p, index)
	melodyMark := len(res.melody)

	var block strings.Builder
	block.WriteString("\n" + PartLabelPrefix + ": " + label + "\n")

	var line []string
	for i, m := range p.Measures {
		measure, err := f.FormatMeasure(m, res)
		if err != nil {
			res.melody = res.melody[:melodyMark]
			return errors.Wrapf(err, "part %q", label)
		}
		line = append(line, measure)

		if (i+1)%f.opts.MeasuresPerLine == 0 {
			block.WriteString(strings.Join(line, measureSeparator) + lineTerminator)
			line = line[:0]
		}
	}
	if len(line) > 0 {
		block.WriteString(strings.Join(line, measureSeparator) + lineTerminator)
	}

	res.text.WriteString(block.String())
	return nil
}

// Format runs one complete pass over s and returns the notation text and
// the melody collected along the way.
func (f *Formatter) Format(s model.Score) (*Result, error) {
	indices, err := f.selectParts(s)
	if err != nil {
		return nil, err
	}

	res := newResult()
	for _, idx := range indices {
		err := f.FormatPart(s.Parts[idx-1], idx, res)
		if err == nil {
			continue
		}
		if !f.opts.SkipInvalidParts {
			return nil, err
		}
		res.Skipped = append(res.Skipped, err)
	}
	return res, nil
}

func (f *Formatter) selectParts(s model.Score) ([]int, error) {
	if len(f.opts.Parts) == 0 {
		res := make([]int, len(s.Parts))
		for i := range s.Parts {
			res[i] = i + 1
		}
		return res, nil
	}

	selected := make(map[int]bool)
	for _, idx := range f.opts.Parts {
		if idx < 1 || idx > len(s.Parts) {
			return nil, errors.Errorf("part %d out of range, score has %d parts", idx, len(s.Parts))
		}
		selected[idx] = true
	}
	var res []int
	for i := range s.Parts {
		if selected[i+1] {
			res = append(res, i+1)
		}
	}
	return res, nil
}

// Convert formats s with opts in a single pass.
func Convert(s model.Score, opts Options) (*Result, error) {
	return NewFormatter(opts).Format(s)
}
