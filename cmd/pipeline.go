package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/jianpu/constants"
	"github.com/jsphweid/jianpu/db"
	"github.com/jsphweid/jianpu/file"
	"github.com/jsphweid/jianpu/jianpu"
	"github.com/jsphweid/jianpu/midi"
	"github.com/jsphweid/jianpu/model"
	"github.com/jsphweid/jianpu/musicxml"
)

type convertOptions struct {
	measuresPerLine int
	parts           []int
	outDir          string
	skipInvalid     bool
}

// withEnv fills unset options from the environment. Flags always win.
func (o convertOptions) withEnv() convertOptions {
	if o.measuresPerLine == 0 {
		o.measuresPerLine = constants.GetMeasuresPerLine()
	}
	if o.outDir == "" {
		o.outDir = constants.GetOutDir()
	}
	return o
}

func (o convertOptions) formatOptions() jianpu.Options {
	return jianpu.Options{
		MeasuresPerLine:  o.measuresPerLine,
		Parts:            o.parts,
		SkipInvalidParts: o.skipInvalid,
	}
}

func newConversion(source string, res *jianpu.Result) model.Conversion {
	return model.Conversion{
		Id:        uuid.New().String(),
		Source:    source,
		Text:      res.Text(),
		CreatedAt: time.Now(),
	}
}

// convertFile writes the notation text and melody MIDI for one score and
// returns the paths it wrote.
func convertFile(path string, o convertOptions, archive *db.Archive) (file.Outputs, error) {
	var outputs file.Outputs
	score, err := musicxml.ReadFile(path)
	if err != nil {
		return outputs, err
	}

	res, err := jianpu.Convert(*score, o.formatOptions())
	if err != nil {
		return outputs, err
	}
	for _, skipped := range res.Skipped {
		fmt.Printf("Skipped in %v: %v\n", path, skipped)
	}

	outputs = file.OutputPaths(path, o.outDir)
	if err := file.WriteText(outputs.Text, res.Text()); err != nil {
		return outputs, err
	}
	if err := midi.WriteMelodyFile(outputs.Melody, res.Melody(), score.Title); err != nil {
		return outputs, err
	}

	if archive != nil {
		c := newConversion(path, res)
		if err := archive.Put(c); err != nil {
			return outputs, err
		}
		fmt.Printf("Archived %v as %v\n", path, c.Id)
	}
	return outputs, nil
}
