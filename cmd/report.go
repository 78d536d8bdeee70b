package cmd

import (
	"fmt"
	"sort"

	"github.com/jsphweid/jianpu/chord"
	"github.com/jsphweid/jianpu/jianpu"
	"github.com/jsphweid/jianpu/model"
	"github.com/jsphweid/jianpu/musicxml"
	"github.com/jsphweid/jianpu/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <score>",
	Short: "Creates a report",
	Long:  `Counts the events of a score and the ones the notation can only approximate`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := musicxml.ReadFile(args[0])
		if err != nil {
			return err
		}
		printReport(analyzeScore(score))
		return nil
	},
}

type scoreReport struct {
	numParts          int
	measuresPerPart   []int
	numNotes          int
	numRests          int
	numChords         int
	numUnrecognized   int
	numChordsFromBass int
	qualities         map[string]int
	voicings          map[string]int
}

func analyzeScore(s *model.Score) scoreReport {
	report := scoreReport{
		numParts:  len(s.Parts),
		qualities: make(map[string]int),
		voicings:  make(map[string]int),
	}

	finder := chord.TriadRootFinder{}
	for _, p := range s.Parts {
		report.measuresPerPart = append(report.measuresPerPart, len(p.Measures))
		for _, m := range p.Measures {
			for _, e := range m.Events {
				if jianpu.ClassifyDuration(e.QuarterLength) == jianpu.Unrecognized {
					report.numUnrecognized += 1
				}
				switch e.Kind {
				case model.KindNote:
					report.numNotes += 1
				case model.KindRest:
					report.numRests += 1
				case model.KindChord:
					report.numChords += 1
					report.voicings[chord.CreateChordKey(e.Notes)] += 1
					if a, ok := finder.Analyze(e.Notes); ok {
						report.qualities[a.Quality.Name] += 1
					} else {
						report.numChordsFromBass += 1
					}
				}
			}
		}
	}
	return report
}

func printCounts(title string, counts map[string]int) {
	keys := util.GetKeys(counts)
	sort.Strings(keys)
	fmt.Printf("%v:\n", title)
	for _, k := range keys {
		fmt.Printf("  %v: %v\n", k, counts[k])
	}
}

func printReport(report scoreReport) {
	fmt.Printf("parts: %v\n", report.numParts)
	fmt.Printf("measures: %v %v\n", util.Sum(report.measuresPerPart), report.measuresPerPart)
	fmt.Printf("notes: %v\n", report.numNotes)
	fmt.Printf("rests: %v\n", report.numRests)
	fmt.Printf("chords: %v (%v reduced to their bass)\n", report.numChords, report.numChordsFromBass)
	fmt.Printf("durations rendered as quarters: %v\n", report.numUnrecognized)
	printCounts("chord qualities", report.qualities)
	printCounts("voicings", report.voicings)
}
