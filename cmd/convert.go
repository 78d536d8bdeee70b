package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/jianpu/db"
	"github.com/jsphweid/jianpu/util"
	"github.com/spf13/cobra"
)

var (
	convertOpts    convertOptions
	convertArchive bool
)

func init() {
	addFormatFlags(convertCmd, &convertOpts)
	convertCmd.Flags().StringVar(&convertOpts.outDir, "out", "", "output directory (default $JIANPU_OUT_DIR, else next to the score)")
	convertCmd.Flags().BoolVar(&convertArchive, "archive", false, "store the notation text in DynamoDB")
	rootCmd.AddCommand(convertCmd)
}

func addFormatFlags(c *cobra.Command, o *convertOptions) {
	c.Flags().IntVar(&o.measuresPerLine, "measures-per-line", 0, "measures per line (default $JIANPU_MEASURES_PER_LINE, else 4)")
	c.Flags().IntSliceVar(&o.parts, "parts", nil, "1-based parts to convert, e.g. 1,3 (default all)")
	c.Flags().BoolVar(&o.skipInvalid, "skip-invalid-parts", false, "drop parts with malformed events instead of failing")
}

var convertCmd = &cobra.Command{
	Use:   "convert <score or directory>",
	Short: "Converts MusicXML scores to Jianpu",
	Long: `Converts a MusicXML score (.xml, .musicxml, .mxl), or every score in a
directory, to Jianpu text (.txt) and a melody MIDI file (.mid).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var archive *db.Archive
		if convertArchive {
			var err error
			if archive, err = db.Connect(); err != nil {
				return err
			}
		}
		return runConvert(args[0], convertOpts.withEnv(), archive)
	},
}

func runConvert(path string, o convertOptions, archive *db.Archive) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	paths := []string{path}
	if info.IsDir() {
		if paths, err = util.GatherAllScorePaths(path, 0); err != nil {
			return err
		}
	}

	var failed int
	for i, p := range paths {
		fmt.Printf("Converting %v of %v scores: %v\n", i+1, len(paths), p)
		outputs, err := convertFile(p, o, archive)
		if err != nil {
			// a single file stops here, a directory moves on
			if !info.IsDir() {
				return err
			}
			fmt.Printf("Skipping %v because: %v\n", p, err)
			failed++
			continue
		}
		fmt.Printf("Wrote %v and %v\n", outputs.Text, outputs.Melody)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scores failed", failed, len(paths))
	}
	return nil
}
