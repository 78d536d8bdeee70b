package cmd

import (
	"fmt"

	"github.com/jsphweid/jianpu/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <melody.mid>",
	Short: "Inspects an exported melody",
	Long:  `Lists the notes of a MIDI file, in quarter notes from the start`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("tracks: %v\n", len(s.Tracks))
	for _, n := range midi.ReadNotes(s) {
		fmt.Println(n)
	}
	return nil
}
