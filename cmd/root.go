package cmd

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jianpu",
	Short: "Jianpu numbered notation converter",
	Long: `Converts MusicXML scores to Jianpu numbered notation text and writes
the reduced melody (one note per chord) as a MIDI file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadEnv()
	},
}

func loadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not load .env: %v", err)
	}
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
