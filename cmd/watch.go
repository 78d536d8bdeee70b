package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
)

var (
	watchOpts     convertOptions
	watchInterval time.Duration
	watchQuiet    time.Duration
)

func init() {
	addFormatFlags(watchCmd, &watchOpts)
	watchCmd.Flags().StringVar(&watchOpts.outDir, "out", "", "output directory (default $JIANPU_OUT_DIR, else next to the score)")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 500*time.Millisecond, "how often to check the score")
	watchCmd.Flags().DurationVar(&watchQuiet, "debounce", time.Second, "wait this long after the last change before converting")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <score>",
	Short: "Reconverts a score whenever it changes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		watch(ctx, args[0], watchOpts.withEnv())
	},
}

type changeDetector struct {
	path string
	last time.Time
}

// changed reports whether the file was modified since the previous call.
// The first call always reports a change.
func (c *changeDetector) changed() (bool, error) {
	info, err := os.Stat(c.path)
	if err != nil {
		return false, err
	}
	if c.last.IsZero() || info.ModTime().After(c.last) {
		c.last = info.ModTime()
		return true, nil
	}
	return false, nil
}

func watch(ctx context.Context, path string, o convertOptions) {
	var mu sync.Mutex
	convert := func() {
		mu.Lock()
		defer mu.Unlock()
		outputs, err := convertFile(path, o, nil)
		if err != nil {
			log.Printf("Could not convert %v: %v", path, err)
			return
		}
		fmt.Printf("%v Wrote %v and %v\n", time.Now().Format("15:04:05"), outputs.Text, outputs.Melody)
	}
	debounced := debounce.New(watchQuiet)

	detector := &changeDetector{path: path}
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	fmt.Printf("Watching %v\n", path)
	for {
		changed, err := detector.changed()
		if err != nil {
			log.Printf("Could not stat %v: %v", path, err)
		} else if changed {
			debounced(convert)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
