package file

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

type Outputs struct {
	Text   string
	Melody string
}

// OutputPaths names the text and melody files for a score: the score's base
// name with .txt and .mid, in outDir or next to the score when outDir is
// empty.
func OutputPaths(input string, outDir string) Outputs {
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return Outputs{
		Text:   filepath.Join(dir, base+".txt"),
		Melody: filepath.Join(dir, base+".mid"),
	}
}

func WriteText(path string, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return errors.Wrapf(err, "could not create directory for %v", path)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, "write failed for %v", path)
	}
	return nil
}
