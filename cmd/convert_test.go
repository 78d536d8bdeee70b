package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/jianpu/midi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	path := copyOde(t, dir)

	outputs, err := convertFile(path, convertOptions{}, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ode.txt"), outputs.Text)

	text, err := os.ReadFile(outputs.Text)
	require.NoError(t, err)
	assert.Equal(t, odeText, string(text))

	s, err := midi.ReadMidiFile(outputs.Melody)
	require.NoError(t, err)
	notes := midi.ReadNotes(s)
	// 15 melody notes plus one root per chord
	assert.Len(t, notes, 17)
}

func TestConvertDirectory(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	copyOde(t, in)
	require.NoError(t, os.WriteFile(filepath.Join(in, "broken.xml"), []byte("<score-partwise>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "notes.md"), []byte("ignored"), 0644))

	err := runConvert(in, convertOptions{outDir: out, measuresPerLine: 2}, nil)
	assert.Error(t, err)

	text, err := os.ReadFile(filepath.Join(out, "ode.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(text), "|  3 3 4 5  |    |  5 4 3 2  |\n\n\n|  1 1 2 3  |")
	_, err = os.Stat(filepath.Join(out, "broken.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestConvertOptionsFromEnv(t *testing.T) {
	t.Setenv("JIANPU_MEASURES_PER_LINE", "2")
	t.Setenv("JIANPU_OUT_DIR", "/tmp/jianpu")

	o := convertOptions{}.withEnv()
	assert.Equal(t, 2, o.measuresPerLine)
	assert.Equal(t, "/tmp/jianpu", o.outDir)

	o = convertOptions{measuresPerLine: 3, outDir: "here"}.withEnv()
	assert.Equal(t, 3, o.measuresPerLine)
	assert.Equal(t, "here", o.outDir)
}
