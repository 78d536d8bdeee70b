package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const odePath = "../testdata/ode.musicxml"

const odeText = "简谱转换结果:\n" +
	"\n声部: Melody\n" +
	"|  3 3 4 5  |    |  5 4 3 2  |    |  1 1 2 3  |    |  3· 2̱ 2  -  |\n\n\n" +
	"|  0000  |\n\n\n" +
	"\n声部: 声部 P2\n" +
	"|  1̣  -  -  -  |    |  5̣  -  -  -  |\n\n\n"

func copyOde(t *testing.T, dir string) string {
	dat, err := os.ReadFile(odePath)
	require.NoError(t, err)
	path := filepath.Join(dir, "ode.musicxml")
	require.NoError(t, os.WriteFile(path, dat, 0644))
	return path
}
