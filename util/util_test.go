package util

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsScorePath(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsScorePath("a/b/ode.musicxml"))
	assert.True(IsScorePath("ODE.XML"))
	assert.True(IsScorePath("ode.mxl"))
	assert.False(IsScorePath("ode.mid"))
	assert.False(IsScorePath("ode"))
}

func TestGatherAllScorePaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.musicxml", "b.mid", "sub/c.mxl", "sub/d.txt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, nil, 0644))
	}

	paths, err := GatherAllScorePaths(dir, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.musicxml"),
		filepath.Join(dir, "sub", "c.mxl"),
	}, paths)

	paths, err = GatherAllScorePaths(dir, 1)
	require.NoError(t, err)
	assert.Len(t, paths, 1)

	_, err = GatherAllScorePaths(filepath.Join(dir, "missing"), 0)
	assert.Error(t, err)
}

func TestGetKeysAndSum(t *testing.T) {
	keys := GetKeys(map[int]bool{7: true, 0: true, 4: true})
	sort.Ints(keys)
	assert.Equal(t, []int{0, 4, 7}, keys)
	assert.Equal(t, uint64(12), Sum([]int{5, 4, 3}))
	assert.Equal(t, uint64(0), Sum([]uint8{}))
}
