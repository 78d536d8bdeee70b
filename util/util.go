package util

import (
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
)

var scoreExtensions = []string{".xml", ".musicxml", ".mxl"}

func IsScorePath(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	for _, e := range scoreExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// GatherAllScorePaths walks path and returns every MusicXML file below it.
// maxNum of 0 means no limit.
func GatherAllScorePaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsScorePath(s) {
			if maxNum == 0 || len(res) < maxNum {
				res = append(res, s)
			}
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, err
	}
	return res, nil
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
