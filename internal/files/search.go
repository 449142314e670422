// Package files finds data files on disk by name keywords and
// extension.
package files

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultMaxResults caps a search when the caller passes no limit.
const DefaultMaxResults = 10

// Search walks root recursively and returns paths whose file name
// contains every keyword, case-insensitive. When extensions is
// non-empty only matching suffixes qualify. The walk stops as soon as
// max results are collected; max <= 0 uses DefaultMaxResults.
func Search(root string, keywords []string, extensions []string, max int) ([]string, error) {
	if max <= 0 {
		max = DefaultMaxResults
	}
	tokens := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			tokens = append(tokens, strings.ToLower(k))
		}
	}
	extSet := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		extSet[strings.ToLower(e)] = struct{}{}
	}

	var results []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if len(extSet) > 0 {
			if _, ok := extSet[strings.ToLower(filepath.Ext(path))]; !ok {
				return nil
			}
		}
		name := strings.ToLower(d.Name())
		for _, t := range tokens {
			if !strings.Contains(name, t) {
				return nil
			}
		}
		results = append(results, path)
		if len(results) >= max {
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
