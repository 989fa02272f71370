package collect

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// sourceExts is the closed set of recognized source file extensions,
// matched case-insensitively.
var sourceExts = map[string]struct{}{
	".js":   {},
	".ts":   {},
	".jsx":  {},
	".tsx":  {},
	".py":   {},
	".java": {},
	".go":   {},
	".c":    {},
	".cpp":  {},
}

// skipDirs are noise directories excluded wherever they appear in a path.
var skipDirs = map[string]struct{}{
	"node_modules": {},
	".git":         {},
	"dist":         {},
	"build":        {},
	"venv":         {},
	"__pycache__":  {},
}

// File is a candidate source file for prompt assembly.
type File struct {
	Path string
}

// SourceFiles walks root and returns the candidate files for the prompt.
// Traversal order is the natural filesystem walk order and callers must not
// depend on it beyond set membership.
func SourceFiles(root string) ([]File, error) {
	var files []File
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil // unreadable entry, skip
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			// Follow the link only if it lands on a regular file.
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		if _, ok := sourceExts[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}
		files = append(files, File{Path: path})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
