// Package fonts resolves a font name like "Inter" or "Roboto-Bold" to a
// .ttf/.otf file under the assets font directories. Used by the label layer
// when a widget sets a title font by name.
package fonts

import (
	"os"
	"path/filepath"
	"strings"
)

// exts are the file extensions considered font files.
var exts = []string{".ttf", ".otf"}

// baseDirs returns candidate font directories relative to the process cwd.
// Both are tried so the demo finds fonts whether run from the repo root or
// from cmd/demo.
func baseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// scanDir returns relative paths (forward slashes) of all font files under
// dir. A missing directory yields an empty list, not an error.
func scanDir(dir string) []string {
	var out []string
	_ = filepath.Walk(filepath.Clean(dir), func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, e := range exts {
			if ext == e {
				if rel, relErr := filepath.Rel(dir, path); relErr == nil {
					out = append(out, filepath.ToSlash(rel))
				}
				return nil
			}
		}
		return nil
	})
	return out
}

// normalize lowercases and strips spaces, dashes, and underscores so
// "Google Sans" matches "GoogleSans-Regular.ttf".
func normalize(s string) string {
	s = strings.ToLower(s)
	for _, cut := range []string{" ", "-", "_"} {
		s = strings.ReplaceAll(s, cut, "")
	}
	return s
}

// Find returns the path of the first font file matching name. Matching is
// fuzzy (case, spaces, dashes ignored); when several files match, one whose
// path contains "regular" is preferred. Returns os.ErrNotExist when nothing
// matches.
func Find(name string) (string, error) {
	norm := normalize(name)
	if norm == "" {
		return "", os.ErrNotExist
	}
	var matches []string
	for _, base := range baseDirs() {
		for _, rel := range scanDir(base) {
			if strings.Contains(normalize(rel), norm) {
				full := base + "/" + rel
				if _, err := os.Stat(full); err == nil {
					matches = append(matches, full)
				}
			}
		}
	}
	if len(matches) == 0 {
		return "", os.ErrNotExist
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(m), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}
