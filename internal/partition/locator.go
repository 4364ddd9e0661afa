package partition

import (
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Candidate is a file that passed the extension filter.
type Candidate struct {
	Path string
	Name string
}

// Locator enumerates raw extract files in a directory.
type Locator struct {
	extensions []string
}

// NewLocator returns a Locator accepting the given extensions (".csv" or "csv").
func NewLocator(extensions ...string) *Locator {
	exts := make([]string, 0, len(extensions))
	for _, e := range extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return &Locator{extensions: exts}
}

// Accepts reports whether name has one of the recognized extensions.
func (l *Locator) Accepts(name string) bool {
	return slices.Contains(l.extensions, strings.ToLower(filepath.Ext(name)))
}

// Locate yields the candidate files of dir in listing order. The directory is
// read when the sequence is ranged over, and again on every new range. A read
// failure is yielded once as an error.
func (l *Locator) Locate(dir string) iter.Seq2[Candidate, error] {
	return func(yield func(Candidate, error) bool) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			yield(Candidate{}, err)
			return
		}
		for _, e := range entries {
			if e.IsDir() || !l.Accepts(e.Name()) {
				continue
			}
			if !yield(Candidate{Path: filepath.Join(dir, e.Name()), Name: e.Name()}, nil) {
				return
			}
		}
	}
}
