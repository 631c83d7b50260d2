// Package frames turns a simulation result tree into checked-ready Frame
// values: it discovers per-frame output files in numeric frame order and
// materializes constraint-link records from each file's raw arrays.
package frames

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/mesh-intelligence/linkcheck/pkg/types"
)

// FrameFile is one discovered per-frame output file.
type FrameFile struct {
	Path   string
	Number int
}

// frameNumberRe extracts the frame token: the run of digits between the
// last underscore and the extension, e.g. ConBlock_127.pvtp -> 127.
var frameNumberRe = regexp.MustCompile(`_([0-9]+)\.[^_.]+$`)

// Discover globs pattern under dir and returns the matching files ordered
// by ascending frame number. Ordering is numeric, never lexicographic:
// frame 10 sorts after frame 2. Matches without a numeric frame token are
// returned in skipped for the caller to report.
func Discover(dir, pattern string) (files []FrameFile, skipped []string, err error) {
	if pattern == "" {
		return nil, nil, types.ErrPatternEmpty
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, nil, fmt.Errorf("bad pattern %q: %v: %w", pattern, err, types.ErrParse)
	}

	for _, path := range matches {
		m := frameNumberRe.FindStringSubmatch(filepath.Base(path))
		if m == nil {
			skipped = append(skipped, path)
			continue
		}
		n, convErr := strconv.Atoi(m[1])
		if convErr != nil {
			skipped = append(skipped, path)
			continue
		}
		files = append(files, FrameFile{Path: path, Number: n})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Number < files[j].Number })
	return files, skipped, nil
}
