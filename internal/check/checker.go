// Package check verifies that bilateral constraint links written by
// independent simulation partitions form continuous chains of global
// identifiers once a frame's records are in canonical order.
package check

import (
	"errors"
	"fmt"
	"io"

	"github.com/mesh-intelligence/linkcheck/pkg/types"
)

// ErrInsufficientLinks is returned when a frame does not carry enough
// bilateral records to cover the configured partition/chain geometry.
var ErrInsufficientLinks = errors.New("insufficient bilateral links for configured geometry")

// Violation is one failed chain adjacency: within partition Partition,
// link Position's first referenced element did not match link Position+1's
// second referenced element.
type Violation struct {
	Partition int
	Position  int

	// Gid0 is gid0[0] of the link at Position; Gid1 is gid1[0] of the link
	// at Position+1. Continuity requires them equal.
	Gid0 float64
	Gid1 float64
}

func (v Violation) String() string {
	return fmt.Sprintf("partition %d position %d: gid0=%g gid1=%g",
		v.Partition, v.Position, v.Gid0, v.Gid1)
}

// Report is the outcome of checking one frame. The check never stops at the
// first failure; Violations holds every failed adjacency in grid order.
type Report struct {
	Path        string
	FrameNumber int
	Records     int
	Bilateral   int
	Violations  []Violation
}

// Passed reports whether the frame satisfied the continuity invariant.
func (r *Report) Passed() bool {
	return len(r.Violations) == 0
}

// Checker holds the expected partition/chain geometry.
//
// Each partition contributes one chain of ChainLength bilateral links.
// After sorting by (bilateral, gid0, gid1) the links of one chain are
// adjacent, so chain j's continuity reduces to comparing neighbors in the
// bilateral-filtered sequence.
type Checker struct {
	Partitions  int
	ChainLength int

	// Trace, when set, receives one "a b" line per examined adjacency and
	// a literal failure line per violation, matching the historical
	// diagnostic output operators grep for.
	Trace io.Writer
}

// Check validates one frame and returns its report. The only error case is
// the explicit precondition: fewer bilateral records than the geometry
// needs (Partitions*ChainLength). Violations are collected, not raised.
func (c Checker) Check(frame *types.Frame) (*Report, error) {
	sorted := frame.Sorted()

	bi := make([]types.LinkRecord, 0, len(sorted))
	for _, rec := range sorted {
		if rec.Bilateral.First() != 0 {
			bi = append(bi, rec)
		}
	}

	report := &Report{
		Path:        frame.Path,
		FrameNumber: frame.Number,
		Records:     len(sorted),
		Bilateral:   len(bi),
	}

	need := c.Partitions * c.ChainLength
	if len(bi) < need {
		return nil, fmt.Errorf("%s: have %d, need %d: %w",
			frame.Path, len(bi), need, ErrInsufficientLinks)
	}

	for p := 0; p < c.Partitions; p++ {
		for j := 0; j < c.ChainLength-1; j++ {
			a := bi[p*c.ChainLength+j].Gid0.First()
			b := bi[p*c.ChainLength+j+1].Gid1.First()
			if c.Trace != nil {
				fmt.Fprintf(c.Trace, "%g %g\n", a, b)
			}
			if a != b {
				if c.Trace != nil {
					fmt.Fprintln(c.Trace, "Fail : link error")
				}
				report.Violations = append(report.Violations, Violation{
					Partition: p,
					Position:  j,
					Gid0:      a,
					Gid1:      b,
				})
			}
		}
	}

	return report, nil
}
