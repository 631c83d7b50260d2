package types

import "sort"

// Frame is the set of constraint-link records reconstructed from one
// per-snapshot output file. A Frame is built once from one file, checked,
// then discarded; it is never mutated after construction.
type Frame struct {
	// Path is the source file the frame was parsed from.
	Path string

	// Number is the frame index embedded in the source filename.
	Number int

	// Records holds the reconstructed links in file order.
	Records []LinkRecord
}

// Sorted returns a copy of the records in canonical order: ascending by
// (Bilateral[0], Gid0[0], Gid1[0]). The sort is stable, so equal keys keep
// their file order; nothing downstream may rely on that beyond determinism.
func (f *Frame) Sorted() []LinkRecord {
	out := make([]LinkRecord, len(f.Records))
	copy(out, f.Records)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := &out[i], &out[j]
		if a.Bilateral.First() != b.Bilateral.First() {
			return a.Bilateral.First() < b.Bilateral.First()
		}
		if a.Gid0.First() != b.Gid0.First() {
			return a.Gid0.First() < b.Gid0.First()
		}
		return a.Gid1.First() < b.Gid1.First()
	})
	return out
}
