package frames

import (
	"fmt"

	"github.com/mesh-intelligence/linkcheck/internal/vtk"
	"github.com/mesh-intelligence/linkcheck/pkg/types"
)

// Load parses one frame's output file and builds its records.
func Load(file FrameFile) (*types.Frame, error) {
	raw, err := vtk.ReadPPolyData(file.Path)
	if err != nil {
		return nil, err
	}
	records, err := BuildRecords(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.Path, err)
	}
	return &types.Frame{Path: file.Path, Number: file.Number, Records: records}, nil
}

// BuildRecords materializes link records from raw columnar data. Record i
// takes points 2i and 2i+1 as its endpoints. Cell arrays attach one tuple
// per record under the array's name; point arrays split at even/odd indices
// into <name>0 and <name>1. The bilateral/gid0/gid1 arrays populate the
// fixed record fields instead of the attribute map; any other array whose
// name (or endpoint-suffixed name) collides with a fixed field is a schema
// error.
func BuildRecords(raw *vtk.PolyData) ([]types.LinkRecord, error) {
	n := raw.RecordCount()
	records := make([]types.LinkRecord, n)
	for i := 0; i < n; i++ {
		records[i].End0 = raw.Points[2*i]
		records[i].End1 = raw.Points[2*i+1]
	}

	for name, tuples := range raw.CellData {
		switch name {
		case types.FieldBilateral:
			for i := 0; i < n; i++ {
				records[i].Bilateral = tuples[i]
			}
		case types.FieldGid0:
			for i := 0; i < n; i++ {
				records[i].Gid0 = tuples[i]
			}
		case types.FieldGid1:
			for i := 0; i < n; i++ {
				records[i].Gid1 = tuples[i]
			}
		default:
			for i := 0; i < n; i++ {
				if err := records[i].SetAttr(name, tuples[i]); err != nil {
					return nil, err
				}
			}
		}
	}

	for name, tuples := range raw.PointData {
		// The writers emit the global identifier as a per-endpoint "gid"
		// array; its even/odd split is the gid0/gid1 core pair.
		if name == "gid" {
			for i := 0; i < n; i++ {
				records[i].Gid0 = tuples[2*i]
				records[i].Gid1 = tuples[2*i+1]
			}
			continue
		}
		name0, name1 := name+"0", name+"1"
		for i := 0; i < n; i++ {
			if err := records[i].SetAttr(name0, tuples[2*i]); err != nil {
				return nil, err
			}
			if err := records[i].SetAttr(name1, tuples[2*i+1]); err != nil {
				return nil, err
			}
		}
	}

	return records, nil
}
