// Package integration exercises the full linkcheck pipeline against
// synthetic partitioned output trees written the way the simulation
// writers emit them: one .pvtp master per frame referencing one binary
// .vtp piece per partition.
package integration

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ChainSpec describes the synthetic geometry to generate.
type ChainSpec struct {
	Partitions  int
	ChainLength int

	// CorruptPartition/CorruptPosition, when CorruptGid is non-zero,
	// replace that link's gid0 with CorruptGid.
	CorruptPartition int
	CorruptPosition  int
	CorruptGid       float64
}

// encodeInline packs a byte-count header plus little-endian Float32 values
// into one base64 block, the inline binary layout the piece files use.
func encodeInline(vals []float32) string {
	raw := make([]byte, 4+4*len(vals))
	binary.LittleEndian.PutUint32(raw[:4], uint32(4*len(vals)))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(raw[4+4*i:], math.Float32bits(v))
	}
	return base64.StdEncoding.EncodeToString(raw)
}

// WriteFrame writes one frame's master and piece files under
// root/result/result0 and returns the master path.
func WriteFrame(t *testing.T, root string, frame int, spec ChainSpec) string {
	t.Helper()

	dir := filepath.Join(root, "result", "result0")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	var pieceRefs []string
	for p := 0; p < spec.Partitions; p++ {
		pieceName := fmt.Sprintf("ConBlock_r%d_%d.vtp", p, frame)
		pieceRefs = append(pieceRefs, fmt.Sprintf("    <Piece Source=%q/>", pieceName))
		writePiece(t, filepath.Join(dir, pieceName), p, spec)
	}

	master := filepath.Join(dir, fmt.Sprintf("ConBlock_%d.pvtp", frame))
	content := `<?xml version="1.0"?>
<VTKFile type="PPolyData" version="0.1" byte_order="LittleEndian" header_type="UInt32">
  <PPolyData GhostLevel="0">
    <PPoints>
      <PDataArray type="Float32" NumberOfComponents="3"/>
    </PPoints>
` + strings.Join(pieceRefs, "\n") + `
  </PPolyData>
</VTKFile>
`
	if err := os.WriteFile(master, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return master
}

// writePiece emits one partition's chain: chainLength bilateral links over
// elements numbered from p*(chainLength+1), link j referencing elements
// (j+1, j) as its endpoint gids.
func writePiece(t *testing.T, path string, p int, spec ChainSpec) {
	t.Helper()

	base := float32(p * (spec.ChainLength + 1))

	var points, gids, bilateral []float32
	for j := 0; j < spec.ChainLength; j++ {
		x := base + float32(j)
		points = append(points,
			x, 0, 0,
			x+1, 0, 0,
		)
		gid0 := base + float32(j) + 1
		gid1 := base + float32(j)
		if spec.CorruptGid != 0 && p == spec.CorruptPartition && j == spec.CorruptPosition {
			gid0 = float32(spec.CorruptGid)
		}
		gids = append(gids, gid0, gid1)
		bilateral = append(bilateral, 1)
	}

	content := fmt.Sprintf(`<?xml version="1.0"?>
<VTKFile type="PolyData" version="0.1" byte_order="LittleEndian" header_type="UInt32">
  <PolyData>
    <Piece NumberOfPoints="%d" NumberOfLines="%d">
      <Points>
        <DataArray type="Float32" Name="Points" NumberOfComponents="3" format="binary">%s</DataArray>
      </Points>
      <PointData>
        <DataArray type="Float32" Name="gid" NumberOfComponents="1" format="binary">%s</DataArray>
      </PointData>
      <CellData>
        <DataArray type="Float32" Name="bilateral" NumberOfComponents="1" format="binary">%s</DataArray>
        <DataArray type="Float32" Name="kappa" NumberOfComponents="1" format="ascii">%s</DataArray>
      </CellData>
    </Piece>
  </PolyData>
</VTKFile>
`,
		2*spec.ChainLength, spec.ChainLength,
		encodeInline(points), encodeInline(gids), encodeInline(bilateral),
		strings.TrimSpace(strings.Repeat("100 ", spec.ChainLength)))

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// WriteRunConfig drops a RunConfig.yaml with the given stiffness at root.
func WriteRunConfig(t *testing.T, root string, kappa float64) {
	t.Helper()
	content := fmt.Sprintf("# simulation run configuration\nlinkKappa: %g\ndt: 0.001\n", kappa)
	if err := os.WriteFile(filepath.Join(root, "RunConfig.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
