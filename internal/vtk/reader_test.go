package vtk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/linkcheck/pkg/types"
)

// writeFile drops content into dir under name and returns the full path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const asciiPiece = `<?xml version="1.0"?>
<VTKFile type="PolyData" version="0.1" byte_order="LittleEndian" header_type="UInt32">
  <PolyData>
    <Piece NumberOfPoints="4" NumberOfLines="2">
      <Points>
        <DataArray type="Float32" NumberOfComponents="3" format="ascii">
          0 0 0  1 0 0
          1 1 0  2 1 0
        </DataArray>
      </Points>
      <PointData>
        <DataArray type="Int32" Name="gid" NumberOfComponents="1" format="ascii">1 0 2 1</DataArray>
      </PointData>
      <CellData>
        <DataArray type="Int32" Name="bilateral" format="ascii">1 0</DataArray>
        <DataArray type="Float32" Name="kappa" format="ascii">100 100</DataArray>
      </CellData>
    </Piece>
  </PolyData>
</VTKFile>
`

func TestReadSinglePiece(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ConBlock_r0_0.vtp", asciiPiece)

	pd, err := ReadPPolyData(path)
	require.NoError(t, err)

	assert.Equal(t, 2, pd.RecordCount())
	require.Len(t, pd.Points, 4)
	assert.Equal(t, [3]float64{1, 1, 0}, pd.Points[2])

	require.Len(t, pd.PointData["gid"], 4)
	assert.Equal(t, types.Tuple{2}, pd.PointData["gid"][2])

	require.Len(t, pd.CellData["bilateral"], 2)
	assert.Equal(t, types.Tuple{1}, pd.CellData["bilateral"][0])
	require.Len(t, pd.CellData["kappa"], 2)
}

func TestReadMasterConcatenatesPieces(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ConBlock_r0_0.vtp", asciiPiece)
	writeFile(t, dir, "ConBlock_r1_0.vtp", asciiPiece)
	master := writeFile(t, dir, "ConBlock_0.pvtp", `<?xml version="1.0"?>
<VTKFile type="PPolyData" version="0.1" byte_order="LittleEndian" header_type="UInt32">
  <PPolyData GhostLevel="0">
    <PPoints>
      <PDataArray type="Float32" NumberOfComponents="3"/>
    </PPoints>
    <Piece Source="ConBlock_r0_0.vtp"/>
    <Piece Source="ConBlock_r1_0.vtp"/>
  </PPolyData>
</VTKFile>
`)

	pd, err := ReadPPolyData(master)
	require.NoError(t, err)

	assert.Equal(t, 4, pd.RecordCount())
	assert.Len(t, pd.Points, 8)
	assert.Len(t, pd.PointData["gid"], 8)
	assert.Len(t, pd.CellData["bilateral"], 4)
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "odd point count",
			content: `<VTKFile type="PolyData"><PolyData><Piece NumberOfPoints="3">
<Points><DataArray type="Float32" NumberOfComponents="3" format="ascii">0 0 0 1 0 0 2 0 0</DataArray></Points>
</Piece></PolyData></VTKFile>`,
			wantErr: types.ErrOddPointCount,
		},
		{
			name: "cell array length mismatch",
			content: `<VTKFile type="PolyData"><PolyData><Piece NumberOfPoints="4">
<Points><DataArray type="Float32" NumberOfComponents="3" format="ascii">0 0 0 1 0 0 1 1 0 2 1 0</DataArray></Points>
<CellData><DataArray type="Int32" Name="bilateral" format="ascii">1 0 1</DataArray></CellData>
</Piece></PolyData></VTKFile>`,
			wantErr: types.ErrArrayLength,
		},
		{
			name: "point array length mismatch",
			content: `<VTKFile type="PolyData"><PolyData><Piece NumberOfPoints="4">
<Points><DataArray type="Float32" NumberOfComponents="3" format="ascii">0 0 0 1 0 0 1 1 0 2 1 0</DataArray></Points>
<PointData><DataArray type="Int32" Name="gid" format="ascii">1 0</DataArray></PointData>
</Piece></PolyData></VTKFile>`,
			wantErr: types.ErrArrayLength,
		},
		{
			name:    "compressed data rejected",
			content: `<VTKFile type="PolyData" compressor="vtkZLibDataCompressor"><PolyData><Piece NumberOfPoints="0"></Piece></PolyData></VTKFile>`,
			wantErr: types.ErrUnsupportedFormat,
		},
		{
			name:    "not a polydata file",
			content: `<VTKFile type="ImageData"><ImageData></ImageData></VTKFile>`,
			wantErr: types.ErrParse,
		},
		{
			name:    "malformed xml",
			content: `<VTKFile type="PolyData"><PolyData>`,
			wantErr: types.ErrParse,
		},
		{
			name: "unnamed array",
			content: `<VTKFile type="PolyData"><PolyData><Piece NumberOfPoints="2">
<Points><DataArray type="Float32" NumberOfComponents="3" format="ascii">0 0 0 1 0 0</DataArray></Points>
<CellData><DataArray type="Int32" format="ascii">1</DataArray></CellData>
</Piece></PolyData></VTKFile>`,
			wantErr: types.ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "bad.vtp", tt.content)
			_, err := ReadPPolyData(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadPPolyData(filepath.Join(t.TempDir(), "absent.pvtp"))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrParse)
}

func TestReadMissingPiece(t *testing.T) {
	dir := t.TempDir()
	master := writeFile(t, dir, "ConBlock_0.pvtp", `<VTKFile type="PPolyData">
<PPolyData><Piece Source="nope_r0_0.vtp"/></PPolyData></VTKFile>`)

	_, err := ReadPPolyData(master)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrParse)
}
