// Package vtk reads VTK XML polydata output written by partitioned
// simulation runs. A frame is one .pvtp master referencing one .vtp piece
// per producer rank; the reader presents the pieces as a single dataset
// with concatenated point and attribute arrays.
package vtk

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/linkcheck/pkg/types"
)

// PolyData is the raw columnar content of one logical dataset: paired
// endpoint coordinates plus the named per-cell and per-point attribute
// arrays the file happened to carry.
type PolyData struct {
	Points    [][3]float64
	PointData map[string][]types.Tuple
	CellData  map[string][]types.Tuple
}

// RecordCount returns the number of endpoint pairs.
func (p *PolyData) RecordCount() int {
	return len(p.Points) / 2
}

// xmlFile is the root element of both master and piece files.
type xmlFile struct {
	XMLName    xml.Name      `xml:"VTKFile"`
	Type       string        `xml:"type,attr"`
	ByteOrder  string        `xml:"byte_order,attr"`
	HeaderType string        `xml:"header_type,attr"`
	Compressor string        `xml:"compressor,attr"`
	PPolyData  *xmlPPolyData `xml:"PPolyData"`
	PolyData   *xmlPolyData  `xml:"PolyData"`
}

type xmlPPolyData struct {
	Pieces []xmlPieceRef `xml:"Piece"`
}

type xmlPieceRef struct {
	Source string `xml:"Source,attr"`
}

type xmlPolyData struct {
	Pieces []xmlPiece `xml:"Piece"`
}

type xmlPiece struct {
	NumberOfPoints int         `xml:"NumberOfPoints,attr"`
	Points         xmlArraySet `xml:"Points"`
	PointData      xmlArraySet `xml:"PointData"`
	CellData       xmlArraySet `xml:"CellData"`
}

type xmlArraySet struct {
	Arrays []xmlDataArray `xml:"DataArray"`
}

type xmlDataArray struct {
	Type          string `xml:"type,attr"`
	Name          string `xml:"Name,attr"`
	NumComponents int    `xml:"NumberOfComponents,attr"`
	Format        string `xml:"format,attr"`
	Body          string `xml:",chardata"`
}

// components returns the tuple width, defaulting to 1 when the attribute
// is absent.
func (a xmlDataArray) components() int {
	if a.NumComponents <= 0 {
		return 1
	}
	return a.NumComponents
}

// ReadPPolyData reads one frame's output file. A .pvtp master has its piece
// sources resolved relative to its own directory and read in order; a bare
// .vtp is treated as a single-piece dataset. The returned PolyData is
// validated: even point count, cell arrays of length recordCount, point
// arrays of length 2*recordCount.
func ReadPPolyData(path string) (*PolyData, error) {
	root, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	out := &PolyData{
		PointData: make(map[string][]types.Tuple),
		CellData:  make(map[string][]types.Tuple),
	}

	switch {
	case root.PPolyData != nil:
		dir := filepath.Dir(path)
		for _, ref := range root.PPolyData.Pieces {
			piece, err := parseFile(filepath.Join(dir, ref.Source))
			if err != nil {
				return nil, err
			}
			if piece.PolyData == nil {
				return nil, fmt.Errorf("%s: piece %s is not PolyData: %w", path, ref.Source, types.ErrParse)
			}
			if err := appendPieces(out, piece, filepath.Join(dir, ref.Source)); err != nil {
				return nil, err
			}
		}
	case root.PolyData != nil:
		if err := appendPieces(out, root, path); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%s: no PPolyData or PolyData element: %w", path, types.ErrParse)
	}

	if err := validate(out, path); err != nil {
		return nil, err
	}
	return out, nil
}

// parseFile reads and decodes one XML file, rejecting encodings the data
// decoder does not handle.
func parseFile(path string) (*xmlFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, types.ErrParse)
	}
	var root xmlFile
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%s: decoding XML: %v: %w", path, err, types.ErrParse)
	}
	if root.Compressor != "" {
		return nil, fmt.Errorf("%s: compressed data (%s): %w", path, root.Compressor, types.ErrUnsupportedFormat)
	}
	return &root, nil
}

// appendPieces decodes every piece of one file into out.
func appendPieces(out *PolyData, file *xmlFile, path string) error {
	order, err := byteOrder(file.ByteOrder)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, piece := range file.PolyData.Pieces {
		if err := appendPiece(out, piece, file.HeaderType, order, path); err != nil {
			return err
		}
	}
	return nil
}

func appendPiece(out *PolyData, piece xmlPiece, headerType string, order byteOrderT, path string) error {
	// Coordinates first. The Points element carries exactly one 3-component
	// array in well-formed files.
	var havePoints bool
	for _, arr := range piece.Points.Arrays {
		vals, err := decodeDataArray(arr, headerType, order)
		if err != nil {
			return fmt.Errorf("%s: points array: %w", path, err)
		}
		if arr.components() != 3 || len(vals)%3 != 0 {
			return fmt.Errorf("%s: points array is not 3-component: %w", path, types.ErrParse)
		}
		for i := 0; i+2 < len(vals); i += 3 {
			out.Points = append(out.Points, [3]float64{vals[i], vals[i+1], vals[i+2]})
		}
		havePoints = true
	}
	if !havePoints && piece.NumberOfPoints > 0 {
		return fmt.Errorf("%s: piece declares %d points but carries no coordinate array: %w",
			path, piece.NumberOfPoints, types.ErrParse)
	}

	if err := appendArrays(out.PointData, piece.PointData, headerType, order, path); err != nil {
		return err
	}
	return appendArrays(out.CellData, piece.CellData, headerType, order, path)
}

func appendArrays(dst map[string][]types.Tuple, set xmlArraySet, headerType string, order byteOrderT, path string) error {
	for _, arr := range set.Arrays {
		name := strings.TrimSpace(arr.Name)
		if name == "" {
			return fmt.Errorf("%s: unnamed data array: %w", path, types.ErrParse)
		}
		vals, err := decodeDataArray(arr, headerType, order)
		if err != nil {
			return fmt.Errorf("%s: array %q: %w", path, name, err)
		}
		tuples, err := groupTuples(vals, arr.components())
		if err != nil {
			return fmt.Errorf("%s: array %q: %w", path, name, err)
		}
		dst[name] = append(dst[name], tuples...)
	}
	return nil
}

// groupTuples splits a flat value slice into width-sized tuples.
func groupTuples(vals []float64, width int) ([]types.Tuple, error) {
	if len(vals)%width != 0 {
		return nil, fmt.Errorf("%d values not divisible by %d components: %w", len(vals), width, types.ErrParse)
	}
	out := make([]types.Tuple, 0, len(vals)/width)
	for i := 0; i < len(vals); i += width {
		out = append(out, types.Tuple(vals[i:i+width]))
	}
	return out, nil
}

// validate enforces the record-reconstruction invariants on the assembled
// dataset before any records are built from it.
func validate(p *PolyData, path string) error {
	if len(p.Points)%2 != 0 {
		return fmt.Errorf("%s: %d points: %w", path, len(p.Points), types.ErrOddPointCount)
	}
	n := p.RecordCount()
	for name, tuples := range p.CellData {
		if len(tuples) != n {
			return fmt.Errorf("%s: cell array %q has %d tuples, want %d: %w",
				path, name, len(tuples), n, types.ErrArrayLength)
		}
	}
	for name, tuples := range p.PointData {
		if len(tuples) != 2*n {
			return fmt.Errorf("%s: point array %q has %d tuples, want %d: %w",
				path, name, len(tuples), 2*n, types.ErrArrayLength)
		}
	}
	return nil
}
