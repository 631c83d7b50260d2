package vtk

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/linkcheck/pkg/types"
)

// byteOrderT is the byte order a binary data array was written with.
type byteOrderT = binary.ByteOrder

// byteOrder maps the VTKFile byte_order attribute to a decoder.
// An absent attribute means little-endian, matching the writers in use.
func byteOrder(attr string) (byteOrderT, error) {
	switch attr {
	case "", "LittleEndian":
		return binary.LittleEndian, nil
	case "BigEndian":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("byte order %q: %w", attr, types.ErrUnsupportedFormat)
	}
}

// decodeDataArray decodes one DataArray body into float64 values.
// Supported formats are "ascii" (whitespace-separated literals, the
// default) and "binary" (inline base64 of a count header followed by
// packed little/big-endian values). Appended data is rejected.
func decodeDataArray(arr xmlDataArray, headerType string, order byteOrderT) ([]float64, error) {
	switch arr.Format {
	case "", "ascii":
		return decodeASCII(arr.Body)
	case "binary":
		return decodeBinary(arr.Body, arr.Type, headerType, order)
	default:
		return nil, fmt.Errorf("format %q: %w", arr.Format, types.ErrUnsupportedFormat)
	}
}

func decodeASCII(body string) ([]float64, error) {
	fields := strings.Fields(body)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", f, types.ErrParse)
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeBinary unpacks an inline base64 block: a byte-count header word
// (UInt32 unless header_type says UInt64) followed by the packed values.
func decodeBinary(body, valueType, headerType string, order byteOrderT) ([]float64, error) {
	raw, err := base64.StdEncoding.DecodeString(stripSpace(body))
	if err != nil {
		return nil, fmt.Errorf("base64: %v: %w", err, types.ErrParse)
	}

	headerSize := 4
	switch headerType {
	case "", "UInt32":
	case "UInt64":
		headerSize = 8
	default:
		return nil, fmt.Errorf("header type %q: %w", headerType, types.ErrUnsupportedFormat)
	}
	if len(raw) < headerSize {
		return nil, fmt.Errorf("truncated binary block (%d bytes): %w", len(raw), types.ErrParse)
	}

	var count uint64
	if headerSize == 4 {
		count = uint64(order.Uint32(raw[:4]))
	} else {
		count = order.Uint64(raw[:8])
	}
	data := raw[headerSize:]
	if uint64(len(data)) < count {
		return nil, fmt.Errorf("binary block holds %d bytes, header claims %d: %w",
			len(data), count, types.ErrParse)
	}
	data = data[:count]

	width, ok := typeWidth[valueType]
	if !ok {
		return nil, fmt.Errorf("value type %q: %w", valueType, types.ErrUnsupportedFormat)
	}
	if len(data)%width != 0 {
		return nil, fmt.Errorf("%d data bytes not divisible by %s width: %w",
			len(data), valueType, types.ErrParse)
	}

	out := make([]float64, 0, len(data)/width)
	for i := 0; i < len(data); i += width {
		out = append(out, decodeValue(data[i:i+width], valueType, order))
	}
	return out, nil
}

// typeWidth maps DataArray value types to their byte widths.
var typeWidth = map[string]int{
	"Float32": 4,
	"Float64": 8,
	"Int8":    1,
	"UInt8":   1,
	"Int16":   2,
	"UInt16":  2,
	"Int32":   4,
	"UInt32":  4,
	"Int64":   8,
	"UInt64":  8,
}

func decodeValue(b []byte, valueType string, order byteOrderT) float64 {
	switch valueType {
	case "Float32":
		return float64(math.Float32frombits(order.Uint32(b)))
	case "Float64":
		return math.Float64frombits(order.Uint64(b))
	case "Int8":
		return float64(int8(b[0]))
	case "UInt8":
		return float64(b[0])
	case "Int16":
		return float64(int16(order.Uint16(b)))
	case "UInt16":
		return float64(order.Uint16(b))
	case "Int32":
		return float64(int32(order.Uint32(b)))
	case "UInt32":
		return float64(order.Uint32(b))
	case "Int64":
		return float64(int64(order.Uint64(b)))
	default: // UInt64, widths are validated by the caller
		return float64(order.Uint64(b))
	}
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
