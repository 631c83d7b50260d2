package types

import (
	"errors"
	"fmt"
)

// Error categories. Every error produced by the reconstruction pipeline
// wraps one of these, so callers can classify with errors.Is without
// matching on the specific failure.
var (
	// ErrParse marks a source file that is missing, unreadable, or
	// structurally invalid.
	ErrParse = errors.New("parse error")

	// ErrSchema marks attribute data that is inconsistent with the
	// reconstructed record set.
	ErrSchema = errors.New("schema error")
)

// Specific failures, each wrapping its category.
var (
	// ErrOddPointCount is returned when a geometry file holds an odd
	// number of points. Records are endpoint pairs; the count must be even.
	ErrOddPointCount = fmt.Errorf("%w: odd point count", ErrParse)

	// ErrUnsupportedFormat is returned for data encodings the reader does
	// not handle (compressed or appended data blocks).
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported data format", ErrParse)

	// ErrArrayLength is returned when a named attribute array's length does
	// not match the record count (cell arrays) or twice the record count
	// (point arrays).
	ErrArrayLength = fmt.Errorf("%w: attribute array length mismatch", ErrSchema)

	// ErrReservedName is returned when a file-defined attribute name
	// collides with one of the fixed record fields.
	ErrReservedName = fmt.Errorf("%w: attribute name is reserved", ErrSchema)

	// ErrAttrNotFound is returned by record accessors when the queried
	// attribute was not present in the source file.
	ErrAttrNotFound = fmt.Errorf("%w: attribute not found", ErrSchema)
)
