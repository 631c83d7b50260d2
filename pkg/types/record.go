package types

import (
	"fmt"
	"sort"
)

// Tuple is one attribute value: the components of a single data-array tuple.
// Most simulation attributes are 1- or 3-component.
type Tuple []float64

// First returns the first component, or 0 for an empty tuple. Sort keys and
// the chain check use only the first component of bilateral/gid tuples.
func (t Tuple) First() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[0]
}

// Fixed record field names. File-defined attributes must not collide with
// these; the remaining attribute set is schema-on-read.
const (
	FieldEnd0      = "end0"
	FieldEnd1      = "end1"
	FieldBilateral = "bilateral"
	FieldGid0      = "gid0"
	FieldGid1      = "gid1"
)

// reservedFields is the set of names claimed by the fixed record fields.
var reservedFields = map[string]bool{
	FieldEnd0:      true,
	FieldEnd1:      true,
	FieldBilateral: true,
	FieldGid0:      true,
	FieldGid1:      true,
}

// IsReservedField reports whether name collides with a fixed record field.
func IsReservedField(name string) bool {
	return reservedFields[name]
}

// LinkRecord is one constraint link between two simulated elements,
// reconstructed from consecutive endpoint pairs of a geometry file.
//
// End0/End1 are the link's endpoint coordinates. Bilateral, Gid0 and Gid1
// are lifted out of the file's attribute arrays because the chain check
// depends on them; every other array the file happens to carry is attached
// as a named attribute.
type LinkRecord struct {
	End0 [3]float64
	End1 [3]float64

	Bilateral Tuple
	Gid0      Tuple
	Gid1      Tuple

	attrs map[string]Tuple
}

// SetAttr attaches a named attribute value to the record.
// Returns ErrReservedName if the name collides with a fixed field.
func (r *LinkRecord) SetAttr(name string, value Tuple) error {
	if IsReservedField(name) {
		return fmt.Errorf("%q: %w", name, ErrReservedName)
	}
	if r.attrs == nil {
		r.attrs = make(map[string]Tuple)
	}
	r.attrs[name] = value
	return nil
}

// Attr returns the named attribute value.
// Returns ErrAttrNotFound if the attribute was not present in the source file.
func (r *LinkRecord) Attr(name string) (Tuple, error) {
	v, ok := r.attrs[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrAttrNotFound)
	}
	return v, nil
}

// HasAttr reports whether the named attribute is present.
func (r *LinkRecord) HasAttr(name string) bool {
	_, ok := r.attrs[name]
	return ok
}

// AttrNames returns the record's attribute names in sorted order.
// Returns an empty slice (not nil) when no attributes are attached.
func (r *LinkRecord) AttrNames() []string {
	names := make([]string, 0, len(r.attrs))
	for name := range r.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
