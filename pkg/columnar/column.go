// Package columnar materializes raw token buffers into typed, null-aware
// column buffers.
//
// The element type set is closed and small, so Column is a tagged union
// over concrete buffers rather than an open interface; callers down-cast
// through the Kind tag while heterogeneous collections rely only on the
// shared length/emptiness capability.
package columnar

import (
	"math/big"

	"github.com/ajitpratap0/strata/pkg/buffer"
)

// Kind tags the concrete element type carried by a Column.
type Kind int

const (
	KindBool Kind = iota
	KindInt32
	KindInt64
	KindInt128
	KindFloat32
	KindFloat64
	KindText
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindInt128:
		return "int128"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Cell is one nullable element of a typed buffer. Valid is false for cells
// whose token failed to parse as the column's resolved type.
type Cell[T any] struct {
	Value T
	Valid bool
}

// Column exclusively owns one typed buffer for a concrete element type.
// Exactly one of the buffer fields is set, selected by kind.
type Column struct {
	kind Kind

	bools    *buffer.Buffer[Cell[bool]]
	int32s   *buffer.Buffer[Cell[int32]]
	int64s   *buffer.Buffer[Cell[int64]]
	int128s  *buffer.Buffer[Cell[*big.Int]]
	float32s *buffer.Buffer[Cell[float32]]
	float64s *buffer.Buffer[Cell[float64]]
	text     *buffer.Buffer[Cell[string]]
}

// Kind returns the element type tag.
func (c *Column) Kind() Kind {
	return c.kind
}

// Len reports the number of cells written, which always equals the number
// of input tokens.
func (c *Column) Len() int {
	switch c.kind {
	case KindBool:
		return c.bools.Len()
	case KindInt32:
		return c.int32s.Len()
	case KindInt64:
		return c.int64s.Len()
	case KindInt128:
		return c.int128s.Len()
	case KindFloat32:
		return c.float32s.Len()
	case KindFloat64:
		return c.float64s.Len()
	default:
		return c.text.Len()
	}
}

// IsEmpty reports whether the column holds no cells.
func (c *Column) IsEmpty() bool {
	return c.Len() == 0
}

// Bools returns the underlying buffer when the column holds booleans.
func (c *Column) Bools() (*buffer.Buffer[Cell[bool]], bool) {
	return c.bools, c.kind == KindBool
}

// Int32s returns the underlying buffer when the column holds 32-bit ints.
func (c *Column) Int32s() (*buffer.Buffer[Cell[int32]], bool) {
	return c.int32s, c.kind == KindInt32
}

// Int64s returns the underlying buffer when the column holds 64-bit ints.
func (c *Column) Int64s() (*buffer.Buffer[Cell[int64]], bool) {
	return c.int64s, c.kind == KindInt64
}

// Int128s returns the underlying buffer when the column holds 128-bit ints.
func (c *Column) Int128s() (*buffer.Buffer[Cell[*big.Int]], bool) {
	return c.int128s, c.kind == KindInt128
}

// Float32s returns the underlying buffer when the column holds 32-bit floats.
func (c *Column) Float32s() (*buffer.Buffer[Cell[float32]], bool) {
	return c.float32s, c.kind == KindFloat32
}

// Float64s returns the underlying buffer when the column holds 64-bit floats.
func (c *Column) Float64s() (*buffer.Buffer[Cell[float64]], bool) {
	return c.float64s, c.kind == KindFloat64
}

// Text returns the underlying buffer when the column holds text.
func (c *Column) Text() (*buffer.Buffer[Cell[string]], bool) {
	return c.text, c.kind == KindText
}
