// Package infer implements lexical classification of raw tokens and the
// type-rank lattice used to pick one representative type per column.
package infer

// Rank is the total order over column representations, from the most
// specific (Null) to the most general (Any). A column's resolved rank is
// always the maximum rank observed across its sample, so the ordering is
// the sole widening mechanism.
type Rank int

const (
	RankNull Rank = iota
	RankBoolean
	RankInt32
	RankInt64
	RankInt128
	RankFloat32
	RankFloat64
	RankAny
)

// Transient markers emitted by category promotion before width resolution
// has run. They stay unexported so a resolved column rank can never carry
// one; TokenRank replaces them before any comparison.
const (
	rankTmpInt   Rank = 99
	rankTmpFloat Rank = 100
)

// Resolved reports whether r is a terminal rank that may appear in a
// column-level decision.
func (r Rank) Resolved() bool {
	return r >= RankNull && r <= RankAny
}

// String returns the lowercase rank name.
func (r Rank) String() string {
	switch r {
	case RankNull:
		return "null"
	case RankBoolean:
		return "boolean"
	case RankInt32:
		return "int32"
	case RankInt64:
		return "int64"
	case RankInt128:
		return "int128"
	case RankFloat32:
		return "float32"
	case RankFloat64:
		return "float64"
	case RankAny:
		return "any"
	case rankTmpInt:
		return "tmp_int"
	case rankTmpFloat:
		return "tmp_float"
	default:
		return "unknown"
	}
}

// Max returns the wider of two ranks.
func Max(a, b Rank) Rank {
	if a > b {
		return a
	}
	return b
}
