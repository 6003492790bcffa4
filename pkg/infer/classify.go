package infer

import "regexp"

// Category is the lexical bucket of a single token, before any parsing or
// overflow check has happened.
type Category int

const (
	CategoryFloat Category = iota
	CategoryInt
	CategoryBool
	CategoryOther
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case CategoryFloat:
		return "float"
	case CategoryInt:
		return "integer"
	case CategoryBool:
		return "boolean"
	default:
		return "other"
	}
}

// Process-wide immutable pattern matchers, compiled once at startup.
var (
	// A float token requires a literal decimal point and at least one
	// fractional digit: "5" is not a float, ".5" is.
	floatPattern = regexp.MustCompile(`^-?\d*\.\d+$`)
	intPattern   = regexp.MustCompile(`^-?\d+$`)
	boolPattern  = regexp.MustCompile(`(?i)^(?:true|false)$`)
)

// Classify buckets a raw token into one of the four lexical categories.
// The float test must run before the integer test because the integer
// pattern is a subset shape. Anything unmatched, including the empty
// string, is CategoryOther. Classification is total and deterministic.
func Classify(token string) Category {
	switch {
	case floatPattern.MatchString(token):
		return CategoryFloat
	case intPattern.MatchString(token):
		return CategoryInt
	case boolPattern.MatchString(token):
		return CategoryBool
	default:
		return CategoryOther
	}
}

// rank promotes a category to its pre-resolution rank. Numeric categories
// yield transient markers that the width resolver must replace before the
// rank participates in a column-level maximum.
func (c Category) rank() Rank {
	switch c {
	case CategoryFloat:
		return rankTmpFloat
	case CategoryInt:
		return rankTmpInt
	case CategoryBool:
		return RankBoolean
	default:
		return RankAny
	}
}
