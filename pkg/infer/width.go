package infer

import (
	"math/big"
	"strconv"

	"github.com/ajitpratap0/strata/pkg/errors"
	"github.com/ajitpratap0/strata/pkg/metrics"
)

// Signed 128-bit bounds for the widest integer rung. Go has no native
// int128, so the last rung is a range check over an arbitrary-precision
// parse.
var (
	int128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	int128Min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// ParseInt128 parses a decimal token into the signed 128-bit range.
// It reports false when the token is not an integer or is out of range.
func ParseInt128(token string) (*big.Int, bool) {
	v, ok := new(big.Int).SetString(token, 10)
	if !ok {
		return nil, false
	}
	if v.Cmp(int128Min) < 0 || v.Cmp(int128Max) > 0 {
		return nil, false
	}
	return v, true
}

// resolveInt walks the integer width ladder 32 -> 64 -> 128 and returns the
// rank of the narrowest width that parses the token. Exhausting the ladder
// is fatal unless the resolver degrades overflow to the text rank.
func (r *Resolver) resolveInt(token string) (Rank, error) {
	if _, err := strconv.ParseInt(token, 10, 32); err == nil {
		return RankInt32, nil
	}
	if _, err := strconv.ParseInt(token, 10, 64); err == nil {
		return RankInt64, nil
	}
	if _, ok := ParseInt128(token); ok {
		return RankInt128, nil
	}

	metrics.OverflowFailures.WithLabelValues("integer").Inc()
	if r.overflowToAny {
		return RankAny, nil
	}
	return RankNull, errors.New(errors.ErrorTypeOverflow, "integer overflow").
		WithDetail("token", token)
}

// resolveFloat walks the float width ladder 32 -> 64.
func (r *Resolver) resolveFloat(token string) (Rank, error) {
	if _, err := strconv.ParseFloat(token, 32); err == nil {
		return RankFloat32, nil
	}
	if _, err := strconv.ParseFloat(token, 64); err == nil {
		return RankFloat64, nil
	}

	metrics.OverflowFailures.WithLabelValues("float").Inc()
	if r.overflowToAny {
		return RankAny, nil
	}
	return RankNull, errors.New(errors.ErrorTypeOverflow, "float overflow").
		WithDetail("token", token)
}
