package columnar

import (
	stderrors "errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/ajitpratap0/strata/pkg/buffer"
	"github.com/ajitpratap0/strata/pkg/errors"
	"github.com/ajitpratap0/strata/pkg/infer"
	"github.com/ajitpratap0/strata/pkg/metrics"
)

var (
	errNotBoolean = stderrors.New("not a boolean literal")
	errNotInt128  = stderrors.New("not a 128-bit integer")
)

// Materialize re-parses every token of a column against its resolved rank
// and produces the owning Column. A token that fails to parse becomes a
// null cell; classification decides the column's type, individual cells
// may still be garbage.
func Materialize(rank infer.Rank, words *buffer.Buffer[string]) (*Column, error) {
	if !rank.Resolved() {
		return nil, errors.New(errors.ErrorTypeData, "cannot materialize an unresolved rank").
			WithDetail("rank", rank.String())
	}

	var col *Column
	switch rank {
	case infer.RankBoolean:
		col = &Column{kind: KindBool, bools: parseTokens(rank, words, parseBool)}
	case infer.RankInt32:
		col = &Column{kind: KindInt32, int32s: parseTokens(rank, words, parseInt32)}
	case infer.RankInt64:
		col = &Column{kind: KindInt64, int64s: parseTokens(rank, words, parseInt64)}
	case infer.RankInt128:
		col = &Column{kind: KindInt128, int128s: parseTokens(rank, words, parseInt128)}
	case infer.RankFloat32:
		col = &Column{kind: KindFloat32, float32s: parseTokens(rank, words, parseFloat32)}
	case infer.RankFloat64:
		col = &Column{kind: KindFloat64, float64s: parseTokens(rank, words, parseFloat64)}
	default:
		// Null and Any both pass tokens through as text.
		col = &Column{kind: KindText, text: parseText(rank, words)}
	}

	metrics.ColumnsMaterialized.WithLabelValues(rank.String()).Inc()
	return col, nil
}

// parseTokens runs every token through parse, writing one cell per token in
// input order. Parse failures become null cells, never errors.
func parseTokens[T any](rank infer.Rank, words *buffer.Buffer[string], parse func(string) (T, error)) *buffer.Buffer[Cell[T]] {
	out := buffer.NewWithCapacity[Cell[T]](words.Len())
	for _, word := range words.View(0, words.Len()) {
		v, err := parse(word)
		if err != nil {
			metrics.NullCells.WithLabelValues(rank.String()).Inc()
			out.Write(buffer.Single(Cell[T]{}))
			continue
		}
		out.Write(buffer.Single(Cell[T]{Value: v, Valid: true}))
	}
	return out
}

// parseText materializes a text column. A cell is valid only when its token
// is empty.
//
// TODO: confirm whether the retention rule should be inverted to keep
// non-empty tokens; acceptance data pins the current behavior.
func parseText(rank infer.Rank, words *buffer.Buffer[string]) *buffer.Buffer[Cell[string]] {
	out := buffer.NewWithCapacity[Cell[string]](words.Len())
	for _, word := range words.View(0, words.Len()) {
		if word == "" {
			out.Write(buffer.Single(Cell[string]{Value: word, Valid: true}))
			continue
		}
		metrics.NullCells.WithLabelValues(rank.String()).Inc()
		out.Write(buffer.Single(Cell[string]{}))
	}
	return out
}

// parseBool accepts the boolean literals case-insensitively, matching the
// classifier's pattern.
func parseBool(s string) (bool, error) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	}
	return false, errNotBoolean
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int32(v), err
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseInt128(s string) (*big.Int, error) {
	v, ok := infer.ParseInt128(s)
	if !ok {
		return nil, errNotInt128
	}
	return v, nil
}

func parseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}

func parseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
