// Package dataset drives type inference across all columns of a
// delimiter-tokenized dataset and materializes the results into typed
// columns.
package dataset

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/ajitpratap0/strata/pkg/buffer"
	"github.com/ajitpratap0/strata/pkg/columnar"
	"github.com/ajitpratap0/strata/pkg/config"
	"github.com/ajitpratap0/strata/pkg/errors"
	"github.com/ajitpratap0/strata/pkg/infer"
	"github.com/ajitpratap0/strata/pkg/logger"
	"github.com/ajitpratap0/strata/pkg/metrics"
	"github.com/ajitpratap0/strata/pkg/observability"
)

// EntryData is the upstream row-storage collaborator. View returns the raw
// cell data of one column as a single text blob whose cells are separated
// by the configured delimiter token. The returned text is borrowed for the
// lifetime of inference.
type EntryData interface {
	NumColumns() int
	View(col int) string
}

// ParsedWords holds the per-column raw token buffers of one dataset.
type ParsedWords struct {
	buffers   []*buffer.Buffer[string]
	delimiter string
}

// NewParsedWords creates an empty token collection for the given delimiter.
func NewParsedWords(delimiter string) *ParsedWords {
	return &ParsedWords{delimiter: delimiter}
}

// WriteWords splits every column view of data by the delimiter token and
// bulk-writes the tokens into one buffer per column.
func (p *ParsedWords) WriteWords(data EntryData) {
	for i := 0; i < data.NumColumns(); i++ {
		words := strings.Split(data.View(i), p.delimiter)
		buf := buffer.NewWithCapacity[string](len(words))
		buf.Write(buffer.Batch(words))
		p.buffers = append(p.buffers, buf)
	}
}

// NumColumns reports the number of column buffers written so far.
func (p *ParsedWords) NumColumns() int {
	return len(p.buffers)
}

// Column returns the raw token buffer of one column.
func (p *ParsedWords) Column(i int) *buffer.Buffer[string] {
	return p.buffers[i]
}

// generateRanks resolves one rank per column buffer, sampling a bounded
// prefix of each.
func (p *ParsedWords) generateRanks(res *infer.Resolver) ([]infer.Rank, error) {
	ranks := make([]infer.Rank, 0, len(p.buffers))
	for i, buf := range p.buffers {
		rank, err := res.ColumnRank(buf)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeData, "column inference failed").
				WithDetail("column", i)
		}
		ranks = append(ranks, rank)
	}
	return ranks, nil
}

// ColumnResult pairs a column's resolved rank with its materialized typed
// buffer.
type ColumnResult struct {
	Rank   infer.Rank
	Column *columnar.Column
}

// Infer runs the full pipeline over data: tokenize per column, resolve one
// rank per column from a bounded sample, then re-parse every token against
// the resolved rank. Columns are independent; output order matches column
// order.
func Infer(ctx context.Context, data EntryData, cfg *config.Config) ([]ColumnResult, error) {
	ctx, span := observability.StartSpan(ctx, "dataset.infer")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	log := logger.WithContext(ctx)

	words := NewParsedWords(cfg.Inference.Delimiter)
	words.WriteWords(data)
	span.SetAttributes(attribute.Int("dataset.columns", words.NumColumns()))

	resolver := infer.NewResolver(&cfg.Inference)
	ranks, err := words.generateRanks(resolver)
	if err != nil {
		return nil, err
	}

	results := make([]ColumnResult, 0, len(ranks))
	for i, rank := range ranks {
		col, err := columnar.Materialize(rank, words.Column(i))
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeData, "column materialization failed").
				WithDetail("column", i)
		}
		results = append(results, ColumnResult{Rank: rank, Column: col})
	}

	elapsed := time.Since(start)
	metrics.InferenceDuration.Observe(elapsed.Seconds())
	log.Info("inferred dataset schema",
		zap.Int("columns", len(results)),
		zap.Duration("elapsed", elapsed))

	return results, nil
}
