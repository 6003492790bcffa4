package infer

import (
	"go.uber.org/zap"

	"github.com/ajitpratap0/strata/pkg/buffer"
	"github.com/ajitpratap0/strata/pkg/config"
	"github.com/ajitpratap0/strata/pkg/errors"
	"github.com/ajitpratap0/strata/pkg/logger"
	"github.com/ajitpratap0/strata/pkg/metrics"
)

// Resolver turns raw token buffers into resolved column ranks. It is
// stateless across columns; re-running inference on the same sample always
// yields the same rank.
type Resolver struct {
	window        int
	overflowToAny bool
	logger        *zap.Logger
}

// NewResolver builds a resolver from the inference configuration. The
// sample window is a fixed tenth of the buffer capacity constant, not of
// any column's actual length.
func NewResolver(cfg *config.InferenceConfig) *Resolver {
	return &Resolver{
		window:        cfg.SampleWindow(),
		overflowToAny: cfg.OverflowPolicy == config.OverflowAny,
		logger:        logger.Get(),
	}
}

// TokenRank classifies a single token and resolves it to a terminal rank.
// Empty tokens rank Null, unclassifiable non-empty tokens rank Any, and
// numeric candidates go through width resolution.
func (r *Resolver) TokenRank(token string) (Rank, error) {
	category := Classify(token)
	metrics.TokensClassified.WithLabelValues(category.String()).Inc()

	switch rank := category.rank(); rank {
	case rankTmpInt:
		return r.resolveInt(token)
	case rankTmpFloat:
		return r.resolveFloat(token)
	case RankAny:
		if token == "" {
			return RankNull, nil
		}
		return RankAny, nil
	default:
		return rank, nil
	}
}

// ColumnRank examines a bounded prefix of the column's tokens and returns
// the maximum rank observed. An empty sample is a configuration error, not
// a silent default.
func (r *Resolver) ColumnRank(words *buffer.Buffer[string]) (Rank, error) {
	sample := words.View(0, r.window)
	if len(sample) == 0 {
		return RankNull, errors.New(errors.ErrorTypeValidation, "empty sample window").
			WithDetail("window", r.window).
			WithDetail("column_length", words.Len())
	}

	column := RankNull
	for _, token := range sample {
		rank, err := r.TokenRank(token)
		if err != nil {
			return RankNull, err
		}
		column = Max(column, rank)
	}

	r.logger.Debug("resolved column rank",
		zap.String("rank", column.String()),
		zap.Int("sampled", len(sample)))

	return column, nil
}
