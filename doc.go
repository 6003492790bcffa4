// Package strata infers column types for delimiter-tokenized tabular data
// and materializes raw text cells into strongly-typed, null-aware columnar
// buffers.
//
// The pipeline is a single synchronous pass:
//
//  1. Raw per-column token buffers are split from an entry source
//     (pkg/dataset).
//  2. A bounded prefix of each column is classified lexically and the
//     narrowest numeric width that holds every sampled value is resolved
//     (pkg/infer).
//  3. The full column is re-parsed against the resolved type rank into a
//     typed buffer, with unparsable cells recorded as nulls (pkg/columnar).
//
// Materialized columns can be exported as Arrow records for downstream
// consumers. See cmd/strata for the command-line front end.
package strata
