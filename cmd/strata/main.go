package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/strata/pkg/columnar"
	"github.com/ajitpratap0/strata/pkg/config"
	"github.com/ajitpratap0/strata/pkg/dataset"
	"github.com/ajitpratap0/strata/pkg/logger"
	"github.com/ajitpratap0/strata/pkg/observability"
)

var version = "0.1.0"

// columnReport is one line of the inferred schema report.
type columnReport struct {
	Index  int    `json:"index"`
	Type   string `json:"type"`
	Length int    `json:"length"`
	Empty  bool   `json:"empty"`
}

func main() {
	root := &cobra.Command{
		Use:   "strata",
		Short: "strata - column type inference for delimited data",
		Long: `strata infers the narrowest scalar type of every column in a delimited
text file and materializes the cells into typed, null-aware columnar buffers.`,
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("strata v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	var configFile, delimiter, logLevel, arrowOut string
	var enableTracing bool

	inferCmd := &cobra.Command{
		Use:   "infer <input-file>",
		Short: "Infer column types of a delimited file",
		Long: `Infer column types of a delimited text file and print the schema report
as JSON. Inputs compressed with gzip (.gz), zstd (.zst) or lz4 (.lz4) are
decompressed transparently.

Example:
  strata infer data.csv.gz --delimiter ";" --arrow-out data.arrow`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfer(args[0], configFile, delimiter, logLevel, arrowOut, enableTracing)
		},
	}

	inferCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to YAML configuration file (optional)")
	inferCmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "Cell delimiter override")
	inferCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	inferCmd.Flags().StringVar(&arrowOut, "arrow-out", "", "Write materialized columns to this Arrow IPC file")
	inferCmd.Flags().BoolVar(&enableTracing, "trace", false, "Emit trace spans to stdout")
	root.AddCommand(inferCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runInfer(inputPath, configFile, delimiter, logLevel, arrowOut string, enableTracing bool) error {
	cfg, err := config.LoadWithOverrides(configFile)
	if err != nil {
		return err
	}
	if delimiter != "" {
		cfg.Inference.Delimiter = delimiter
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		Encoding:    cfg.Logging.Encoding,
	}); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	if enableTracing {
		if err := observability.Init(observability.Config{
			ServiceName:    "strata",
			ServiceVersion: version,
			SamplingRate:   1.0,
		}); err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = observability.Shutdown(shutdownCtx)
		}()
	}

	table, err := dataset.OpenTable(inputPath, cfg.Inference.Delimiter)
	if err != nil {
		return err
	}

	logger.Info("starting inference",
		zap.String("input", inputPath),
		zap.Int("columns", table.NumColumns()))

	results, err := dataset.Infer(ctx, table, cfg)
	if err != nil {
		return err
	}

	report := make([]columnReport, len(results))
	names := make([]string, len(results))
	for i, res := range results {
		report[i] = columnReport{
			Index:  i,
			Type:   res.Rank.String(),
			Length: res.Column.Len(),
			Empty:  res.Column.IsEmpty(),
		}
		names[i] = fmt.Sprintf("col_%d", i)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if arrowOut != "" {
		if err := writeArrow(arrowOut, names, results); err != nil {
			return err
		}
		logger.Info("wrote Arrow output", zap.String("path", arrowOut))
	}

	return nil
}

func writeArrow(path string, names []string, results []dataset.ColumnResult) error {
	f, err := os.Create(path) //nolint:gosec // G304: output path is caller-controlled
	if err != nil {
		return err
	}

	cols := make([]*columnar.Column, len(results))
	for i, res := range results {
		cols[i] = res.Column
	}

	if err := columnar.WriteIPC(f, names, cols); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
