package dataset

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/ajitpratap0/strata/pkg/errors"
)

// Table is an in-memory EntryData built from row-ordered delimited text.
// Each column view is the concatenation of that column's cells joined by
// the delimiter token.
type Table struct {
	cols []string
}

// NumColumns implements EntryData.
func (t *Table) NumColumns() int {
	return len(t.cols)
}

// View implements EntryData.
func (t *Table) View(col int) string {
	return t.cols[col]
}

// ReadTable parses row-ordered delimited text into a Table. The first row
// fixes the column count; a row with a different cell count is a data
// error.
func ReadTable(r io.Reader, delimiter string) (*Table, error) {
	var builders []strings.Builder
	row := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		cells := strings.Split(scanner.Text(), delimiter)

		if builders == nil {
			builders = make([]strings.Builder, len(cells))
		}
		if len(cells) != len(builders) {
			return nil, errors.New(errors.ErrorTypeData, "row cell count does not match first row").
				WithDetail("row", row).
				WithDetail("cells", len(cells)).
				WithDetail("columns", len(builders))
		}

		for i, cell := range cells {
			if row > 0 {
				builders[i].WriteString(delimiter)
			}
			builders[i].WriteString(cell)
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to read input")
	}
	if row == 0 {
		return nil, errors.New(errors.ErrorTypeData, "input contains no rows")
	}

	cols := make([]string, len(builders))
	for i := range builders {
		cols[i] = builders[i].String()
	}
	return &Table{cols: cols}, nil
}

// readCloser bundles a decompressing reader with everything that must be
// closed underneath it.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var first error
	for _, c := range rc.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Open opens a delimited text file, transparently decompressing .gz, .zst
// and .lz4 inputs by extension.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is caller-controlled input
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to open input file")
	}

	switch filepath.Ext(path) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to open gzip stream")
		}
		return &readCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to open zstd stream")
		}
		closeDecoder := closerFunc(func() error {
			zr.Close()
			return nil
		})
		return &readCloser{Reader: zr, closers: []io.Closer{closeDecoder, f}}, nil
	case ".lz4":
		return &readCloser{Reader: lz4.NewReader(f), closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

// OpenTable opens and parses a delimited text file in one step.
func OpenTable(path, delimiter string) (*Table, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return ReadTable(r, delimiter)
}
