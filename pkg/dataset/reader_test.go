package dataset

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRows = "1,1.5,true\n2,2.5,false\n3,3.5,true"

func TestReadTable(t *testing.T) {
	table, err := ReadTable(strings.NewReader(sampleRows), ",")
	require.NoError(t, err)

	require.Equal(t, 3, table.NumColumns())
	assert.Equal(t, "1,2,3", table.View(0))
	assert.Equal(t, "1.5,2.5,3.5", table.View(1))
	assert.Equal(t, "true,false,true", table.View(2))
}

func TestReadTableRaggedRow(t *testing.T) {
	_, err := ReadTable(strings.NewReader("1,2\n3"), ",")
	require.Error(t, err)
}

func TestReadTableEmptyInput(t *testing.T) {
	_, err := ReadTable(strings.NewReader(""), ",")
	require.Error(t, err)
}

func TestReadTablePreservesEmptyCells(t *testing.T) {
	table, err := ReadTable(strings.NewReader("1,\n2,x"), ",")
	require.NoError(t, err)
	assert.Equal(t, ",x", table.View(1))
}

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleRows), 0o600))

	table, err := OpenTable(path, ",")
	require.NoError(t, err)
	assert.Equal(t, 3, table.NumColumns())
}

func TestOpenGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(sampleRows))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	table, err := OpenTable(path, ",")
	require.NoError(t, err)
	assert.Equal(t, "1,2,3", table.View(0))
}

func TestOpenZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv.zst")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = zw.Write([]byte(sampleRows))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	table, err := OpenTable(path, ",")
	require.NoError(t, err)
	assert.Equal(t, "true,false,true", table.View(2))
}

func TestOpenLZ4(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv.lz4")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := lz4.NewWriter(f)
	_, err = zw.Write([]byte(sampleRows))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	table, err := OpenTable(path, ",")
	require.NoError(t, err)
	assert.Equal(t, "1.5,2.5,3.5", table.View(1))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
