package columnar

import (
	"bytes"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/strata/pkg/infer"
)

func TestArrowSchema(t *testing.T) {
	intCol, err := Materialize(infer.RankInt32, wordBuffer("1", "2"))
	require.NoError(t, err)
	textCol, err := Materialize(infer.RankAny, wordBuffer("a", "b"))
	require.NoError(t, err)

	schema, err := ArrowSchema([]string{"id", "name"}, []*Column{intCol, textCol})
	require.NoError(t, err)

	require.Equal(t, 2, schema.NumFields())
	assert.Equal(t, "id", schema.Field(0).Name)
	assert.Equal(t, arrow.PrimitiveTypes.Int32, schema.Field(0).Type)
	assert.Equal(t, arrow.BinaryTypes.String, schema.Field(1).Type)
	assert.True(t, schema.Field(0).Nullable)
}

func TestArrowSchemaNameMismatch(t *testing.T) {
	intCol, err := Materialize(infer.RankInt32, wordBuffer("1"))
	require.NoError(t, err)

	_, err = ArrowSchema([]string{"a", "b"}, []*Column{intCol})
	require.Error(t, err)
}

func TestRecordRowCounts(t *testing.T) {
	intCol, err := Materialize(infer.RankInt64, wordBuffer("1", "oops", "3"))
	require.NoError(t, err)
	boolCol, err := Materialize(infer.RankBoolean, wordBuffer("true", "false", "TRUE"))
	require.NoError(t, err)

	rec, err := Record([]string{"n", "flag"}, []*Column{intCol, boolCol})
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(3), rec.NumRows())
	assert.Equal(t, int64(2), rec.NumCols())

	// The unparsable cell surfaces as an Arrow null.
	assert.Equal(t, 1, rec.Column(0).NullN())
	assert.Equal(t, 0, rec.Column(1).NullN())
}

func TestRecordInt128AsDecimal(t *testing.T) {
	col, err := Materialize(infer.RankInt128, wordBuffer("9223372036854775808"))
	require.NoError(t, err)

	rec, err := Record([]string{"big"}, []*Column{col})
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, arrow.DECIMAL128, rec.Column(0).DataType().ID())
	assert.Equal(t, int64(1), rec.NumRows())
}

func TestWriteIPC(t *testing.T) {
	col, err := Materialize(infer.RankFloat32, wordBuffer("1.5", "2"))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = WriteIPC(&buf, []string{"score"}, []*Column{col})
	require.NoError(t, err)
	assert.Greater(t, buf.Len(), 0)
}
