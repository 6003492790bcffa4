package columnar

import (
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/ajitpratap0/strata/pkg/errors"
)

// arrowType maps a column kind to its Arrow data type. Int128 rides on
// decimal128 with scale zero.
func arrowType(k Kind) arrow.DataType {
	switch k {
	case KindBool:
		return arrow.FixedWidthTypes.Boolean
	case KindInt32:
		return arrow.PrimitiveTypes.Int32
	case KindInt64:
		return arrow.PrimitiveTypes.Int64
	case KindInt128:
		return &arrow.Decimal128Type{Precision: 38, Scale: 0}
	case KindFloat32:
		return arrow.PrimitiveTypes.Float32
	case KindFloat64:
		return arrow.PrimitiveTypes.Float64
	default:
		return arrow.BinaryTypes.String
	}
}

// ArrowSchema derives an Arrow schema from named columns. Every field is
// nullable because any cell may have failed to parse.
func ArrowSchema(names []string, cols []*Column) (*arrow.Schema, error) {
	if len(names) != len(cols) {
		return nil, errors.New(errors.ErrorTypeValidation, "column name count mismatch").
			WithDetail("names", len(names)).
			WithDetail("columns", len(cols))
	}

	fields := make([]arrow.Field, len(cols))
	for i, col := range cols {
		fields[i] = arrow.Field{
			Name:     names[i],
			Type:     arrowType(col.Kind()),
			Nullable: true,
		}
	}
	return arrow.NewSchema(fields, nil), nil
}

// Record converts materialized columns into a single Arrow record. The
// caller owns the returned record and must Release it.
func Record(names []string, cols []*Column) (arrow.Record, error) {
	schema, err := ArrowSchema(names, cols)
	if err != nil {
		return nil, err
	}

	pool := memory.NewGoAllocator()
	builder := array.NewRecordBuilder(pool, schema)
	defer builder.Release()

	for i, col := range cols {
		if err := appendColumn(builder.Field(i), col); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to append column").
				WithDetail("column", names[i])
		}
	}

	return builder.NewRecord(), nil
}

// WriteIPC writes the columns to w in the Arrow IPC file format.
func WriteIPC(w io.Writer, names []string, cols []*Column) error {
	rec, err := Record(names, cols)
	if err != nil {
		return err
	}
	defer rec.Release()

	fw, err := ipc.NewFileWriter(w, ipc.WithSchema(rec.Schema()))
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeData, "failed to create Arrow writer")
	}

	if err := fw.Write(rec); err != nil {
		_ = fw.Close()
		return errors.Wrap(err, errors.ErrorTypeData, "failed to write Arrow record")
	}
	if err := fw.Close(); err != nil {
		return errors.Wrap(err, errors.ErrorTypeData, "failed to close Arrow writer")
	}
	return nil
}

// appendColumn feeds every cell of col into the matching typed builder,
// preserving input order and nulls.
func appendColumn(b array.Builder, col *Column) error {
	switch col.Kind() {
	case KindBool:
		builder := b.(*array.BooleanBuilder)
		buf, _ := col.Bools()
		for _, cell := range buf.View(0, buf.Len()) {
			if cell.Valid {
				builder.Append(cell.Value)
			} else {
				builder.AppendNull()
			}
		}
	case KindInt32:
		builder := b.(*array.Int32Builder)
		buf, _ := col.Int32s()
		for _, cell := range buf.View(0, buf.Len()) {
			if cell.Valid {
				builder.Append(cell.Value)
			} else {
				builder.AppendNull()
			}
		}
	case KindInt64:
		builder := b.(*array.Int64Builder)
		buf, _ := col.Int64s()
		for _, cell := range buf.View(0, buf.Len()) {
			if cell.Valid {
				builder.Append(cell.Value)
			} else {
				builder.AppendNull()
			}
		}
	case KindInt128:
		builder := b.(*array.Decimal128Builder)
		buf, _ := col.Int128s()
		for _, cell := range buf.View(0, buf.Len()) {
			if !cell.Valid {
				builder.AppendNull()
				continue
			}
			builder.Append(decimal128.FromBigInt(cell.Value))
		}
	case KindFloat32:
		builder := b.(*array.Float32Builder)
		buf, _ := col.Float32s()
		for _, cell := range buf.View(0, buf.Len()) {
			if cell.Valid {
				builder.Append(cell.Value)
			} else {
				builder.AppendNull()
			}
		}
	case KindFloat64:
		builder := b.(*array.Float64Builder)
		buf, _ := col.Float64s()
		for _, cell := range buf.View(0, buf.Len()) {
			if cell.Valid {
				builder.Append(cell.Value)
			} else {
				builder.AppendNull()
			}
		}
	default:
		builder := b.(*array.StringBuilder)
		buf, _ := col.Text()
		for _, cell := range buf.View(0, buf.Len()) {
			if cell.Valid {
				builder.Append(cell.Value)
			} else {
				builder.AppendNull()
			}
		}
	}
	return nil
}
