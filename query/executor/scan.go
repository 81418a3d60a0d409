package executor

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/kingler-db/kingler-go/runtime/types"
	"github.com/kingler-db/kingler-go/schema"
)

// scanRows decodes a result set into backend-neutral rows. Each column's
// mapped type in the schema selects the BoundValue variant; columns the
// schema does not know fall back to the driver's representation.
func scanRows(rows *sql.Rows, tableSchema *schema.TableSchema) ([]types.Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []types.Row
	for rows.Next() {
		raw := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(types.Row, len(columns))
		for i, name := range columns {
			if tableSchema != nil {
				if col, ok := tableSchema.Column(name); ok {
					value, err := decodeColumn(raw[i], col)
					if err != nil {
						return nil, err
					}
					row[name] = value
					continue
				}
			}
			row[name] = decodeDynamic(raw[i])
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeColumn converts a driver value into the BoundValue variant matching
// the column's mapped SQL type. Drivers disagree on representations (mysql
// hands back []byte for numerics, sqlite stores booleans as integers), so
// each type accepts the representations the wired drivers produce.
func decodeColumn(v interface{}, col schema.Column) (types.BoundValue, error) {
	if v == nil {
		return types.NullValue(), nil
	}

	switch col.SQLType {
	case types.SQLText:
		switch val := v.(type) {
		case string:
			return types.TextValue(val), nil
		case []byte:
			return types.TextValue(string(val)), nil
		}
	case types.SQLInteger:
		switch val := v.(type) {
		case int64:
			return types.IntegerValue(val), nil
		case []byte:
			i, err := strconv.ParseInt(string(val), 10, 64)
			if err == nil {
				return types.IntegerValue(i), nil
			}
		}
	case types.SQLReal:
		switch val := v.(type) {
		case float64:
			return types.RealValue(val), nil
		case []byte:
			f, err := strconv.ParseFloat(string(val), 64)
			if err == nil {
				return types.RealValue(f), nil
			}
		}
	case types.SQLBoolean:
		switch val := v.(type) {
		case bool:
			return types.BooleanValue(val), nil
		case int64:
			return types.BooleanValue(val != 0), nil
		case []byte:
			b, err := strconv.ParseBool(string(val))
			if err == nil {
				return types.BooleanValue(b), nil
			}
		}
	case types.SQLBlob:
		switch val := v.(type) {
		case []byte:
			return types.BytesValue(append([]byte(nil), val...)), nil
		case string:
			return types.BytesValue([]byte(val)), nil
		}
	}

	return types.BoundValue{}, fmt.Errorf("column %q: cannot decode %T as %s", col.Name, v, col.SQLType)
}

// decodeDynamic converts a driver value for a column without schema
// information, keyed on the driver's representation alone.
func decodeDynamic(v interface{}) types.BoundValue {
	switch val := v.(type) {
	case nil:
		return types.NullValue()
	case bool:
		return types.BooleanValue(val)
	case int64:
		return types.IntegerValue(val)
	case float64:
		return types.RealValue(val)
	case []byte:
		return types.BytesValue(append([]byte(nil), val...))
	case string:
		return types.TextValue(val)
	default:
		return types.TextValue(fmt.Sprintf("%v", val))
	}
}
