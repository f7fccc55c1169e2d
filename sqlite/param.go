package sqlite

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// BindValue converts an arbitrary value into a scalar the SQLite binding
// layer accepts. It returns ok=false for values that cannot be
// represented; callers drop those from the statement rather than failing
// the whole operation.
//
// Conversion rules: strings, numbers and byte slices pass through;
// booleans become 0/1; time values become RFC3339 text; fmt.Stringer
// values become their string form; slices and arrays pass through as-is
// for the driver to bind; plain key-value maps and structs are
// serialized to JSON text; nil passes through as nil. Anything else
// (functions, channels) is rejected.
func BindValue(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, true
	case string, []byte,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v, true
	case bool:
		if v {
			return int64(1), true
		}
		return int64(0), true
	case time.Time:
		return v.UTC().Format(time.RFC3339), true
	case fmt.Stringer:
		return v.String(), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return value, true
	case reflect.Map, reflect.Struct:
		b, err := json.Marshal(value)
		if err != nil {
			return nil, false
		}
		return string(b), true
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, true
		}
		return BindValue(rv.Elem().Interface())
	default:
		return nil, false
	}
}

// BindFields converts a field-name → value mapping into a deterministic
// (sorted by name) list of column names with a parallel argument list.
// Fields whose values cannot be converted are excluded and reported in
// dropped.
func BindFields(fields map[string]any) (columns []string, args []any, dropped []string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		arg, ok := BindValue(fields[name])
		if !ok {
			dropped = append(dropped, name)
			continue
		}
		columns = append(columns, name)
		args = append(args, arg)
	}

	return columns, args, dropped
}

// BuildInsert assembles a parameterized INSERT statement from validated
// fields. Invalid fields are excluded from the statement and returned in
// dropped for the caller to log.
func BuildInsert(table string, fields map[string]any) (query string, args []any, dropped []string) {
	columns, args, dropped := BindFields(fields)

	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	query = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	return query, args, dropped
}

// BuildUpdate assembles a parameterized UPDATE statement from validated
// fields plus a raw condition clause. Arguments for the condition are
// the caller's to append.
func BuildUpdate(table string, fields map[string]any, where string) (query string, args []any, dropped []string) {
	columns, args, dropped := BindFields(fields)

	assignments := make([]string, len(columns))
	for i, column := range columns {
		assignments[i] = column + " = ?"
	}

	query = fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		table, strings.Join(assignments, ", "), where)
	return query, args, dropped
}

// Interpolate joins literal query parts with positional placeholders for
// the interleaved values, applying the BindValue conversion per value.
// len(parts) must be len(values)+1. A value that cannot be converted
// contributes no placeholder; its index is reported in dropped.
func Interpolate(parts []string, values ...any) (query string, args []any, dropped []int) {
	var sb strings.Builder

	for i, part := range parts {
		sb.WriteString(part)
		if i >= len(values) {
			continue
		}
		arg, ok := BindValue(values[i])
		if !ok {
			dropped = append(dropped, i)
			continue
		}
		sb.WriteString("?")
		args = append(args, arg)
	}

	return sb.String(), args, dropped
}
