package inventory

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrTooFewFields is returned when a record has fewer than two
	// positional values.
	ErrTooFewFields = errors.New("record has fewer than two fields")

	// ErrUnorderedRecord is returned for records without a field order,
	// such as maps.
	ErrUnorderedRecord = errors.New("record has no field order")
)

// ListRecords renders arbitrary records as a tool listing by position: the
// first field of each record is printed as the tool name and the second as
// the quantity, whatever those fields are called.
//
// Structs (or pointers to structs) are read in field declaration order,
// slices and arrays in element order. New code should prefer
// ToolLibrary.ListTools, which reads named values.
func ListRecords(records []any) (string, error) {
	var b strings.Builder
	b.WriteString(listHeader)
	for i, rec := range records {
		first, second, err := positionalPair(rec)
		if err != nil {
			return "", fmt.Errorf("record %d: %w", i, err)
		}
		writeEntry(&b, first, second)
	}
	return b.String(), nil
}

// positionalPair returns the first two positional values of rec. The
// returned reflect.Values are handed to fmt as-is so unexported struct
// fields print like exported ones.
func positionalPair(rec any) (reflect.Value, reflect.Value, error) {
	v := reflect.ValueOf(rec)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, reflect.Value{}, ErrTooFewFields
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		if v.NumField() < 2 {
			return reflect.Value{}, reflect.Value{}, ErrTooFewFields
		}
		return v.Field(0), v.Field(1), nil
	case reflect.Slice, reflect.Array:
		if v.Len() < 2 {
			return reflect.Value{}, reflect.Value{}, ErrTooFewFields
		}
		return v.Index(0), v.Index(1), nil
	case reflect.Map:
		return reflect.Value{}, reflect.Value{}, ErrUnorderedRecord
	default:
		return reflect.Value{}, reflect.Value{}, ErrTooFewFields
	}
}
