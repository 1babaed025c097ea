package engine

import (
	"fmt"
	"time"
)

// Accessors for narrowing loose rows into typed fields. Required-field
// accessors return an error when the column is missing, NULL, or of an
// unexpected type; the Optional variants return nil instead.

// Int returns the named column as an int64.
func (r Row) Int(name string) (int64, error) {
	v, ok := r[name]
	if !ok || v == nil {
		return 0, fmt.Errorf("column %q missing from result row", name)
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("column %q has unexpected type %T", name, v)
	}
}

// Text returns the named column as a string. Timestamp values are
// formatted the way the engine stores them.
func (r Row) Text(name string) (string, error) {
	v, ok := r[name]
	if !ok || v == nil {
		return "", fmt.Errorf("column %q missing from result row", name)
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case time.Time:
		return s.Format("2006-01-02 15:04:05"), nil
	default:
		return "", fmt.Errorf("column %q has unexpected type %T", name, v)
	}
}

// OptionalText returns the named column as a *string, nil when the value
// is absent or NULL.
func (r Row) OptionalText(name string) *string {
	s, err := r.Text(name)
	if err != nil {
		return nil
	}
	return &s
}

// OptionalReal returns the named column as a *float64, nil when the value
// is absent or NULL.
func (r Row) OptionalReal(name string) *float64 {
	v, ok := r[name]
	if !ok || v == nil {
		return nil
	}
	switch n := v.(type) {
	case float64:
		return &n
	case int64:
		f := float64(n)
		return &f
	default:
		return nil
	}
}
