package model

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Value is an optional JSON value taken from a raw record. The zero Value is
// null, which is also what a missing key yields. Values are comparable and can
// be used inside map keys.
type Value struct {
	Type gjson.Type
	// Text holds the string contents for strings, the canonical form for
	// numbers and the raw JSON otherwise.
	Text string
}

// Null is the value of a missing or null field.
var Null = Value{}

// String returns a string Value.
func String(s string) Value {
	return Value{Type: gjson.String, Text: s}
}

func valueOf(r gjson.Result) Value {
	switch r.Type {
	case gjson.Null:
		return Null
	case gjson.String:
		return String(r.Str)
	case gjson.Number:
		return Value{Type: gjson.Number, Text: number(r)}
	default:
		return Value{Type: r.Type, Text: r.Raw}
	}
}

// number gives every spelling of a numeric value one text, so 1, 1.0 and 1e0
// are the same key. Integers that fit int64 keep full precision.
func number(r gjson.Result) string {
	if n, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
		return strconv.FormatInt(n, 10)
	}
	f := r.Num
	switch {
	case math.IsInf(f, 0) || math.IsNaN(f):
		return r.Raw
	case f == math.Trunc(f) && math.Abs(f) < 1<<53:
		return strconv.FormatInt(int64(f), 10)
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

func (v Value) IsNull() bool {
	return v.Type == gjson.Null
}

// Str returns the string contents if v holds a JSON string.
func (v Value) Str() (string, bool) {
	if v.Type != gjson.String {
		return "", false
	}
	return v.Text, true
}

// Base reduces a non-empty string path to its last element, so that absolute
// and relative paths to the same file compare equal. Any other value is
// returned unchanged.
func (v Value) Base() Value {
	s, ok := v.Str()
	if !ok || s == "" {
		return v
	}
	return String(s[strings.LastIndexByte(s, '/')+1:])
}

// String renders v for reports: null, quoted strings, raw JSON for the rest.
func (v Value) String() string {
	switch v.Type {
	case gjson.Null:
		return "null"
	case gjson.String:
		return strconv.Quote(v.Text)
	default:
		return v.Text
	}
}

// MarshalJSON keeps the original JSON kind in machine-readable reports.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Type {
	case gjson.Null:
		return []byte("null"), nil
	case gjson.String:
		return []byte(strconv.Quote(v.Text)), nil
	default:
		return []byte(v.Text), nil
	}
}
