package conf

import (
	"sort"
	"strconv"
	"strings"
)

// Type identifies the active variant of a Value.
type Type int

const (
	TypeInt Type = iota
	TypeFloat
	TypeBool
	TypeString
	TypeList
)

// String returns the type name as it appears in diagnostics.
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a single configuration value: an integer, a float, a boolean,
// a string, or a list of values. The zero Value is an int with value 0.
type Value struct {
	typ Type
	i   int64
	f   float64
	b   bool
	s   string
	l   []Value
}

// Int creates an integer Value.
func Int(v int64) Value { return Value{typ: TypeInt, i: v} }

// Float creates a floating-point Value.
func Float(v float64) Value { return Value{typ: TypeFloat, f: v} }

// Bool creates a boolean Value.
func Bool(v bool) Value { return Value{typ: TypeBool, b: v} }

// String creates a string Value.
func String(v string) Value { return Value{typ: TypeString, s: v} }

// List creates a list Value from the given elements.
func List(elems ...Value) Value { return Value{typ: TypeList, l: elems} }

// Type returns the active variant of the value.
func (v Value) Type() Type { return v.typ }

// AsInt returns the integer payload. The second result is false if the
// value is not an integer.
func (v Value) AsInt() (int64, bool) { return v.i, v.typ == TypeInt }

// AsFloat returns the float payload. The second result is false if the
// value is not a float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.typ == TypeFloat }

// AsBool returns the boolean payload. The second result is false if the
// value is not a boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.typ == TypeBool }

// AsString returns the string payload. The second result is false if the
// value is not a string.
func (v Value) AsString() (string, bool) { return v.s, v.typ == TypeString }

// AsList returns the list payload. The second result is false if the
// value is not a list.
func (v Value) AsList() ([]Value, bool) { return v.l, v.typ == TypeList }

// Equal reports whether two values have the same variant and the same
// payload. Values of different types are never equal; comparing them is
// not an error. Lists compare element-wise.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case TypeInt:
		return v.i == o.i
	case TypeFloat:
		return v.f == o.f
	case TypeBool:
		return v.b == o.b
	case TypeString:
		return v.s == o.s
	case TypeList:
		if len(v.l) != len(o.l) {
			return false
		}
		for i := range v.l {
			if !v.l[i].Equal(o.l[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Format renders the value in its on-disk textual form: integers in
// decimal, floats with '.' as the decimal separator, booleans as
// true/false, strings wrapped in double quotes, lists bracketed with
// comma-separated elements. The format has no escape sequences, so
// string bytes are written literally; strings containing '"' or a
// newline are not representable.
func (v Value) Format() string {
	switch v.typ {
	case TypeInt:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return formatFloat(v.f)
	case TypeBool:
		return strconv.FormatBool(v.b)
	case TypeString:
		return "\"" + v.s + "\""
	case TypeList:
		parts := make([]string, len(v.l))
		for i, e := range v.l {
			parts[i] = e.Format()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return ""
	}
}

// formatFloat renders a float so that it always re-lexes as a float: the
// text always contains a decimal point and never an exponent.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Interface returns the value as plain Go data (int64, float64, bool,
// string, or []any), suitable for encoding to other formats.
func (v Value) Interface() any {
	switch v.typ {
	case TypeInt:
		return v.i
	case TypeFloat:
		return v.f
	case TypeBool:
		return v.b
	case TypeString:
		return v.s
	case TypeList:
		elems := make([]any, len(v.l))
		for i, e := range v.l {
			elems[i] = e.Interface()
		}
		return elems
	default:
		return nil
	}
}

// FromInterface converts plain Go data into a Value. It accepts the types
// produced by decoding TOML or JSON documents. The second result is false
// for unsupported types (maps, nil, etc).
func FromInterface(v any) (Value, bool) {
	switch x := v.(type) {
	case Value:
		return x, true
	case int:
		return Int(int64(x)), true
	case int64:
		return Int(x), true
	case float64:
		return Float(x), true
	case bool:
		return Bool(x), true
	case string:
		return String(x), true
	case []any:
		elems := make([]Value, 0, len(x))
		for _, e := range x {
			ev, ok := FromInterface(e)
			if !ok {
				return Value{}, false
			}
			elems = append(elems, ev)
		}
		return List(elems...), true
	default:
		return Value{}, false
	}
}

// Data is the contents of a configuration file: a mapping from key to
// Value. Inserting an existing key replaces its value. A schema is also a
// Data; its entries double as default values and as type templates.
type Data map[string]Value

// Keys returns the keys in sorted order.
func (d Data) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy of the map.
func (d Data) Clone() Data {
	out := make(Data, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Equal reports whether two Data maps hold the same keys and equal values.
func (d Data) Equal(o Data) bool {
	if len(d) != len(o) {
		return false
	}
	for k, v := range d {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
