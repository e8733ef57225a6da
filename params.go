package pathmatch

import "strconv"

// Params maps parameter names to values. Builder.Build reads it as input;
// Matcher.Match produces one as output, so a built path round-trips through
// matching into structurally equal parameters.
type Params map[string]ParamValue

// ParamValue is a parameter value: a single string, or an ordered list of
// strings for repeating parameters. The zero value means absent, the same as
// a missing map entry.
type ParamValue struct {
	kind  paramKind
	value string
	list  []string
}

type paramKind uint8

const (
	paramAbsent paramKind = iota
	paramScalar
	paramList
)

// StringValue returns a single-string parameter value.
func StringValue(value string) ParamValue {
	return ParamValue{kind: paramScalar, value: value}
}

// IntValue returns a single parameter value holding the decimal rendering
// of value.
func IntValue(value int) ParamValue {
	return ParamValue{kind: paramScalar, value: strconv.Itoa(value)}
}

// ListValue returns a list parameter value for a repeating parameter.
func ListValue(values ...string) ParamValue {
	return ParamValue{kind: paramList, list: values}
}

// IsList reports whether the value is a list.
func (v ParamValue) IsList() bool { return v.kind == paramList }

// Value returns the single string value, or "" for lists and absent values.
func (v ParamValue) Value() string {
	if v.kind == paramScalar {
		return v.value
	}

	return ""
}

// Values returns the list elements, or nil for single and absent values.
func (v ParamValue) Values() []string {
	if v.kind == paramList {
		return v.list
	}

	return nil
}
