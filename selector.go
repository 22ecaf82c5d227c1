package treepath

import (
	"encoding/json"
	"strconv"
)

// resolveOne returns the single element a FirstElement or Index selector
// addresses, or false when the sequence is too short.
func resolveOne(seq []any, sel Selector) (any, bool) {
	var n int
	switch s := sel.(type) {
	case FirstElement:
		n = 0
	case Index:
		n = int(s)
	default:
		return nil, false
	}

	if n < 0 || n >= len(seq) {
		return nil, false
	}
	return seq[n], true
}

// matches returns the indexes of all elements satisfying the filter, in sequence order.
func (f Filter) matches(seq []any) []int {
	var out []int
	for i, elem := range seq {
		if f.Match(elem) {
			out = append(out, i)
		}
	}
	return out
}

// first returns the first element satisfying the filter.
func (f Filter) first(seq []any) (any, bool) {
	for _, elem := range seq {
		if f.Match(elem) {
			return elem, true
		}
	}
	return nil, false
}

// Match reports whether v is a mapping holding every clause key with a value
// whose string form equals the clause value.
func (f Filter) Match(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}

	for _, c := range f {
		field, exists := m[c.Key]
		if !exists {
			return false
		}
		s, ok := scalarString(field)
		if !ok || s != c.Value {
			return false
		}
	}
	return true
}

// scalarString renders a scalar the way filter clauses compare it.
// Containers and nil have no string form.
func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	case bool:
		return strconv.FormatBool(s), true
	case int:
		return strconv.Itoa(s), true
	case int8:
		return strconv.FormatInt(int64(s), 10), true
	case int16:
		return strconv.FormatInt(int64(s), 10), true
	case int32:
		return strconv.FormatInt(int64(s), 10), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case uint:
		return strconv.FormatUint(uint64(s), 10), true
	case uint8:
		return strconv.FormatUint(uint64(s), 10), true
	case uint16:
		return strconv.FormatUint(uint64(s), 10), true
	case uint32:
		return strconv.FormatUint(uint64(s), 10), true
	case uint64:
		return strconv.FormatUint(s, 10), true
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	default:
		return "", false
	}
}
