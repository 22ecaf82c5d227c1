package treepath

import (
	"strconv"
	"strings"

	"github.com/theory/jsonpath"
)

// Select returns every value path addresses in root. Unlike Get, a filter
// segment contributes all of its matches, and values that do not fit the
// path's shape are skipped instead of reported as errors.
func Select(path string, root map[string]any) ([]any, error) {
	if root == nil || path == "" {
		return nil, nil
	}

	p, err := Parse(path)
	if err != nil {
		return nil, err
	}

	return p.Select(root)
}

// Select is the Path form of the package level Select.
func (p Path) Select(root map[string]any) ([]any, error) {
	if root == nil || len(p) == 0 {
		return nil, nil
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	jp, err := p.JSONPath()
	if err != nil {
		return nil, err
	}

	return jp.Select(root), nil
}

// JSONPath translates p into an RFC 9535 JSONPath query.
//
// "[]" becomes "[0]" and a filter becomes a "[?...]" selector. A clause value
// that is a canonical number or a boolean also matches the typed literal, so
// that "{age=26}" selects both "26" and 26.
func (p Path) JSONPath() (*jsonpath.Path, error) {
	expr := p.jsonPathString()

	jp, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, pathError(ErrMalformedPath, "cannot translate %s to %s: %v", p, expr, err)
	}

	return jp, nil
}

func (p Path) jsonPathString() string {
	var b strings.Builder
	b.WriteByte('$')

	for _, seg := range p {
		writeMember(&b, seg.Name)

		switch sel := seg.Selector.(type) {
		case FirstElement:
			b.WriteString("[0]")
		case Index:
			b.WriteString(sel.String())
		case Filter:
			b.WriteString("[?")
			for i, c := range sel {
				if i > 0 {
					b.WriteString(" && ")
				}
				writeClause(&b, c)
			}
			b.WriteByte(']')
		}
	}

	return b.String()
}

func writeClause(b *strings.Builder, c Clause) {
	typed, ok := typedLiteral(c.Value)
	if ok {
		b.WriteByte('(')
	}

	b.WriteByte('@')
	writeMember(b, c.Key)
	b.WriteString("==")
	writeQuoted(b, c.Value, '"')

	if ok {
		b.WriteString(" || @")
		writeMember(b, c.Key)
		b.WriteString("==")
		b.WriteString(typed)
		b.WriteByte(')')
	}
}

// typedLiteral returns the JSON literal a clause value stands for, when the
// value is exactly how a number or boolean prints.
func typedLiteral(v string) (string, bool) {
	if v == "true" || v == "false" {
		return v, true
	}

	if strings.Trim(v, "-0123456789.") != "" {
		return "", false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || strconv.FormatFloat(f, 'f', -1, 64) != v {
		return "", false
	}
	return v, true
}

func writeMember(b *strings.Builder, name string) {
	if isShorthandName(name) {
		b.WriteByte('.')
		b.WriteString(name)
		return
	}

	b.WriteByte('[')
	writeQuoted(b, name, '\'')
	b.WriteByte(']')
}

func isShorthandName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// writeQuoted writes an RFC 9535 string literal delimited by quote.
func writeQuoted(b *strings.Builder, s string, quote byte) {
	const hex = "0123456789abcdef"

	b.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == rune(quote), r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\b':
			b.WriteString(`\b`)
		case r == '\f':
			b.WriteString(`\f`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20:
			b.WriteString(`\u00`)
			b.WriteByte(hex[r>>4])
			b.WriteByte(hex[r&0xf])
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
}
