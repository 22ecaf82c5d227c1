package treepath

import (
	"strconv"
	"strings"
)

// Parse splits a path string into segments.
//
// Grammar:
//
//	path     = segment *( "." segment )
//	segment  = name [ "[" selector "]" ]
//	selector = "" | digits | 1*( "{" key "=" value "}" )
//
// Surrounding whitespace of the whole path is ignored. Dots inside brackets
// do not separate segments, so filter values may contain dots.
func Parse(raw string) (Path, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, pathError(ErrMalformedPath, "path is empty")
	}

	tokens, err := splitTokens(raw)
	if err != nil {
		return nil, err
	}

	path := make(Path, 0, len(tokens))
	for _, tok := range tokens {
		seg, err := parseSegment(tok)
		if err != nil {
			return nil, err
		}
		path = append(path, seg)
	}

	return path, nil
}

// MustParse is like Parse but panics on error.
func MustParse(raw string) Path {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func splitTokens(raw string) ([]string, error) {
	tokens := make([]string, 0, strings.Count(raw, ".")+1)
	depth, start := 0, 0

	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return nil, pathError(ErrMalformedPath, "unbalanced ']' at offset %d in %q", i, raw)
			}
			depth--
		case '.':
			if depth > 0 {
				continue
			}
			tokens = append(tokens, raw[start:i])
			start = i + 1
			if len(tokens) >= MaxSegments {
				return nil, pathError(ErrMalformedPath, "more than %d segments", MaxSegments)
			}
		}
	}

	if depth != 0 {
		return nil, pathError(ErrMalformedPath, "unclosed '[' in %q", raw)
	}

	return append(tokens, raw[start:]), nil
}

func parseSegment(tok string) (Segment, error) {
	if tok == "" {
		return Segment{}, pathError(ErrMalformedPath, "empty segment")
	}

	open := strings.IndexByte(tok, '[')
	if open < 0 {
		return Segment{Name: tok}, nil
	}

	name := tok[:open]
	if name == "" {
		return Segment{}, pathError(ErrMalformedPath, "segment %q has no name before '['", tok)
	}
	if tok[len(tok)-1] != ']' {
		return Segment{}, pathError(ErrMalformedPath, "unexpected text after ']' in segment %q", tok)
	}

	body := tok[open+1 : len(tok)-1]
	if strings.ContainsAny(body, "[]") {
		return Segment{}, pathError(ErrMalformedPath, "segment %q has more than one selector", tok)
	}

	sel, err := parseSelector(body)
	if err != nil {
		return Segment{}, err
	}

	return Segment{Name: name, Selector: sel}, nil
}

func parseSelector(text string) (Selector, error) {
	switch {
	case strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}"):
		return parseFilter(text)
	case isDigits(text):
		n, err := strconv.Atoi(text)
		if err != nil || n > MaxIndex {
			return nil, pathError(ErrInvalidSelector, "index %s is larger than %d", text, MaxIndex)
		}
		return Index(n), nil
	case text == "":
		return FirstElement{}, nil
	default:
		return nil, pathError(ErrInvalidSelector, "[%s]", text)
	}
}

// parseFilter reads concatenated {key=value} clauses; commas and blanks
// between clauses are tolerated.
func parseFilter(text string) (Filter, error) {
	var f Filter
	rest := text

	for {
		rest = strings.TrimLeft(rest, " \t,")
		if rest == "" {
			break
		}
		if rest[0] != '{' {
			return nil, pathError(ErrInvalidFilter, "expected '{' at %q", rest)
		}

		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return nil, pathError(ErrInvalidFilter, "unterminated clause %q", rest)
		}

		clause := rest[1:end]
		if strings.ContainsRune(clause, '{') {
			return nil, pathError(ErrInvalidFilter, "nested '{' in clause %q", clause)
		}

		parts := strings.Split(clause, "=")
		if len(parts) != 2 {
			return nil, pathError(ErrInvalidFilter, "clause %q must be key=value", clause)
		}
		key, value := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if key == "" || value == "" {
			return nil, pathError(ErrInvalidFilter, "clause %q has an empty key or value", clause)
		}

		f = append(f, Clause{Key: key, Value: value})
		rest = rest[end+1:]
	}

	return f, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
