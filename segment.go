package treepath

import (
	"strconv"
	"strings"
)

const (
	// MaxSegments bounds the number of segments a path may have.
	MaxSegments = 256

	// MaxIndex bounds Index selectors. A write pads a sequence up to the
	// index, so the bound also caps the elements one Set can create.
	MaxIndex = 1<<16 - 1
)

// Path is an ordered list of segments, as produced by Parse.
type Path []Segment

// Segment is one dot-delimited unit of a path.
// A nil Selector makes it a field segment; otherwise it is a list segment
// addressing elements of the sequence stored under Name.
type Segment struct {
	Name     string
	Selector Selector
}

// Selector is the addressing mode inside a segment's brackets.
// It is implemented by FirstElement, Index and Filter only.
type Selector interface {
	String() string
	selector()
}

type (
	// FirstElement addresses element 0, written "[]".
	FirstElement struct{}

	// Index addresses element n, written "[n]".
	Index int

	// Filter addresses every mapping element satisfying all clauses, written "[{k=v}{k2=v2}]".
	Filter []Clause
)

// Clause is one key=value equality test of a Filter.
type Clause struct {
	Key   string
	Value string
}

func (FirstElement) selector() {}
func (Index) selector()        {}
func (Filter) selector()       {}

func (FirstElement) String() string {
	return "[]"
}

func (i Index) String() string {
	return "[" + strconv.Itoa(int(i)) + "]"
}

func (f Filter) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, c := range f {
		b.WriteByte('{')
		b.WriteString(c.Key)
		b.WriteByte('=')
		b.WriteString(c.Value)
		b.WriteByte('}')
	}
	b.WriteByte(']')
	return b.String()
}

// IsList reports whether the segment carries a selector.
func (s Segment) IsList() bool {
	return s.Selector != nil
}

func (s Segment) String() string {
	if s.Selector == nil {
		return s.Name
	}
	return s.Name + s.Selector.String()
}

// String renders the canonical form of the path; Parse(p.String()) yields p.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// at renders the path up to the name of segment pos, leaving out its
// selector, to locate errors.
func (p Path) at(pos int) string {
	if pos == 0 {
		return p[0].Name
	}
	return p[:pos].String() + "." + p[pos].Name
}

// validate checks a path built by hand the way Parse checks path strings.
func (p Path) validate() error {
	if len(p) > MaxSegments {
		return pathError(ErrMalformedPath, "more than %d segments", MaxSegments)
	}

	for i, seg := range p {
		if seg.Name == "" {
			return pathError(ErrMalformedPath, "segment %d has no name", i)
		}

		switch sel := seg.Selector.(type) {
		case nil, FirstElement:
		case Index:
			if sel < 0 || sel > MaxIndex {
				return pathError(ErrInvalidSelector, "index %d of %s is outside [0, %d]", int(sel), seg.Name, MaxIndex)
			}
		case Filter:
			if len(sel) == 0 {
				return pathError(ErrInvalidFilter, "filter on %s has no clauses", seg.Name)
			}
			for _, c := range sel {
				if c.Key == "" || c.Value == "" {
					return pathError(ErrInvalidFilter, "clause {%s=%s} on %s has an empty key or value", c.Key, c.Value, seg.Name)
				}
			}
		}
	}

	return nil
}
