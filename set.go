package treepath

import "github.com/jacoelho/treepath/internal/stack"

// frame is a pending step of a write: apply p[pos:] to m.
type frame struct {
	m   map[string]any
	pos int
}

// Set writes value at path inside root, creating missing mappings and
// sequences on the way. A nil value deletes a field. See Path.Set for the
// per-segment rules.
func Set(path string, root map[string]any, value any) error {
	if path == "" || root == nil {
		return pathError(ErrMissingArgument, "path and root are required")
	}

	p, err := Parse(path)
	if err != nil {
		return err
	}

	return p.Set(root, value)
}

// Delete removes the field addressed by path. It is Set with a nil value.
func Delete(path string, root map[string]any) error {
	return Set(path, root, nil)
}

// Set mutates root in place.
//
// Intermediate segments descend into existing mappings or create them. Index
// selectors past the end of a sequence pad it with empty mappings, and filter
// selectors continue the write on every matching element.
//
// On the last segment a field is assigned, or deleted when value is nil.
// Index and FirstElement selectors append value to the sequence; the index is
// not used as a position, and FirstElement with a nil value does nothing.
// A filter selector cannot be the last segment.
//
// Index selectors are bounded by MaxIndex, since padding creates one mapping
// per missing element.
//
// Writes are not transactional: an error on a later filter match leaves the
// earlier matches modified.
func (p Path) Set(root map[string]any, value any) error {
	if len(p) == 0 || root == nil {
		return pathError(ErrMissingArgument, "path and root are required")
	}
	if err := p.validate(); err != nil {
		return err
	}

	if _, ok := p[len(p)-1].Selector.(Filter); ok {
		return pathError(ErrAmbiguousWrite, "%s matches mappings, a write needs a field key after the filter", p)
	}

	work := stack.New[frame](len(p))
	work.Push(frame{m: root})

	for work.Len() > 0 {
		fr, _ := work.Pop()

		next, err := p.apply(fr, value)
		if err != nil {
			return err
		}
		work.PushOrdered(next...)
	}

	return nil
}

// apply performs one segment of a write and returns the frames to continue with.
func (p Path) apply(fr frame, value any) ([]frame, error) {
	seg := p[fr.pos]
	terminal := fr.pos == len(p)-1

	if !seg.IsList() {
		if terminal {
			if value == nil {
				delete(fr.m, seg.Name)
			} else {
				fr.m[seg.Name] = value
			}
			return nil, nil
		}

		child, err := p.childMap(fr.m, fr.pos)
		if err != nil {
			return nil, err
		}
		return []frame{{m: child, pos: fr.pos + 1}}, nil
	}

	seq, err := p.childSeq(fr.m, fr.pos)
	if err != nil {
		return nil, err
	}

	switch sel := seg.Selector.(type) {
	case Filter:
		matched := sel.matches(seq)
		next := make([]frame, 0, len(matched))
		for _, i := range matched {
			next = append(next, frame{m: seq[i].(map[string]any), pos: fr.pos + 1})
		}
		return next, nil

	case Index:
		if terminal {
			fr.m[seg.Name] = append(seq, value)
			return nil, nil
		}

		n := int(sel)
		if n >= len(seq) {
			for len(seq) <= n {
				seq = append(seq, map[string]any{})
			}
			fr.m[seg.Name] = seq
		}

		child, err := p.elementMap(seq, n, fr.pos)
		if err != nil {
			return nil, err
		}
		return []frame{{m: child, pos: fr.pos + 1}}, nil

	case FirstElement:
		if terminal {
			// Removing the first element is not supported; a nil value is ignored.
			if value != nil {
				fr.m[seg.Name] = append(seq, value)
			}
			return nil, nil
		}

		if len(seq) == 0 {
			seq = append(seq, map[string]any{})
			fr.m[seg.Name] = seq
		}

		child, err := p.elementMap(seq, 0, fr.pos)
		if err != nil {
			return nil, err
		}
		return []frame{{m: child, pos: fr.pos + 1}}, nil
	}

	return nil, pathError(ErrInvalidSelector, "unknown selector %T in %s", seg.Selector, seg)
}

// childMap returns the mapping stored under the segment name at pos,
// creating it when missing or null.
func (p Path) childMap(m map[string]any, pos int) (map[string]any, error) {
	name := p[pos].Name
	switch child := m[name].(type) {
	case map[string]any:
		return child, nil
	case nil:
		created := map[string]any{}
		m[name] = created
		return created, nil
	default:
		return nil, pathError(ErrNotAMap, "%s is a %s", p.at(pos), typeName(child))
	}
}

// childSeq returns the sequence stored under the segment name at pos,
// creating an empty one when missing or null.
func (p Path) childSeq(m map[string]any, pos int) ([]any, error) {
	name := p[pos].Name
	switch child := m[name].(type) {
	case []any:
		return child, nil
	case nil:
		created := []any{}
		m[name] = created
		return created, nil
	default:
		return nil, pathError(ErrNotASequence, "%s is a %s", p.at(pos), typeName(child))
	}
}

// elementMap returns element i of seq as a mapping, filling a null slot
// with a new one. Nested sequences are rejected.
func (p Path) elementMap(seq []any, i int, pos int) (map[string]any, error) {
	switch elem := seq[i].(type) {
	case map[string]any:
		return elem, nil
	case nil:
		created := map[string]any{}
		seq[i] = created
		return created, nil
	default:
		return nil, pathError(ErrNotAMap, "element %d of %s is a %s", i, p.at(pos), typeName(elem))
	}
}
