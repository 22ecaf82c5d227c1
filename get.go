package treepath

// Get returns the value addressed by path in root.
//
// The boolean is false when the value is absent: a nil root, an empty path,
// a missing key, a null value, an out of range index or a filter without
// matches. Absence is never an error; errors report paths that do not fit the
// shape of the tree.
func Get(path string, root map[string]any) (any, bool, error) {
	if root == nil || path == "" {
		return nil, false, nil
	}

	p, err := Parse(path)
	if err != nil {
		return nil, false, err
	}

	return p.Get(root)
}

// Get walks root segment by segment and stops at the first absent value.
// A filter segment yields its first match in sequence order.
func (p Path) Get(root map[string]any) (any, bool, error) {
	if root == nil || len(p) == 0 {
		return nil, false, nil
	}
	if err := p.validate(); err != nil {
		return nil, false, err
	}

	var current any = root
	for i, seg := range p {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false, pathError(ErrNotAMap, "cannot read %q from %s %s", seg.Name, typeName(current), p[:i])
		}

		child := m[seg.Name]
		if child == nil {
			return nil, false, nil
		}

		if !seg.IsList() {
			current = child
			continue
		}

		seq, ok := child.([]any)
		if !ok {
			return nil, false, pathError(ErrNotASequence, "%s is a %s", p.at(i), typeName(child))
		}

		var found bool
		switch sel := seg.Selector.(type) {
		case FirstElement, Index:
			current, found = resolveOne(seq, sel)
		case Filter:
			current, found = sel.first(seq)
		}
		if !found || current == nil {
			return nil, false, nil
		}
	}

	return current, true, nil
}
