// Package arranging puts the members of Java type declarations in a
// canonical order.
package arranging

// Arrange arranges t and every type declared in it, deepest types first. It
// returns a new tree and reports whether the order of any member list
// changed. t is left untouched; members that did not change are shared
// between both trees. On error no tree is returned.
func Arrange(t *TypeDecl) (*TypeDecl, bool, error) {
	changed := false

	// children first, the arranged ones replace their member in a copy of
	// the member list
	members := make([]*Member, len(t.Members))
	copy(members, t.Members)
	for i, m := range t.Members {
		if m.Kind != NestedType || m.Type == nil {
			continue
		}
		arranged, childChanged, err := Arrange(m.Type)
		if err != nil {
			return nil, false, withContainer(err, t.Name)
		}
		if !childChanged {
			continue
		}
		changed = true
		clone := *m
		clone.Type = arranged
		members[i] = &clone
	}

	current := *t
	current.Members = members

	arranged, err := Shallow(&current)
	if err != nil {
		return nil, false, err
	}
	if !sameOrder(members, arranged) {
		current.Members = arranged
		changed = true
	}
	return &current, changed, nil
}

// ArrangeAll arranges the top level types of a compilation unit. The unit
// changed if any of its types changed.
func ArrangeAll(types []*TypeDecl) ([]*TypeDecl, bool, error) {
	out := make([]*TypeDecl, 0, len(types))
	changed := false
	for _, t := range types {
		arranged, typeChanged, err := Arrange(t)
		if err != nil {
			return nil, false, err
		}
		changed = changed || typeChanged
		out = append(out, arranged)
	}
	return out, changed, nil
}

// sameOrder compares member identities, not contents.
func sameOrder(a, b []*Member) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
