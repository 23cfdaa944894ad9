package arranging

import "strings"

const (
	getPrefix = "get"
	isPrefix  = "is"
	setPrefix = "set"
)

// hasAccessorPrefix reports whether name starts with prefix and looks like an
// accessor name: it must be longer than the prefix and contain "$", "_" or a
// character that is not lower case. "getx" or "settle" are not accessors.
func hasAccessorPrefix(prefix, name string) bool {
	return strings.HasPrefix(name, prefix) &&
		len(name) > len(prefix) &&
		(strings.ContainsAny(name, "$_") || strings.ToLower(name) != name)
}

func isGetter(m *Member) bool {
	return m.Kind == Method &&
		hasAccessorPrefix(getPrefix, m.Name) &&
		m.ParameterCount == 0 &&
		m.ReturnType != "" && m.ReturnType != "void"
}

func isBooleanGetter(m *Member) bool {
	return m.Kind == Method &&
		hasAccessorPrefix(isPrefix, m.Name) &&
		m.ParameterCount == 0 &&
		strings.EqualFold(m.ReturnType, "boolean")
}

func isSetter(m *Member) bool {
	return m.Kind == Method &&
		hasAccessorPrefix(setPrefix, m.Name) &&
		m.ParameterCount == 1 &&
		m.ReturnType == "void"
}

// groupAccessors moves the setters of a property right after its getter. A
// plain getter wins over a boolean getter for the same property. Setters of
// one property keep their relative order. Setters without a getter stay
// where they are.
func groupAccessors(members []*Member) ([]*Member, error) {
	getters := make(map[string]*Member)
	booleanGetters := make(map[string]*Member)
	setters := make(map[string][]*Member)

	for _, m := range members {
		switch {
		case isGetter(m):
			key := strings.TrimPrefix(m.Name, getPrefix)
			if _, ok := getters[key]; ok {
				return nil, &ArrangeError{Member: m.String(), Err: ErrAmbiguousAccessor}
			}
			getters[key] = m
		case isBooleanGetter(m):
			key := strings.TrimPrefix(m.Name, isPrefix)
			if _, ok := booleanGetters[key]; ok {
				return nil, &ArrangeError{Member: m.String(), Err: ErrAmbiguousAccessor}
			}
			booleanGetters[key] = m
		case isSetter(m):
			key := strings.TrimPrefix(m.Name, setPrefix)
			setters[key] = append(setters[key], m)
		}
	}

	// follow[g] is the list of setters to emit right after getter g
	follow := make(map[*Member][]*Member)
	moved := make(map[*Member]bool)
	for key, list := range setters {
		getter, ok := getters[key]
		if !ok {
			getter, ok = booleanGetters[key]
		}
		if !ok {
			continue
		}
		follow[getter] = list
		for _, setter := range list {
			moved[setter] = true
		}
	}
	if len(follow) == 0 {
		return members, nil
	}

	out := make([]*Member, 0, len(members))
	for _, m := range members {
		if moved[m] {
			continue
		}
		out = append(out, m)
		out = append(out, follow[m]...)
	}
	return out, nil
}
