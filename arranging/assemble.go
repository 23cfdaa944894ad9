package arranging

// assemble concatenates the sorted buckets. Constants come before state,
// static state before instance state, state before behavior and behavior
// before nested types.
func (b *buckets) assemble(flat bool) []*Member {
	var out []*Member
	out = append(out, b.enumConstants...)

	if flat {
		// everything is static in interfaces and annotations, and
		// initializers are not valid there: keep whatever we found
		out = append(out, b.fields.unsorted...)
		out = append(out, b.initializers.unsorted...)
	} else {
		out = append(out, b.fields.staticFinals.arranged()...)
		out = append(out, b.fields.statics.arranged()...)
		out = append(out, b.initializers.statics...)
		out = append(out, b.fields.finals.arranged()...)
		out = append(out, b.fields.plains.arranged()...)
		out = append(out, b.initializers.nonStatics...)
	}

	out = append(out, b.constructors...)
	out = append(out, b.methods.arranged()...)
	out = append(out, b.annotationMembers...)

	out = append(out, b.nested.enums...)
	out = append(out, b.nested.interfacesAndAnnotations...)
	if flat {
		out = append(out, b.nested.classes.unsorted...)
	} else {
		out = append(out, b.nested.classes.arranged()...)
	}
	return out
}

// sort sorts the method and annotation member buckets in place.
func (b *buckets) sort() error {
	var err error
	if b.methods.statics, err = SortMethods(b.methods.statics); err != nil {
		return err
	}
	if b.methods.nonStatics, err = SortMethods(b.methods.nonStatics); err != nil {
		return err
	}
	if b.annotationMembers, err = SortMethods(b.annotationMembers); err != nil {
		return err
	}
	return nil
}

// Shallow returns the direct members of t in canonical order. Nested type
// bodies are not looked at and t is not modified.
func Shallow(t *TypeDecl) ([]*Member, error) {
	b, err := categorize(t)
	if err != nil {
		return nil, err
	}
	if err := b.sort(); err != nil {
		if ae, ok := err.(*ArrangeError); ok && ae.Container == "" {
			ae.Container = t.Name
		}
		return nil, err
	}
	return b.assemble(t.Kind.Flat()), nil
}
