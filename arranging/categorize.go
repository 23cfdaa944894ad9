package arranging

// byStatic splits members on the static modifier. unsorted keeps the
// insertion order of both.
type byStatic struct {
	unsorted   []*Member
	statics    []*Member
	nonStatics []*Member
}

func (b *byStatic) add(m *Member) {
	b.unsorted = append(b.unsorted, m)
	if m.IsStatic() {
		b.statics = append(b.statics, m)
	} else {
		b.nonStatics = append(b.nonStatics, m)
	}
}

func (b *byStatic) arranged() []*Member {
	return concat(b.statics, b.nonStatics)
}

// byVisibility orders fields public, protected, package-private, private.
type byVisibility struct {
	publics         []*Member
	protecteds      []*Member
	packagePrivates []*Member
	privates        []*Member
}

func (b *byVisibility) add(m *Member) {
	switch {
	case m.Modifiers.Has(Public):
		b.publics = append(b.publics, m)
	case m.Modifiers.Has(Protected):
		b.protecteds = append(b.protecteds, m)
	case m.Modifiers.Has(Private):
		b.privates = append(b.privates, m)
	default:
		b.packagePrivates = append(b.packagePrivates, m)
	}
}

func (b *byVisibility) arranged() []*Member {
	return concat(b.publics, b.protecteds, b.packagePrivates, b.privates)
}

// fieldBuckets splits fields by their (static, final) pair.
type fieldBuckets struct {
	unsorted     []*Member
	staticFinals byVisibility
	statics      byVisibility
	finals       byVisibility
	plains       byVisibility
}

func (f *fieldBuckets) add(m *Member) {
	f.unsorted = append(f.unsorted, m)
	static, final := m.Modifiers.Has(Static), m.Modifiers.Has(Final)
	switch {
	case static && final:
		f.staticFinals.add(m)
	case static:
		f.statics.add(m)
	case final:
		f.finals.add(m)
	default:
		f.plains.add(m)
	}
}

// nestedBuckets holds nested type declarations.
type nestedBuckets struct {
	enums                    []*Member
	interfacesAndAnnotations []*Member
	classes                  byStatic
}

func (n *nestedBuckets) add(m *Member) {
	switch m.Type.Kind {
	case Enum:
		n.enums = append(n.enums, m)
	case Interface, Annotation:
		n.interfacesAndAnnotations = append(n.interfacesAndAnnotations, m)
	default:
		n.classes.add(m)
	}
}

// buckets is the per-container accumulator. A fresh one is built for every
// container and dropped after assembly.
type buckets struct {
	enumConstants     []*Member
	fields            fieldBuckets
	initializers      byStatic
	constructors      []*Member
	methods           byStatic
	annotationMembers []*Member
	nested            nestedBuckets
}

// categorize partitions the direct members of t. The relative order of
// members inside every bucket is their order in t.
func categorize(t *TypeDecl) (*buckets, error) {
	b := &buckets{}
	for _, m := range t.Members {
		switch m.Kind {
		case EnumConstant:
			b.enumConstants = append(b.enumConstants, m)
		case Field:
			b.fields.add(m)
		case Initializer:
			b.initializers.add(m)
		case Constructor:
			b.constructors = append(b.constructors, m)
		case Method:
			b.methods.add(m)
		case AnnotationMember:
			b.annotationMembers = append(b.annotationMembers, m)
		case NestedType:
			if m.Type == nil {
				return nil, &ArrangeError{Container: t.Name, Member: m.String(), Err: ErrUnsupportedKind}
			}
			b.nested.add(m)
		default:
			desc := m.String()
			if m.NodeType != "" {
				desc += " (" + m.NodeType + ")"
			}
			return nil, &ArrangeError{Container: t.Name, Member: desc, Err: ErrUnsupportedKind}
		}
	}
	return b, nil
}

func concat(lists ...[]*Member) []*Member {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]*Member, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
