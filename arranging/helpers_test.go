package arranging

// builder creates members with distinct spans so they can be told apart
// after being copied.
type builder struct {
	pos int
}

func (b *builder) next() Span {
	b.pos += 10
	return Span{Start: b.pos, End: b.pos + 5}
}

func (b *builder) field(name string, mods Modifier) *Member {
	return &Member{Kind: Field, Name: name, Modifiers: mods, Span: b.next()}
}

func (b *builder) method(name string, params int, ret string, mods Modifier) *Member {
	return &Member{Kind: Method, Name: name, ParameterCount: params, ReturnType: ret, Modifiers: mods, Span: b.next()}
}

func (b *builder) constructor(name string, params int) *Member {
	return &Member{Kind: Constructor, Name: name, ParameterCount: params, Span: b.next()}
}

func (b *builder) initializer(static bool) *Member {
	m := &Member{Kind: Initializer, Span: b.next()}
	if static {
		m.Modifiers = Static
	}
	return m
}

func (b *builder) constant(name string) *Member {
	return &Member{Kind: EnumConstant, Name: name, Span: b.next()}
}

func (b *builder) annotationMember(name string) *Member {
	return &Member{Kind: AnnotationMember, Name: name, ReturnType: "String", Span: b.next()}
}

func (b *builder) nested(kind ContainerKind, name string, mods Modifier, members ...*Member) *Member {
	return &Member{
		Kind:      NestedType,
		Name:      name,
		Modifiers: mods,
		Type:      &TypeDecl{Kind: kind, Name: name, Members: members},
		Span:      b.next(),
	}
}

func names(members []*Member) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.Name)
	}
	return out
}

func spans(members []*Member) map[Span]int {
	out := make(map[Span]int)
	for _, m := range members {
		out[m.Span]++
	}
	return out
}
