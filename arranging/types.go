package arranging

// Kind is the kind of declaration a Member holds.
type Kind int

const (
	// UnknownKind is set by parsers for body entries they cannot classify.
	UnknownKind Kind = iota
	Field
	Method
	Constructor
	Initializer
	EnumConstant
	AnnotationMember
	NestedType
)

var kindNames = map[Kind]string{
	UnknownKind:      "unknown",
	Field:            "field",
	Method:           "method",
	Constructor:      "constructor",
	Initializer:      "initializer",
	EnumConstant:     "enum constant",
	AnnotationMember: "annotation member",
	NestedType:       "nested type",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ContainerKind is the kind of a type declaration.
type ContainerKind int

const (
	Class ContainerKind = iota
	Interface
	Enum
	Annotation
	Record
)

func (c ContainerKind) String() string {
	switch c {
	case Class:
		return "class"
	case Interface:
		return "interface"
	case Enum:
		return "enum"
	case Annotation:
		return "annotation"
	case Record:
		return "record"
	}
	return "unknown"
}

// Flat reports whether fields of the container are implicitly static and
// left unsorted (interfaces and annotations).
func (c ContainerKind) Flat() bool {
	return c == Interface || c == Annotation
}

// Modifier is a bitset of the modifiers that drive categorization.
type Modifier uint8

const (
	Static Modifier = 1 << iota
	Final
	Public
	Protected
	Private
)

// Has reports whether all the bits of m are set.
func (mods Modifier) Has(m Modifier) bool {
	return mods&m == m
}

// Span is a half-open byte range in the source file.
type Span struct {
	Start int
	End   int
}

// Member is one declaration found in a type body.
type Member struct {
	// Kind of declaration.
	Kind Kind

	// Name of the member. Empty for constructors and initializers.
	Name string

	// Modifiers that matter for categorization. Initializers use Static for
	// static blocks.
	Modifiers Modifier

	// ParameterCount is the number of formal parameters of methods.
	ParameterCount int

	// ReturnType is the textual return type of methods, "void" when the
	// method returns nothing.
	ReturnType string

	// Type is the nested declaration for NestedType members.
	Type *TypeDecl

	// Span covers the member and the comments attached to it.
	Span Span

	// NodeType is the parser node name, used in diagnostics.
	NodeType string
}

// TypeDecl is a class, interface, enum, annotation or record body.
type TypeDecl struct {
	Kind    ContainerKind
	Name    string
	Members []*Member

	// Span covers the whole declaration, Body the region between braces.
	Span Span
	Body Span
}

// IsStatic reports whether the member carries the static modifier. Records,
// interfaces, enums and annotations nested in a type are always static.
func (m *Member) IsStatic() bool {
	if m.Kind == NestedType && m.Type != nil && m.Type.Kind != Class {
		return true
	}
	return m.Modifiers.Has(Static)
}

func (m *Member) String() string {
	if m.Name == "" {
		return m.Kind.String()
	}
	return m.Kind.String() + " " + m.Name
}
