package javasource

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/metal3d/jarrange/arranging"
)

// ErrUnparseable is returned when the source cannot be parsed or declares no
// type.
var ErrUnparseable = errors.New("cannot parse source")

var containerKinds = map[string]arranging.ContainerKind{
	"class_declaration":           arranging.Class,
	"interface_declaration":       arranging.Interface,
	"enum_declaration":            arranging.Enum,
	"annotation_type_declaration": arranging.Annotation,
	"record_declaration":          arranging.Record,
}

var modifierBits = map[string]arranging.Modifier{
	"static":    arranging.Static,
	"final":     arranging.Final,
	"public":    arranging.Public,
	"protected": arranging.Protected,
	"private":   arranging.Private,
}

// File is a parsed Java compilation unit.
type File struct {
	Filename string

	// Source is the content the spans of Types refer to.
	Source []byte

	// Types are the top level type declarations, in source order.
	Types []*arranging.TypeDecl
}

// Parse parses a Java compilation unit. Sources with syntax errors are
// rejected with ErrUnparseable.
func Parse(ctx context.Context, filename string, src []byte) (*File, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", filename, ErrUnparseable, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		at := root.StartPoint()
		if n := firstError(root); n != nil {
			at = n.StartPoint()
		}
		return nil, fmt.Errorf("%s:%d:%d: %w: syntax error", filename, at.Row+1, at.Column+1, ErrUnparseable)
	}

	p := &fileParser{src: src}
	f := &File{Filename: filename, Source: src}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if _, ok := containerKinds[child.Type()]; !ok {
			continue
		}
		f.Types = append(f.Types, p.typeDecl(child))
	}
	if len(f.Types) == 0 {
		return nil, fmt.Errorf("%s: %w: no type declaration", filename, ErrUnparseable)
	}
	return f, nil
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !(child.HasError() || child.IsMissing()) {
			continue
		}
		if found := firstError(child); found != nil {
			return found
		}
	}
	return nil
}

func isComment(n *sitter.Node) bool {
	switch n.Type() {
	case "line_comment", "block_comment", "comment":
		return true
	}
	return false
}

type fileParser struct {
	src []byte
}

func (p *fileParser) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(p.src)
}

func (p *fileParser) typeDecl(n *sitter.Node) *arranging.TypeDecl {
	body := n.ChildByFieldName("body")
	t := &arranging.TypeDecl{
		Kind: containerKinds[n.Type()],
		Name: p.text(n.ChildByFieldName("name")),
		Span: arranging.Span{Start: int(n.StartByte()), End: int(n.EndByte())},
		// between the braces
		Body: arranging.Span{Start: int(body.StartByte()) + 1, End: int(body.EndByte()) - 1},
	}
	t.Members = p.members(bodyEntries(body))
	return t
}

// bodyEntries lists the named children of a type body in source order. The
// declarations following the constants of an enum are flattened in.
func bodyEntries(body *sitter.Node) []*sitter.Node {
	var entries []*sitter.Node
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child.Type() == "enum_body_declarations" {
			entries = append(entries, bodyEntries(child)...)
			continue
		}
		entries = append(entries, child)
	}
	return entries
}

// members converts body entries to members. Comments are attached to the
// member that follows them, or to the previous member when they start on
// the line where it ends. Comments after the last member stay in the body.
func (p *fileParser) members(entries []*sitter.Node) []*arranging.Member {
	var (
		members []*arranging.Member
		pending []*sitter.Node
		prevEnd = -1
	)
	for _, entry := range entries {
		if isComment(entry) {
			if len(pending) == 0 && len(members) > 0 && int(entry.StartPoint().Row) == prevEnd {
				last := members[len(members)-1]
				last.Span.End = int(entry.EndByte())
				prevEnd = int(entry.EndPoint().Row)
				continue
			}
			pending = append(pending, entry)
			continue
		}

		m := p.member(entry)
		if len(pending) > 0 {
			m.Span.Start = int(pending[0].StartByte())
			pending = nil
		}
		members = append(members, m)
		prevEnd = int(entry.EndPoint().Row)
	}
	return members
}

func (p *fileParser) member(n *sitter.Node) *arranging.Member {
	m := &arranging.Member{
		NodeType:  n.Type(),
		Modifiers: p.modifiers(n),
		Span:      arranging.Span{Start: int(n.StartByte()), End: int(n.EndByte())},
	}

	switch n.Type() {
	case "field_declaration", "constant_declaration":
		m.Kind = arranging.Field
		if declarator := n.ChildByFieldName("declarator"); declarator != nil {
			m.Name = p.text(declarator.ChildByFieldName("name"))
		}
	case "method_declaration":
		m.Kind = arranging.Method
		m.Name = p.text(n.ChildByFieldName("name"))
		m.ParameterCount = parameterCount(n.ChildByFieldName("parameters"))
		m.ReturnType = p.text(n.ChildByFieldName("type"))
	case "constructor_declaration", "compact_constructor_declaration":
		m.Kind = arranging.Constructor
		m.Name = p.text(n.ChildByFieldName("name"))
		m.ParameterCount = parameterCount(n.ChildByFieldName("parameters"))
	case "block":
		m.Kind = arranging.Initializer
	case "static_initializer":
		m.Kind = arranging.Initializer
		m.Modifiers |= arranging.Static
	case "enum_constant":
		m.Kind = arranging.EnumConstant
		m.Name = p.text(n.ChildByFieldName("name"))
	case "annotation_type_element_declaration":
		m.Kind = arranging.AnnotationMember
		m.Name = p.text(n.ChildByFieldName("name"))
		m.ReturnType = p.text(n.ChildByFieldName("type"))
	default:
		if _, ok := containerKinds[n.Type()]; ok {
			m.Kind = arranging.NestedType
			m.Type = p.typeDecl(n)
			m.Name = m.Type.Name
			return m
		}
		m.Kind = arranging.UnknownKind
	}
	return m
}

func (p *fileParser) modifiers(n *sitter.Node) arranging.Modifier {
	var mods arranging.Modifier
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || child.Type() != "modifiers" {
			continue
		}
		for j := 0; j < int(child.ChildCount()); j++ {
			mods |= modifierBits[child.Child(j).Type()]
		}
	}
	return mods
}

func parameterCount(params *sitter.Node) int {
	if params == nil {
		return 0
	}
	count := 0
	for i := 0; i < int(params.NamedChildCount()); i++ {
		switch params.NamedChild(i).Type() {
		case "formal_parameter", "spread_parameter":
			count++
		}
	}
	return count
}
