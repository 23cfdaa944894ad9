package javasource

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/metal3d/jarrange/arranging"
)

const (
	LineEndingKeep = ""
	LineEndingLF   = "lf"
	LineEndingCRLF = "crlf"
)

// LineEndings are the accepted line ending modes.
var LineEndings = []string{"keep", LineEndingLF, LineEndingCRLF}

// Print renders types, the arranged top level types of f, back to source.
// The text of every member is copied from f.Source. What separates members
// (blank lines, stray semicolons) stays where it was, only members move, so
// printing a tree that was not rearranged gives back f.Source unchanged.
func Print(f *File, types []*arranging.TypeDecl) []byte {
	var buf bytes.Buffer
	buf.Grow(len(f.Source))

	cursor := 0
	for _, t := range types {
		buf.Write(f.Source[cursor:t.Body.Start])
		writeBody(&buf, f.Source, t)
		cursor = t.Body.End
	}
	buf.Write(f.Source[cursor:])
	return buf.Bytes()
}

func writeBody(buf *bytes.Buffer, src []byte, t *arranging.TypeDecl) {
	// the k-th member goes where the k-th member was in the source
	slots := make([]arranging.Span, len(t.Members))
	for i, m := range t.Members {
		slots[i] = m.Span
	}
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start < slots[j].Start
	})

	cursor := t.Body.Start
	for i, m := range t.Members {
		buf.Write(src[cursor:slots[i].Start])
		writeMember(buf, src, m)
		cursor = slots[i].End
	}
	buf.Write(src[cursor:t.Body.End])
}

func writeMember(buf *bytes.Buffer, src []byte, m *arranging.Member) {
	if m.Kind != arranging.NestedType || m.Type == nil {
		buf.Write(src[m.Span.Start:m.Span.End])
		return
	}
	buf.Write(src[m.Span.Start:m.Type.Body.Start])
	writeBody(buf, src, m.Type)
	buf.Write(src[m.Type.Body.End:m.Span.End])
}

// NormalizeLineEndings converts the line endings of text to mode.
func NormalizeLineEndings(text []byte, mode string) ([]byte, error) {
	switch mode {
	case LineEndingKeep, "keep":
		return text, nil
	case LineEndingLF:
		return bytes.ReplaceAll(text, []byte("\r\n"), []byte("\n")), nil
	case LineEndingCRLF:
		lf := bytes.ReplaceAll(text, []byte("\r\n"), []byte("\n"))
		return bytes.ReplaceAll(lf, []byte("\n"), []byte("\r\n")), nil
	}
	return nil, fmt.Errorf("invalid line ending %q, valid values are %v", mode, LineEndings)
}
