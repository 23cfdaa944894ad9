package javasource

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metal3d/jarrange/arranging"
)

const parserSource = `package demo;

import java.util.List;

/** Doc. */
public class Demo {
    // counter
    private int count; // trailing

    public static final String NAME = "demo";

    static {
        System.out.println();
    }

    {
        count = 1;
    }

    public Demo(int a, String... rest) {}

    public static <T> List<T> of(T first) { return null; }

    void run() {}

    enum Mode { ON, OFF; void flip() {} }

    interface Listener { int X = 1; void on(); }

    @interface Marker { String value() default ""; }

    record Point(int x, int y) {}
}
`

func TestParse(t *testing.T) {
	f, err := Parse(context.Background(), "Demo.java", []byte(parserSource))
	require.NoError(t, err)
	require.Len(t, f.Types, 1)

	demo := f.Types[0]
	assert.Equal(t, "Demo", demo.Name)
	assert.Equal(t, arranging.Class, demo.Kind)
	require.Len(t, demo.Members, 11)

	text := func(m *arranging.Member) string {
		return parserSource[m.Span.Start:m.Span.End]
	}

	count := demo.Members[0]
	assert.Equal(t, arranging.Field, count.Kind)
	assert.Equal(t, "count", count.Name)
	assert.Equal(t, arranging.Private, count.Modifiers)
	assert.True(t, strings.HasPrefix(text(count), "// counter\n"), text(count))
	assert.True(t, strings.HasSuffix(text(count), "// trailing"), text(count))

	name := demo.Members[1]
	assert.Equal(t, "NAME", name.Name)
	assert.Equal(t, arranging.Public|arranging.Static|arranging.Final, name.Modifiers)

	assert.Equal(t, arranging.Initializer, demo.Members[2].Kind)
	assert.True(t, demo.Members[2].IsStatic())
	assert.Equal(t, arranging.Initializer, demo.Members[3].Kind)
	assert.False(t, demo.Members[3].IsStatic())

	ctor := demo.Members[4]
	assert.Equal(t, arranging.Constructor, ctor.Kind)
	assert.Equal(t, "Demo", ctor.Name)
	assert.Equal(t, 2, ctor.ParameterCount)

	of := demo.Members[5]
	assert.Equal(t, arranging.Method, of.Kind)
	assert.Equal(t, "of", of.Name)
	assert.Equal(t, "List<T>", of.ReturnType)
	assert.Equal(t, 1, of.ParameterCount)
	assert.True(t, of.IsStatic())

	run := demo.Members[6]
	assert.Equal(t, "void", run.ReturnType)
	assert.Equal(t, 0, run.ParameterCount)

	mode := demo.Members[7]
	require.Equal(t, arranging.NestedType, mode.Kind)
	assert.Equal(t, arranging.Enum, mode.Type.Kind)
	require.Len(t, mode.Type.Members, 3)
	assert.Equal(t, arranging.EnumConstant, mode.Type.Members[0].Kind)
	assert.Equal(t, "OFF", mode.Type.Members[1].Name)
	assert.Equal(t, arranging.Method, mode.Type.Members[2].Kind)
	assert.Equal(t, " ON, OFF; void flip() {} ", parserSource[mode.Type.Body.Start:mode.Type.Body.End])

	listener := demo.Members[8]
	assert.Equal(t, arranging.Interface, listener.Type.Kind)
	require.Len(t, listener.Type.Members, 2)
	assert.Equal(t, arranging.Field, listener.Type.Members[0].Kind)
	assert.Equal(t, "X", listener.Type.Members[0].Name)
	assert.Equal(t, arranging.Method, listener.Type.Members[1].Kind)

	marker := demo.Members[9]
	assert.Equal(t, arranging.Annotation, marker.Type.Kind)
	require.Len(t, marker.Type.Members, 1)
	assert.Equal(t, arranging.AnnotationMember, marker.Type.Members[0].Kind)
	assert.Equal(t, "value", marker.Type.Members[0].Name)

	point := demo.Members[10]
	assert.Equal(t, arranging.Record, point.Type.Kind)
	assert.Equal(t, "Point", point.Name)
	assert.Empty(t, point.Type.Members)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax error", "class A { int x = ; }"},
		{"no type", "package a;\n"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(context.Background(), "A.java", []byte(tt.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnparseable), err.Error())
		})
	}
}

func TestPrintUnchangedIsIdentity(t *testing.T) {
	f, err := Parse(context.Background(), "Demo.java", []byte(parserSource))
	require.NoError(t, err)
	assert.Equal(t, parserSource, string(Print(f, f.Types)))
}
