package javasource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metal3d/jarrange/arranging"
)

const exampleSourceCode = `package demo;

public class Person {

    public String getName() {
        return name;
    }

    private String name;

    // the age
    private int age;

    public void setName(String name) {
        this.name = name;
    }

    public static final int MAX_AGE = 150;

    public Person() {
    }

    public int getAge() {
        return age;
    }

    public void setAge(int age) {
        this.age = age;
    }
}
`

const expectedSource = `package demo;

public class Person {
    public static final int MAX_AGE = 150;

    private String name;

    // the age
    private int age;

    public Person() {
    }

    public int getAge() {
        return age;
    }

    public void setAge(int age) {
        this.age = age;
    }

    public String getName() {
        return name;
    }

    public void setName(String name) {
        this.name = name;
    }
}
`

const enumSource = `public enum Color {
    RED("r"), GREEN("g");

    public String code() {
        return code;
    }

    private final String code;

    Color(String code) {
        this.code = code;
    }

    static class Helper {
        void b() {}
        void a() {}
    }
}
`

const expectedEnumSource = `public enum Color {
    RED("r"), GREEN("g");

    private final String code;

    Color(String code) {
        this.code = code;
    }

    public String code() {
        return code;
    }

    static class Helper {
        void a() {}
        void b() {}
    }
}
`

func setup(t *testing.T, content string) string {
	// write content in a temporary file and return the filename
	filename := filepath.Join(t.TempDir(), "Example.java")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))
	return filename
}

func TestArrange(t *testing.T) {
	filename := setup(t, exampleSourceCode)

	outcome, err := ArrangeSource(context.Background(), ArrangeConfig{Filename: filename})
	require.NoError(t, err)

	assert.True(t, outcome.Changed)
	assert.Equal(t, expectedSource, string(outcome.Arranged))
	assert.Equal(t, exampleSourceCode, string(outcome.Original))
	assert.Empty(t, outcome.Diff)
}

func TestArrangeIsIdempotent(t *testing.T) {
	outcome, err := ArrangeSource(context.Background(), ArrangeConfig{Filename: "Person.java", Src: []byte(expectedSource)})
	require.NoError(t, err)
	assert.False(t, outcome.Changed)
	assert.Equal(t, expectedSource, string(outcome.Arranged))
}

func TestArrangeEnumAndInnerClass(t *testing.T) {
	outcome, err := ArrangeSource(context.Background(), ArrangeConfig{Filename: "Color.java", Src: []byte(enumSource)})
	require.NoError(t, err)
	assert.True(t, outcome.Changed)
	assert.Equal(t, expectedEnumSource, string(outcome.Arranged))
}

func TestArrangeOnlyInnerChanged(t *testing.T) {
	src := `class Outer {
    int x;

    static class Inner {
        int b;
        static final int A = 1;
    }
}
`
	want := `class Outer {
    int x;

    static class Inner {
        static final int A = 1;
        int b;
    }
}
`
	outcome, err := ArrangeSource(context.Background(), ArrangeConfig{Filename: "Outer.java", Src: []byte(src)})
	require.NoError(t, err)
	assert.True(t, outcome.Changed)
	assert.Equal(t, want, string(outcome.Arranged))
}

func TestArrangeKeepBlankLines(t *testing.T) {
	outcome, err := ArrangeSource(context.Background(), ArrangeConfig{
		Filename:       "Person.java",
		Src:            []byte(exampleSourceCode),
		KeepBlankLines: true,
	})
	require.NoError(t, err)
	assert.Contains(t, string(outcome.Arranged), "public class Person {\n\n    public static final int MAX_AGE")
}

func TestArrangeDiff(t *testing.T) {
	outcome, err := ArrangeSource(context.Background(), ArrangeConfig{
		Filename: "src/Person.java",
		Src:      []byte(exampleSourceCode),
		Diff:     true,
	})
	require.NoError(t, err)
	assert.Contains(t, outcome.Diff, "--- a/src/Person.java\n")
	assert.Contains(t, outcome.Diff, "+++ b/src/Person.java\n")
	assert.Contains(t, outcome.Diff, "@@ -")

	noDiff, err := ArrangeSource(context.Background(), ArrangeConfig{
		Filename: "src/Person.java",
		Src:      []byte(expectedSource),
		Diff:     true,
	})
	require.NoError(t, err)
	assert.Empty(t, noDiff.Diff)
}

func TestArrangeLineEnding(t *testing.T) {
	outcome, err := ArrangeSource(context.Background(), ArrangeConfig{
		Filename:   "Person.java",
		Src:        []byte(exampleSourceCode),
		LineEnding: LineEndingCRLF,
	})
	require.NoError(t, err)
	assert.Contains(t, string(outcome.Arranged), "public class Person {\r\n    public static final")
	assert.NotContains(t, string(outcome.Arranged), "\r\r")
}

func TestArrangeAmbiguousAccessor(t *testing.T) {
	src := `class Bean {
    boolean isOn() { return true; }
    Boolean isOn() { return true; }
}
`
	_, err := ArrangeSource(context.Background(), ArrangeConfig{Filename: "Bean.java", Src: []byte(src)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, arranging.ErrAmbiguousAccessor))
	var ae *arranging.ArrangeError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "Bean", ae.Container)
}

func TestArrangeMalformed(t *testing.T) {
	_, err := ArrangeSource(context.Background(), ArrangeConfig{Filename: "Bad.java", Src: []byte("class Bad { void m( }")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnparseable))
}

func TestArrangeMissingFile(t *testing.T) {
	_, err := ArrangeSource(context.Background(), ArrangeConfig{Filename: filepath.Join(t.TempDir(), "Nope.java")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
