package javasource

import (
	"context"
	"fmt"
	"os"

	"github.com/metal3d/jarrange/arranging"
)

// ArrangeConfig is the configuration for the ArrangeSource function.
type ArrangeConfig struct {
	Filename string

	// Src is used instead of the content of Filename when not empty.
	Src []byte

	// KeepBlankLines disables the removal of blank lines after "{" in
	// arranged files.
	KeepBlankLines bool

	// LineEnding of arranged files, see NormalizeLineEndings.
	LineEnding string

	// Diff asks for a unified diff in the outcome.
	Diff bool
}

// Outcome is the result of arranging one source file.
type Outcome struct {
	Filename string
	Changed  bool
	Original []byte

	// Arranged is the new content. It is Original when nothing changed.
	Arranged []byte

	// Diff is set when asked for and the file changed.
	Diff string
}

// ArrangeSource arranges the members of every type declared in a Java
// source. Unparseable sources return an error wrapping ErrUnparseable and
// faults found while arranging return an *arranging.ArrangeError. In both
// cases nothing is arranged.
func ArrangeSource(ctx context.Context, config ArrangeConfig) (*Outcome, error) {
	content := config.Src
	if len(content) == 0 {
		var err error
		content, err = os.ReadFile(config.Filename)
		if err != nil {
			return nil, err
		}
	}

	file, err := Parse(ctx, config.Filename, content)
	if err != nil {
		return nil, err
	}

	types, changed, err := arranging.ArrangeAll(file.Types)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.Filename, err)
	}

	outcome := &Outcome{
		Filename: config.Filename,
		Original: content,
		Arranged: content,
	}
	if !changed {
		return outcome, nil
	}

	output := Print(file, types)
	if !config.KeepBlankLines {
		filtered, _ := RemoveBlankLinesAfterOpenBrace(string(output))
		output = []byte(filtered)
	}
	if output, err = NormalizeLineEndings(output, config.LineEnding); err != nil {
		return nil, err
	}

	outcome.Changed = true
	outcome.Arranged = output
	if config.Diff {
		if outcome.Diff, err = Diff(config.Filename, content, output); err != nil {
			return nil, err
		}
	}
	return outcome, nil
}
