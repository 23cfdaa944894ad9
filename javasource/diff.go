package javasource

import (
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns the unified diff between content and newcontent. Paths are
// prefixed with "a/" and "b/" so the output applies with patch -p1.
func Diff(filename string, content, newcontent []byte) (string, error) {
	name := strings.TrimPrefix(filepath.ToSlash(filepath.Clean(filename)), "/")
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(content)),
		B:        difflib.SplitLines(string(newcontent)),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
}
