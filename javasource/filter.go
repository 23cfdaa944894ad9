package javasource

import "strings"

// RemoveBlankLinesAfterOpenBrace drops blank lines that directly follow a
// line ending with "{". It reports whether a line was dropped. The final
// newline of text, if any, is kept.
func RemoveBlankLinesAfterOpenBrace(text string) (string, bool) {
	body := strings.TrimSuffix(text, "\n")
	trailing := text[len(body):]

	lines := strings.Split(body, "\n")
	kept := make([]string, 0, len(lines))
	filtered := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" &&
			len(kept) > 0 &&
			strings.HasSuffix(strings.TrimSpace(kept[len(kept)-1]), "{") {
			filtered = true
			continue
		}
		kept = append(kept, line)
	}
	if !filtered {
		return text, false
	}
	return strings.Join(kept, "\n") + trailing, true
}
