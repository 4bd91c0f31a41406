package completion

import (
	"strings"
)

// insertDelims bound the span an accepted suggestion replaces. The closing
// quote counts as a delimiter so a connector accepted right after a string
// literal appends instead of eating the literal.
const insertDelims = ` ([."`

// Insertion is the text edit emitted to the host widget when a suggestion is
// accepted.
type Insertion struct {
	NewText   string
	NewCursor int
}

// Insert splices the suggestion into text at the cursor, replacing the
// partial token between the nearest preceding delimiter and the cursor. It is
// pure and tolerates out-of-range cursors by clamping.
func Insert(s Suggestion, text string, cursor int) Insertion {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(text) {
		cursor = len(text)
	}
	before := text[:cursor]

	// One past the last delimiter, or 0 when the token starts the text.
	start := strings.LastIndexAny(before, insertDelims) + 1

	// A dot-prefixed suggestion accepted right after a dot replaces the dot
	// too, so "name." plus ".contains(" yields "name.contains(".
	if strings.HasPrefix(s.Text, ".") && start > 0 && text[start-1] == '.' {
		start--
	}

	newText := text[:start] + s.Text + text[cursor:]
	return Insertion{
		NewText:   newText,
		NewCursor: start + len(s.Text),
	}
}
