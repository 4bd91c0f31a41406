package completion

import (
	"regexp"
	"strings"
)

// ContextKind tags what kind of token the user is completing at the caret.
type ContextKind int

const (
	// ContextNone means nothing useful can be suggested.
	ContextNone ContextKind = iota
	// ContextAfterCompleteValue fires after a finished quoted string or
	// numeral; logical connectors are the natural next token.
	ContextAfterCompleteValue
	// ContextAfterLogicalOperator fires after && or ||; a field name
	// starts the next clause.
	ContextAfterLogicalOperator
	// ContextFieldTyping fires while an identifier is being typed; it
	// replaces every other context.
	ContextFieldTyping
	// ContextAfterField fires when the last word is a known field name.
	ContextAfterField
	// ContextAfterDot fires after a trailing dot; string functions apply.
	ContextAfterDot
	// ContextAfterComparator fires after <field> <op>; the field's common
	// values are suggested.
	ContextAfterComparator
)

// Context is one classified completion context. Prefix is set for
// ContextFieldTyping, Field for ContextAfterField and ContextAfterComparator.
type Context struct {
	Kind   ContextKind
	Prefix string
	Field  string
}

var (
	// A finished double-quoted string, optionally followed by whitespace.
	quotedValueTail = regexp.MustCompile(`"[^"]*"\s*$`)
	// A standalone numeral (not the tail of an identifier), optionally
	// followed by whitespace.
	numberValueTail = regexp.MustCompile(`(?:^|[^\w".])\d+(?:\.\d+)?\s*$`)
	// A trailing logical connector.
	logicalTail = regexp.MustCompile(`(?:&&|\|\|)\s*$`)
	// <field> <comparator> at the end of the text. Field paths may contain
	// dots and slashes (audit annotation keys do).
	comparatorTail = regexp.MustCompile(`([A-Za-z_][\w./-]*)\s*([!=<>]+)\s*$`)
)

// currentTokenDelims are the characters that bound the token being typed.
const currentTokenDelims = " ([."

// operatorFragments disqualify a token from field-typing classification.
var operatorFragments = []string{"==", "!=", "&&", "||"}

// Classify inspects the text before the cursor and returns the contexts that
// fire, in suggestion order. ContextFieldTyping replaces all others;
// ContextAfterCompleteValue and ContextAfterComparator may both fire and are
// both returned. Malformed input degrades to ContextNone, never an error.
func (e *Engine) Classify(text string, cursor int) []Context {
	before := beforeCursor(text, cursor)

	if tok := currentToken(before); tok != "" && !containsOperatorFragment(tok) {
		return []Context{{Kind: ContextFieldTyping, Prefix: tok}}
	}

	var out []Context
	endsValue := quotedValueTail.MatchString(before) || numberValueTail.MatchString(before)
	endsLogical := logicalTail.MatchString(before)

	switch field := e.lastWordField(before); {
	case endsValue && !endsLogical:
		out = append(out, Context{Kind: ContextAfterCompleteValue})
	case endsLogical:
		return []Context{{Kind: ContextAfterLogicalOperator}}
	case field != "":
		return []Context{{Kind: ContextAfterField, Field: field}}
	case strings.HasSuffix(before, "."):
		return []Context{{Kind: ContextAfterDot}}
	}

	if name, ok := e.comparatorField(before); ok {
		out = append(out, Context{Kind: ContextAfterComparator, Field: name})
	}

	if len(out) == 0 {
		return []Context{{Kind: ContextNone}}
	}
	return out
}

// beforeCursor returns the text before the cursor with the offset clamped
// into the valid range.
func beforeCursor(text string, cursor int) string {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(text) {
		cursor = len(text)
	}
	return text[:cursor]
}

// currentToken is the run of characters between the nearest delimiter before
// the cursor and the cursor itself.
func currentToken(before string) string {
	idx := strings.LastIndexAny(before, currentTokenDelims)
	return before[idx+1:]
}

func containsOperatorFragment(tok string) bool {
	for _, op := range operatorFragments {
		if strings.Contains(tok, op) {
			return true
		}
	}
	return false
}

// lastWordField returns the catalog field name matching the last
// whitespace-delimited word, or "".
func (e *Engine) lastWordField(before string) string {
	words := strings.Fields(before)
	if len(words) == 0 {
		return ""
	}
	last := words[len(words)-1]
	if _, ok := e.catalog.Lookup(last); ok {
		return last
	}
	return ""
}

// comparatorField reports the field of a trailing "<field> <op>" pattern when
// the field is known and carries common values to suggest.
func (e *Engine) comparatorField(before string) (string, bool) {
	m := comparatorTail.FindStringSubmatch(before)
	if m == nil {
		return "", false
	}
	f, ok := e.catalog.Lookup(m[1])
	if !ok || len(f.CommonValues) == 0 {
		return "", false
	}
	return f.Name, true
}
