// Package completion implements the cursor-aware autocomplete engine for the
// audit filter expression language: it classifies the text around the caret,
// generates ranked suggestions from a field catalog, resolves how an accepted
// suggestion splices into the text, and drives the keyboard state machine the
// host input widget talks to.
package completion

// Kind indicates what a suggestion inserts.
type Kind int

const (
	KindField Kind = iota
	KindOperator
	KindValue
	KindFunction
	KindLogical
)

// String returns the lowercase kind name used in display surfaces.
func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindOperator:
		return "operator"
	case KindValue:
		return "value"
	case KindFunction:
		return "function"
	case KindLogical:
		return "logical"
	default:
		return "unknown"
	}
}

// Suggestion is a single completion candidate. Text is the literal spliced
// into the expression when the suggestion is accepted.
type Suggestion struct {
	Text        string
	Description string
	Kind        Kind
}
