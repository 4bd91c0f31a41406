package completion

import (
	"github.com/ledgewood/auditexpr/internal/catalog"
)

// Engine generates suggestions against one catalog snapshot and one function
// list. It holds no mutable state; hosts that receive a fresh catalog build a
// new engine, so a call in flight never observes a half-replaced catalog.
type Engine struct {
	catalog   *catalog.Catalog
	functions []Suggestion
}

// Option configures an Engine.
type Option func(*Engine)

// WithFunctions overrides the function suggestions offered after a dot.
func WithFunctions(fns []Suggestion) Option {
	return func(e *Engine) {
		e.functions = make([]Suggestion, len(fns))
		copy(e.functions, fns)
	}
}

// NewEngine builds an engine over the given catalog snapshot.
func NewEngine(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog:   cat,
		functions: DefaultFunctions(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the snapshot this engine suggests from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// DefaultFunctions is the built-in function list for the audit expression
// language. Function suggestions insert only the opening token; the user
// closes parentheses and quotes themselves.
func DefaultFunctions() []Suggestion {
	return []Suggestion{
		{Text: ".startsWith(", Description: "match values beginning with a prefix", Kind: KindFunction},
		{Text: ".contains(", Description: "match values containing a substring", Kind: KindFunction},
		{Text: ".endsWith(", Description: "match values ending with a suffix", Kind: KindFunction},
		{Text: ".matches(", Description: "match values against a regular expression", Kind: KindFunction},
		{Text: "timestamp(", Description: "parse an RFC 3339 timestamp", Kind: KindFunction},
	}
}

// comparisonOperators are offered after a complete field name, in fixed
// order. Trailing spaces keep a later value insertion from swallowing the
// operator, since the insertion span reaches back to the previous delimiter.
var comparisonOperators = []Suggestion{
	{Text: "== ", Description: "equals", Kind: KindOperator},
	{Text: "!= ", Description: "does not equal", Kind: KindOperator},
	{Text: "> ", Description: "greater than", Kind: KindOperator},
	{Text: ">= ", Description: "greater than or equal", Kind: KindOperator},
	{Text: "< ", Description: "less than", Kind: KindOperator},
	{Text: "<= ", Description: "less than or equal", Kind: KindOperator},
	{Text: "in ", Description: "is one of a list of values", Kind: KindOperator},
}

// logicalConnectors follow a completed comparison.
var logicalConnectors = []Suggestion{
	{Text: " && ", Description: "add another condition", Kind: KindLogical},
	{Text: " || ", Description: "add alternative condition", Kind: KindLogical},
}

// Generate classifies the caret position and returns the suggestions for
// every fired context, concatenated in classification order. Duplicates
// across contexts are kept; the first element is the default selection. The
// result is empty when nothing applies.
func (e *Engine) Generate(text string, cursor int) []Suggestion {
	var out []Suggestion
	for _, ctx := range e.Classify(text, cursor) {
		out = append(out, e.suggest(ctx)...)
	}
	return out
}

func (e *Engine) suggest(ctx Context) []Suggestion {
	switch ctx.Kind {
	case ContextAfterCompleteValue:
		return append([]Suggestion(nil), logicalConnectors...)
	case ContextAfterLogicalOperator:
		return e.fieldSuggestions(e.catalog.Fields())
	case ContextFieldTyping:
		return e.fieldSuggestions(e.catalog.MatchPrefix(ctx.Prefix))
	case ContextAfterField:
		return append([]Suggestion(nil), comparisonOperators...)
	case ContextAfterDot:
		return append([]Suggestion(nil), e.functions...)
	case ContextAfterComparator:
		return e.valueSuggestions(ctx.Field)
	default:
		return nil
	}
}

func (e *Engine) fieldSuggestions(fields []catalog.Field) []Suggestion {
	out := make([]Suggestion, 0, len(fields))
	for _, f := range fields {
		out = append(out, Suggestion{
			Text:        f.Name,
			Description: f.Description,
			Kind:        KindField,
		})
	}
	return out
}

func (e *Engine) valueSuggestions(fieldName string) []Suggestion {
	f, ok := e.catalog.Lookup(fieldName)
	if !ok {
		return nil
	}
	out := make([]Suggestion, 0, len(f.CommonValues))
	for _, v := range f.CommonValues {
		out = append(out, Suggestion{
			Text:        v,
			Description: "common value for " + f.Name,
			Kind:        KindValue,
		})
	}
	return out
}
