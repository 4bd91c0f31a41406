// Package compiler turns the dashboard's structured filter state into a
// textual boolean expression in the audit query language. Compilation is a
// pure function of the state: equal inputs always yield byte-identical
// output, regardless of how the state maps were populated.
package compiler

import (
	"strings"
)

// MatchKind selects how a dimension's value is compared.
type MatchKind int

const (
	// MatchEquals emits equality clauses, one per selected value.
	MatchEquals MatchKind = iota
	// MatchContains emits a partial-match clause via .contains().
	MatchContains
)

// Dimension is one independently filterable attribute. Dimensions compile in
// the order they are declared, never in state-map iteration order.
type Dimension struct {
	// ID keys the dimension in State.
	ID string
	// Field is the dotted field path emitted into the expression.
	Field string
	Match MatchKind
}

// State is the structured filter state supplied by the host UI. A missing or
// empty entry contributes no clause.
type State struct {
	// Selections holds multi-select dimension values, keyed by dimension
	// ID, in the order the user picked them. Order is preserved in the
	// compiled expression so the UI round-trips predictably.
	Selections map[string][]string

	// Terms holds free-text dimension values, keyed by dimension ID.
	Terms map[string]string

	// Custom is a raw expression clause appended verbatim. It is not
	// parenthesized; a top-level || inside it binds differently than a
	// reader might expect (kept as-is, see DESIGN.md).
	Custom string
}

// Compiler compiles filter state against a fixed dimension declaration.
type Compiler struct {
	dims []Dimension
}

// New builds a compiler over the given dimensions. Declaration order defines
// clause order.
func New(dims []Dimension) *Compiler {
	c := &Compiler{dims: make([]Dimension, len(dims))}
	copy(c.dims, dims)
	return c
}

// DefaultDimensions is the audit-dashboard dimension set in declaration
// order.
func DefaultDimensions() []Dimension {
	return []Dimension{
		{ID: "verb", Field: "verb", Match: MatchEquals},
		{ID: "namespace", Field: "objectRef.namespace", Match: MatchEquals},
		{ID: "resource", Field: "objectRef.resource", Match: MatchEquals},
		{ID: "user", Field: "user.username", Match: MatchEquals},
		{ID: "status", Field: "responseStatus.code", Match: MatchEquals},
		{ID: "name", Field: "objectRef.name", Match: MatchContains},
	}
}

// Default returns a compiler over DefaultDimensions.
func Default() *Compiler {
	return New(DefaultDimensions())
}

// Dimensions returns the declared dimensions in order. The slice is a copy.
func (c *Compiler) Dimensions() []Dimension {
	out := make([]Dimension, len(c.dims))
	copy(out, c.dims)
	return out
}

// Compile renders the state as a boolean expression. An empty state yields
// the empty string, meaning "match everything". Literal values are embedded
// without escaping; a value containing a double quote produces a malformed
// expression (known limitation, see DESIGN.md).
func (c *Compiler) Compile(s State) string {
	var clauses []string
	for _, d := range c.dims {
		clause := compileDimension(d, s)
		if clause != "" {
			clauses = append(clauses, clause)
		}
	}
	if custom := strings.TrimSpace(s.Custom); custom != "" {
		clauses = append(clauses, custom)
	}
	return strings.Join(clauses, " && ")
}

func compileDimension(d Dimension, s State) string {
	switch d.Match {
	case MatchContains:
		term := s.Terms[d.ID]
		if term == "" {
			return ""
		}
		return d.Field + `.contains("` + term + `")`
	default:
		values := s.Selections[d.ID]
		switch len(values) {
		case 0:
			return ""
		case 1:
			return equalsClause(d.Field, values[0])
		default:
			parts := make([]string, len(values))
			for i, v := range values {
				parts[i] = equalsClause(d.Field, v)
			}
			return "(" + strings.Join(parts, " || ") + ")"
		}
	}
}

func equalsClause(field, value string) string {
	return field + ` == "` + value + `"`
}
