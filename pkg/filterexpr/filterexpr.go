// Package filterexpr is the public face of the audit filter-expression
// engine: a deterministic compiler from structured filter state to an
// expression string, and a cursor-aware autocomplete engine for free-typed
// expressions.
//
// # Compiling filter state
//
//	c := filterexpr.NewCompiler(filterexpr.DefaultDimensions())
//	expr := c.Compile(filterexpr.State{
//		Selections: map[string][]string{"verb": {"get", "list"}},
//	})
//	// (verb == "get" || verb == "list")
//
// # Autocomplete
//
//	engine := filterexpr.NewEngine(filterexpr.DefaultCatalog())
//	ctrl := filterexpr.NewController(engine)
//	st := ctrl.Initial("", 0)
//	st = ctrl.TextChanged(st, "ve", 2)
//	// st.Open == true, st.Suggestions lists fields starting with "ve"
//	st = ctrl.Accept(st)
//	// st.Text == "verb", st.Cursor == 4
//
// All engine calls are pure and synchronous; they are safe to invoke on every
// keystroke.
package filterexpr

import (
	"github.com/ledgewood/auditexpr/internal/catalog"
	"github.com/ledgewood/auditexpr/internal/compiler"
	"github.com/ledgewood/auditexpr/internal/completion"
	"github.com/ledgewood/auditexpr/internal/facets"
)

// Catalog types.
type (
	Catalog       = catalog.Catalog
	CatalogHandle = catalog.Handle
	Field         = catalog.Field
	FieldType     = catalog.FieldType
)

// Field types.
const (
	TypeString = catalog.TypeString
	TypeNumber = catalog.TypeNumber
	TypeEnum   = catalog.TypeEnum
)

// Compiler types.
type (
	Compiler  = compiler.Compiler
	Dimension = compiler.Dimension
	MatchKind = compiler.MatchKind
	State     = compiler.State
	Validator = compiler.Validator
)

// Dimension match kinds.
const (
	MatchEquals   = compiler.MatchEquals
	MatchContains = compiler.MatchContains
)

// Completion types.
type (
	Context     = completion.Context
	ContextKind = completion.ContextKind
	Controller  = completion.Controller
	EditorState = completion.EditorState
	Engine      = completion.Engine
	Insertion   = completion.Insertion
	Kind        = completion.Kind
	Suggestion  = completion.Suggestion
)

// Suggestion kinds.
const (
	KindField    = completion.KindField
	KindOperator = completion.KindOperator
	KindValue    = completion.KindValue
	KindFunction = completion.KindFunction
	KindLogical  = completion.KindLogical
)

// Facet types.
type (
	Facet        = facets.Facet
	FacetPayload = facets.Payload
)

// NewCatalog builds a catalog from fields in declaration order.
func NewCatalog(fields []Field) *Catalog { return catalog.New(fields) }

// DefaultCatalog returns the built-in Kubernetes audit field set.
func DefaultCatalog() *Catalog { return catalog.Default() }

// NewCatalogHandle wraps a catalog for atomic wholesale replacement.
func NewCatalogHandle(c *Catalog) *CatalogHandle { return catalog.NewHandle(c) }

// NewCompiler builds an expression compiler over the given dimensions.
func NewCompiler(dims []Dimension) *Compiler { return compiler.New(dims) }

// DefaultDimensions returns the audit dashboard's dimension declaration.
func DefaultDimensions() []Dimension { return compiler.DefaultDimensions() }

// NewValidator builds a CEL checker for the expressions c produces.
func NewValidator(c *Compiler) (*Validator, error) { return compiler.NewValidator(c) }

// NewEngine builds a suggestion engine over one catalog snapshot.
func NewEngine(cat *Catalog, opts ...completion.Option) *Engine {
	return completion.NewEngine(cat, opts...)
}

// WithFunctions overrides the function list suggested after a dot.
func WithFunctions(fns []Suggestion) completion.Option {
	return completion.WithFunctions(fns)
}

// NewController builds the keyboard state machine over an engine.
func NewController(engine *Engine, opts ...completion.ControllerOption) *Controller {
	return completion.NewController(engine, opts...)
}

// WithMinTrigger sets the minimum text length before ordinary edits open the
// suggestion popup.
func WithMinTrigger(n int) completion.ControllerOption {
	return completion.WithMinTrigger(n)
}

// Insert splices a suggestion into text at the cursor.
func Insert(s Suggestion, text string, cursor int) Insertion {
	return completion.Insert(s, text, cursor)
}

// ApplyFacets derives a new catalog snapshot from observed facet data.
func ApplyFacets(base *Catalog, p FacetPayload) *Catalog {
	return facets.Apply(base, p)
}
