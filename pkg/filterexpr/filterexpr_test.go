package filterexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgewood/auditexpr/pkg/filterexpr"
)

func TestCompileRoundtrip(t *testing.T) {
	c := filterexpr.NewCompiler(filterexpr.DefaultDimensions())
	expr := c.Compile(filterexpr.State{
		Selections: map[string][]string{
			"verb":      {"get", "list"},
			"namespace": {"prod"},
		},
	})
	assert.Equal(t, `(verb == "get" || verb == "list") && objectRef.namespace == "prod"`, expr)

	v, err := filterexpr.NewValidator(c)
	require.NoError(t, err)
	assert.NoError(t, v.Validate(expr))
}

func TestAutocompleteFlow(t *testing.T) {
	engine := filterexpr.NewEngine(filterexpr.DefaultCatalog())
	ctrl := filterexpr.NewController(engine)

	st := ctrl.Initial("", 0)
	st = ctrl.TextChanged(st, "ve", 2)
	require.True(t, st.Open)
	require.NotEmpty(t, st.Suggestions)
	assert.Equal(t, filterexpr.KindField, st.Suggestions[0].Kind)

	st = ctrl.Accept(st)
	assert.Equal(t, "verb", st.Text)
	assert.Equal(t, 4, st.Cursor)
	assert.False(t, st.Open)
}

func TestCustomCatalogAndFacets(t *testing.T) {
	cat := filterexpr.NewCatalog([]filterexpr.Field{
		{Name: "verb", Type: filterexpr.TypeEnum},
	})
	cat = filterexpr.ApplyFacets(cat, filterexpr.FacetPayload{
		"verb": {{Value: "get", Count: 10}, {Value: "delete", Count: 90}},
	})

	f, ok := cat.Lookup("verb")
	require.True(t, ok)
	assert.Equal(t, []string{`"delete"`, `"get"`}, f.CommonValues)

	handle := filterexpr.NewCatalogHandle(cat)
	assert.Same(t, cat, handle.Load())
}
