package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_emptyState(t *testing.T) {
	c := Default()
	assert.Equal(t, "", c.Compile(State{}))
	assert.Equal(t, "", c.Compile(State{
		Selections: map[string][]string{},
		Terms:      map[string]string{},
	}))
}

func TestCompile_singleValue(t *testing.T) {
	c := Default()
	got := c.Compile(State{
		Selections: map[string][]string{"verb": {"get"}},
	})
	assert.Equal(t, `verb == "get"`, got)
}

func TestCompile_multiValueGrouping(t *testing.T) {
	c := Default()
	got := c.Compile(State{
		Selections: map[string][]string{"verb": {"get", "list", "watch"}},
	})
	assert.Equal(t, `(verb == "get" || verb == "list" || verb == "watch")`, got)
}

func TestCompile_dimensionOrder(t *testing.T) {
	c := Default()

	// Clause order follows dimension declaration order, not map iteration
	// order or insertion order.
	state := State{
		Selections: map[string][]string{
			"namespace": {"kube-system"},
			"verb":      {"delete"},
		},
	}
	want := `verb == "delete" && objectRef.namespace == "kube-system"`
	for i := 0; i < 50; i++ {
		assert.Equal(t, want, c.Compile(state))
	}
}

func TestCompile_containsDimension(t *testing.T) {
	c := Default()
	got := c.Compile(State{
		Terms: map[string]string{"name": "etcd"},
	})
	assert.Equal(t, `objectRef.name.contains("etcd")`, got)
}

func TestCompile_customClause(t *testing.T) {
	c := Default()

	tests := []struct {
		name  string
		state State
		want  string
	}{
		{
			name:  "custom_only",
			state: State{Custom: `responseStatus.code >= 400`},
			want:  `responseStatus.code >= 400`,
		},
		{
			name:  "custom_trimmed",
			state: State{Custom: "  responseStatus.code >= 400\n"},
			want:  `responseStatus.code >= 400`,
		},
		{
			name:  "whitespace_only_custom_is_dropped",
			state: State{Custom: "   "},
			want:  "",
		},
		{
			name: "custom_appended_last",
			state: State{
				Selections: map[string][]string{"verb": {"create"}},
				Custom:     `user.username != "system:serviceaccount:kube-system:generic-garbage-collector"`,
			},
			want: `verb == "create" && user.username != "system:serviceaccount:kube-system:generic-garbage-collector"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Compile(tt.state))
		})
	}
}

func TestCompile_combinedDimensions(t *testing.T) {
	c := Default()
	got := c.Compile(State{
		Selections: map[string][]string{
			"verb":      {"delete", "create"},
			"namespace": {"prod"},
			"status":    {"403"},
		},
		Terms: map[string]string{"name": "payments"},
	})
	want := `(verb == "delete" || verb == "create") && objectRef.namespace == "prod" && responseStatus.code == "403" && objectRef.name.contains("payments")`
	assert.Equal(t, want, got)
}

func TestCompile_unknownDimensionIgnored(t *testing.T) {
	c := Default()
	got := c.Compile(State{
		Selections: map[string][]string{"nonexistent": {"x"}},
	})
	assert.Equal(t, "", got)
}

func TestDimensions_returnsCopy(t *testing.T) {
	c := Default()
	dims := c.Dimensions()
	require.NotEmpty(t, dims)
	dims[0].Field = "mutated"
	assert.Equal(t, "verb", c.Dimensions()[0].Field)
}

func TestValidator_acceptsCompiledOutput(t *testing.T) {
	c := Default()
	v, err := NewValidator(c)
	require.NoError(t, err)

	states := []State{
		{},
		{Selections: map[string][]string{"verb": {"get"}}},
		{Selections: map[string][]string{"verb": {"get", "list"}, "user": {"admin"}}},
		{Terms: map[string]string{"name": "etcd"}},
		{
			Selections: map[string][]string{"namespace": {"prod"}},
			Custom:     `verb != "watch"`,
		},
	}
	for _, s := range states {
		expr := c.Compile(s)
		assert.NoError(t, v.Validate(expr), "expression: %s", expr)
	}
}

func TestValidator_rejectsMalformedExpressions(t *testing.T) {
	v, err := NewValidator(Default())
	require.NoError(t, err)

	assert.Error(t, v.Validate(`verb == `))
	assert.Error(t, v.Validate(`verb == "get" &&`))
	assert.Error(t, v.Validate(`(verb == "get"`))
}

func TestValidator_rejectsNonBoolean(t *testing.T) {
	v, err := NewValidator(Default())
	require.NoError(t, err)

	assert.Error(t, v.Validate(`"just a string"`))
}
