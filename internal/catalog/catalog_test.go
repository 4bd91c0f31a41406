package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	c := Default()

	f, ok := c.Lookup("verb")
	require.True(t, ok)
	assert.Equal(t, TypeEnum, f.Type)
	assert.Contains(t, f.CommonValues, `"delete"`)

	f, ok = c.Lookup("responseStatus.code")
	require.True(t, ok)
	assert.Equal(t, TypeNumber, f.Type)

	_, ok = c.Lookup("no.such.field")
	assert.False(t, ok)

	// Lookup is exact, not prefix-based.
	_, ok = c.Lookup("objectRef")
	assert.False(t, ok)
}

func TestMatchPrefix(t *testing.T) {
	c := Default()

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{
			name:   "single_match",
			prefix: "ve",
			want:   []string{"verb"},
		},
		{
			name:   "dotted_prefix_in_catalog_order",
			prefix: "objectRef.",
			want:   []string{"objectRef.namespace", "objectRef.resource", "objectRef.name"},
		},
		{
			name:   "case_insensitive",
			prefix: "OBJECTREF.NAME",
			want:   []string{"objectRef.namespace", "objectRef.name"},
		},
		{
			name:   "no_match",
			prefix: "zzz",
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, f := range c.MatchPrefix(tt.prefix) {
				got = append(got, f.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchPrefix_emptyMatchesAll(t *testing.T) {
	c := Default()
	assert.Len(t, c.MatchPrefix(""), c.Len())
}

func TestNew_preservesOrderAndShadowsDuplicates(t *testing.T) {
	c := New([]Field{
		{Name: "a", Description: "first"},
		{Name: "b"},
		{Name: "a", Description: "second"},
	})

	fields := c.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, []string{"a", "b", "a"}, []string{fields[0].Name, fields[1].Name, fields[2].Name})

	f, ok := c.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "second", f.Description)
}

func TestFields_returnsCopy(t *testing.T) {
	c := Default()
	fields := c.Fields()
	fields[0].Name = "mutated"
	assert.Equal(t, "verb", c.Fields()[0].Name)
}

func TestDefault_valueQuoting(t *testing.T) {
	c := Default()
	for _, f := range c.Fields() {
		for _, v := range f.CommonValues {
			if f.Type == TypeNumber {
				assert.NotContains(t, v, `"`, "field %s value %s", f.Name, v)
			} else {
				assert.True(t, len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"',
					"field %s value %s should be pre-quoted", f.Name, v)
			}
		}
	}
}

func TestHandle_swapIsVisible(t *testing.T) {
	base := Default()
	h := NewHandle(base)
	assert.Same(t, base, h.Load())

	next := New([]Field{{Name: "verb", Type: TypeEnum}})
	h.Store(next)
	assert.Same(t, next, h.Load())
}

func TestHandle_concurrentReaders(t *testing.T) {
	h := NewHandle(Default())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c := h.Load()
				assert.NotNil(t, c)
				c.MatchPrefix("objectRef")
			}
		}()
	}
	for i := 0; i < 100; i++ {
		h.Store(New([]Field{{Name: "verb"}}))
		h.Store(Default())
	}
	wg.Wait()
}
