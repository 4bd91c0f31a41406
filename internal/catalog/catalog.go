// Package catalog holds the registry of filterable audit-event fields that
// the expression completion engine suggests from. A Catalog is immutable once
// built; hosts that receive fresh facet data swap in a whole new snapshot via
// Handle rather than mutating fields in place.
package catalog

import (
	"strings"
	"sync/atomic"
)

// FieldType describes the value domain of a field.
type FieldType string

const (
	TypeString FieldType = "string"
	TypeNumber FieldType = "number"
	TypeEnum   FieldType = "enum"
)

// Field is one filterable attribute of an audit event. Name is the dotted
// path used in expressions and is unique within a catalog.
type Field struct {
	Name        string
	Type        FieldType
	Description string

	// Examples are full expression snippets shown in help surfaces,
	// e.g. `verb == "delete"`.
	Examples []string

	// CommonValues are insertable literals suggested after a comparator.
	// String and enum fields carry them pre-quoted; number fields carry
	// bare numerals.
	CommonValues []string
}

// Catalog is an ordered, immutable set of fields with exact and prefix
// lookups. Declaration order is preserved and drives suggestion order.
type Catalog struct {
	fields []Field
	byName map[string]Field
}

// New builds a catalog from fields in the given order. Later duplicates of a
// name shadow earlier ones in Lookup but keep their original position.
func New(fields []Field) *Catalog {
	c := &Catalog{
		fields: make([]Field, len(fields)),
		byName: make(map[string]Field, len(fields)),
	}
	copy(c.fields, fields)
	for _, f := range c.fields {
		c.byName[f.Name] = f
	}
	return c
}

// Lookup returns the field with the exact given name.
func (c *Catalog) Lookup(name string) (Field, bool) {
	f, ok := c.byName[name]
	return f, ok
}

// MatchPrefix returns all fields whose name starts with prefix,
// case-insensitively, in catalog order. An empty prefix matches every field.
func (c *Catalog) MatchPrefix(prefix string) []Field {
	lower := strings.ToLower(prefix)
	var out []Field
	for _, f := range c.fields {
		if strings.HasPrefix(strings.ToLower(f.Name), lower) {
			out = append(out, f)
		}
	}
	return out
}

// Fields returns the fields in catalog order. The returned slice is a copy.
func (c *Catalog) Fields() []Field {
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// Len returns the number of fields.
func (c *Catalog) Len() int {
	return len(c.fields)
}

// Handle publishes a catalog snapshot to concurrent readers. The host swaps
// in a replacement when facet data arrives; a reader holding a *Catalog
// always sees one consistent snapshot.
type Handle struct {
	current atomic.Pointer[Catalog]
}

// NewHandle creates a handle seeded with the given catalog.
func NewHandle(c *Catalog) *Handle {
	h := &Handle{}
	h.current.Store(c)
	return h
}

// Load returns the current snapshot.
func (h *Handle) Load() *Catalog {
	return h.current.Load()
}

// Store replaces the snapshot wholesale.
func (h *Handle) Store(c *Catalog) {
	h.current.Store(c)
}
