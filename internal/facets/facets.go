// Package facets turns facet payloads (observed value/count pairs per field)
// into fresh catalog snapshots. Fetching the payload from the facets API is
// the host's concern; this package only transforms what it is handed.
package facets

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ledgewood/auditexpr/internal/catalog"
)

// Facet is one observed value for a field together with its occurrence count.
type Facet struct {
	Value string `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}

// Payload maps field names to their observed facets.
type Payload map[string][]Facet

// Decode parses a facet payload from YAML or JSON bytes.
func Decode(data []byte) (Payload, error) {
	var p Payload
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding facet payload: %w", err)
	}
	return p, nil
}

// LoadFile reads and decodes a facet payload from disk.
func LoadFile(path string) (Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading facet payload: %w", err)
	}
	return Decode(data)
}

// Apply derives a new catalog snapshot from base with each field's common
// values replaced by the payload's facets, ordered by descending count (ties
// keep payload order). Fields absent from the payload keep their existing
// values; payload entries for unknown fields are ignored. The base catalog is
// not modified.
func Apply(base *catalog.Catalog, p Payload) *catalog.Catalog {
	fields := base.Fields()
	for i := range fields {
		observed, ok := p[fields[i].Name]
		if !ok || len(observed) == 0 {
			continue
		}
		fields[i].CommonValues = literals(fields[i].Type, observed)
	}
	return catalog.New(fields)
}

func literals(t catalog.FieldType, observed []Facet) []string {
	sorted := make([]Facet, len(observed))
	copy(sorted, observed)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	out := make([]string, 0, len(sorted))
	for _, f := range sorted {
		if t == catalog.TypeNumber {
			out = append(out, f.Value)
			continue
		}
		out = append(out, `"`+f.Value+`"`)
	}
	return out
}
