// Package loader reads filter-state documents from disk or stdin. Documents
// may be JSON, YAML, or TOML; the format is sniffed from the content, never
// from the file extension, so piped input works the same as files.
package loader

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ledgewood/auditexpr/internal/compiler"
)

// stateDocument is the serialized form of a filter state.
type stateDocument struct {
	Selections map[string][]string `json:"selections" yaml:"selections" toml:"selections"`
	Terms      map[string]string   `json:"terms" yaml:"terms" toml:"terms"`
	Custom     string              `json:"custom" yaml:"custom" toml:"custom"`
}

// LoadState reads a filter-state document from path, or from stdin when path
// is "-".
func LoadState(path string) (compiler.State, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return compiler.State{}, fmt.Errorf("reading filter state: %w", err)
	}
	return DecodeState(data)
}

// DecodeState parses a filter-state document. TOML is detected by shape;
// everything else goes through the YAML decoder, which also accepts JSON.
func DecodeState(data []byte) (compiler.State, error) {
	var doc stateDocument
	if isLikelyTOML(string(data)) {
		if err := toml.Unmarshal(data, &doc); err != nil {
			return compiler.State{}, fmt.Errorf("invalid TOML filter state: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &doc); err != nil {
		return compiler.State{}, fmt.Errorf("invalid filter state: %w", err)
	}
	return compiler.State{
		Selections: doc.Selections,
		Terms:      doc.Terms,
		Custom:     doc.Custom,
	}, nil
}

var (
	// TOML section headers: [section], [[array]], [a.b], ["quoted"].
	tomlSectionPattern = regexp.MustCompile(`^\s*\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)

	// TOML key = value lines (key: value would be YAML).
	tomlKeyValuePattern = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)
)

// isLikelyTOML returns true when the input reads as TOML: any section header,
// or a majority of non-comment lines shaped like key = value.
func isLikelyTOML(input string) bool {
	sectionCount := 0
	keyValueCount := 0
	nonEmptyCount := 0

	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmptyCount++

		if tomlSectionPattern.MatchString(line) {
			sectionCount++
		}
		if tomlKeyValuePattern.MatchString(line) {
			keyValueCount++
		}
	}

	if sectionCount > 0 {
		return true
	}
	return nonEmptyCount > 0 && keyValueCount > nonEmptyCount/2
}
