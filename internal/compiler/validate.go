package compiler

import (
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"
	celext "github.com/google/cel-go/ext"
)

// Validator syntax- and type-checks compiled expressions against a CEL
// environment whose variables are derived from the compiler's dimensions.
// Every dimension's field root (the segment before the first dot) is declared
// as a dyn variable, so both equality and .contains() clauses check cleanly.
type Validator struct {
	env *cel.Env
}

// NewValidator builds a validator for the expressions c produces.
func NewValidator(c *Compiler) (*Validator, error) {
	env, err := newCheckEnv(c.dims)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Validator{env: env}, nil
}

func newCheckEnv(dims []Dimension) (*cel.Env, error) {
	seen := make(map[string]bool, len(dims))
	opts := []cel.EnvOption{
		celext.Strings(),
	}
	for _, d := range dims {
		root, _, _ := strings.Cut(d.Field, ".")
		if seen[root] {
			continue
		}
		seen[root] = true
		opts = append(opts, cel.Variable(root, cel.DynType))
	}
	return cel.NewEnv(opts...)
}

// Validate parses and type-checks expr. The empty expression is valid; it
// means "match everything" and is never sent to a query backend.
func (v *Validator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	ast, issues := v.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return fmt.Errorf("invalid expression: %w", issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) && !ast.OutputType().IsExactType(cel.DynType) {
		return fmt.Errorf("expression must evaluate to a boolean, got %s", ast.OutputType())
	}
	return nil
}
