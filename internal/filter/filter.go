// Package filter compiles CEL predicates that decide which directory entries
// are listed.
//
// An expression sees one entry at a time through these variables:
//
//	name  string  entry name
//	path  string  path including the listed directory
//	size  int     size in bytes
//	dir   bool    whether the entry is a directory
//	ext   string  lowercase extension without the dot
//
// Examples: `dir`, `size > 1024 && !dir`, `ext in ["go", "md"]`,
// `name.startsWith(".")`.
package filter

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	celext "github.com/google/cel-go/ext"

	"github.com/oakwood-commons/lsx/internal/fsys"
)

// Predicate is a compiled filter expression.
type Predicate struct {
	expr string
	prg  cel.Program
}

// newEnv declares the entry variables together with the string extensions.
func newEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("name", cel.StringType),
		cel.Variable("path", cel.StringType),
		cel.Variable("size", cel.IntType),
		cel.Variable("dir", cel.BoolType),
		cel.Variable("ext", cel.StringType),
		celext.Strings(),
	)
}

// Compile parses and type-checks expr. An empty expression yields a nil
// Predicate, which matches everything.
func Compile(expr string) (*Predicate, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	env, err := newEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}
	if !ast.OutputType().IsExactType(types.BoolType) {
		return nil, fmt.Errorf("filter %q must evaluate to bool, got %s", expr, ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Predicate{expr: expr, prg: prg}, nil
}

// String returns the source expression.
func (p *Predicate) String() string {
	if p == nil {
		return ""
	}
	return p.expr
}

// Match evaluates the predicate against e. A nil Predicate matches.
func (p *Predicate) Match(e fsys.Entry) (bool, error) {
	if p == nil {
		return true, nil
	}
	out, _, err := p.prg.Eval(activation(e))
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}
	b, ok := out.(types.Bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %s, want bool", p.expr, out.Type().TypeName())
	}
	return bool(b), nil
}

func activation(e fsys.Entry) map[string]any {
	size := int64(math.MaxInt64)
	if e.Size <= math.MaxInt64 {
		size = int64(e.Size)
	}
	return map[string]any{
		"name": e.Name,
		"path": e.Path,
		"size": size,
		"dir":  e.IsDir,
		"ext":  strings.ToLower(strings.TrimPrefix(filepath.Ext(e.Name), ".")),
	}
}
