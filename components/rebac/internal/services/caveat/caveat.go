// Package caveat evaluates the context-free predicates attached to
// tuples (spec §3 "caveat", §9 Open Question "caveat language"). CEL
// (google/cel-go, adopted from the pack's AKJUS-bsc-erigon dependency
// surface) is the concrete language this implementation picks, per
// the spec's instruction that an implementer choose one.
package caveat

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

// Evaluator compiles and evaluates CEL caveat expressions. Compiled
// programs are cached by expression text since the same caveat
// expression is typically reused across many tuples.
type Evaluator struct {
	env *cel.Env

	mu       sync.RWMutex
	programs map[string]cel.Program
}

// NewEvaluator builds an Evaluator whose CEL environment declares the
// variables a caveat may reference. declarations maps variable name to
// its CEL type, e.g. {"ip": cel.StringType, "hour": cel.IntType}.
func NewEvaluator(declarations map[string]*cel.Type) (*Evaluator, error) {
	opts := make([]cel.EnvOption, 0, len(declarations))
	for name, typ := range declarations {
		opts = append(opts, cel.Variable(name, typ))
	}

	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("caveat: build env: %w", err)
	}

	return &Evaluator{env: env, programs: map[string]cel.Program{}}, nil
}

// Result is the outcome of evaluating a caveat.
type Result int

const (
	// ResultAllow means the caveat's condition held.
	ResultAllow Result = iota
	// ResultDeny means the caveat's condition did not hold.
	ResultDeny
	// ResultIndeterminate means the expression could not be decided
	// (e.g. a missing context variable) — callers must treat this as
	// deny-this-tuple-only, never as a request-level error (spec §4.3).
	ResultIndeterminate
)

// Evaluate runs the named expression against context vars. A compile
// or evaluation error yields ResultIndeterminate, never an error
// return, matching the spec's "deny this tuple only" rule for caveats
// that cannot be decided.
func (e *Evaluator) Evaluate(expression string, vars map[string]any) Result {
	program, err := e.compiled(expression)
	if err != nil {
		return ResultIndeterminate
	}

	out, _, err := program.Eval(vars)
	if err != nil {
		// Typically a missing-variable error (cel's "no such attribute").
		return ResultIndeterminate
	}

	allowed, ok := out.Value().(bool)
	if !ok {
		return ResultIndeterminate
	}

	if allowed {
		return ResultAllow
	}

	return ResultDeny
}

func (e *Evaluator) compiled(expression string) (cel.Program, error) {
	e.mu.RLock()
	program, ok := e.programs[expression]
	e.mu.RUnlock()

	if ok {
		return program, nil
	}

	ast, issues := e.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}

	program, err := e.env.Program(ast)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.programs[expression] = program
	e.mu.Unlock()

	return program, nil
}
