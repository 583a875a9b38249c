package filter

import (
	"fmt"
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultCacheSize is the number of compiled expressions kept by a Compiler.
const DefaultCacheSize = 64

// CompilationError indicates a filter expression could not be compiled
type CompilationError struct {
	Expression string
	Reason     string
	Err        error
}

func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compilation error in '%s': %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

// Filter is a compiled expression evaluated against API response items.
// It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// Match reports whether item satisfies the expression. Items that make the
// expression fail at runtime (missing fields, wrong types) do not match.
func (f *Filter) Match(item map[string]any) bool {
	env := make(map[string]any, len(item)+len(f.helpers))
	maps.Copy(env, item)
	maps.Copy(env, f.helpers)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}
	matched, _ := result.(bool)
	return matched
}

// Apply returns the items that match, preserving order.
func (f *Filter) Apply(items []map[string]any) []map[string]any {
	matches := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if f.Match(item) {
			matches = append(matches, item)
		}
	}
	return matches
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCacheSize sets the number of cached programs; 0 disables caching.
func WithCacheSize(size int) CompilerOption {
	return func(c *Compiler) {
		if size <= 0 {
			c.cache = nil
			return
		}
		c.cache = newProgramCache(size)
	}
}

// WithFunctions adds custom helper functions, overriding built-in ones.
func WithFunctions(funcs map[string]any) CompilerOption {
	return func(c *Compiler) {
		maps.Copy(c.helpers, funcs)
	}
}

// Compiler turns expressions into Filters.
type Compiler struct {
	helpers map[string]any
	cache   *programCache
}

// NewCompiler creates a Compiler with the built-in helpers and a program cache.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		helpers: helperFunctions(),
		cache:   newProgramCache(DefaultCacheSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile parses and compiles an expression
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	if c.cache != nil {
		if cached, ok := c.cache.get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.helpers),
		expr.AllowUndefinedVariables(), // item fields are only known at runtime
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &Filter{
		expression: expression,
		program:    program,
		helpers:    c.helpers,
	}
	if c.cache != nil {
		c.cache.put(expression, f)
	}
	return f, nil
}

// Clear removes all cached programs
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache.clear()
	}
}

// Size returns the number of cached programs
func (c *Compiler) Size() int {
	if c.cache != nil {
		return c.cache.len()
	}
	return 0
}

var defaultCompiler = NewCompiler()

// Compile compiles an expression with the shared default Compiler.
func Compile(expression string) (*Filter, error) {
	return defaultCompiler.Compile(expression)
}
