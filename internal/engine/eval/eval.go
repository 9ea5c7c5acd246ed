// Released under an MIT license. See LICENSE.

// Package eval provides eva's tree-walking evaluator.
//
// Eval dispatches on the type of an expression and, for forms, on the tag
// in head position. Sugar tags are rewritten by the transform package and
// the result is evaluated in their place. Any other form is a function
// call.
//
// An evaluator is not safe for use by multiple goroutines. Evaluation is
// recursive and nesting is bounded by the evaluator's depth limit rather
// than by the size of the Go stack.
package eval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/michaelmacinnis/eva/internal/common/fault"
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/interface/literal"
	"github.com/michaelmacinnis/eva/internal/common/interface/scope"
	"github.com/michaelmacinnis/eva/internal/common/interface/truth"
	"github.com/michaelmacinnis/eva/internal/common/type/builtin"
	"github.com/michaelmacinnis/eva/internal/common/type/closure"
	"github.com/michaelmacinnis/eva/internal/common/type/env"
	"github.com/michaelmacinnis/eva/internal/common/type/list"
	"github.com/michaelmacinnis/eva/internal/common/type/num"
	"github.com/michaelmacinnis/eva/internal/common/type/pair"
	"github.com/michaelmacinnis/eva/internal/common/type/str"
	"github.com/michaelmacinnis/eva/internal/common/type/sym"
	"github.com/michaelmacinnis/eva/internal/engine/transform"
)

// DefaultMaxDepth is the default bound on nested evaluation.
const DefaultMaxDepth = 10000

// Arity is the policy for calling a closure with the wrong number of arguments.
type Arity int

// Arity policies.
const (
	// Strict fails with an ArityMismatch fault.
	Strict Arity = iota

	// Lenient binds missing parameters to null and ignores extra arguments.
	Lenient
)

//nolint:gochecknoglobals
var variable = regexp.MustCompile(`^[+\-*/<>=a-zA-Z0-9_]+$`)

// T (eval) evaluates expressions against a chain of environments.
type T struct {
	arity  Arity
	depth  int
	global scope.I
	limit  int
	logger *slog.Logger
}

// Option configures an evaluator.
type Option func(*T)

// WithArity sets the arity policy for closure application.
func WithArity(a Arity) Option {
	return func(e *T) {
		e.arity = a
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(e *T) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMaxDepth bounds nested evaluation to n levels.
func WithMaxDepth(n int) Option {
	return func(e *T) {
		if n > 0 {
			e.limit = n
		}
	}
}

// New creates an evaluator for programs run in the global scope g.
func New(g scope.I, opts ...Option) *T {
	e := &T{
		arity:  Strict,
		global: g,
		limit:  DefaultMaxDepth,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, o := range opts {
		o(e)
	}

	return e
}

// Global returns the evaluator's global scope.
func (e *T) Global() scope.I {
	return e.global
}

// EvalGlobal evaluates c as a whole program. When c is a begin block, as
// produced by wrapping a program's expressions, its expressions are
// evaluated directly in the global scope so their definitions remain visible.
func (e *T) EvalGlobal(c cell.I) (cell.I, error) {
	return e.body(c, e.global)
}

// Eval evaluates the expression c in the scope s.
func (e *T) Eval(c cell.I, s scope.I) (cell.I, error) {
	e.depth++
	defer func() { e.depth-- }()

	if e.depth > e.limit {
		return nil, fault.Depth(e.limit)
	}

	switch t := c.(type) {
	case *num.T:
		return t, nil
	case *str.T:
		return t, nil
	case *sym.T, *sym.Plus:
		return e.lookup(c, s)
	case *pair.T:
		if c == pair.Null {
			return pair.Null, nil
		}

		return e.form(c, s)
	}

	return nil, fault.Unimplemented(describe(c))
}

// Apply calls the function f with the already evaluated arguments args.
func (e *T) Apply(f cell.I, args []cell.I) (cell.I, error) {
	switch f := f.(type) {
	case *builtin.T:
		return e.invoke(f, args)
	case *closure.T:
		return e.apply(f, args)
	}

	return nil, fault.Uncallable(describe(f), f.Name())
}

func (e *T) form(c cell.I, s scope.I) (cell.I, error) {
	if !list.Is(c) {
		return nil, fault.Malformed(describe(c), "expected a list")
	}

	if head := pair.Car(c); sym.Is(head) {
		tag := sym.To(head).String()

		switch tag {
		case "begin":
			return e.block(c, env.New(s))
		case "var":
			return e.define(c, s)
		case "set":
			return e.assign(c, s)
		case "if":
			return e.conditional(c, s)
		case "while":
			return e.loop(c, s)
		case "lambda":
			return e.lambda(c, s)
		case "class", "super", "new", "prop", "module", "import":
			return nil, fault.Unimplemented(describe(c))
		}

		x, ok, err := transform.Expand(c)
		if err != nil {
			return nil, err
		}

		if ok {
			return e.expand(tag, x, s)
		}
	}

	return e.call(c, s)
}

// The special forms.

func (e *T) assign(c cell.I, s scope.I) (cell.I, error) {
	k, x, err := binding(c)
	if err != nil {
		return nil, err
	}

	v, err := e.Eval(x, s)
	if err != nil {
		return nil, err
	}

	v, err = s.Assign(k, v)
	if err != nil {
		return nil, located(err, pair.Cadr(c))
	}

	return v, nil
}

func (e *T) block(c cell.I, s scope.I) (cell.I, error) {
	var err error

	v := pair.Null

	for _, x := range list.Elements(pair.Cdr(c)) {
		v, err = e.Eval(x, s)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

func (e *T) conditional(c cell.I, s scope.I) (cell.I, error) {
	v, err := operands(c, 3)
	if err != nil {
		return nil, err
	}

	cond, err := e.Eval(v[0], s)
	if err != nil {
		return nil, err
	}

	if truth.Value(cond) {
		return e.Eval(v[1], s)
	}

	return e.Eval(v[2], s)
}

func (e *T) define(c cell.I, s scope.I) (cell.I, error) {
	k, x, err := binding(c)
	if err != nil {
		return nil, err
	}

	v, err := e.Eval(x, s)
	if err != nil {
		return nil, err
	}

	return s.Define(k, v), nil
}

func (e *T) expand(tag string, x cell.I, s scope.I) (cell.I, error) {
	if e.logger.Enabled(context.Background(), slog.LevelDebug) {
		e.logger.Debug("expand", "tag", tag, "form", describe(x))
	}

	return e.Eval(x, s)
}

func (e *T) lambda(c cell.I, s scope.I) (cell.I, error) {
	v, err := operands(c, 2)
	if err != nil {
		return nil, err
	}

	if !list.Is(v[0]) {
		return nil, fault.Malformed(describe(c), "parameters must be a list")
	}

	params := list.Elements(v[0])
	labels := make([]string, len(params))

	for i, p := range params {
		if !sym.Is(p) {
			return nil, fault.Malformed(describe(c), "parameter "+describe(p)+" is not a symbol")
		}

		labels[i] = sym.To(p).String()
	}

	return closure.New(labels, v[1], s), nil
}

func (e *T) lookup(c cell.I, s scope.I) (cell.I, error) {
	k := sym.To(c).String()
	if !variable.MatchString(k) {
		return nil, fault.Unimplemented(k)
	}

	v, err := s.Lookup(k)
	if err != nil {
		return nil, located(err, c)
	}

	return v, nil
}

func (e *T) loop(c cell.I, s scope.I) (cell.I, error) {
	x, err := operands(c, 2)
	if err != nil {
		return nil, err
	}

	v := pair.Null

	for {
		cond, err := e.Eval(x[0], s)
		if err != nil {
			return nil, err
		}

		if !truth.Value(cond) {
			return v, nil
		}

		v, err = e.Eval(x[1], s)
		if err != nil {
			return nil, err
		}
	}
}

// Function application.

func (e *T) apply(f *closure.T, args []cell.I) (cell.I, error) {
	expected, passed := len(f.Params), len(args)
	if expected != passed && e.arity == Strict {
		return nil, fault.Arity(f.String(), expected, passed)
	}

	activation := env.New(f.Scope)

	for i, p := range f.Params {
		if i < passed {
			activation.Define(p, args[i])
		} else {
			activation.Define(p, pair.Null)
		}
	}

	if e.logger.Enabled(context.Background(), slog.LevelDebug) {
		e.logger.Debug("apply", "function", f.String(), "depth", e.depth)
	}

	return e.body(f.Body, activation)
}

// body evaluates c in s. If c is a begin block its expressions are
// evaluated directly in s rather than in a new child scope.
func (e *T) body(c cell.I, s scope.I) (cell.I, error) {
	if tagged(c, "begin") {
		return e.block(c, s)
	}

	return e.Eval(c, s)
}

func (e *T) call(c cell.I, s scope.I) (cell.I, error) {
	elements := list.Elements(c)

	f, err := e.Eval(elements[0], s)
	if err != nil {
		return nil, err
	}

	args := make([]cell.I, 0, len(elements)-1)

	for _, x := range elements[1:] {
		v, err := e.Eval(x, s)
		if err != nil {
			return nil, err
		}

		args = append(args, v)
	}

	return e.Apply(f, args)
}

// invoke calls a builtin. Builtins signal misuse by panicking; the panic
// is recovered here and returned as a PrimitiveFailure.
func (e *T) invoke(b *builtin.T, args []cell.I) (v cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		v = nil

		switch r := r.(type) {
		case *fault.T:
			err = r
		case error:
			err = fault.Primitive(b.Label(), r.Error())
		case string:
			err = fault.Primitive(b.Label(), r)
		default:
			err = fault.Primitive(b.Label(), fmt.Sprint(r))
		}
	}()

	v = b.Function(list.New(args...))
	if v == nil {
		v = pair.Null
	}

	return v, nil
}

// Helpers.

func binding(c cell.I) (string, cell.I, error) {
	v, err := operands(c, 2)
	if err != nil {
		return "", nil, err
	}

	if !sym.Is(v[0]) {
		return "", nil, fault.Malformed(describe(c), describe(v[0])+" is not a name")
	}

	return sym.To(v[0]).String(), v[1], nil
}

// describe returns the literal representation of c or, for cells without
// one, its type name.
func describe(c cell.I) string {
	if l, ok := c.(literal.I); ok {
		return l.Literal()
	}

	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}

	return c.Name()
}

// located adds the source location of the symbol c to an undefined variable fault.
func located(err error, c cell.I) error {
	w := sym.Where(c)
	if w == "" {
		return err
	}

	var f *fault.T
	if errors.As(err, &f) && f.Kind == fault.UndefinedVariable && f.Detail == "" {
		return &fault.T{Kind: f.Kind, Subject: f.Subject, Detail: "at " + w}
	}

	return err
}

// operands returns the n operands of the form c or a MalformedExpression fault.
func operands(c cell.I, n int) ([]cell.I, error) {
	if list.Length(c) != n+1 {
		tag := describe(pair.Car(c))

		return nil, fault.Malformed(describe(c), tag+" expects "+fault.Count(n, "operand", "s"))
	}

	return list.Elements(pair.Cdr(c)), nil
}

func tagged(c cell.I, tag string) bool {
	if !pair.Is(c) || c == pair.Null {
		return false
	}

	h := pair.Car(c)

	return sym.Is(h) && sym.To(h).String() == tag
}
