// Released under an MIT license. See LICENSE.

// Package transform rewrites eva's syntactic sugar into core forms.
//
// Every rewrite is a pure function of the shape of its input. Inputs are
// never modified; each rewrite conses a new expression.
package transform

import (
	"github.com/michaelmacinnis/eva/internal/common/fault"
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/interface/literal"
	"github.com/michaelmacinnis/eva/internal/common/type/list"
	"github.com/michaelmacinnis/eva/internal/common/type/num"
	"github.com/michaelmacinnis/eva/internal/common/type/pair"
	"github.com/michaelmacinnis/eva/internal/common/type/sym"
)

// Rule rewrites a sugar form into an equivalent expression.
type Rule func(form cell.I) (cell.I, error)

//nolint:gochecknoglobals
var rules = map[string]Rule{
	"def":    DefToVarLambda,
	"for":    ForToWhile,
	"switch": SwitchToIf,
	"++":     IncToSet,
	"--":     DecToSet,
	"+=":     IncValToSet,
	"-=":     DecValToSet,
}

// Lookup returns the rule for the sugar tag, if there is one.
func Lookup(tag string) (Rule, bool) {
	r, ok := rules[tag]

	return r, ok
}

// Expand applies the rule for the form's tag. It returns false if the form
// is not sugar.
func Expand(form cell.I) (cell.I, bool, error) {
	if !pair.Is(form) || !sym.Is(pair.Car(form)) {
		return form, false, nil
	}

	r, ok := Lookup(sym.To(pair.Car(form)).String())
	if !ok {
		return form, false, nil
	}

	c, err := r(form)

	return c, true, err
}

// DefToVarLambda translates a function declaration into a variable
// declaration with a lambda expression.
//
//  (def name params body) => (var name (lambda params body))
//
// Because var binds name in the scope that the lambda captures, the
// function can refer to itself by name.
func DefToVarLambda(form cell.I) (cell.I, error) {
	v, err := operands(form, 3)
	if err != nil {
		return nil, err
	}

	name, params, body := v[0], v[1], v[2]

	return list.New(sym.New("var"), name, list.New(sym.New("lambda"), params, body)), nil
}

// ForToWhile translates a for loop into a while loop.
//
//  (for init cond modifier body) =>
//  (begin init (while cond (begin body modifier)))
func ForToWhile(form cell.I) (cell.I, error) {
	v, err := operands(form, 4)
	if err != nil {
		return nil, err
	}

	init, cond, modifier, body := v[0], v[1], v[2], v[3]

	return list.New(
		sym.New("begin"),
		init,
		list.New(
			sym.New("while"),
			cond,
			list.New(sym.New("begin"), body, modifier),
		),
	), nil
}

// SwitchToIf translates a switch into nested if expressions.
//
//  (switch (c1 b1) (c2 b2) (else b3)) => (if c1 b1 (if c2 b2 b3))
//
// Without an else branch the innermost fallback is the null value, ().
// Branches after an else branch are unreachable and are dropped.
func SwitchToIf(form cell.I) (cell.I, error) {
	if !list.Is(form) {
		return nil, fault.Malformed(literal.String(form), "expected a list of branches")
	}

	branches := list.Elements(pair.Cdr(form))

	conds := make([]cell.I, 0, len(branches))
	bodies := make([]cell.I, 0, len(branches))

	fallback := pair.Null

	for _, b := range branches {
		if !list.Is(b) || list.Length(b) != 2 {
			return nil, fault.Malformed(literal.String(form), "each branch must be (condition body)")
		}

		cond, body := pair.Car(b), pair.Cadr(b)
		if sym.Is(cond) && sym.To(cond).String() == "else" {
			fallback = body

			break
		}

		conds = append(conds, cond)
		bodies = append(bodies, body)
	}

	nested := fallback
	for i := len(conds) - 1; i >= 0; i-- {
		nested = list.New(sym.New("if"), conds[i], bodies[i], nested)
	}

	return nested, nil
}

// IncToSet translates (++ name) into (set name (+ name 1)).
func IncToSet(form cell.I) (cell.I, error) {
	v, err := operands(form, 1)
	if err != nil {
		return nil, err
	}

	return opValToSet("+", v[0], num.Int(1)), nil
}

// DecToSet translates (-- name) into (set name (- name 1)).
func DecToSet(form cell.I) (cell.I, error) {
	v, err := operands(form, 1)
	if err != nil {
		return nil, err
	}

	return opValToSet("-", v[0], num.Int(1)), nil
}

// IncValToSet translates (+= name val) into (set name (+ name val)).
func IncValToSet(form cell.I) (cell.I, error) {
	v, err := operands(form, 2)
	if err != nil {
		return nil, err
	}

	return opValToSet("+", v[0], v[1]), nil
}

// DecValToSet translates (-= name val) into (set name (- name val)).
func DecValToSet(form cell.I) (cell.I, error) {
	v, err := operands(form, 2)
	if err != nil {
		return nil, err
	}

	return opValToSet("-", v[0], v[1]), nil
}

func opValToSet(op string, name, val cell.I) cell.I {
	return list.New(sym.New("set"), name, list.New(sym.New(op), name, val))
}

// operands returns the n operands of form or a MalformedExpression fault.
func operands(form cell.I, n int) ([]cell.I, error) {
	if !list.Is(form) || list.Length(form) != n+1 {
		return nil, fault.Malformed(
			literal.String(form),
			"expected "+fault.Count(n, "operand", "s"),
		)
	}

	return list.Elements(pair.Cdr(form)), nil
}
