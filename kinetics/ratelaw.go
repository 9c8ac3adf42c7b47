// SPDX-License-Identifier: MIT

package kinetics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// rateLawFilename labels diagnostics produced by the HCL parser.
const rateLawFilename = "kinetic_law"

// Term is one additive term of a rate law after distributing products over sums.
type Term struct {
	Sign    int      // +1 or -1
	Symbols []string // free symbols of the term in source order, no duplicates
	Text    string   // factors joined with "*", as written
}

// RateLaw is a parsed rate-law expression.
// It is immutable and safe for concurrent use.
type RateLaw struct {
	source     string
	normalized []byte
	expr       hclsyntax.Expression
	symbols    []string
	functions  []string
	terms      []Term
}

// ParseRateLaw parses text as an arithmetic expression.
//
// Implementation:
//   - Stage 1: rewrite a^b as pow(a, b); space binary minus so identifiers are not fused ("A-k2" → "A - k2").
//   - Stage 2: hclsyntax.ParseExpression; diagnostics become ErrExpressionParse.
//   - Stage 3: reject non-arithmetic constructs (strings, conditionals, collections, ...).
//   - Stage 4: extract symbols, functions and additive terms once.
//
// Errors:
//   - ErrExpressionParse for empty or invalid text.
func ParseRateLaw(text string) (*RateLaw, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("ParseRateLaw: empty formula: %w", ErrExpressionParse)
	}
	norm := []byte(normalizeFormula(text))

	expr, diags := hclsyntax.ParseExpression(norm, rateLawFilename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("ParseRateLaw(%q): %s: %w", text, diags.Error(), ErrExpressionParse)
	}
	if err := checkArithmetic(expr); err != nil {
		return nil, fmt.Errorf("ParseRateLaw(%q): %w", text, err)
	}

	rl := &RateLaw{
		source:     text,
		normalized: norm,
		expr:       expr,
		symbols:    symbolsOf(expr),
	}
	functions := make(map[string]struct{})
	walkForFunctions(expr, functions)
	for name := range functions {
		rl.functions = append(rl.functions, name)
	}
	sort.Strings(rl.functions)
	rl.terms = rl.termsOf(expr)

	return rl, nil
}

// Source returns the text the law was parsed from.
func (rl *RateLaw) Source() string { return rl.source }

// Symbols returns the free symbols in order of first appearance.
func (rl *RateLaw) Symbols() []string { return append([]string(nil), rl.symbols...) }

// Functions returns the sorted names of the called functions.
func (rl *RateLaw) Functions() []string { return append([]string(nil), rl.functions...) }

// Terms returns the additive terms in source order.
func (rl *RateLaw) Terms() []Term {
	out := make([]Term, len(rl.terms))
	for i, t := range rl.terms {
		out[i] = Term{Sign: t.Sign, Symbols: append([]string(nil), t.Symbols...), Text: t.Text}
	}

	return out
}

// checkArithmetic accepts numbers, plain identifiers, + - * / %, unary minus,
// parentheses and function calls; everything else is ErrExpressionParse.
func checkArithmetic(expr hclsyntax.Expression) error {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		if e.Val.Type() != cty.Number {
			return unsupported(e, "non-numeric literal")
		}
	case *hclsyntax.ScopeTraversalExpr:
		if len(e.Traversal) != 1 {
			return unsupported(e, "attribute or index access")
		}
	case *hclsyntax.BinaryOpExpr:
		switch e.Op {
		case hclsyntax.OpAdd, hclsyntax.OpSubtract, hclsyntax.OpMultiply, hclsyntax.OpDivide, hclsyntax.OpModulo:
		default:
			return unsupported(e, "non-arithmetic operator")
		}
		if err := checkArithmetic(e.LHS); err != nil {
			return err
		}
		return checkArithmetic(e.RHS)
	case *hclsyntax.UnaryOpExpr:
		if e.Op != hclsyntax.OpNegate {
			return unsupported(e, "logical operator")
		}
		return checkArithmetic(e.Val)
	case *hclsyntax.ParenthesesExpr:
		return checkArithmetic(e.Expression)
	case *hclsyntax.FunctionCallExpr:
		if e.ExpandFinal {
			return unsupported(e, "argument expansion")
		}
		for _, arg := range e.Args {
			if err := checkArithmetic(arg); err != nil {
				return err
			}
		}
	default:
		return unsupported(expr, fmt.Sprintf("%T", expr))
	}

	return nil
}

func unsupported(expr hclsyntax.Expression, what string) error {
	r := expr.Range()

	return fmt.Errorf("%s:%d,%d: unsupported %s: %w", r.Filename, r.Start.Line, r.Start.Column, what, ErrExpressionParse)
}

// symbolsOf returns the root names of expr's variables, ordered by position.
func symbolsOf(expr hcl.Expression) []string {
	vars := expr.Variables()
	sort.SliceStable(vars, func(i, j int) bool {
		return vars[i].SourceRange().Start.Byte < vars[j].SourceRange().Start.Byte
	})

	out := make([]string, 0, len(vars))
	seen := make(map[string]struct{}, len(vars))
	for _, tr := range vars {
		name := tr.RootName()
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}

// walkForFunctions collects the names of every function call in expr.
func walkForFunctions(expr hclsyntax.Expression, functions map[string]struct{}) {
	switch e := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		functions[e.Name] = struct{}{}
		for _, arg := range e.Args {
			walkForFunctions(arg, functions)
		}
	case *hclsyntax.BinaryOpExpr:
		walkForFunctions(e.LHS, functions)
		walkForFunctions(e.RHS, functions)
	case *hclsyntax.UnaryOpExpr:
		walkForFunctions(e.Val, functions)
	case *hclsyntax.ParenthesesExpr:
		walkForFunctions(e.Expression, functions)
	}
}

// termsOf decomposes expr into signed additive terms.
//
//   - a + b, a - b: concatenation (the right side negated for minus).
//   - -a: every term of a negated.
//   - a * b: cross product of the terms of a and b.
//   - a / b, a % b: each term of a, with the symbols of b appended (b is not expanded).
//   - anything else: a single positive term; negative numeric literals flip the sign.
func (rl *RateLaw) termsOf(expr hclsyntax.Expression) []Term {
	switch e := expr.(type) {
	case *hclsyntax.ParenthesesExpr:
		return rl.termsOf(e.Expression)
	case *hclsyntax.UnaryOpExpr:
		return negate(rl.termsOf(e.Val))
	case *hclsyntax.BinaryOpExpr:
		switch e.Op {
		case hclsyntax.OpAdd:
			return append(rl.termsOf(e.LHS), rl.termsOf(e.RHS)...)
		case hclsyntax.OpSubtract:
			return append(rl.termsOf(e.LHS), negate(rl.termsOf(e.RHS))...)
		case hclsyntax.OpMultiply:
			left, right := rl.termsOf(e.LHS), rl.termsOf(e.RHS)
			out := make([]Term, 0, len(left)*len(right))
			for _, l := range left {
				for _, r := range right {
					out = append(out, Term{
						Sign:    l.Sign * r.Sign,
						Symbols: mergeSymbols(l.Symbols, r.Symbols),
						Text:    l.Text + "*" + r.Text,
					})
				}
			}
			return out
		case hclsyntax.OpDivide, hclsyntax.OpModulo:
			den := symbolsOf(e.RHS)
			denText := "/" + rl.text(e.RHS)
			if e.Op == hclsyntax.OpModulo {
				denText = "%" + rl.text(e.RHS)
			}
			left := rl.termsOf(e.LHS)
			for i := range left {
				left[i].Symbols = mergeSymbols(left[i].Symbols, den)
				left[i].Text = left[i].Text + denText
			}
			return left
		}
	case *hclsyntax.LiteralValueExpr:
		sign := 1
		if e.Val.IsKnown() && !e.Val.IsNull() && e.Val.Type() == cty.Number && e.Val.AsBigFloat().Sign() < 0 {
			sign = -1
		}
		return []Term{{Sign: sign, Text: rl.text(e)}}
	}

	return []Term{{Sign: 1, Symbols: symbolsOf(expr), Text: rl.text(expr)}}
}

// text returns the normalized source of expr.
func (rl *RateLaw) text(expr hclsyntax.Expression) string {
	return strings.TrimSpace(string(expr.Range().SliceBytes(rl.normalized)))
}

func negate(terms []Term) []Term {
	for i := range terms {
		terms[i].Sign = -terms[i].Sign
	}

	return terms
}

// mergeSymbols appends b to a, skipping names already present.
func mergeSymbols(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}

	return out
}
