// SPDX-License-Identifier: MIT

package kinetics

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Evaluate computes the value of the rate law with bindings for its symbols.
//
// Every symbol of the law must be bound; extra bindings are ignored.
//
// Errors:
//   - ErrEvaluation for non-finite bindings, unbound symbols, unknown functions,
//     and non-finite or non-numeric results.
//
// Complexity:
//   - Time O(len(bindings) + size of the expression).
func (rl *RateLaw) Evaluate(bindings map[string]float64) (float64, error) {
	vars := make(map[string]cty.Value, len(bindings))
	for name, v := range bindings {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("Evaluate(%q): binding %s=%v: %w", rl.source, name, v, ErrEvaluation)
		}
		vars[name] = cty.NumberFloatVal(v)
	}

	ctx := &hcl.EvalContext{
		Variables: vars,
		Functions: make(map[string]function.Function, len(mathFunctions)),
	}
	for name, fn := range mathFunctions {
		ctx.Functions[name] = fn
	}

	val, diags := rl.expr.Value(ctx)
	if diags.HasErrors() {
		return 0, fmt.Errorf("Evaluate(%q): %s: %w", rl.source, diags.Error(), ErrEvaluation)
	}
	if val.IsNull() || !val.IsKnown() || !val.Type().Equals(cty.Number) {
		return 0, fmt.Errorf("Evaluate(%q): result is not a number: %w", rl.source, ErrEvaluation)
	}
	out, _ := val.AsBigFloat().Float64()
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, fmt.Errorf("Evaluate(%q): result %v: %w", rl.source, out, ErrEvaluation)
	}

	return out, nil
}
