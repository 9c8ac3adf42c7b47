// SPDX-License-Identifier: MIT

package kinetics

import (
	"fmt"
	"math"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// mathFunctions is the function table available to rate laws.
var mathFunctions = map[string]function.Function{
	"pow":   stdlib.PowFunc,
	"abs":   stdlib.AbsoluteFunc,
	"floor": stdlib.FloorFunc,
	"ceil":  stdlib.CeilFunc,
	"min":   stdlib.MinFunc,
	"max":   stdlib.MaxFunc,
	"exp":   unaryFunction(math.Exp),
	"ln":    unaryFunction(math.Log),
	"log":   unaryFunction(math.Log),
	"log10": unaryFunction(math.Log10),
	"sqrt":  unaryFunction(math.Sqrt),
	"root":  rootFunction,
}

// FunctionNames returns the names callable from a rate law, sorted.
func FunctionNames() []string {
	names := make([]string, 0, len(mathFunctions))
	for name := range mathFunctions {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// unaryFunction lifts f to a cty function of one number.
func unaryFunction(f func(float64) float64) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "x", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			x, _ := args[0].AsBigFloat().Float64()
			return finiteNumber(f(x))
		},
	})
}

// rootFunction computes the n-th root of x: root(n, x).
var rootFunction = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "n", Type: cty.Number},
		{Name: "x", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		n, _ := args[0].AsBigFloat().Float64()
		x, _ := args[1].AsBigFloat().Float64()
		if n == 0 {
			return cty.UnknownVal(cty.Number), fmt.Errorf("root of degree zero")
		}
		if x < 0 && math.Mod(n, 2) == 1 {
			return finiteNumber(-math.Pow(-x, 1/n))
		}

		return finiteNumber(math.Pow(x, 1/n))
	},
})

// finiteNumber converts v into a cty number; NaN and ±Inf are errors.
func finiteNumber(v float64) (cty.Value, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return cty.UnknownVal(cty.Number), fmt.Errorf("result %v is not finite", v)
	}

	return cty.NumberFloatVal(v), nil
}
