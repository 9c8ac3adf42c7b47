// SPDX-License-Identifier: MIT

package kinetics

import "errors"

var (
	// ErrExpressionParse indicates rate-law text that is not a valid algebraic expression.
	ErrExpressionParse = errors.New("kinetics: rate law parse error")

	// ErrUnresolvedConstant indicates a rate constant that matches no known parameter.
	ErrUnresolvedConstant = errors.New("kinetics: unresolved rate constant")

	// ErrLocalParameterConflict indicates a local parameter ID defined by two or
	// more reactions, which makes global reconstruction ambiguous.
	ErrLocalParameterConflict = errors.New("kinetics: local parameter conflict")

	// ErrEvaluation indicates a rate law that cannot be evaluated to a finite number.
	ErrEvaluation = errors.New("kinetics: rate law evaluation failed")
)
