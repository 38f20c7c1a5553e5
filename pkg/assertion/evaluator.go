package assertion

import "digital.vasic.alchemy/pkg/predicate"

// Evaluator is a function that evaluates a single assertion type
// against a concrete value. It returns whether the assertion
// passed and a human-readable explanation.
type Evaluator func(assertion Definition, value any) (bool, string)

// FromPredicate builds an Evaluator for a parameterless predicate.
// pass and fail are the explanations reported for each outcome.
func FromPredicate(
	p predicate.Predicate[any],
	pass, fail string,
) Evaluator {
	return func(_ Definition, value any) (bool, string) {
		if p(value) {
			return true, pass
		}
		return false, fail
	}
}
