package assertion

import "fmt"

// AllPass evaluates every assertion and passes only when all of
// them pass. The message names the first failure.
func AllPass(
	engine Engine,
	assertions []Definition,
	values map[string]any,
) Result {
	results := engine.EvaluateAll(assertions, values)

	for _, r := range results {
		if !r.Passed {
			return Result{
				Type:   "all_pass",
				Passed: false,
				Message: fmt.Sprintf(
					"assertion '%s' on target '%s' failed: %s",
					r.Type, r.Target, r.Message,
				),
			}
		}
	}

	return Result{
		Type:    "all_pass",
		Passed:  true,
		Message: fmt.Sprintf("all %d assertions passed", len(results)),
	}
}

// AnyPass evaluates the assertions and passes when at least one of
// them passes. An empty set of assertions never passes.
func AnyPass(
	engine Engine,
	assertions []Definition,
	values map[string]any,
) Result {
	results := engine.EvaluateAll(assertions, values)

	for _, r := range results {
		if r.Passed {
			return Result{
				Type:   "any_pass",
				Passed: true,
				Message: fmt.Sprintf(
					"assertion '%s' on target '%s' passed",
					r.Type, r.Target,
				),
			}
		}
	}

	return Result{
		Type:    "any_pass",
		Passed:  false,
		Message: fmt.Sprintf("none of %d assertions passed", len(results)),
	}
}

// CompositeAllPass returns an Evaluator that applies every
// sub-assertion to the evaluated value and requires all to pass.
// Sub-assertion targets are ignored.
func CompositeAllPass(engine Engine, subAssertions []Definition) Evaluator {
	return composite(engine, subAssertions, AllPass)
}

// CompositeAnyPass returns an Evaluator that applies every
// sub-assertion to the evaluated value and requires one to pass.
func CompositeAnyPass(engine Engine, subAssertions []Definition) Evaluator {
	return composite(engine, subAssertions, AnyPass)
}

func composite(
	engine Engine,
	subAssertions []Definition,
	combine func(Engine, []Definition, map[string]any) Result,
) Evaluator {
	return func(_ Definition, value any) (bool, string) {
		const self = "$value"

		defs := make([]Definition, len(subAssertions))
		for i, a := range subAssertions {
			a.Target = self
			defs[i] = a
		}

		r := combine(engine, defs, map[string]any{self: value})
		return r.Passed, r.Message
	}
}
