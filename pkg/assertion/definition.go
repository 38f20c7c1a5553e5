// Package assertion evaluates named predicates against values. It
// ships with a built-in evaluator for every predicate in the
// predicate package, supports custom evaluator registration, and
// loads banks of definitions from YAML or JSON files.
package assertion

// Definition describes a single assertion to evaluate against a
// named value.
type Definition struct {
	// Type is the evaluator type (e.g., "is_nil",
	// "not_empty", "has_size").
	Type string `json:"type" yaml:"type"`

	// Target is the name of the value to check.
	Target string `json:"target" yaml:"target"`

	// Value is the expected value for parameterised assertions
	// such as "has_size", "equals" and "within".
	Value any `json:"value,omitempty" yaml:"value,omitempty"`

	// Margin is the allowed absolute difference for "within".
	Margin float64 `json:"margin,omitempty" yaml:"margin,omitempty"`

	// Message is a human-readable description shown on
	// failure.
	Message string `json:"message" yaml:"message"`
}

// Result captures the outcome of evaluating a single assertion.
type Result struct {
	// Type is the assertion type that was evaluated.
	Type string `json:"type"`

	// Target is the name of the value checked.
	Target string `json:"target"`

	// Expected is the value the assertion expected.
	Expected any `json:"expected"`

	// Actual is the value that was observed.
	Actual any `json:"actual"`

	// Passed indicates whether the assertion succeeded.
	Passed bool `json:"passed"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`
}
