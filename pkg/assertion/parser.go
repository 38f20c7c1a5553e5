package assertion

import "strings"

// ParseAssertionString parses a compact assertion string of the
// form "type:value" into its components. If no colon is present
// the entire string is treated as the type and value is nil.
//
// Examples:
//
//	"has_size:3"   -> ("has_size", "3")
//	"not_empty"    -> ("not_empty", nil)
//	"equals:ready" -> ("equals", "ready")
func ParseAssertionString(
	s string,
) (assertionType string, value any) {
	parts := strings.SplitN(s, ":", 2)
	assertionType = parts[0]

	if len(parts) > 1 {
		value = parts[1]
	}

	return
}

// ParseDefinition builds a Definition for target from a compact
// assertion string.
func ParseDefinition(target, s string) Definition {
	assertionType, value := ParseAssertionString(s)
	return Definition{
		Type:   assertionType,
		Target: target,
		Value:  value,
	}
}
