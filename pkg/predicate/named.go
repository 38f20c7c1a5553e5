package predicate

// Absent holds for nil values.
var Absent Predicate[any] = IsNil

// Present holds for non-nil values.
var Present = Not(Absent)

// Empty holds for collections with no elements.
var Empty Predicate[any] = IsEmpty

// NotEmpty holds for present collections with at least one element.
var NotEmpty = And(Present, Not(Empty))

// AbsentOrEmpty holds for nil values and empty collections.
var AbsentOrEmpty = Or(Absent, Empty)

// PresentAndNotEmpty holds for present collections with at least one
// element.
var PresentAndNotEmpty = And(Present, NotEmpty)

var stringAbsent Predicate[*string] = func(s *string) bool {
	return s == nil
}

var stringEmpty Predicate[*string] = func(s *string) bool {
	return s != nil && len(*s) == 0
}

// EmptyString holds for a present string of length zero.
var EmptyString = stringEmpty

// AbsentOrEmptyString holds for a nil or zero-length string.
var AbsentOrEmptyString = Or(stringAbsent, stringEmpty)

// NonEmptyString holds for a present string with at least one byte.
var NonEmptyString = Not(AbsentOrEmptyString)

// PresentNonEmptyString holds for a string that is both present and
// non-empty.
var PresentNonEmptyString = And(Not(stringAbsent), NonEmptyString)

// True holds for a present boolean set to true.
var True Predicate[*bool] = func(b *bool) bool {
	return b != nil && *b
}

// False holds for a present boolean set to false.
var False Predicate[*bool] = func(b *bool) bool {
	return b != nil && !*b
}

// HasSize returns a Predicate holding for present collections with
// exactly n elements.
func HasSize(n int) Predicate[any] {
	var sized Predicate[any] = func(value any) bool {
		size, ok := Size(value)
		return ok && size == n
	}
	return And(Present, sized)
}
