// Package answer makes testify mock calls return one of their own
// arguments:
//
//	answer.ReturnFirst(store.On("Save", mock.Anything))
//
// Each helper installs a Run function on the call, replacing any set
// before.
//
// The Run function rewrites the call's ReturnArguments outside the
// mock's lock, so a mocked method using these helpers must not be
// invoked from several goroutines at once.
package answer

import (
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"

	"digital.vasic.alchemy/internal/check"
)

// ReturnFirst makes call return its first argument.
func ReturnFirst(call *mock.Call) *mock.Call {
	return ReturnArgumentAtIndex(call, 0)
}

// ReturnArgumentAtIndex makes call return the argument at the
// zero-based index. The mocked method panics if it is invoked with
// fewer arguments than index requires.
func ReturnArgumentAtIndex(call *mock.Call, index int) *mock.Call {
	check.NotNil(call, "call is nil")
	check.That(index >= 0, "index is out of bounds: %d", index)

	return call.Run(func(args mock.Arguments) {
		if index >= len(args) {
			panic(errors.AssertionFailedf(
				"received an index of %d but only %d arguments",
				index, len(args),
			))
		}
		call.ReturnArguments = mock.Arguments{args.Get(index)}
	})
}
