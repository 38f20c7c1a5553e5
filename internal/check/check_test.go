package check

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThat_Passes(t *testing.T) {
	assert.NotPanics(t, func() { That(true, "unused") })
}

func TestThat_PanicsWithAssertionFailure(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.HasAssertionFailure(err))
		assert.Contains(t, err.Error(), "bound 5")
	}()
	That(false, "bound %d", 5)
}

func TestNotNil(t *testing.T) {
	var fn func()
	var ptr *int

	assert.Panics(t, func() { NotNil(nil, "nil") })
	assert.Panics(t, func() { NotNil(fn, "nil func") })
	assert.Panics(t, func() { NotNil(ptr, "nil pointer") })
	assert.NotPanics(t, func() { NotNil(3, "int") })
	assert.NotPanics(t, func() { NotNil(func() {}, "func") })
}
