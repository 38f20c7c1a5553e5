package throwable

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.alchemy/pkg/logging"
)

func TestCapture_LogsCapturedType(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, true, false)

	_, err := Capture(
		func() error { return errors.New("traced") },
		WithLogger(logger),
	)

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "captured error")
	assert.Contains(t, buf.String(), "type=*errors.errorString")
	assert.Contains(t, buf.String(), "error=traced")
}

func TestCapture_LogsMissingError(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, true, false)

	_, err := Capture(func() error { return nil }, WithLogger(logger))

	assert.ErrorIs(t, err, ErrExceptionNotThrown)
	assert.Contains(t, buf.String(), "without raising")
}
