package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHandler_SubmitIsNotImplemented checks the declared-but-undesigned
// contract returns a NotImplementedError naming the method, rather than
// panicking or silently succeeding.
func TestHandler_SubmitIsNotImplemented(t *testing.T) {
	h := NewHandler()
	_, err := h.Submit(context.Background(), nil, &Request{Method: MethodSubmit})
	require.Error(t, err)

	var nie *NotImplementedError
	require.ErrorAs(t, err, &nie)
	assert.Equal(t, MethodSubmit, nie.Method)
}

// TestHandler_StatusAndCancelAreNotImplemented checks the remaining two
// declared methods behave the same way.
func TestHandler_StatusAndCancelAreNotImplemented(t *testing.T) {
	h := NewHandler()

	_, err := h.Status(context.Background(), nil, &Request{Method: MethodStatus})
	require.Error(t, err)
	assert.Contains(t, err.Error(), MethodStatus)

	_, err = h.Cancel(context.Background(), nil, &Request{Method: MethodCancel})
	require.Error(t, err)
	assert.Contains(t, err.Error(), MethodCancel)
}

// TestHandler_ShutdownIsNotImplemented checks the lifecycle hook shared
// with internal/lsp's handler shape.
func TestHandler_ShutdownIsNotImplemented(t *testing.T) {
	h := NewHandler()
	err := h.Shutdown(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown")
}
