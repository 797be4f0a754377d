// Package server declares, but does not implement, the interactive
// deduction server named in spec.md §1 as an external collaborator: "the
// interactive deduction server and its socket/message layer ... is a
// separable executable; the saturation core does not depend on [its]
// internals" (spec §1, §9 open question (b): "Several experimental
// server/session modules are present but never fully wired; they are
// out of scope here and should not be ported without a separate spec").
//
// What follows is the JSON-RPC contract such a server would speak to the
// saturation core — method names and request/response shapes only — so
// a future session/socket layer has a stable interface to implement
// against, without this package itself owning a socket, a goroutine, or
// any saturation state.
package server

import (
	"context"

	"github.com/sourcegraph/jsonrpc2"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Request is the JSON-RPC request shape a deduction-server collaborator
// would send, reusing jsonrpc2's wire representation rather than
// defining a parallel one.
type Request = jsonrpc2.Request

// Conn is the JSON-RPC connection such a collaborator would hold open,
// the same type glsp's own server package drives a Handler with.
type Conn = jsonrpc2.Conn

// Method names of the out-of-scope interactive protocol (spec §1 "the
// interactive deduction server and its socket/message layer"). Naming
// them here lets a future, separately-specified server and this core
// agree on a wire vocabulary without either depending on the other's
// internals.
const (
	// MethodSubmit adds a clause set to a running saturation session.
	MethodSubmit = "saturate/submitClauses"
	// MethodStatus reports a session's current loop step and clause-set
	// sizes.
	MethodStatus = "saturate/status"
	// MethodCancel requests cooperative interruption of a session (spec
	// §9 "Signal-driven time limits ... a monotonic deadline checked at
	// loop top").
	MethodCancel = "saturate/cancel"
)

// NotImplementedError is returned by every handler below: this package
// declares the contract without implementing a session layer.
type NotImplementedError struct {
	Method string
}

func (e *NotImplementedError) Error() string {
	return "server: " + e.Method + " is not implemented; the interactive deduction server is an external collaborator (spec §1, §9 open question b)"
}

// Handler wires the declared methods to NotImplementedError, mirroring
// how internal/lsp/handler.go's KansoHandler is assembled into a
// glsp.Handler and driven by glsp's own jsonrpc2-backed server — so this
// contract can be swapped for a real session handler later without
// touching the saturation core's wiring.
type Handler struct{}

// NewHandler returns the not-implemented handler declared above.
func NewHandler() *Handler { return &Handler{} }

// Initialize satisfies the same lifecycle shape glsp's protocol.Handler
// expects, for parity with how internal/lsp wires its own Handler.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	return nil, &NotImplementedError{Method: "initialize"}
}

// Shutdown mirrors the teacher's KansoHandler.Shutdown lifecycle hook.
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	return &NotImplementedError{Method: "shutdown"}
}

// Submit would add a clause set to a running session (MethodSubmit).
func (h *Handler) Submit(ctx context.Context, conn *Conn, req *Request) (any, error) {
	return nil, &NotImplementedError{Method: MethodSubmit}
}

// Status would report a session's current saturation progress
// (MethodStatus).
func (h *Handler) Status(ctx context.Context, conn *Conn, req *Request) (any, error) {
	return nil, &NotImplementedError{Method: MethodStatus}
}

// Cancel would cooperatively interrupt a session (MethodCancel).
func (h *Handler) Cancel(ctx context.Context, conn *Conn, req *Request) (any, error) {
	return nil, &NotImplementedError{Method: MethodCancel}
}
