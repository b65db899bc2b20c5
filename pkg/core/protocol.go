package core

import "context"

// Executor sends a built request and returns the body of a successful response.
// Failed exchanges are reported as *APIError; transport faults as wrapped errors.
type Executor interface {
	Execute(ctx context.Context, req *Request) ([]byte, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, req *Request) ([]byte, error)

func (f ExecutorFunc) Execute(ctx context.Context, req *Request) ([]byte, error) {
	return f(ctx, req)
}
