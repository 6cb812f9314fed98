package mediator

import (
	"context"
	"fmt"
	"reflect"
)

// HandlerFunc handles exactly one request type
type HandlerFunc[Req any, Res any] func(ctx context.Context, req Req) (Res, error)

type handlerFunc func(ctx context.Context, req any) (any, error)

// Dispatcher routes a request to its registered handler. The mapping
// from request type to handler is built once at wiring time; a missing
// or duplicate registration is a wiring bug and panics rather than
// surfacing as a runtime error.
type Dispatcher struct {
	handlers map[reflect.Type]handlerFunc
}

// New creates an empty dispatcher
func New() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[reflect.Type]handlerFunc),
	}
}

// Register binds a handler to its request type on the dispatcher
func Register[Req any, Res any](d *Dispatcher, handle HandlerFunc[Req, Res]) {
	var req Req
	t := reflect.TypeOf(req)
	if _, exists := d.handlers[t]; exists {
		panic(fmt.Sprintf("mediator: handler already registered for %s", t))
	}

	d.handlers[t] = func(ctx context.Context, req any) (any, error) {
		return handle(ctx, req.(Req))
	}
}

// Send dispatches a request to its registered handler
func (d *Dispatcher) Send(ctx context.Context, req any) (any, error) {
	t := reflect.TypeOf(req)
	h, ok := d.handlers[t]
	if !ok {
		panic(fmt.Sprintf("mediator: no handler registered for %s", t))
	}

	return h(ctx, req)
}

// Send dispatches a request and returns a typed result
func Send[Res any](ctx context.Context, d *Dispatcher, req any) (Res, error) {
	res, err := d.Send(ctx, req)
	if err != nil {
		var zero Res
		return zero, err
	}

	return res.(Res), nil
}
