package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/farelens/flight-offers-service/internal/pkg/exception"
	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
)

type DecodeRequestFunc func(ctx context.Context, r *http.Request) (interface{}, error)

type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// DecodeRequest decodes a JSON body into T and runs its Bind hook for
// defaults and validation.
func DecodeRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	req := new(T)

	if r.Body != nil && r.ContentLength != 0 {
		if err := render.DecodeJSON(r.Body, req); err != nil {
			return nil, exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    "invalid request body",
				Cause:      err,
			}
		}
	}

	if binder, ok := any(req).(render.Binder); ok {
		if err := binder.Bind(r); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// DecodeQueryRequest builds T from query parameters only, via its Bind hook.
func DecodeQueryRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	req := new(T)

	if binder, ok := any(req).(render.Binder); ok {
		if err := binder.Bind(r); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// MakeHandlerFunc glues a go-kit endpoint to the router: decode, invoke,
// encode, with error mapping. A cancelled request is not answered.
func MakeHandlerFunc(ep endpoint.Endpoint,
	decoder DecodeRequestFunc,
	encoder EncodeResponseFunc,
) http.HandlerFunc {
	return func(respWriter http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		request, err := decoder(ctx, req)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)
			return
		}

		response, err := ep(ctx, request)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				slog.DebugContext(ctx, "request cancelled by client")
				return
			}

			ErrorResponse(ctx, err, respWriter)
			return
		}

		if err := encoder(ctx, respWriter, response); err != nil {
			ErrorResponse(ctx, err, respWriter)
		}
	}
}
