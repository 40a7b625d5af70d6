package errorx

import (
	"context"
	"errors"
	"net/http"

	"github.com/joeblew999/plat-respond/pkg/render"
	"github.com/joeblew999/plat-respond/pkg/store"
	"github.com/joeblew999/plat-respond/pkg/template"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// CodeError is a typed error that carries an HTTP status code.
// Logic functions return these so the global error handler can map
// them to the correct HTTP response.
type CodeError struct {
	Code  int    `json:"code"`
	Msg   string `json:"msg"`
	Retry bool   `json:"retry,omitempty"`
}

func (e *CodeError) Error() string {
	return e.Msg
}

// ErrNotFound returns a 404 error.
func ErrNotFound(msg string) error {
	return &CodeError{Code: http.StatusNotFound, Msg: msg}
}

// ErrBadRequest returns a 400 error.
func ErrBadRequest(msg string) error {
	return &CodeError{Code: http.StatusBadRequest, Msg: msg}
}

// ErrInternal returns a 500 error.
func ErrInternal(msg string) error {
	return &CodeError{Code: http.StatusInternalServerError, Msg: msg}
}

// ErrUnavailable returns a 503 error the client may retry.
func ErrUnavailable(msg string) error {
	return &CodeError{Code: http.StatusServiceUnavailable, Msg: msg, Retry: true}
}

// FromStore maps a template store or renderer error to a CodeError.
// Anything it does not recognise is treated as the store being unreachable.
func FromStore(err error) error {
	if err == nil {
		return nil
	}

	var codeErr *CodeError
	var missing *render.MissingVariableError
	var invalid *template.ValidationError
	switch {
	case errors.As(err, &codeErr):
		return codeErr
	case errors.As(err, &missing):
		return ErrBadRequest(missing.Error())
	case errors.As(err, &invalid):
		return ErrBadRequest(invalid.Error())
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound(err.Error())
	case errors.Is(err, store.ErrInvalidFilename):
		return ErrBadRequest(err.Error())
	case errors.Is(err, store.ErrInvalidDocument):
		return ErrInternal(err.Error())
	default:
		return ErrUnavailable("template store unavailable: " + err.Error())
	}
}

// RegisterErrorHandler installs a global error handler that maps CodeError
// to the correct HTTP status code. Untyped errors become 500.
func RegisterErrorHandler() {
	httpx.SetErrorHandlerCtx(func(ctx context.Context, err error) (int, any) {
		switch e := err.(type) {
		case *CodeError:
			return e.Code, &CodeError{Code: e.Code, Msg: e.Msg, Retry: e.Retry}
		default:
			logx.WithContext(ctx).Errorf("unexpected error: %v", err)
			return http.StatusInternalServerError, &CodeError{
				Code: http.StatusInternalServerError,
				Msg:  "internal server error",
			}
		}
	})
}
