// Package saxerr defines the failure kinds surfaced by the discretisation,
// discord and classification nodes.
package saxerr

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidInput     = errors.New("invalid input")
	ErrDegenerate       = errors.New("degenerate series")
	ErrCancelled        = errors.New("cancelled")
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindInvalidParameter
	KindInvalidInput
	KindDegenerate
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindInvalidParameter:
		return "InvalidParameter"
	case KindInvalidInput:
		return "InvalidInput"
	case KindDegenerate:
		return "Degenerate"
	case KindCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// KindOf classifies err by the sentinel it wraps.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidParameter):
		return KindInvalidParameter
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrDegenerate):
		return KindDegenerate
	case errors.Is(err, ErrCancelled), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCancelled
	default:
		return KindUnknown
	}
}

func InvalidParameter(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Cancelled wraps the context error so that both ErrCancelled and the
// original cause match with errors.Is.
func Cancelled(ctx context.Context) error {
	return fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
}

// Poll returns a cancellation error if ctx is done.
func Poll(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return Cancelled(ctx)
	default:
		return nil
	}
}
