package console

import (
	"context"
	"errors"
)

type command interface {
	Run(ctx context.Context) error
}

var errInputClosed = errors.New("input closed")

// inputError is operator input that could not be used. Its message has already been shown.
type inputError struct {
	message string
}

func (e *inputError) Error() string {
	return e.message
}

func isInputError(err error) bool {
	var target *inputError
	return errors.As(err, &target)
}
