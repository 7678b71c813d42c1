package watch

import (
	"errors"

	"github.com/ezrec/bf/translate"
)

var f = translate.From

var (
	// Watch errors
	ErrWatchResult = errors.New(f("no result"))
)

// ErrWatchExpression indicates a watch expression that could not be compiled
// or evaluated.
type ErrWatchExpression struct {
	Expr string
	Err  error
}

func (err *ErrWatchExpression) Error() string {
	return f("watch '%v' %v", err.Expr, err.Err)
}

func (err *ErrWatchExpression) Unwrap() error {
	return err.Err
}
