package interpreter

import (
	"errors"

	"github.com/ezrec/bf/program"
	"github.com/ezrec/bf/translate"
)

var f = translate.From

var (
	// Interpreter errors
	ErrOpInvalid = errors.New(f("op invalid"))
)

// ErrRuntime indicates the step and instruction of a runtime error.
type ErrRuntime struct {
	Step int        // Top level step, starting at 1.
	Op   program.Op // Instruction that failed.
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("step %d '%v' %v", err.Step, err.Op, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
