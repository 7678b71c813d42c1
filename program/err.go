package program

import (
	"errors"

	"github.com/ezrec/bf/translate"
)

var f = translate.From

var (
	// Parse errors
	ErrUnterminatedLoop = errors.New(f("unterminated loop"))
)

// ErrUnmatchedClose is a loop close byte with no open loop.
type ErrUnmatchedClose byte

func (err ErrUnmatchedClose) Error() string {
	return f("unmatched '%c'", byte(err))
}

// ErrCommand is a byte that is not a command.
type ErrCommand byte

func (err ErrCommand) Error() string {
	return f("not a command 0x%02x", byte(err))
}

// Position is a location in a source stream.
type Position struct {
	Offset int64 // Byte offset, from where parsing began.
	Line   int   // Line number, starting at 1.
	Column int   // Column in bytes, starting at 1.
}

// ErrSyntax indicates the source location of a parse error.
type ErrSyntax struct {
	Position
	Err error
}

func (err *ErrSyntax) Error() string {
	return f("line %d col %d %v", err.Line, err.Column, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
