// Package io provides the byte ports an interpreter reads program input from
// and writes program output to.
package io

import (
	"errors"
	"io"
)

// Console is the pair of byte ports used by the input and output instructions.
// Input is read one byte per request and Output is written one byte per
// request, with no buffering of its own.
type Console struct {
	Input  io.Reader
	Output io.Writer
}

// Receive blocks until one byte is read from the input.
// End of input is reported as ErrInputExhausted.
func (con *Console) Receive() (value byte, err error) {
	if con.Input == nil {
		err = ErrNoInput
		return
	}

	var one [1]byte
	_, err = io.ReadFull(con.Input, one[:])
	if errors.Is(err, io.EOF) {
		err = ErrInputExhausted
		return
	}
	if err != nil {
		return
	}

	value = one[0]
	return
}

// Send writes one byte to the output.
func (con *Console) Send(value byte) (err error) {
	if con.Output == nil {
		err = ErrNoOutput
		return
	}

	_, err = con.Output.Write([]byte{value})
	return
}
