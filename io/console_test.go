package io

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestConsole_Receive(t *testing.T) {
	assert := assert.New(t)

	con := &Console{Input: bytes.NewReader([]byte{0x41, 0x00, 0xff})}

	for _, expect := range []byte{0x41, 0x00, 0xff} {
		value, err := con.Receive()
		assert.NoError(err)
		assert.Equal(expect, value)
	}

	_, err := con.Receive()
	assert.ErrorIs(err, ErrInputExhausted)
}

func TestConsole_ReceiveOneByteAtATime(t *testing.T) {
	assert := assert.New(t)

	input := bytes.NewReader([]byte("abc"))
	con := &Console{Input: input}

	value, err := con.Receive()
	assert.NoError(err)
	assert.Equal(byte('a'), value)
	assert.Equal(2, input.Len())
}

func TestConsole_ReceiveError(t *testing.T) {
	assert := assert.New(t)

	failure := errors.New("broken pipe")
	con := &Console{Input: iotest.ErrReader(failure)}

	_, err := con.Receive()
	assert.ErrorIs(err, failure)
	assert.NotErrorIs(err, ErrInputExhausted)

	con = &Console{}
	_, err = con.Receive()
	assert.ErrorIs(err, ErrNoInput)
}

func TestConsole_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	con := &Console{Output: output}

	assert.NoError(con.Send('H'))
	assert.NoError(con.Send(0xff))
	assert.Equal([]byte{'H', 0xff}, output.Bytes())

	con = &Console{}
	assert.ErrorIs(con.Send('H'), ErrNoOutput)
}
