package program

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseString(source string) (*Program, error) {
	p := &Parser{}
	return p.Parse(strings.NewReader(source))
}

func TestParser(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		source string
		expect []Instruction
	}){
		{"", nil},
		{"comment only\n", nil},
		{"+", []Instruction{Leaf(OP_INCREMENT)}},
		{"a+b", []Instruction{Leaf(OP_INCREMENT)}},
		{"><+-.,", []Instruction{
			Leaf(OP_FORWARD), Leaf(OP_BACKWARD),
			Leaf(OP_INCREMENT), Leaf(OP_DECREMENT),
			Leaf(OP_OUTPUT), Leaf(OP_INPUT),
		}},
		{"[+]", []Instruction{Loop(Leaf(OP_INCREMENT))}},
		{"[]", []Instruction{Loop()}},
		{"[ - comment\n ]", []Instruction{Loop(Leaf(OP_DECREMENT))}},
		{"+[>[-]<]", []Instruction{
			Leaf(OP_INCREMENT),
			Loop(Leaf(OP_FORWARD), Loop(Leaf(OP_DECREMENT)), Leaf(OP_BACKWARD)),
		}},
	}

	for _, entry := range table {
		prog, err := parseString(entry.source)
		assert.NoError(err, entry.source)
		if assert.NotNil(prog, entry.source) {
			assert.Equal(entry.expect, prog.Instructions, entry.source)
		}
	}
}

func TestParserComments(t *testing.T) {
	assert := assert.New(t)

	plain, err := parseString("+")
	assert.NoError(err)

	commented, err := parseString("a+b")
	assert.NoError(err)

	assert.Equal(plain, commented)
}

func TestParserErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		source string
		err    error
		line   int
		column int
	}){
		{"[", ErrUnterminatedLoop, 1, 1},
		{"+\n  [[-]", ErrUnterminatedLoop, 2, 3},
		{"]", ErrUnmatchedClose(']'), 1, 1},
		{"[-]]", ErrUnmatchedClose(']'), 1, 4},
		{"+\nab ]", ErrUnmatchedClose(']'), 2, 4},
	}

	for _, entry := range table {
		prog, err := parseString(entry.source)
		assert.Nil(prog, entry.source)
		assert.ErrorIs(err, entry.err, entry.source)

		var se *ErrSyntax
		if assert.True(errors.As(err, &se), entry.source) {
			assert.Equal(entry.line, se.Line, entry.source)
			assert.Equal(entry.column, se.Column, entry.source)
		}
	}
}

func TestParserUnmatchedCloseByte(t *testing.T) {
	assert := assert.New(t)

	_, err := parseString("]")

	var eu ErrUnmatchedClose
	assert.True(errors.As(err, &eu))
	assert.Equal(byte(']'), byte(eu))
	assert.Contains(err.Error(), "']'")
}

// failingSource fails reads after a prefix has been consumed.
type failingSource struct {
	*strings.Reader
	err error
}

func (fs *failingSource) Read(buf []byte) (n int, err error) {
	if fs.Reader.Len() == 0 {
		return 0, fs.err
	}
	return fs.Reader.Read(buf)
}

func TestParserIoError(t *testing.T) {
	assert := assert.New(t)

	failure := errors.New("disk on fire")
	source := &failingSource{Reader: strings.NewReader("+[-"), err: failure}

	p := &Parser{}
	prog, err := p.Parse(source)
	assert.Nil(prog)
	assert.ErrorIs(err, failure)
	assert.NotErrorIs(err, ErrUnterminatedLoop)
}

func TestParserRewind(t *testing.T) {
	assert := assert.New(t)

	// Every command byte is consumed exactly once.
	source := strings.NewReader("xx+yy[z-]zz")
	p := &Parser{}
	prog, err := p.Parse(source)
	assert.NoError(err)
	assert.Equal("+[-]", prog.String())

	offset, err := source.Seek(0, io.SeekCurrent)
	assert.NoError(err)
	assert.Equal(int64(11), offset)
	assert.Equal(int64(11), p.pos.Offset)
}

func FuzzParse(f *testing.F) {
	f.Add("+")
	f.Add("[+]")
	f.Add("a+b")
	f.Add("[")
	f.Add("]")
	f.Add("++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.")

	f.Fuzz(func(t *testing.T, source string) {
		assert := assert.New(t)

		prog, err := parseString(source)
		if err != nil {
			var se *ErrSyntax
			assert.True(errors.As(err, &se), source)
			return
		}

		// The canonical rendering parses back to the same program.
		again, err := parseString(prog.String())
		assert.NoError(err, source)
		assert.Equal(prog.String(), again.String(), source)
		assert.Equal(prog.Len(), again.Len(), source)
	})
}
