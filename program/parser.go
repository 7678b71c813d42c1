// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"errors"
	"io"
	"log"
)

// Parser is a recursive descent parser for Brainfuck source.
type Parser struct {
	Verbose bool // If set, verbosely logs the parser actions.

	source io.ReadSeeker
	pos    Position // Position of the next unread byte.
}

// Parse parses a source stream into a Program.
// Parsing starts at the current position of the stream.
func (p *Parser) Parse(source io.ReadSeeker) (prog *Program, err error) {
	p.source = source
	p.pos = Position{Line: 1, Column: 1}

	var list []Instruction
	for {
		var ins Instruction
		var ok bool
		ins, ok, err = p.next()
		if err != nil {
			return
		}
		if !ok {
			break
		}
		list = append(list, ins)
	}

	prog = &Program{Instructions: list}

	if p.Verbose {
		log.Printf("bf: parsed %d instructions, depth %d", prog.Len(), prog.Depth())
	}

	return
}

// next parses the next top level instruction.
// ok is false once the stream is exhausted.
func (p *Parser) next() (ins Instruction, ok bool, err error) {
	err = p.skip()
	if err != nil {
		return
	}

	c, at, ok, err := p.readByte()
	if err != nil || !ok {
		return
	}

	ins, err = p.parseByte(c, at)
	if err != nil {
		ok = false
	}

	return
}

// readByte reads one byte from the source.
// ok is false at end of stream.
func (p *Parser) readByte() (c byte, at Position, ok bool, err error) {
	at = p.pos

	var one [1]byte
	_, err = io.ReadFull(p.source, one[:])
	if errors.Is(err, io.EOF) {
		err = nil
		return
	}
	if err != nil {
		err = &ErrSyntax{Position: at, Err: err}
		return
	}

	c = one[0]
	ok = true

	p.pos.Offset++
	if c == '\n' {
		p.pos.Line++
		p.pos.Column = 1
	} else {
		p.pos.Column++
	}

	return
}

// unreadByte rewinds the source by the single command byte just read.
func (p *Parser) unreadByte() (err error) {
	_, err = p.source.Seek(-1, io.SeekCurrent)
	if err != nil {
		err = &ErrSyntax{Position: p.pos, Err: err}
		return
	}

	p.pos.Offset--
	p.pos.Column--

	return
}

// skip discards comment bytes, stopping before the next command byte or at
// the end of the stream.
func (p *Parser) skip() (err error) {
	for {
		var c byte
		var ok bool
		c, _, ok, err = p.readByte()
		if err != nil || !ok {
			return
		}
		if IsCommand(c) {
			return p.unreadByte()
		}
	}
}

// parseByte converts a command byte, read at a position, into an instruction.
// A loop open byte parses the loop body up to and including its close byte.
func (p *Parser) parseByte(c byte, at Position) (ins Instruction, err error) {
	op, ok := opMap[c]
	if ok {
		ins = Leaf(op)
		return
	}

	switch c {
	case LOOP_OPEN:
		var body []Instruction
		for {
			err = p.skip()
			if err != nil {
				return
			}

			var next byte
			var nextAt Position
			next, nextAt, ok, err = p.readByte()
			if err != nil {
				return
			}
			if !ok {
				err = &ErrSyntax{Position: at, Err: ErrUnterminatedLoop}
				return
			}
			if next == LOOP_CLOSE {
				ins = Loop(body...)
				return
			}

			var child Instruction
			child, err = p.parseByte(next, nextAt)
			if err != nil {
				return
			}
			body = append(body, child)
		}
	case LOOP_CLOSE:
		err = &ErrSyntax{Position: at, Err: ErrUnmatchedClose(c)}
	default:
		err = &ErrSyntax{Position: at, Err: ErrCommand(c)}
	}

	return
}
