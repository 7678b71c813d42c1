// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package interpreter

import (
	"log"
	"log/slog"

	"github.com/ezrec/bf/io"
	"github.com/ezrec/bf/program"
)

// frame is a loop body in execution.
type frame struct {
	body []program.Instruction
	pc   int
}

// Interpreter state. Tape + pointer + console ports.
type Interpreter struct {
	Verbose bool         // If set, enables verbose logging.
	Trace   *slog.Logger // If set, receives a debug record per step.

	Console io.Console // Input and output ports.
	Tape    Tape       // Program memory.
	Pointer int        // Unnormalized cell pointer.
	Steps   int        // Top level instructions executed since reset.

	program *program.Program
	pc      int
	stack   []frame
}

// NewInterpreter creates a new interpreter for a program.
func NewInterpreter(prog *program.Program) (in *Interpreter) {
	if prog == nil {
		prog = &program.Program{}
	}

	in = &Interpreter{
		program: prog,
	}

	return
}

// Program returns the program being executed.
func (in *Interpreter) Program() *program.Program {
	return in.program
}

// Reset the interpreter to a zeroed tape at the start of the program.
// The console ports are left connected.
func (in *Interpreter) Reset() {
	if in.Verbose {
		log.Printf("bf: reset")
	}

	in.Tape.Reset()
	in.Pointer = 0
	in.Steps = 0
	in.pc = 0
	in.stack = in.stack[:0]
}

// Index returns the tape index of the pointer.
func (in *Interpreter) Index() int {
	return in.Tape.Index(in.Pointer)
}

// Cell returns the value of the cell under the pointer.
func (in *Interpreter) Cell() byte {
	return in.Tape.Get(in.Pointer)
}

// Step executes a single top level instruction, including the full execution
// of a loop. done is set once no instructions remain.
func (in *Interpreter) Step() (done bool, err error) {
	list := in.program.Instructions
	if in.pc >= len(list) {
		done = true
		return
	}

	ins := list[in.pc]
	in.pc++
	in.Steps++

	failed, err := in.execute(ins)
	if err != nil {
		err = &ErrRuntime{Step: in.Steps, Op: failed, Err: err}
		return
	}

	if in.Trace != nil {
		in.Trace.Debug("step",
			"step", in.Steps,
			"op", ins.Op.String(),
			"ptr", in.Pointer,
			"index", in.Index(),
			"cell", in.Cell(),
		)
	}

	return
}

// Run executes the remaining program to completion.
func (in *Interpreter) Run() (err error) {
	for {
		var done bool
		done, err = in.Step()
		if err != nil {
			return
		}
		if done {
			break
		}
	}

	if in.Verbose {
		log.Printf("bf: done after %d steps", in.Steps)
	}

	return
}

// execute runs an instruction to completion.
// On error, failed is the leaf instruction that failed.
func (in *Interpreter) execute(ins program.Instruction) (failed program.Op, err error) {
	if ins.Op != program.OP_LOOP {
		failed = ins.Op
		err = in.leaf(ins.Op)
		return
	}

	if in.Cell() == 0 {
		return
	}

	stack := append(in.stack[:0], frame{body: ins.Body})
	defer func() {
		in.stack = stack[:0]
	}()

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.pc == len(top.body) {
			if in.Cell() != 0 {
				top.pc = 0
			} else {
				stack = stack[:len(stack)-1]
			}
			continue
		}

		child := top.body[top.pc]
		top.pc++

		if child.Op == program.OP_LOOP {
			if in.Cell() != 0 {
				stack = append(stack, frame{body: child.Body})
			}
			continue
		}

		err = in.leaf(child.Op)
		if err != nil {
			failed = child.Op
			return
		}
	}

	return
}

// leaf executes a single non-loop instruction.
func (in *Interpreter) leaf(op program.Op) (err error) {
	switch op {
	case program.OP_FORWARD:
		in.Pointer++
	case program.OP_BACKWARD:
		in.Pointer--
	case program.OP_INCREMENT:
		in.Tape.Add(in.Pointer, 1)
	case program.OP_DECREMENT:
		in.Tape.Add(in.Pointer, 0xff)
	case program.OP_OUTPUT:
		err = in.Console.Send(in.Cell())
	case program.OP_INPUT:
		var value byte
		value, err = in.Console.Receive()
		if err != nil {
			return
		}
		in.Tape.Set(in.Pointer, value)
	default:
		err = ErrOpInvalid
	}

	return
}
