// Package interpreter executes parsed Brainfuck programs.
//
// An Interpreter owns a tape of TAPE_SIZE wrapping byte cells and a pointer
// into it. The pointer is an unbounded signed value; it is mapped onto the
// tape with Euclidean modulo only when a cell is accessed.
//
// Execution is driven one top level instruction at a time with Step, or to
// completion with Run. Loops are executed with an explicit frame stack, so
// the nesting depth of a program does not consume native stack.
package interpreter
