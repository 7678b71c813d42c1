package program

import (
	"iter"
	"strings"
)

// Instruction is a single node of a program tree.
type Instruction struct {
	Op   Op            // Kind of instruction.
	Body []Instruction // Loop body, only used by OP_LOOP.
}

// Leaf returns a leaf instruction for an op.
func Leaf(op Op) Instruction {
	return Instruction{Op: op}
}

// Loop returns a loop instruction owning its body.
func Loop(body ...Instruction) Instruction {
	return Instruction{Op: OP_LOOP, Body: body}
}

// String returns the canonical source text of the instruction.
func (ins Instruction) String() string {
	var sb strings.Builder
	ins.write(&sb)
	return sb.String()
}

func (ins Instruction) write(sb *strings.Builder) {
	if ins.Op != OP_LOOP {
		sb.WriteString(ins.Op.String())
		return
	}

	sb.WriteByte(LOOP_OPEN)
	for _, child := range ins.Body {
		child.write(sb)
	}
	sb.WriteByte(LOOP_CLOSE)
}

// Program is an ordered sequence of instructions.
type Program struct {
	Instructions []Instruction
}

// String returns the canonical source text of the program, without comments.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, ins := range prog.Instructions {
		ins.write(&sb)
	}
	return sb.String()
}

// All returns an iterator over every instruction of the program in source
// order, descending into loop bodies.
func (prog *Program) All() iter.Seq[Instruction] {
	return func(yield func(ins Instruction) bool) {
		stack := [][]Instruction{prog.Instructions}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if len(top) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			ins := top[0]
			stack[len(stack)-1] = top[1:]
			if !yield(ins) {
				return
			}
			if ins.Op == OP_LOOP {
				stack = append(stack, ins.Body)
			}
		}
	}
}

// Len returns the total number of instructions, including loop bodies.
func (prog *Program) Len() (count int) {
	for range prog.All() {
		count++
	}

	return
}

// Depth returns the maximum loop nesting depth.
func (prog *Program) Depth() int {
	return depth(prog.Instructions)
}

func depth(list []Instruction) (deepest int) {
	for _, ins := range list {
		if ins.Op != OP_LOOP {
			continue
		}
		deepest = max(deepest, 1+depth(ins.Body))
	}

	return
}
