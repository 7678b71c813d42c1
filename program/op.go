package program

// Op is the kind of an instruction.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_FORWARD   = Op(0) // >
	OP_BACKWARD  = Op(1) // <
	OP_INCREMENT = Op(2) // +
	OP_DECREMENT = Op(3) // -
	OP_OUTPUT    = Op(4) // .
	OP_INPUT     = Op(5) // ,
	OP_LOOP      = Op(6) // []
)

const (
	LOOP_OPEN  = byte('[') // Opens a loop body.
	LOOP_CLOSE = byte(']') // Closes a loop body.
)

// opMap maps the leaf command bytes to their ops.
var opMap = map[byte]Op{
	'>': OP_FORWARD,
	'<': OP_BACKWARD,
	'+': OP_INCREMENT,
	'-': OP_DECREMENT,
	'.': OP_OUTPUT,
	',': OP_INPUT,
}

// IsCommand returns true if the byte is one of the eight command bytes.
func IsCommand(c byte) bool {
	if c == LOOP_OPEN || c == LOOP_CLOSE {
		return true
	}

	_, ok := opMap[c]
	return ok
}
