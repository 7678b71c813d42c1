package interpreter

const (
	TAPE_SIZE = 30_000 // Number of cells on the tape.
)

// Tape is a fixed length array of wrapping byte cells.
type Tape struct {
	Cells [TAPE_SIZE]byte
}

// Index maps any pointer value onto a cell index in [0, TAPE_SIZE).
func (tape *Tape) Index(ptr int) int {
	n := len(tape.Cells)
	return ((ptr % n) + n) % n
}

// Get returns the cell at the pointer.
func (tape *Tape) Get(ptr int) byte {
	return tape.Cells[tape.Index(ptr)]
}

// Set sets the cell at the pointer.
func (tape *Tape) Set(ptr int, value byte) {
	tape.Cells[tape.Index(ptr)] = value
}

// Add adds to the cell at the pointer, modulo 256.
func (tape *Tape) Add(ptr int, delta byte) {
	tape.Cells[tape.Index(ptr)] += delta
}

// Reset zeros every cell.
func (tape *Tape) Reset() {
	clear(tape.Cells[:])
}
