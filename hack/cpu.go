package hack

// RAMSize covers general RAM, the screen buffer and the keyboard
// register.
const RAMSize = KeyboardAddr + 1

// Machine is a simulation of the Hack computer, used to verify
// assembled programs behaviorally.
type Machine struct {
	A, D uint16   // Address and data registers.
	PC   int      // Program counter.
	RAM  []uint16 // Data memory, including the memory-mapped IO region.
	ROM  []uint16 // Instruction memory.
}

// NewMachine creates a machine with the given instruction words loaded.
func NewMachine(words []uint16) (m *Machine) {
	m = &Machine{
		RAM: make([]uint16, RAMSize),
		ROM: words,
	}

	return
}

// Reset clears the registers, memory and program counter.
func (m *Machine) Reset() {
	m.A = 0
	m.D = 0
	m.PC = 0
	clear(m.RAM)
}

// alu computes the Hack ALU function selected by the 6-bit control
// code (zx nx zy ny f no) over x and y.
func alu(c uint16, x, y uint16) (out uint16) {
	if c&0b100000 != 0 {
		x = 0
	}
	if c&0b010000 != 0 {
		x = ^x
	}
	if c&0b001000 != 0 {
		y = 0
	}
	if c&0b000100 != 0 {
		y = ^y
	}
	if c&0b000010 != 0 {
		out = x + y
	} else {
		out = x & y
	}
	if c&0b000001 != 0 {
		out = ^out
	}

	return
}

// Step executes one instruction. done reports that the program counter
// has left the instruction memory.
func (m *Machine) Step() (done bool) {
	if m.PC < 0 || m.PC >= len(m.ROM) {
		done = true
		return
	}

	word := m.ROM[m.PC]
	m.PC += 1

	if word&0x8000 == 0 {
		m.A = word
		return
	}

	// Both the M operand and a jump target use the A value from
	// before any destination write.
	addr := m.A

	y := m.A
	if word&0x1000 != 0 {
		y = m.RAM[addr]
	}

	out := alu((word>>6)&0x3f, m.D, y)

	if word&0b100000 != 0 {
		m.A = out
	}
	if word&0b010000 != 0 {
		m.D = out
	}
	if word&0b001000 != 0 {
		m.RAM[addr] = out
	}

	signed := int16(out)
	jump := (word&0b100 != 0 && signed < 0) ||
		(word&0b010 != 0 && signed == 0) ||
		(word&0b001 != 0 && signed > 0)
	if jump {
		m.PC = int(addr)
	}

	return
}

// Run executes until the program counter leaves the instruction memory
// or maxSteps instructions have executed, whichever comes first, and
// returns the number of instructions executed.
func (m *Machine) Run(maxSteps int) (steps int) {
	for steps < maxSteps {
		if m.Step() {
			break
		}
		steps += 1
	}

	return
}
