package hack

import (
	"fmt"
	"iter"
	"maps"
	"strconv"
)

// Memory map constants.
const (
	VarBase      = 16    // First RAM address handed to variables.
	RAMMax       = 16383 // Last general-purpose RAM cell.
	ScreenBase   = 16384 // Screen buffer base address.
	KeyboardAddr = 24576 // Keyboard register address.
)

// isNumeral reports whether a symbol reference is a decimal literal.
// Symbol names may contain digits but never start with one.
func isNumeral(name string) bool {
	return len(name) > 0 && name[0] >= '0' && name[0] <= '9'
}

// numeral parses a decimal literal operand.
func numeral(name string) (value int, err error) {
	v64, nerr := strconv.ParseUint(name, 10, 32)
	if nerr != nil {
		err = ErrParseNumber(name)
		return
	}

	value = int(v64)
	return
}

// SymbolTable maps symbol names to addresses. It owns the variable
// allocation cursor, so one table must be constructed fresh for each
// assembly run.
type SymbolTable struct {
	symbols map[string]int
	free    int // Next RAM address available for variable allocation.
}

// NewSymbolTable returns a table seeded with the builtin Hack symbols:
// R0-R15, the five segment pointers aliasing R0-R4, SCREEN and KBD.
func NewSymbolTable() (st *SymbolTable) {
	st = &SymbolTable{
		symbols: map[string]int{
			"SP":     0,
			"LCL":    1,
			"ARG":    2,
			"THIS":   3,
			"THAT":   4,
			"SCREEN": ScreenBase,
			"KBD":    KeyboardAddr,
		},
		free: VarBase,
	}

	for n := range 16 {
		st.symbols[fmt.Sprintf("R%d", n)] = n
	}

	return
}

// Ralloc returns the next free RAM address and advances the cursor.
// Once the cursor has passed RAMMax the allocator is exhausted; an
// allocation exactly at RAMMax still succeeds.
func (st *SymbolTable) Ralloc() (addr int, err error) {
	if st.free > RAMMax {
		err = ErrRAMExhausted
		return
	}

	addr = st.free
	st.free++
	return
}

// Bind registers a symbol at an address. Rebinding an existing name
// is an error; a symbol's address never changes within one run.
func (st *SymbolTable) Bind(name string, addr int) (err error) {
	_, ok := st.symbols[name]
	if ok {
		err = ErrSymbolDuplicate
		return
	}

	st.symbols[name] = addr
	return
}

// Lookup resolves a bound symbol or decimal literal. Unknown symbols
// are an error; no variable is ever allocated.
func (st *SymbolTable) Lookup(name string) (addr int, err error) {
	addr, ok := st.symbols[name]
	if ok {
		return
	}

	if isNumeral(name) {
		addr, err = numeral(name)
		return
	}

	err = ErrSymbolUndeclared(name)
	return
}

// Resolve resolves a symbol reference: a bound symbol returns its
// address, a decimal literal returns its value, and anything else is
// a new variable bound to the next free RAM address.
func (st *SymbolTable) Resolve(name string) (addr int, err error) {
	addr, ok := st.symbols[name]
	if ok {
		return
	}

	if isNumeral(name) {
		addr, err = numeral(name)
		return
	}

	addr, err = st.Ralloc()
	if err != nil {
		return
	}
	st.symbols[name] = addr
	return
}

// All iterates the bound (name, address) pairs.
func (st *SymbolTable) All() iter.Seq2[string, int] {
	return maps.All(st.symbols)
}
