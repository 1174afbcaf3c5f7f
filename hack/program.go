package hack

import (
	"io"
	"iter"
)

// Instruction is one assembled machine word with its source position.
type Instruction struct {
	LineNo int    // Source line number, 1-based.
	Addr   int    // Instruction address.
	Text   string // Source text with any inline comment stripped.
	Word   string // 16-character binary word.
}

// Program is an ordered sequence of assembled instructions.
type Program struct {
	Instructions []Instruction
}

// Words iterates (address, word) pairs in emission order.
func (prog *Program) Words() iter.Seq2[int, string] {
	return func(yield func(addr int, word string) bool) {
		for _, ins := range prog.Instructions {
			if !yield(ins.Addr, ins.Word) {
				return
			}
		}
	}
}

// Debug returns the instruction at an address, or nil. Used to map a
// machine address back to its source line.
func (prog *Program) Debug(addr int) (ins *Instruction) {
	for n := range prog.Instructions {
		if prog.Instructions[n].Addr == addr {
			ins = &prog.Instructions[n]
			break
		}
	}

	return
}

// Binary returns the assembled words as values.
func (prog *Program) Binary() (words []uint16, err error) {
	for _, ins := range prog.Instructions {
		var value uint16
		value, err = DecodeWord(ins.Word)
		if err != nil {
			words = nil
			return
		}
		words = append(words, value)
	}

	return
}

// WriteTo writes the program as text, one word per line. Implements
// io.WriterTo.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	for _, ins := range prog.Instructions {
		var written int
		written, err = io.WriteString(w, ins.Word+"\n")
		n += int64(written)
		if err != nil {
			return
		}
	}

	return
}
