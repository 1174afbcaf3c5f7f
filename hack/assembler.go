package hack

import (
	"bufio"
	"io"
	"log"
)

// Assembler is a two-pass assembler for the Hack instruction set.
// The zero value is ready to use; Parse may be called repeatedly and
// starts every run from a fresh symbol table.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
	Strict  bool // If set, undeclared symbols fail instead of allocating variables.
	Expand  bool // If set, $(...) expressions are evaluated before classification.

	Symbols *SymbolTable // Symbol table of the current run.

	predefine map[string]int // Predefines
}

// Predefine binds an extra symbol at the start of every run.
func (asm *Assembler) Predefine(name string, addr int) {
	if asm.predefine == nil {
		asm.predefine = map[string]int{name: addr}
	} else {
		asm.predefine[name] = addr
	}
}

// sourceLine is one classified line with its position, carried from
// pass one into pass two.
type sourceLine struct {
	no   int
	text string
	line Line
}

// Parse assembles an input stream into a Program.
//
// Pass one classifies every line and binds each label declaration to
// the address of the next instruction. Pass two encodes the A- and
// C-instructions in order, allocating RAM for variables on first use.
// Any error aborts the run and is wrapped with its source position.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var text string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: err}
			prog = nil
		}
	}()

	asm.Symbols = NewSymbolTable()
	for name, addr := range asm.predefine {
		err = asm.Symbols.Bind(name, addr)
		if err != nil {
			return
		}
	}

	var lines []sourceLine
	for scanner.Scan() {
		text = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		if asm.Expand {
			text, err = asm.expandExpr(text)
			if err != nil {
				return
			}
		}

		var line Line
		line, err = Classify(text)
		if err != nil {
			return
		}

		lines = append(lines, sourceLine{no: lineno, text: text, line: line})
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	// Pass one: labels bind to the address of the next instruction
	// and consume no address themselves.
	var addr int
	for _, src := range lines {
		switch src.line.Kind {
		case LineLabel:
			lineno, text = src.no, src.text
			err = asm.Symbols.Bind(src.line.Label, addr)
			if err != nil {
				return
			}
		case LineAInstr, LineCInstr:
			addr += 1
		}
	}

	// Pass two: encode instructions in input order.
	prog = &Program{}
	addr = 0
	for _, src := range lines {
		lineno, text = src.no, src.text

		var word string
		switch src.line.Kind {
		case LineAInstr:
			word, err = EncodeA(src.line, asm.Symbols, asm.Strict)
		case LineCInstr:
			word, err = EncodeC(src.line)
		default:
			continue
		}
		if err != nil {
			return
		}

		prog.Instructions = append(prog.Instructions, Instruction{
			LineNo: src.no,
			Addr:   addr,
			Text:   StripComment(src.text),
			Word:   word,
		})
		addr += 1
	}

	return
}
