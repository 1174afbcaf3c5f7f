package hack

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// addProgram computes R0 = 2 + 3; straight-line, no symbols.
var addProgram = []string{
	"// Computes R0 = 2 + 3",
	"",
	"@2",
	"D=A",
	"@3",
	"D=D+A",
	"@0",
	"M=D",
}

var addWords = []string{
	"0000000000000010",
	"1110110000010000",
	"0000000000000011",
	"1110000010010000",
	"0000000000000000",
	"1110001100001000",
}

// maxProgram computes R2 = max(R0, R1); forward-referenced labels.
var maxProgram = []string{
	"// Computes R2 = max(R0, R1)",
	"",
	"   @R0",
	"   D=M              // D = first number",
	"   @R1",
	"   D=D-M            // D = first number - second number",
	"   @OUTPUT_FIRST",
	"   D;JGT            // if D>0 (first is greater) goto output_first",
	"   @R1",
	"   D=M              // D = second number",
	"   @OUTPUT_D",
	"   0;JMP            // goto output_d",
	"(OUTPUT_FIRST)",
	"   @R0",
	"   D=M              // D = first number",
	"(OUTPUT_D)",
	"   @R2",
	"   M=D              // M[2] = D (greatest number)",
	"(INFINITE_LOOP)",
	"   @INFINITE_LOOP",
	"   0;JMP            // infinite loop",
}

var maxWords = []string{
	"0000000000000000",
	"1111110000010000",
	"0000000000000001",
	"1111010011010000",
	"0000000000001010",
	"1110001100000001",
	"0000000000000001",
	"1111110000010000",
	"0000000000001100",
	"1110101010000111",
	"0000000000000000",
	"1111110000010000",
	"0000000000000010",
	"1110001100001000",
	"0000000000001110",
	"1110101010000111",
}

// sumProgram computes R1 = 2 + 3 through a variable cell.
var sumProgram = []string{
	"@2",
	"D=A",
	"@sum",
	"M=D",
	"@3",
	"D=A",
	"@sum",
	"M=D+M",
	"@sum",
	"D=M",
	"@R1",
	"M=D",
}

var sumWords = []string{
	"0000000000000010",
	"1110110000010000",
	"0000000000010000",
	"1110001100001000",
	"0000000000000011",
	"1110110000010000",
	"0000000000010000",
	"1111000010001000",
	"0000000000010000",
	"1111110000010000",
	"0000000000000001",
	"1110001100001000",
}

func parseLines(t *testing.T, asm *Assembler, program []string) *Program {
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func wordsOf(prog *Program) (words []string) {
	for _, ins := range prog.Instructions {
		words = append(words, ins.Word)
	}
	return
}

func TestAssemblerEmpty(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Instructions))

	// The run always gets a fresh, seeded table.
	addr, err := asm.Symbols.Lookup("SCREEN")
	assert.NoError(err)
	assert.Equal(16384, addr)
}

func TestAssemblerAdd(t *testing.T) {
	assert := assert.New(t)

	prog := parseLines(t, &Assembler{}, addProgram)

	assert.Equal(addWords, wordsOf(prog))

	// Comments and blanks consume no address; the source map still
	// points at the original lines.
	assert.Equal(0, prog.Instructions[0].Addr)
	assert.Equal(3, prog.Instructions[0].LineNo)
	assert.Equal("@2", prog.Instructions[0].Text)
	assert.Equal("M=D", prog.Instructions[5].Text)
}

func TestAssemblerMax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog := parseLines(t, asm, maxProgram)

	assert.Equal(maxWords, wordsOf(prog))

	// Labels bound to the address of the next instruction.
	for _, entry := range [](struct {
		label string
		addr  int
	}){
		{"OUTPUT_FIRST", 10},
		{"OUTPUT_D", 12},
		{"INFINITE_LOOP", 14},
	} {
		addr, err := asm.Symbols.Lookup(entry.label)
		assert.NoError(err, entry.label)
		assert.Equal(entry.addr, addr, entry.label)
	}
}

func TestAssemblerVariables(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog := parseLines(t, asm, sumProgram)

	assert.Equal(sumWords, wordsOf(prog))

	// The variable kept one cell across all references.
	addr, err := asm.Symbols.Lookup("sum")
	assert.NoError(err)
	assert.Equal(16, addr)
}

func TestAssemblerFreshTablePerRun(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Carrying allocations between runs would be a correctness bug:
	// the variable must land on cell 16 again.
	for range 2 {
		prog := parseLines(t, asm, sumProgram)
		assert.Equal(sumWords, wordsOf(prog))
	}
}

func TestAssemblerInstructionCount(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"// header",
		"",
		"(START)",
		"@1",
		"   \t",
		"D=A // inline",
		"(END)",
		"@START",
	}

	prog := parseLines(t, &Assembler{}, program)

	// One word per non-comment, non-blank, non-label line.
	assert.Equal(3, len(prog.Instructions))
	for n, ins := range prog.Instructions {
		assert.Equal(n, ins.Addr)
	}
}

func TestAssemblerLabelDuplicate(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"(DUP)",
		"@0",
		"(DUP)",
		"@1",
	}

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.ErrorIs(err, ErrSymbolDuplicate)

	var se *ErrSyntax
	assert.True(errors.As(err, &se))
	assert.Equal(3, se.LineNo)
	assert.Equal("(DUP)", se.Line)
}

func TestAssemblerUnrecognizedLine(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"@0",
		"what is this",
	}

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))

	var le ErrLineInvalid
	assert.ErrorAs(err, &le)
	assert.Equal("what is this", string(le))

	var se *ErrSyntax
	assert.True(errors.As(err, &se))
	assert.Equal(2, se.LineNo)
}

func TestAssemblerMnemonicError(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"@0",
		"D=D&D; JMP",
	}

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.Nil(prog)
	assert.ErrorIs(err, ErrCompInvalid)

	var se *ErrSyntax
	assert.True(errors.As(err, &se))
	assert.Equal(2, se.LineNo)
}

func TestAssemblerStrict(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"@UNDEFINED",
	}

	asm := &Assembler{Strict: true}
	_, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	var ue ErrSymbolUndeclared
	assert.ErrorAs(err, &ue)

	// Default mode auto-creates the variable instead.
	asm = &Assembler{}
	prog := parseLines(t, asm, program)
	assert.Equal([]string{ToWord(16)}, wordsOf(prog))
}

func TestAssemblerStrictLabels(t *testing.T) {
	assert := assert.New(t)

	// Labels are declarations, so strict mode accepts them even when
	// referenced before their declaration.
	program := []string{
		"@END",
		"0;JMP",
		"(END)",
	}

	prog := parseLines(t, &Assembler{Strict: true}, program)
	assert.Equal(ToWord(2), prog.Instructions[0].Word)
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("io.base", 2048)

	prog := parseLines(t, asm, []string{"@io.base"})
	assert.Equal([]string{ToWord(2048)}, wordsOf(prog))

	// Predefines colliding with builtins fail the run.
	asm.Predefine("SCREEN", 0)
	_, err := asm.Parse(strings.NewReader(""))
	assert.ErrorIs(err, ErrSymbolDuplicate)
}

func TestAssemblerEmptyLabel(t *testing.T) {
	assert := assert.New(t)

	// '()' is lexically a label; it binds the empty name, which no
	// operand can reference.
	asm := &Assembler{}
	prog := parseLines(t, asm, []string{"()", "@0"})
	assert.Equal(1, len(prog.Instructions))

	addr, err := asm.Symbols.Lookup("")
	assert.NoError(err)
	assert.Equal(0, addr)
}
