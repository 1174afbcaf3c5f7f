package hack

import (
	"fmt"
)

// compMap maps computation mnemonics to the a-bit plus 6-bit ALU code.
// Commutative forms of +, & and | are accepted under both spellings.
var compMap = map[string]string{
	"0":   "0101010",
	"1":   "0111111",
	"-1":  "0111010",
	"D":   "0001100",
	"A":   "0110000",
	"!D":  "0001101",
	"!A":  "0110001",
	"-D":  "0001111",
	"-A":  "0110011",
	"D+1": "0011111",
	"1+D": "0011111",
	"A+1": "0110111",
	"1+A": "0110111",
	"D-1": "0001110",
	"A-1": "0110010",
	"D+A": "0000010",
	"A+D": "0000010",
	"D-A": "0010011",
	"A-D": "0000111",
	"D&A": "0000000",
	"A&D": "0000000",
	"D|A": "0010101",
	"A|D": "0010101",
	"M":   "1110000",
	"!M":  "1110001",
	"-M":  "1110011",
	"M+1": "1110111",
	"1+M": "1110111",
	"M-1": "1110010",
	"D+M": "1000010",
	"M+D": "1000010",
	"D-M": "1010011",
	"M-D": "1000111",
	"D&M": "1000000",
	"M&D": "1000000",
	"D|M": "1010101",
	"M|D": "1010101",
}

// jumpMap maps jump mnemonics to the 3-bit jump code. The empty
// mnemonic is "never jump".
var jumpMap = map[string]string{
	"":    "000",
	"JGT": "001",
	"JEQ": "010",
	"JGE": "011",
	"JLT": "100",
	"JNE": "101",
	"JLE": "110",
	"JMP": "111",
}

// destBits holds the destination bit for each register; letter order
// within a dest field is insignificant.
var destBits = map[rune]int{
	'A': 0b100,
	'D': 0b010,
	'M': 0b001,
}

// destCode encodes a dest field as its 3-bit code string.
func destCode(dest string) (code string, err error) {
	var bits int
	for _, r := range dest {
		bit, ok := destBits[r]
		if !ok {
			err = ErrDestInvalid
			return
		}
		bits |= bit
	}

	code = fmt.Sprintf("%03b", bits)
	return
}

// EncodeA encodes an address-load instruction: the operand is resolved
// through the symbol table and rendered as a word with the most
// significant bit clear. With strict set, unknown symbols fail instead
// of allocating a variable.
func EncodeA(line Line, st *SymbolTable, strict bool) (word string, err error) {
	resolve := st.Resolve
	if strict {
		resolve = st.Lookup
	}

	addr, err := resolve(line.Operand)
	if err != nil {
		return
	}

	if addr >= 1<<(WordSize-1) {
		err = ErrValueRange(addr)
		return
	}

	word = ToWord(addr)
	return
}

// EncodeC encodes a compute instruction as
// 111 a cccccc ddd jjj
// from the fixed comp, dest and jump vocabularies.
func EncodeC(line Line) (word string, err error) {
	comp, ok := compMap[line.Comp]
	if !ok {
		err = ErrCompInvalid
		return
	}

	dest, err := destCode(line.Dest)
	if err != nil {
		return
	}

	jump, ok := jumpMap[line.Jump]
	if !ok {
		err = ErrJumpInvalid
		return
	}

	word = "111" + comp + dest + jump
	return
}
