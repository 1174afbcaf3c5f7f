package hack

import (
	"fmt"
	"strconv"
)

// WordSize is the machine word width in bits.
const WordSize = 16

// ToWord renders a non-negative value as its unsigned binary string,
// left-padded with '0' to at least WordSize characters. Values that do
// not fit in 16 bits produce a wider string rather than truncating;
// callers that require a 16-bit word must reject the overflow.
func ToWord(value int) string {
	return fmt.Sprintf("%0*b", WordSize, value)
}

// ParseWord converts a decimal numeral to its machine word via ToWord.
func ParseWord(text string) (word string, err error) {
	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		err = ErrParseNumber(text)
		return
	}

	word = ToWord(int(value))
	return
}

// DecodeWord parses a binary word string back into its value.
func DecodeWord(word string) (value uint16, err error) {
	v64, err := strconv.ParseUint(word, 2, WordSize)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint16(v64)
	return
}
