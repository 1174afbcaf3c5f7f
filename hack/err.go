package hack

import (
	"errors"

	"github.com/hack16/hasm/translate"
)

var f = translate.From

var (
	// Symbol table errors
	ErrRAMExhausted    = errors.New(f("no free RAM address left"))
	ErrSymbolDuplicate = errors.New(f("symbol duplicated"))

	// Encoder errors
	ErrDestInvalid = errors.New(f("dest invalid"))
	ErrCompInvalid = errors.New(f("comp invalid"))
	ErrJumpInvalid = errors.New(f("jump invalid"))
)

// ErrLineInvalid reports a line the classifier cannot categorize.
type ErrLineInvalid string

func (err ErrLineInvalid) Error() string {
	return f("'%v' is not an instruction", string(err))
}

// ErrParseNumber reports a word that is not a non-negative decimal numeral.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrSymbolUndeclared reports a symbol reference with no binding, in
// lookup-only mode.
type ErrSymbolUndeclared string

func (err ErrSymbolUndeclared) Error() string {
	return f("symbol '%v' undeclared", string(err))
}

// ErrValueRange reports an operand that does not fit in a machine word.
type ErrValueRange int

func (err ErrValueRange) Error() string {
	return f("value %v exceeds 16 bits", int(err))
}

// ErrParseExpression reports an invalid $(...) expression.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax wraps any assembly error with its source position.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
