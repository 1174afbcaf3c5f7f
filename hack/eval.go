package hack

import (
	"fmt"
	"regexp"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var reExpr = regexp.MustCompile(`\$\([^$]*\)`)

// evalExpr does compile-time $(...) evaluations. Every symbol bound in
// the table at expansion time is available as an integer variable.
func (asm *Assembler) evalExpr(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{}
	for name, addr := range asm.Symbols.All() {
		pred[name] = starlark.MakeInt(addr)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 {
		err = ErrParseExpression(expr)
		return
	}

	value = int(st_int64)
	return
}

// expandExpr rewrites every $(...) span in a line into the decimal
// value of the enclosed expression. Expansion happens before
// classification, so the expanded text must fit the line grammar.
func (asm *Assembler) expandExpr(line string) (out string, err error) {
	out = reExpr.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.evalExpr(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	return
}
