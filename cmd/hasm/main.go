package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/hack16/hasm/asmio"
	"github.com/hack16/hasm/hack"
)

// defineFlag collects repeated -D SYMBOL=ADDRESS arguments.
type defineFlag map[string]int

func (df defineFlag) String() string {
	return ""
}

func (df defineFlag) Set(arg string) (err error) {
	name, value, ok := strings.Cut(arg, "=")
	if !ok {
		return fmt.Errorf("expected SYMBOL=ADDRESS, got %q", arg)
	}

	addr, err := strconv.Atoi(value)
	if err != nil {
		return err
	}

	df[name] = addr
	return
}

func main() {
	var output string
	var ext string
	var strict bool
	var expand bool
	var verbose bool
	defines := defineFlag{}

	flag.StringVar(&output, "o", "", "Output file (default: input with extension replaced)")
	flag.StringVar(&ext, "e", asmio.DefaultExt, "Default output extension")
	flag.BoolVar(&strict, "s", false, "Fail on undeclared symbols instead of allocating variables")
	flag.BoolVar(&expand, "x", false, "Expand $(...) expressions before assembly")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Var(&defines, "D", "Predefine SYMBOL=ADDRESS (repeatable)")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one input file, got: %v", os.Args[0], flag.Args())
	}

	input, output := asmio.Filenames(flag.Arg(0), output, ext)

	lines, err := asmio.ReadLines(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	lines = asmio.Apply([]func(string) string{
		func(line string) string { return strings.TrimRight(line, " \t") },
	}, lines)

	asm := &hack.Assembler{
		Verbose: verbose,
		Strict:  strict,
		Expand:  expand,
	}
	for name, addr := range defines {
		asm.Predefine(name, addr)
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	err = asmio.WriteProgram(output, prog)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
