package hack

import (
	"regexp"
	"strings"
)

// LineKind is the lexical category of a source line.
type LineKind int

//go:generate go tool stringer -linecomment -type=LineKind
const (
	LineWhitespace = LineKind(0) // whitespace
	LineComment    = LineKind(1) // comment
	LineLabel      = LineKind(2) // label
	LineAInstr     = LineKind(3) // a-instr
	LineCInstr     = LineKind(4) // c-instr
)

// Line is one classified source line. The fields beyond Kind are only
// meaningful for the kind that produced them.
type Line struct {
	Kind    LineKind
	Label   string // Label name, for LineLabel.
	Operand string // Address literal or symbol, for LineAInstr.
	Dest    string // Destination registers, for LineCInstr.
	Comp    string // Computation mnemonic, for LineCInstr.
	Jump    string // Jump mnemonic, for LineCInstr.
}

var (
	reLabel  = regexp.MustCompile(`^\(([^)]*)\)$`)
	reAInstr = regexp.MustCompile(`^@([0-9A-Za-z_.$:]+)$`)
	reCInstr = regexp.MustCompile(`^(?:([AMD]+)=)?([AMD01+\-!&|]+)(?:;([A-Z]+))?$`)
)

// StripComment removes a trailing //-comment and surrounding whitespace.
// A line that is only a comment reduces to the empty string.
func StripComment(line string) string {
	if n := strings.Index(line, "//"); n >= 0 {
		line = line[:n]
	}
	return strings.TrimSpace(line)
}

// Classify determines the lexical category of one raw source line.
// Inline comments are stripped before matching; whitespace around the
// '=' and ';' of a C-instruction is insignificant. Lines that fit no
// category return an ErrLineInvalid.
func Classify(text string) (line Line, err error) {
	stripped := StripComment(text)

	if stripped == "" {
		if strings.HasPrefix(strings.TrimSpace(text), "//") {
			line.Kind = LineComment
		} else {
			line.Kind = LineWhitespace
		}
		return
	}

	if m := reLabel.FindStringSubmatch(stripped); m != nil {
		line.Kind = LineLabel
		line.Label = m[1]
		return
	}

	if m := reAInstr.FindStringSubmatch(stripped); m != nil {
		line.Kind = LineAInstr
		line.Operand = m[1]
		return
	}

	packed := strings.Join(strings.Fields(stripped), "")
	if m := reCInstr.FindStringSubmatch(packed); m != nil {
		line.Kind = LineCInstr
		line.Dest = m[1]
		line.Comp = m[2]
		line.Jump = m[3]
		return
	}

	err = ErrLineInvalid(stripped)
	return
}
