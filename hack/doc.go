// Package hack implements an assembler for the Hack 16-bit computer.
//
// The Hack machine has two registers (A and D), a memory-addressed
// third operand (M), 32K of instruction ROM and 16K of general RAM
// followed by memory-mapped screen and keyboard. Each instruction is
// one 16-bit word: an A-instruction loads a 15-bit constant or address
// into A, while a C-instruction computes an ALU expression, stores the
// result in any subset of A/D/M, and optionally jumps.
//
// The assembler is a classic two-pass translator: pass one binds label
// declarations to instruction addresses, pass two encodes every
// instruction to its binary word, allocating RAM cells for variables
// on first use. A small executor for the assembled words is included
// for behavioral verification.
package hack
