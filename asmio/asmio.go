// Package asmio holds the file-side collaborators of the assembler:
// filename derivation, line reading, transform batching and
// all-or-nothing output writing.
package asmio

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/hack16/hasm/hack"
)

// DefaultExt is the output extension used when none is given.
const DefaultExt = "hack"

// Filenames derives the (input, output) file pair. An explicit output
// is used verbatim; otherwise the input's extension is replaced with
// ext, or with DefaultExt when ext is empty.
func Filenames(input, output, ext string) (string, string) {
	if output != "" {
		return input, output
	}

	if ext == "" {
		ext = DefaultExt
	}

	base := strings.TrimSuffix(input, filepath.Ext(input))
	return input, base + "." + ext
}

// Apply threads each value through every transform in order, first
// transform first, and returns the transformed sequence in original
// order.
func Apply[T any](transforms []func(T) T, data []T) (out []T) {
	out = make([]T, 0, len(data))
	for _, value := range data {
		for _, transform := range transforms {
			value = transform(value)
		}
		out = append(out, value)
	}

	return
}

// ReadLines reads a text file fully into its lines.
func ReadLines(path string) (lines []string, err error) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		lines = nil
	}

	return
}

// WriteProgram writes an assembled program to path, one word per line.
// The file only appears once assembly has fully succeeded; a failed
// write removes the partial file.
func WriteProgram(path string, prog *hack.Program) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return
	}

	_, err = prog.WriteTo(file)

	cerr := file.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
	}

	return
}
