// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/katas/internal"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":    "0",
	"REGISTERS": strconv.Itoa(REGISTER_COUNT),
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// Listing is a program loaded from assembly source.
type Listing struct {
	Lines  []string // Program lines, ready to Run.
	LineNo []int    // Source line number of each program line.
}

// SourceLine returns the source line number of a program index, or 0.
func (lst *Listing) SourceLine(index int) int {
	if index < 0 || index >= len(lst.LineNo) {
		return 0
	}
	return lst.LineNo[index]
}

// Locate returns the source line number of a Run error.
func (lst *Listing) Locate(err error) (lineno int, ok bool) {
	var syntaxErr *ErrSyntax
	var runtimeErr *ErrRuntime

	switch {
	case errors.As(err, &syntaxErr):
		lineno = lst.SourceLine(syntaxErr.LineNo)
	case errors.As(err, &runtimeErr):
		lineno = lst.SourceLine(runtimeErr.LineNo)
	}

	ok = lineno != 0
	return
}

// Source loads assembly files. Beyond the instruction language it accepts:
//
//	; comment             ; everything after ';' is ignored
//	.equ NAME VALUE       ; replace the word NAME with VALUE
//	$(expr)               ; replaced by the integer value of expr
//
// Blank lines are dropped.
type Source struct {
	Verbose bool              // If set, verbosely logs the loader actions.
	Equate  map[string]string // Map of equates.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate.
func (src *Source) Predefine(equ string, value string) {
	if src.predefine == nil {
		src.predefine = map[string]string{equ: value}
	} else {
		src.predefine[equ] = value
	}
}

// parenEval does load-time $(...) evaluations
func (src *Source) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range src.Equate {
		v64, _err := strconv.ParseInt(str, 0, 64)
		if _err != nil {
			// Ignore non-integer equates. They may be registers.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine expands a single source line into program words.
func (src *Source) parseLine(line string, lineno int) (words []string, err error) {
	src.Equate["LINENO"] = strconv.Itoa(lineno)

	// Do $() evaluations
	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := src.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return strconv.FormatInt(value, 10)
	})
	if err != nil {
		return
	}

	words = slices.Collect(internal.Words(line))
	if len(words) == 0 {
		return
	}

	// .equ NAME VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := src.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		src.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := src.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// Load reads an input stream into a program listing.
func (src *Source) Load(input io.Reader) (lst *Listing, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSource{LineNo: lineno, Line: line, Err: err}
		}
	}()

	src.Equate = maps.Clone(sysEquate)
	maps.Copy(src.Equate, src.predefine)

	lst = &Listing{}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if src.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, _, _ = strings.Cut(text, ";")
		line = strings.TrimSpace(line)

		var words []string
		words, err = src.parseLine(line, lineno)
		if err != nil {
			return
		}
		if len(words) == 0 {
			continue
		}

		lst.Lines = append(lst.Lines, strings.Join(words, " "))
		lst.LineNo = append(lst.LineNo, lineno)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if src.Verbose {
		log.Printf("asm: loaded %v lines", len(lst.Lines))
	}

	return
}

// String returns the listing with source line numbers.
func (lst *Listing) String() (text string) {
	for n, line := range lst.Lines {
		text += fmt.Sprintf("%4d: %v\n", lst.LineNo[n], line)
	}
	return
}
