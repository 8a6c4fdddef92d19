package asm

import (

	"github.com/ezrec/katas/translate"
)

var f = translate.From

var (
	// Parse errors
	ErrEmptyLine       = translate.Error("empty line")
	ErrMnemonicUnknown = translate.Error("mnemonic unknown")
	ErrOperandMissing  = translate.Error("operand missing")
	ErrRegisterInvalid = translate.Error("bad register, requires single ascii lowercase letter")
	ErrTrailingGarbage = translate.Error("trailing garbage")

	// Runtime errors
	ErrRegisterUninitialized = translate.Error("register uninitialized")
	ErrOperandKind           = translate.Error("wrong operand kind")
	ErrPcRange               = translate.Error("program counter out of range")
	ErrStepBudget            = translate.Error("step budget exhausted")
	ErrInstructionInvalid    = translate.Error("instruction invalid")

	// Source errors
	ErrEquateSyntax    = translate.Error(".equ syntax")
	ErrEquateDuplicate = translate.Error(".equ duplicated")
)

// ErrToken names the token a parse error was found at.
type ErrToken struct {
	Token string
	Err   error
}

func (err *ErrToken) Error() string {
	return f("'%v' %v", err.Token, err.Err)
}

func (err *ErrToken) Unwrap() error {
	return err.Err
}

// ErrSyntax indicates a line of the program that could not be parsed.
// LineNo is the 0-based index of the line in the program.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrSource indicates a line of an assembly source file that could not be
// loaded. LineNo is the 1-based line number in the file.
type ErrSource struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSource) Error() string {
	return f("source line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSource) Unwrap() error {
	return err.Err
}

// ErrRuntime indicates the program line that failed during execution.
type ErrRuntime struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

type ErrRegister Register

func (err ErrRegister) Error() string {
	return f("register '%v' uninitialized", Register(err).String())
}

func (err ErrRegister) Unwrap() error {
	return ErrRegisterUninitialized
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
