package asm

import (
	"strconv"
)

// REGISTER_COUNT is the number of registers, 'a' through 'z'.
const REGISTER_COUNT = 26

// Operand is an instruction argument: a Register or an Immediate.
type Operand interface {
	// Value returns the operand value in the register file.
	Value(regs *Registers) (value int64, err error)
	String() string
	operand()
}

// Register is a register name, a single lowercase ASCII letter.
type Register byte

var _ Operand = Register('a')

// Valid reports whether the register is in 'a'..'z'.
func (r Register) Valid() bool {
	return r >= 'a' && r <= 'z'
}

// Index of the register in the register file.
func (r Register) Index() int {
	return int(r - 'a')
}

func (r Register) String() string {
	return string(rune(r))
}

// Value returns the current register value, or ErrRegisterUninitialized.
func (r Register) Value(regs *Registers) (value int64, err error) {
	return regs.Get(r)
}

func (r Register) operand() {}

// Immediate is an integer literal operand.
type Immediate int64

var _ Operand = Immediate(0)

func (imm Immediate) String() string {
	return strconv.FormatInt(int64(imm), 10)
}

// Value of an immediate is itself.
func (imm Immediate) Value(regs *Registers) (value int64, err error) {
	value = int64(imm)
	return
}

func (imm Immediate) operand() {}
