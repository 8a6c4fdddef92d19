package asm

import (
	"fmt"
)

// Mnemonic is the instruction name.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	MOV = Mnemonic(0) // mov
	INC = Mnemonic(1) // inc
	DEC = Mnemonic(2) // dec
	JNZ = Mnemonic(3) // jnz
)

// mnemonicMap maps instruction names to mnemonics.
var mnemonicMap = map[string]Mnemonic{
	"mov": MOV,
	"inc": INC,
	"dec": DEC,
	"jnz": JNZ,
}

// Instruction is one parsed program line: Mov, Inc, Dec or Jnz.
type Instruction interface {
	Mnemonic() Mnemonic
	String() string
}

// Mov writes Src into Dst.
type Mov struct {
	Dst Register
	Src Operand
}

// Inc adds one to Dst.
type Inc struct {
	Dst Register
}

// Dec subtracts one from Dst.
type Dec struct {
	Dst Register
}

// Jnz moves the program counter by Offset when Cond is not zero.
type Jnz struct {
	Cond   Operand
	Offset Operand
}

var (
	_ Instruction = (*Mov)(nil)
	_ Instruction = (*Inc)(nil)
	_ Instruction = (*Dec)(nil)
	_ Instruction = (*Jnz)(nil)
)

func (op *Mov) Mnemonic() Mnemonic { return MOV }
func (op *Inc) Mnemonic() Mnemonic { return INC }
func (op *Dec) Mnemonic() Mnemonic { return DEC }
func (op *Jnz) Mnemonic() Mnemonic { return JNZ }

func (op *Mov) String() string {
	return fmt.Sprintf("%v %v %v", op.Mnemonic(), op.Dst, op.Src)
}

func (op *Inc) String() string {
	return fmt.Sprintf("%v %v", op.Mnemonic(), op.Dst)
}

func (op *Dec) String() string {
	return fmt.Sprintf("%v %v", op.Mnemonic(), op.Dst)
}

func (op *Jnz) String() string {
	return fmt.Sprintf("%v %v %v", op.Mnemonic(), op.Cond, op.Offset)
}
