package asm

import (
	"fmt"
	"iter"
)

// Registers is the register file. A register is uninitialized until it
// is first written.
type Registers struct {
	Value [REGISTER_COUNT]int64
	valid uint32
}

// Reset marks all registers uninitialized.
func (regs *Registers) Reset() {
	clear(regs.Value[:])
	regs.valid = 0
}

// Valid reports whether the register has been written.
func (regs *Registers) Valid(r Register) bool {
	return r.Valid() && (regs.valid&(1<<r.Index())) != 0
}

// Get reads a register.
func (regs *Registers) Get(r Register) (value int64, err error) {
	if !regs.Valid(r) {
		err = ErrRegister(r)
		return
	}

	value = regs.Value[r.Index()]
	return
}

// Set writes a register, initializing it if needed.
func (regs *Registers) Set(r Register, value int64) (err error) {
	if !r.Valid() {
		err = &ErrToken{Token: r.String(), Err: ErrRegisterInvalid}
		return
	}

	regs.Value[r.Index()] = value
	regs.valid |= 1 << r.Index()
	return
}

// Add adds delta to an initialized register.
func (regs *Registers) Add(r Register, delta int64) (err error) {
	value, err := regs.Get(r)
	if err != nil {
		return
	}

	return regs.Set(r, value+delta)
}

// All iterates over the initialized registers in name order.
func (regs *Registers) All() iter.Seq2[Register, int64] {
	return func(yield func(r Register, value int64) bool) {
		for n := range REGISTER_COUNT {
			r := Register('a' + n)
			if !regs.Valid(r) {
				continue
			}
			if !yield(r, regs.Value[n]) {
				return
			}
		}
	}
}

// Map returns the initialized registers keyed by name.
func (regs *Registers) Map() (values map[string]int64) {
	values = make(map[string]int64, REGISTER_COUNT)
	for r, value := range regs.All() {
		values[r.String()] = value
	}
	return
}

// String returns the initialized registers, one per line.
func (regs *Registers) String() (text string) {
	for r, value := range regs.All() {
		text += fmt.Sprintf("% 5s: %d\n", r, value)
	}
	return
}
