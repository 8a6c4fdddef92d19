// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"log"
)

// Machine is the execution state of a single program run.
type Machine struct {
	Verbose bool // If set, logs each executed instruction.
	Budget  int  // Maximum instructions to execute, or 0 for no limit.

	Pc        int       // Program counter.
	Steps     int       // Instructions executed since Reset.
	Registers Registers // Register file.

	program []string      // Program text, one instruction per line.
	parsed  []Instruction // Instructions parsed so far, by line.
}

// NewMachine creates a machine for a program.
func NewMachine(program []string) (vm *Machine) {
	vm = &Machine{
		program: program,
	}

	vm.Reset()

	return
}

// Reset the machine to the start of its program with an empty register
// file and parse cache.
func (vm *Machine) Reset() {
	if vm.Verbose {
		log.Printf("asm: reset")
	}

	vm.Pc = 0
	vm.Steps = 0
	vm.Registers.Reset()
	vm.parsed = make([]Instruction, len(vm.program))
}

// Len returns the number of program lines.
func (vm *Machine) Len() int {
	return len(vm.program)
}

// Done reports whether the program counter has moved past the last line.
func (vm *Machine) Done() bool {
	return vm.Pc >= len(vm.program)
}

// Instruction returns the parsed instruction at a line, parsing it on
// first use.
func (vm *Machine) Instruction(pc int) (inst Instruction, err error) {
	if pc < 0 || pc >= len(vm.program) {
		err = ErrPcRange
		return
	}

	inst = vm.parsed[pc]
	if inst != nil {
		return
	}

	inst, err = ParseLine(vm.program[pc])
	if err != nil {
		err = &ErrSyntax{LineNo: pc, Line: vm.program[pc], Err: err}
		return
	}

	vm.parsed[pc] = inst
	return
}

// Tick executes a single instruction.
func (vm *Machine) Tick() (done bool, err error) {
	if vm.Done() {
		done = true
		return
	}

	if vm.Budget > 0 && vm.Steps >= vm.Budget {
		err = ErrStepBudget
		return
	}

	inst, err := vm.Instruction(vm.Pc)
	if err != nil {
		return
	}

	pc := vm.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: pc, Line: vm.program[pc], Err: err}
		}
	}()

	if vm.Verbose {
		log.Printf("%03d: %v", vm.Pc, inst)
	}

	err = vm.Execute(inst)
	if err != nil {
		return
	}

	vm.Steps++
	done = vm.Done()

	return
}

// Execute executes a decoded instruction at the current program counter.
func (vm *Machine) Execute(inst Instruction) (err error) {
	next_pc := vm.Pc + 1

	switch op := inst.(type) {
	case *Mov:
		var value int64
		err = target(op.Dst)
		if err != nil {
			return
		}
		value, err = op.Src.Value(&vm.Registers)
		if err != nil {
			return
		}
		err = vm.Registers.Set(op.Dst, value)
	case *Inc:
		err = target(op.Dst)
		if err != nil {
			return
		}
		err = vm.Registers.Add(op.Dst, 1)
	case *Dec:
		err = target(op.Dst)
		if err != nil {
			return
		}
		err = vm.Registers.Add(op.Dst, -1)
	case *Jnz:
		var cond, offset int64
		cond, err = op.Cond.Value(&vm.Registers)
		if err != nil {
			return
		}
		if cond == 0 {
			break
		}
		offset, err = op.Offset.Value(&vm.Registers)
		if err != nil {
			return
		}
		next_pc, err = vm.jump(offset)
	default:
		err = ErrInstructionInvalid
	}
	if err != nil {
		return
	}

	vm.Pc = next_pc

	return
}

// target checks that an instruction destination is a register.
func target(r Register) (err error) {
	if !r.Valid() {
		err = &ErrToken{Token: r.String(), Err: ErrOperandKind}
	}
	return
}

// jump returns the program counter offset from the current one. Anything
// at or past the end of the program is clamped to the end.
func (vm *Machine) jump(offset int64) (pc int, err error) {
	end := int64(len(vm.program))
	cur := int64(vm.Pc)

	switch {
	case offset < 0 && cur+offset < 0:
		err = ErrPcRange
	case offset > 0 && offset >= end-cur:
		pc = len(vm.program)
	default:
		pc = int(cur + offset)
	}

	return
}

// Run executes until the program counter moves past the last line and
// returns the written registers.
//
// If the step budget is exhausted, the registers at that point are
// returned along with ErrStepBudget.
func (vm *Machine) Run() (regs map[string]int64, err error) {
	for done := vm.Done(); !done; {
		done, err = vm.Tick()
		if err != nil {
			break
		}
	}

	regs = vm.Registers.Map()
	return
}

// String returns the machine state.
func (vm *Machine) String() (text string) {
	text = fmt.Sprintf("% 5s: %d\n", "pc", vm.Pc)
	text += fmt.Sprintf("% 5s: %d\n", "steps", vm.Steps)
	text += vm.Registers.String()
	return
}

// Run executes a program and returns the final value of every register
// written to.
func Run(program []string) (regs map[string]int64, err error) {
	return RunBudget(program, 0)
}

// RunBudget is Run, limited to budget instructions. A budget of 0 is
// unlimited.
func RunBudget(program []string, budget int) (regs map[string]int64, err error) {
	vm := NewMachine(program)
	vm.Budget = budget

	return vm.Run()
}
