package asm

import (
	"slices"
	"strconv"

	"github.com/ezrec/katas/internal"
)

// ParseRegister parses a register name token.
func ParseRegister(token string) (reg Register, err error) {
	if len(token) == 1 && Register(token[0]).Valid() {
		reg = Register(token[0])
		return
	}

	err = &ErrToken{Token: token, Err: ErrRegisterInvalid}
	return
}

// ParseOperand parses a token as a signed decimal Immediate, or failing
// that, as a Register.
func ParseOperand(token string) (op Operand, err error) {
	v64, err := strconv.ParseInt(token, 10, 64)
	if err == nil {
		op = Immediate(v64)
		return
	}

	reg, err := ParseRegister(token)
	if err != nil {
		return
	}

	op = reg
	return
}

// lineParser consumes the words of a single line.
type lineParser struct {
	words []string
}

// next returns the next word, or ErrOperandMissing at end of line.
func (lp *lineParser) next() (word string, err error) {
	if len(lp.words) == 0 {
		err = &ErrToken{Err: ErrOperandMissing}
		return
	}

	word = lp.words[0]
	lp.words = lp.words[1:]
	return
}

func (lp *lineParser) register() (reg Register, err error) {
	word, err := lp.next()
	if err != nil {
		return
	}

	return ParseRegister(word)
}

func (lp *lineParser) operand() (op Operand, err error) {
	word, err := lp.next()
	if err != nil {
		return
	}

	return ParseOperand(word)
}

// ParseLine parses a single line of whitespace separated words into an
// Instruction.
func ParseLine(line string) (inst Instruction, err error) {
	lp := &lineParser{words: slices.Collect(internal.Words(line))}

	if len(lp.words) == 0 {
		err = ErrEmptyLine
		return
	}

	word, _ := lp.next()
	mnemonic, ok := mnemonicMap[word]
	if !ok {
		err = &ErrToken{Token: word, Err: ErrMnemonicUnknown}
		return
	}

	switch mnemonic {
	case MOV:
		op := &Mov{}
		op.Dst, err = lp.register()
		if err != nil {
			return
		}
		op.Src, err = lp.operand()
		if err != nil {
			return
		}
		inst = op
	case INC:
		op := &Inc{}
		op.Dst, err = lp.register()
		if err != nil {
			return
		}
		inst = op
	case DEC:
		op := &Dec{}
		op.Dst, err = lp.register()
		if err != nil {
			return
		}
		inst = op
	case JNZ:
		op := &Jnz{}
		op.Cond, err = lp.operand()
		if err != nil {
			return
		}
		op.Offset, err = lp.operand()
		if err != nil {
			return
		}
		inst = op
	}

	if len(lp.words) != 0 {
		inst = nil
		err = &ErrToken{Token: lp.words[0], Err: ErrTrailingGarbage}
		return
	}

	return
}
