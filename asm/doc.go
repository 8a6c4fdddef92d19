// Package asm implements the simple assembler, a tiny register machine.
//
// A program is a list of text lines, one instruction per line. There are
// 26 registers, 'a' through 'z', each holding a signed 64-bit value, and
// four instructions:
//
//	mov x y   ; x = y, where y is a register or an integer
//	inc x     ; x = x + 1
//	dec x     ; x = x - 1
//	jnz x y   ; if x != 0, jump y instructions relative to this one
//
// Execution starts at the first line and stops when the program counter
// moves past the last line. Lines are parsed on first execution, and the
// parsed form is reused when a jump revisits the line.
//
// The Source loader adds comments, equates and $(...) expressions for
// assembly files; these are expanded before execution and are not part of
// the instruction language.
package asm
