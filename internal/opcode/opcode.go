// Package opcode is the catalog of JVM instruction opcodes.
//
// Every defined byte value maps to exactly one Opcode, and every Opcode carries
// a static operand Shape that tells the decoder how many bytes follow it.
// The mapping is a fixed table; there is no way to mutate it at runtime.
package opcode

import (
	"errors"
	"fmt"
)

// Opcode identifies a JVM instruction. Its numeric value is the encoded byte.
type Opcode byte

// ErrUnknown matches any *UnknownError.
var ErrUnknown = errors.New("unknown opcode")

// UnknownError is returned by Resolve for a byte with no defined opcode.
type UnknownError struct {
	Byte byte
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02x", e.Byte)
}

// Is lets errors.Is(err, ErrUnknown) match.
func (e *UnknownError) Is(target error) bool {
	return target == ErrUnknown
}

// Resolve maps a byte to its opcode.
func Resolve(b byte) (Opcode, error) {
	if catalog[b].Mnemonic == "" {
		return 0, &UnknownError{Byte: b}
	}
	return Opcode(b), nil
}

// Byte returns the encoded value of op.
func (op Opcode) Byte() byte {
	return byte(op)
}

// Defined reports whether op names a catalog entry.
func (op Opcode) Defined() bool {
	return catalog[op].Mnemonic != ""
}

// Info returns the catalog entry for op. Undefined opcodes return the zero Info.
func (op Opcode) Info() Info {
	return catalog[op]
}

// Mnemonic returns the lower-case assembler name, e.g. "iload".
func (op Opcode) Mnemonic() string {
	return catalog[op].Mnemonic
}

// Shape returns the static operand shape of op.
func (op Opcode) Shape() Shape {
	return catalog[op].Shape
}

// Category returns the instruction group op belongs to.
func (op Opcode) Category() Category {
	return catalog[op].Category
}

// String implements fmt.Stringer.
func (op Opcode) String() string {
	if m := catalog[op].Mnemonic; m != "" {
		return m
	}
	return fmt.Sprintf("UNKNOWN_%02X", byte(op))
}

// Lookup returns the opcode with the given mnemonic.
func Lookup(mnemonic string) (Opcode, bool) {
	op, ok := byMnemonic[mnemonic]
	return op, ok
}

// All returns every defined opcode in numeric order.
func All() []Opcode {
	ops := make([]Opcode, 0, Count)
	for b := 0; b < len(catalog); b++ {
		if catalog[b].Mnemonic != "" {
			ops = append(ops, Opcode(b))
		}
	}
	return ops
}

// Reserved reports whether b lies in the unassigned range between
// breakpoint and impdep1.
func Reserved(b byte) bool {
	return b > byte(Breakpoint) && b < byte(ImpDep1)
}
