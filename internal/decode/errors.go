package decode

import (
	"errors"
	"fmt"

	"jvmdis/internal/opcode"
)

var (
	// ErrUnknownOpcode matches a byte with no catalog entry.
	ErrUnknownOpcode = opcode.ErrUnknown
	// ErrTruncated means fewer bytes remain than the operand shape requires.
	ErrTruncated = errors.New("truncated instruction")
	// ErrInvalidSwitchRange means a tableswitch low bound exceeds its high bound.
	ErrInvalidSwitchRange = errors.New("invalid tableswitch range")
	// ErrMisplacedWide means a wide prefix precedes an opcode it cannot widen.
	ErrMisplacedWide = errors.New("misplaced wide prefix")
)

// Error reports where a decode failed. Err is one of the sentinels above or
// an *opcode.UnknownError.
type Error struct {
	Address uint32
	Opcode  byte
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("decode at %d (opcode 0x%02x): %v", e.Address, e.Opcode, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
