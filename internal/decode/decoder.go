// Package decode turns a method's code region into instruction records.
//
// Decoding is a pure function of the code bytes and the base address of the
// region within its method. One region is decoded strictly in order, since
// every address and the wide prefix state depend on what came before; separate
// regions can be decoded concurrently without coordination.
package decode

import (
	"io"

	"github.com/charmbracelet/log"

	"jvmdis/internal/opcode"
)

// Instruction is one decoded instruction.
type Instruction struct {
	Address uint32 // method-relative address of the opcode byte
	Opcode  opcode.Opcode
	Wide    bool // operands were read in widened form
	Length  int  // opcode byte plus operand bytes, padding included
	Operand Operand
}

// End returns the address just past the instruction.
func (in Instruction) End() uint32 {
	return in.Address + uint32(in.Length)
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger traces every decoded instruction at debug level.
func WithLogger(lg *log.Logger) Option {
	return func(d *Decoder) {
		d.logger = lg
	}
}

// Decoder walks a code region one instruction at a time.
type Decoder struct {
	code   []byte
	base   uint32
	pos    int
	wide   widePrefix
	err    error
	logger *log.Logger
}

// NewDecoder returns a decoder for code, whose first byte sits at base
// within its method. code is never written to.
func NewDecoder(code []byte, base uint32, opts ...Option) *Decoder {
	d := &Decoder{code: code, base: base}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Address returns the address of the next instruction.
func (d *Decoder) Address() uint32 {
	return d.base + uint32(d.pos)
}

// Next decodes the instruction at the cursor. It returns io.EOF once the
// cursor sits exactly at the end of the region. Any other error is final and
// is returned again by later calls.
func (d *Decoder) Next() (Instruction, error) {
	if d.err != nil {
		return Instruction{}, d.err
	}
	if d.pos == len(d.code) {
		if d.wide.pending() {
			return d.fail(&Error{Address: d.wide.at, Opcode: opcode.Wide.Byte(), Err: ErrTruncated})
		}
		return Instruction{}, io.EOF
	}

	addr := d.Address()
	b := d.code[d.pos]
	op, err := opcode.Resolve(b)
	if err != nil {
		return d.fail(&Error{Address: addr, Opcode: b, Err: err})
	}
	widened, err := d.wide.apply(op)
	if err != nil {
		return d.fail(&Error{Address: addr, Opcode: b, Err: err})
	}

	r := reader{code: d.code, pos: d.pos + 1}
	operand, err := readOperand(&r, op, addr, widened)
	if err != nil {
		return d.fail(&Error{Address: addr, Opcode: b, Err: err})
	}
	if op == opcode.Wide {
		d.wide.arm(addr)
	}

	in := Instruction{
		Address: addr,
		Opcode:  op,
		Wide:    widened,
		Length:  r.pos - d.pos,
		Operand: operand,
	}
	d.pos = r.pos

	if d.logger != nil {
		d.logger.Debug("decoded", "addr", in.Address, "op", op, "len", in.Length, "wide", in.Wide, "state", d.wide.state)
	}
	return in, nil
}

func (d *Decoder) fail(err *Error) (Instruction, error) {
	d.err = err
	if d.logger != nil {
		d.logger.Debug("decode failed", "addr", err.Address, "opcode", err.Opcode, "err", err.Err)
	}
	return Instruction{}, err
}

// Decode decodes the whole region. On error no records are returned.
func Decode(code []byte, base uint32, opts ...Option) ([]Instruction, error) {
	d := NewDecoder(code, base, opts...)
	// Most instructions are one to three bytes long.
	out := make([]Instruction, 0, len(code)/2+1)
	for {
		in, err := d.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
}
