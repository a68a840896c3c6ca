package decode

import (
	"encoding/binary"

	"jvmdis/internal/opcode"
)

// Padding returns the number of alignment bytes that follow a switch opcode
// at address, so that the 32-bit fields start on a multiple of four measured
// from the method start.
func Padding(address uint32) int {
	return int((4 - (address+1)%4) % 4)
}

// operandWidth returns the fixed operand length of shape, honouring wide, or
// -1 when the length has to be read from the stream.
func operandWidth(shape opcode.Shape, wide bool) int {
	if wide {
		return shape.WidenedLength()
	}
	return shape.FixedLength()
}

// OperandLength returns how many bytes follow op at address. For fixed
// shapes rest is not consulted. For the switch shapes rest must hold the
// bytes after the opcode; the header is read to size the table.
func OperandLength(op opcode.Opcode, address uint32, wide bool, rest []byte) (int, error) {
	shape := op.Shape()
	if wide && !shape.WideEligible() {
		return 0, ErrMisplacedWide
	}
	if n := operandWidth(shape, wide); n >= 0 {
		return n, nil
	}
	r := reader{code: rest}
	if _, err := readOperand(&r, op, address, wide); err != nil {
		return 0, err
	}
	return r.pos, nil
}

// readOperand decodes the payload of op, which sits at address, leaving r
// positioned after the last operand byte.
func readOperand(r *reader, op opcode.Opcode, address uint32, wide bool) (Operand, error) {
	shape := op.Shape()
	switch shape {
	case opcode.ShapeTableSwitch:
		return readTableSwitch(r, address)
	case opcode.ShapeLookupSwitch:
		return readLookupSwitch(r, address)
	}

	b, ok := r.take(operandWidth(shape, wide))
	if !ok {
		return nil, ErrTruncated
	}
	be := binary.BigEndian

	switch shape {
	case opcode.ShapeLocal:
		if wide {
			return LocalIndex{Index: be.Uint16(b)}, nil
		}
		return LocalIndex{Index: uint16(b[0])}, nil
	case opcode.ShapeIncrement:
		if wide {
			return Increment{Index: be.Uint16(b), Const: int16(be.Uint16(b[2:]))}, nil
		}
		return Increment{Index: uint16(b[0]), Const: int16(int8(b[1]))}, nil
	case opcode.ShapeByte:
		return Immediate{Value: int16(int8(b[0]))}, nil
	case opcode.ShapeShort:
		return Immediate{Value: int16(be.Uint16(b))}, nil
	case opcode.ShapeConst8:
		return ConstIndex{Index: uint16(b[0])}, nil
	case opcode.ShapeConst16:
		return ConstIndex{Index: be.Uint16(b)}, nil
	case opcode.ShapeBranch16:
		return Branch{Offset: int32(int16(be.Uint16(b)))}, nil
	case opcode.ShapeBranch32:
		return Branch{Offset: int32(be.Uint32(b))}, nil
	case opcode.ShapeArrayType:
		return ArrayType{Type: b[0]}, nil
	case opcode.ShapeInvokeInterface:
		return InvokeInterface{Index: be.Uint16(b), Count: b[2], Reserved: b[3]}, nil
	case opcode.ShapeInvokeDynamic:
		return InvokeDynamic{Index: be.Uint16(b), Reserved: be.Uint16(b[2:])}, nil
	case opcode.ShapeMultiANewArray:
		return MultiANewArray{Index: be.Uint16(b), Dimensions: b[2]}, nil
	}
	return NoOperand{}, nil
}

func readTableSwitch(r *reader, address uint32) (Operand, error) {
	if !r.skip(Padding(address)) {
		return nil, ErrTruncated
	}
	def, ok1 := r.s32()
	low, ok2 := r.s32()
	high, ok3 := r.s32()
	if !ok1 || !ok2 || !ok3 {
		return nil, ErrTruncated
	}
	if low > high {
		return nil, ErrInvalidSwitchRange
	}
	n := uint64(int64(high) - int64(low) + 1)
	if !r.has(n * 4) {
		return nil, ErrTruncated
	}
	offsets := make([]int32, n)
	for i := range offsets {
		offsets[i], _ = r.s32()
	}
	return TableSwitch{Default: def, Low: low, High: high, Offsets: offsets}, nil
}

func readLookupSwitch(r *reader, address uint32) (Operand, error) {
	if !r.skip(Padding(address)) {
		return nil, ErrTruncated
	}
	def, ok1 := r.s32()
	npairs, ok2 := r.u32()
	if !ok1 || !ok2 {
		return nil, ErrTruncated
	}
	if !r.has(uint64(npairs) * 8) {
		return nil, ErrTruncated
	}
	pairs := make([]MatchOffset, npairs)
	for i := range pairs {
		pairs[i].Match, _ = r.s32()
		pairs[i].Offset, _ = r.s32()
	}
	return LookupSwitch{Default: def, Pairs: pairs}, nil
}
