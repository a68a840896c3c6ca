package decode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"jvmdis/internal/opcode"
)

var (
	// ErrAddressMismatch means a record's address does not follow its predecessor.
	ErrAddressMismatch = errors.New("address does not match encoded offset")
	// ErrOperandMismatch means a record's payload does not fit its opcode's shape.
	ErrOperandMismatch = errors.New("operand does not match opcode shape")
)

// Builder assembles a code region. Switch padding is computed from the
// builder's base address, the same way the decoder measures it.
type Builder struct {
	base        uint32
	bytes       []byte
	widePending bool // last appended record was wide
}

// NewBuilder returns a builder whose first byte sits at base.
func NewBuilder(base uint32) *Builder {
	return &Builder{base: base, bytes: make([]byte, 0, 64)}
}

// Bytes returns the assembled code.
func (b *Builder) Bytes() []byte {
	return b.bytes
}

// Address returns the address the next instruction will get.
func (b *Builder) Address() uint32 {
	return b.base + uint32(len(b.bytes))
}

// Emit appends an opcode with no operands.
func (b *Builder) Emit(op opcode.Opcode) {
	b.bytes = append(b.bytes, op.Byte())
}

// EmitRaw appends raw bytes.
func (b *Builder) EmitRaw(data ...byte) {
	b.bytes = append(b.bytes, data...)
}

// EmitLocal appends a local variable instruction, adding a wide prefix when
// index does not fit in one byte.
func (b *Builder) EmitLocal(op opcode.Opcode, index uint16) {
	if index > math.MaxUint8 {
		b.bytes = append(b.bytes, opcode.Wide.Byte(), op.Byte())
		b.bytes = binary.BigEndian.AppendUint16(b.bytes, index)
		return
	}
	b.bytes = append(b.bytes, op.Byte(), byte(index))
}

// EmitIInc appends iinc, widened when either operand needs it.
func (b *Builder) EmitIInc(index uint16, delta int16) {
	if index > math.MaxUint8 || delta < math.MinInt8 || delta > math.MaxInt8 {
		b.bytes = append(b.bytes, opcode.Wide.Byte(), opcode.IInc.Byte())
		b.bytes = binary.BigEndian.AppendUint16(b.bytes, index)
		b.bytes = binary.BigEndian.AppendUint16(b.bytes, uint16(delta))
		return
	}
	b.bytes = append(b.bytes, opcode.IInc.Byte(), byte(index), byte(int8(delta)))
}

// EmitUint16 appends an opcode with a 16-bit operand.
func (b *Builder) EmitUint16(op opcode.Opcode, v uint16) {
	b.bytes = append(b.bytes, op.Byte())
	b.bytes = binary.BigEndian.AppendUint16(b.bytes, v)
}

// EmitBranch appends a 16- or 32-bit branch depending on op.
func (b *Builder) EmitBranch(op opcode.Opcode, offset int32) {
	b.bytes = append(b.bytes, op.Byte())
	if op.Shape() == opcode.ShapeBranch32 {
		b.bytes = binary.BigEndian.AppendUint32(b.bytes, uint32(offset))
		return
	}
	b.bytes = binary.BigEndian.AppendUint16(b.bytes, uint16(int16(offset)))
}

// EmitTableSwitch appends a tableswitch covering low..low+len(offsets)-1.
func (b *Builder) EmitTableSwitch(def, low int32, offsets []int32) {
	high := low + int32(len(offsets)) - 1
	b.emitSwitchHeader(opcode.TableSwitch)
	b.bytes = appendInt32s(b.bytes, def, low, high)
	b.bytes = appendInt32s(b.bytes, offsets...)
}

// EmitLookupSwitch appends a lookupswitch with pairs in the given order.
func (b *Builder) EmitLookupSwitch(def int32, pairs []MatchOffset) {
	b.emitSwitchHeader(opcode.LookupSwitch)
	b.bytes = appendInt32s(b.bytes, def, int32(len(pairs)))
	for _, p := range pairs {
		b.bytes = appendInt32s(b.bytes, p.Match, p.Offset)
	}
}

func (b *Builder) emitSwitchHeader(op opcode.Opcode) {
	addr := b.Address()
	b.bytes = append(b.bytes, op.Byte())
	for i := 0; i < Padding(addr); i++ {
		b.bytes = append(b.bytes, 0)
	}
}

func appendInt32s(buf []byte, vs ...int32) []byte {
	for _, v := range vs {
		buf = binary.BigEndian.AppendUint32(buf, uint32(v))
	}
	return buf
}

// Append re-encodes one decoded record. A widened record is expected to
// follow its own wide record, which Append emits as a single byte.
func (b *Builder) Append(in Instruction) error {
	if in.Address != b.Address() {
		return fmt.Errorf("%s at %d, expected %d: %w", in.Opcode, in.Address, b.Address(), ErrAddressMismatch)
	}
	if !in.Opcode.Defined() {
		return &Error{Address: in.Address, Opcode: in.Opcode.Byte(), Err: &opcode.UnknownError{Byte: in.Opcode.Byte()}}
	}
	if in.Wide != b.widePending || (in.Wide && !in.Opcode.Shape().WideEligible()) {
		return &Error{Address: in.Address, Opcode: in.Opcode.Byte(), Err: ErrMisplacedWide}
	}
	b.widePending = in.Opcode == opcode.Wide
	mismatch := fmt.Errorf("%s at %d with %T: %w", in.Opcode, in.Address, in.Operand, ErrOperandMismatch)

	be := binary.BigEndian
	op := in.Opcode
	switch v := in.Operand.(type) {
	case NoOperand, nil:
		if op.Shape().FixedLength() != 0 {
			return mismatch
		}
		b.Emit(op)
	case LocalIndex:
		if op.Shape() != opcode.ShapeLocal || (!in.Wide && v.Index > math.MaxUint8) {
			return mismatch
		}
		b.Emit(op)
		if in.Wide {
			b.bytes = be.AppendUint16(b.bytes, v.Index)
		} else {
			b.bytes = append(b.bytes, byte(v.Index))
		}
	case Increment:
		if op.Shape() != opcode.ShapeIncrement {
			return mismatch
		}
		b.Emit(op)
		if in.Wide {
			b.bytes = be.AppendUint16(b.bytes, v.Index)
			b.bytes = be.AppendUint16(b.bytes, uint16(v.Const))
		} else {
			if v.Index > math.MaxUint8 || v.Const < math.MinInt8 || v.Const > math.MaxInt8 {
				return mismatch
			}
			b.bytes = append(b.bytes, byte(v.Index), byte(int8(v.Const)))
		}
	case Immediate:
		switch op.Shape() {
		case opcode.ShapeByte:
			if v.Value < math.MinInt8 || v.Value > math.MaxInt8 {
				return mismatch
			}
			b.bytes = append(b.bytes, op.Byte(), byte(int8(v.Value)))
		case opcode.ShapeShort:
			b.EmitUint16(op, uint16(v.Value))
		default:
			return mismatch
		}
	case ConstIndex:
		switch op.Shape() {
		case opcode.ShapeConst8:
			if v.Index > math.MaxUint8 {
				return mismatch
			}
			b.bytes = append(b.bytes, op.Byte(), byte(v.Index))
		case opcode.ShapeConst16:
			b.EmitUint16(op, v.Index)
		default:
			return mismatch
		}
	case Branch:
		switch op.Shape() {
		case opcode.ShapeBranch16:
			if v.Offset < math.MinInt16 || v.Offset > math.MaxInt16 {
				return mismatch
			}
		case opcode.ShapeBranch32:
		default:
			return mismatch
		}
		b.EmitBranch(op, v.Offset)
	case ArrayType:
		if op.Shape() != opcode.ShapeArrayType {
			return mismatch
		}
		b.bytes = append(b.bytes, op.Byte(), v.Type)
	case InvokeInterface:
		if op.Shape() != opcode.ShapeInvokeInterface {
			return mismatch
		}
		b.EmitUint16(op, v.Index)
		b.bytes = append(b.bytes, v.Count, v.Reserved)
	case InvokeDynamic:
		if op.Shape() != opcode.ShapeInvokeDynamic {
			return mismatch
		}
		b.EmitUint16(op, v.Index)
		b.bytes = be.AppendUint16(b.bytes, v.Reserved)
	case MultiANewArray:
		if op.Shape() != opcode.ShapeMultiANewArray {
			return mismatch
		}
		b.EmitUint16(op, v.Index)
		b.bytes = append(b.bytes, v.Dimensions)
	case TableSwitch:
		if op != opcode.TableSwitch || v.Low > v.High || int64(len(v.Offsets)) != int64(v.High)-int64(v.Low)+1 {
			return mismatch
		}
		b.emitSwitchHeader(op)
		b.bytes = appendInt32s(b.bytes, v.Default, v.Low, v.High)
		b.bytes = appendInt32s(b.bytes, v.Offsets...)
	case LookupSwitch:
		if op != opcode.LookupSwitch {
			return mismatch
		}
		b.EmitLookupSwitch(v.Default, v.Pairs)
	default:
		return mismatch
	}
	return nil
}

// Encode re-assembles decoded records into code bytes. Numeric opcode values
// are reproduced exactly and switch padding is written as zeros.
func Encode(instrs []Instruction, base uint32) ([]byte, error) {
	b := NewBuilder(base)
	for _, in := range instrs {
		if err := b.Append(in); err != nil {
			return nil, err
		}
	}
	if b.widePending {
		return nil, &Error{Address: b.Address() - 1, Opcode: opcode.Wide.Byte(), Err: ErrTruncated}
	}
	return b.Bytes(), nil
}
