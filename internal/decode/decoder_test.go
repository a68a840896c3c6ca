package decode

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"jvmdis/internal/opcode"
)

func TestDecodeZeroOperand(t *testing.T) {
	for base := uint32(0); base < 8; base++ {
		got, err := Decode([]byte{opcode.Nop.Byte()}, base)
		if err != nil {
			t.Fatalf("base %d: %v", base, err)
		}
		want := []Instruction{{Address: base, Opcode: opcode.Nop, Length: 1, Operand: NoOperand{}}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("base %d: mismatch (-want +got):\n%s", base, diff)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	got, err := Decode(nil, 0)
	if err != nil {
		t.Fatalf("Decode(nil): %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Decode(nil) returned %d records", len(got))
	}
}

func TestDecodeTableSwitch(t *testing.T) {
	offsets := []int32{4, 8, 12}
	for base := uint32(0); base < 4; base++ {
		b := NewBuilder(base)
		b.EmitTableSwitch(20, 0, offsets)
		code := b.Bytes()

		got, err := Decode(code, base)
		if err != nil {
			t.Fatalf("base %d: %v", base, err)
		}
		if len(got) != 1 {
			t.Fatalf("base %d: got %d records, want 1", base, len(got))
		}
		in := got[0]
		if want := 1 + Padding(base) + 12 + 12; in.Length != want || len(code) != want {
			t.Errorf("base %d: Length = %d, code = %d bytes, want %d", base, in.Length, len(code), want)
		}
		ts, ok := in.Operand.(TableSwitch)
		if !ok {
			t.Fatalf("base %d: operand %T", base, in.Operand)
		}
		want := TableSwitch{Default: 20, Low: 0, High: 2, Offsets: offsets}
		if diff := cmp.Diff(want, ts); diff != "" {
			t.Errorf("base %d: operand mismatch (-want +got):\n%s", base, diff)
		}
		targets := ts.Targets(in.Address)
		for i, off := range offsets {
			if targets[i] != int64(base)+int64(off) {
				t.Errorf("base %d: target[%d] = %d, want %d", base, i, targets[i], int64(base)+int64(off))
			}
		}
		if got := ts.DefaultTarget(in.Address); got != int64(base)+20 {
			t.Errorf("base %d: default target = %d", base, got)
		}
	}
}

func TestDecodeLookupSwitchKeepsOrder(t *testing.T) {
	pairs := []MatchOffset{{Match: 5, Offset: 10}, {Match: 1, Offset: 20}, {Match: 1, Offset: 30}}
	b := NewBuilder(0)
	b.Emit(opcode.ILoad0)
	b.EmitLookupSwitch(40, pairs)

	got, err := Decode(b.Bytes(), 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	ls, ok := got[1].Operand.(LookupSwitch)
	if !ok {
		t.Fatalf("operand %T", got[1].Operand)
	}
	if diff := cmp.Diff(LookupSwitch{Default: 40, Pairs: pairs}, ls); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	// opcode at 1, two padding bytes, default, npairs, three pairs
	if got[1].Length != 1+2+8+24 {
		t.Errorf("Length = %d", got[1].Length)
	}
}

func TestDecodeWide(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want []Instruction
	}{
		{
			name: "iload",
			code: []byte{0xc4, 0x15, 0x01, 0x02},
			want: []Instruction{
				{Address: 0, Opcode: opcode.Wide, Length: 1, Operand: NoOperand{}},
				{Address: 1, Opcode: opcode.ILoad, Wide: true, Length: 3, Operand: LocalIndex{Index: 0x0102}},
			},
		},
		{
			name: "astore",
			code: []byte{0xc4, 0x3a, 0xff, 0xff, 0xb1},
			want: []Instruction{
				{Address: 0, Opcode: opcode.Wide, Length: 1, Operand: NoOperand{}},
				{Address: 1, Opcode: opcode.AStore, Wide: true, Length: 3, Operand: LocalIndex{Index: 0xffff}},
				{Address: 4, Opcode: opcode.Return, Length: 1, Operand: NoOperand{}},
			},
		},
		{
			name: "ret",
			code: []byte{0xc4, 0xa9, 0x00, 0x07},
			want: []Instruction{
				{Address: 0, Opcode: opcode.Wide, Length: 1, Operand: NoOperand{}},
				{Address: 1, Opcode: opcode.Ret, Wide: true, Length: 3, Operand: LocalIndex{Index: 7}},
			},
		},
		{
			name: "iinc",
			code: []byte{0xc4, 0x84, 0x01, 0x00, 0xff, 0xfe},
			want: []Instruction{
				{Address: 0, Opcode: opcode.Wide, Length: 1, Operand: NoOperand{}},
				{Address: 1, Opcode: opcode.IInc, Wide: true, Length: 5, Operand: Increment{Index: 256, Const: -2}},
			},
		},
		{
			name: "narrow after wide",
			code: []byte{0xc4, 0x15, 0x00, 0x01, 0x15, 0x02},
			want: []Instruction{
				{Address: 0, Opcode: opcode.Wide, Length: 1, Operand: NoOperand{}},
				{Address: 1, Opcode: opcode.ILoad, Wide: true, Length: 3, Operand: LocalIndex{Index: 1}},
				{Address: 4, Opcode: opcode.ILoad, Length: 2, Operand: LocalIndex{Index: 2}},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.code, 0)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeSignedOperands(t *testing.T) {
	code := []byte{
		0x10, 0xff, // bipush -1
		0x11, 0x80, 0x00, // sipush -32768
		0x84, 0x03, 0x80, // iinc 3 -128
		0xa7, 0xff, 0xf8, // goto -8
		0xc8, 0xff, 0xff, 0xff, 0xf0, // goto_w -16
	}
	want := []Instruction{
		{Address: 0, Opcode: opcode.BIPush, Length: 2, Operand: Immediate{Value: -1}},
		{Address: 2, Opcode: opcode.SIPush, Length: 3, Operand: Immediate{Value: -32768}},
		{Address: 5, Opcode: opcode.IInc, Length: 3, Operand: Increment{Index: 3, Const: -128}},
		{Address: 8, Opcode: opcode.Goto, Length: 3, Operand: Branch{Offset: -8}},
		{Address: 11, Opcode: opcode.GotoW, Length: 5, Operand: Branch{Offset: -16}},
	}
	got, err := Decode(code, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if tgt := got[3].Operand.(Branch).Target(got[3].Address); tgt != 0 {
		t.Errorf("goto target = %d, want 0", tgt)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		code    []byte
		base    uint32
		wantErr error
		addr    uint32
		opcode  byte
	}{
		{"truncated sipush", []byte{0x00, 0x11, 0x01}, 0, ErrTruncated, 1, 0x11},
		{"truncated goto_w", []byte{0xc8, 0x00, 0x00, 0x00}, 0, ErrTruncated, 0, 0xc8},
		{"truncated invokeinterface", []byte{0xb9, 0x00, 0x01, 0x01}, 0, ErrTruncated, 0, 0xb9},
		{"unknown opcode", []byte{0x00, 0xcb}, 0, ErrUnknownOpcode, 1, 0xcb},
		{"unknown opcode at base", []byte{0xfd}, 10, ErrUnknownOpcode, 10, 0xfd},
		{"invalid range", []byte{0xaa, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0}, 0, ErrInvalidSwitchRange, 0, 0xaa},
		{"misplaced wide", []byte{0xc4, 0x60}, 0, ErrMisplacedWide, 1, 0x60},
		{"wide then wide", []byte{0xc4, 0xc4, 0x15, 0x00, 0x01}, 0, ErrMisplacedWide, 1, 0xc4},
		{"wide at end", []byte{0x00, 0xc4}, 0, ErrTruncated, 1, 0xc4},
		{"truncated wide iload", []byte{0xc4, 0x15, 0x01}, 0, ErrTruncated, 1, 0x15},
		{"truncated wide iinc", []byte{0xc4, 0x84, 0x00, 0x01, 0x00}, 0, ErrTruncated, 1, 0x84},
		{"truncated padding", []byte{0x00, 0xaa, 0x00}, 0, ErrTruncated, 1, 0xaa},
		{"truncated table header", []byte{0xaa, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 0, ErrTruncated, 0, 0xaa},
		{"truncated table body", []byte{0xaa, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 4}, 0, ErrTruncated, 0, 0xaa},
		{
			"huge table range",
			[]byte{0xaa, 0, 0, 0, 0, 0, 0, 0, 0x80, 0, 0, 0, 0x7f, 0xff, 0xff, 0xff},
			0, ErrTruncated, 0, 0xaa,
		},
		{
			"huge lookup count",
			[]byte{0xab, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff, 0xff, 0xff},
			0, ErrTruncated, 0, 0xab,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.code, tc.base)
			if err == nil {
				t.Fatalf("Decode succeeded with %d records", len(got))
			}
			if got != nil {
				t.Errorf("Decode returned %d records alongside error", len(got))
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("error = %v, want %v", err, tc.wantErr)
			}
			var de *Error
			if !errors.As(err, &de) {
				t.Fatalf("error %T is not *Error", err)
			}
			if de.Address != tc.addr {
				t.Errorf("Address = %d, want %d", de.Address, tc.addr)
			}
			if de.Opcode != tc.opcode {
				t.Errorf("Opcode = 0x%02x, want 0x%02x", de.Opcode, tc.opcode)
			}
		})
	}
}

func TestDecodeUnknownCarriesByte(t *testing.T) {
	_, err := Decode([]byte{0xe0}, 0)
	var ue *opcode.UnknownError
	if !errors.As(err, &ue) {
		t.Fatalf("error %v does not wrap UnknownError", err)
	}
	if ue.Byte != 0xe0 {
		t.Errorf("UnknownError.Byte = 0x%02x", ue.Byte)
	}
}

func TestDecodeAddressInvariant(t *testing.T) {
	for base := uint32(0); base < 4; base++ {
		b := NewBuilder(base)
		b.Emit(opcode.ALoad0)
		b.EmitLocal(opcode.ILoad, 5)
		b.EmitLocal(opcode.ILoad, 300)
		b.EmitIInc(1, 1)
		b.EmitIInc(2, 1000)
		b.EmitUint16(opcode.SIPush, 0x1234)
		b.EmitBranch(opcode.Goto, -5)
		b.EmitTableSwitch(8, -1, []int32{1, 2, 3})
		b.EmitLookupSwitch(8, []MatchOffset{{1, 2}, {3, 4}})
		b.EmitUint16(opcode.InvokeInterface, 7)
		b.EmitRaw(1, 0)
		b.EmitBranch(opcode.GotoW, 100)
		b.Emit(opcode.Return)
		code := b.Bytes()

		got, err := Decode(code, base)
		if err != nil {
			t.Fatalf("base %d: %v", base, err)
		}
		if len(got) != 14 {
			t.Fatalf("base %d: got %d records, want 14", base, len(got))
		}
		if got[0].Address != base {
			t.Errorf("base %d: first address %d", base, got[0].Address)
		}
		for i := 1; i < len(got); i++ {
			if got[i].Address != got[i-1].End() {
				t.Errorf("base %d: record %d at %d, previous ends at %d", base, i, got[i].Address, got[i-1].End())
			}
			if got[i].Address <= got[i-1].Address {
				t.Errorf("base %d: addresses not increasing at %d", base, i)
			}
		}
		if end := got[len(got)-1].End(); end != base+uint32(len(code)) {
			t.Errorf("base %d: last record ends at %d, want %d", base, end, base+uint32(len(code)))
		}
	}
}

func TestDecodeEveryOpcode(t *testing.T) {
	for _, op := range opcode.All() {
		shape := op.Shape()
		if shape.Variable() || op == opcode.Wide {
			continue
		}
		n := shape.FixedLength()
		code := make([]byte, 1+n)
		code[0] = op.Byte()
		if shape == opcode.ShapeInvokeInterface {
			code[3] = 1
		}

		got, err := Decode(code, 0)
		if err != nil {
			t.Errorf("%s: %v", op, err)
			continue
		}
		if len(got) != 1 || got[0].Length != 1+n {
			t.Errorf("%s: got %d records, first length %d, want one of length %d", op, len(got), got[0].Length, 1+n)
			continue
		}
		if _, none := got[0].Operand.(NoOperand); none != (n == 0) {
			t.Errorf("%s: operand %T for %d operand bytes", op, got[0].Operand, n)
		}

		if n > 0 {
			_, err := Decode(code[:n], 0)
			if !errors.Is(err, ErrTruncated) {
				t.Errorf("%s: short stream error = %v, want ErrTruncated", op, err)
			}
		}
	}
}

func TestDecoderNext(t *testing.T) {
	d := NewDecoder([]byte{0x04, 0x3c, 0xcb}, 0)
	if d.Address() != 0 {
		t.Fatalf("Address = %d", d.Address())
	}
	first, err := d.Next()
	if err != nil || first.Opcode != opcode.IConst1 {
		t.Fatalf("first = %v, %v", first.Opcode, err)
	}
	second, err := d.Next()
	if err != nil || second.Opcode != opcode.IStore1 || d.Address() != 2 {
		t.Fatalf("second = %v, %v at %d", second.Opcode, err, d.Address())
	}
	_, err = d.Next()
	if !errors.Is(err, ErrUnknownOpcode) {
		t.Fatalf("third error = %v", err)
	}
	if _, again := d.Next(); again != err {
		t.Errorf("error not sticky: %v then %v", err, again)
	}

	d = NewDecoder([]byte{0x00}, 0)
	if _, err := d.Next(); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Next(); err != io.EOF {
		t.Errorf("at end: %v, want io.EOF", err)
	}
}

func TestDecodeDoesNotMutateInput(t *testing.T) {
	b := NewBuilder(0)
	b.EmitTableSwitch(0, 0, []int32{0})
	b.EmitLocal(opcode.AStore, 999)
	code := b.Bytes()
	orig := append([]byte(nil), code...)
	if _, err := Decode(code, 0); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(code, orig) {
		t.Error("Decode modified its input")
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	lg := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	if _, err := Decode([]byte{0x00, 0xcb}, 0, WithLogger(lg)); err == nil {
		t.Fatal("expected error")
	}
	out := buf.String()
	if !strings.Contains(out, "decoded") || !strings.Contains(out, "decode failed") {
		t.Errorf("log output missing entries:\n%s", out)
	}
}
