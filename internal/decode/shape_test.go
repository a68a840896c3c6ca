package decode

import (
	"errors"
	"testing"

	"jvmdis/internal/opcode"
)

func TestPadding(t *testing.T) {
	tests := []struct {
		address uint32
		want    int
	}{
		{0, 3},
		{1, 2},
		{2, 1},
		{3, 0},
		{4, 3},
		{7, 0},
		{0xfffffffe, 1},
	}
	for _, tc := range tests {
		if got := Padding(tc.address); got != tc.want {
			t.Errorf("Padding(%d) = %d, want %d", tc.address, got, tc.want)
		}
	}
}

func TestOperandLength(t *testing.T) {
	table := NewBuilder(0)
	table.EmitTableSwitch(0, 5, []int32{1, 2})
	lookup := NewBuilder(2)
	lookup.EmitLookupSwitch(0, []MatchOffset{{Match: 1, Offset: 1}})

	tests := []struct {
		name    string
		op      opcode.Opcode
		address uint32
		wide    bool
		rest    []byte
		want    int
		wantErr error
	}{
		{name: "nop", op: opcode.Nop, want: 0},
		{name: "aload", op: opcode.ALoad, want: 1},
		{name: "wide aload", op: opcode.ALoad, wide: true, want: 2},
		{name: "iinc", op: opcode.IInc, want: 2},
		{name: "wide iinc", op: opcode.IInc, wide: true, want: 4},
		{name: "sipush", op: opcode.SIPush, want: 2},
		{name: "jsr_w", op: opcode.JsrW, want: 4},
		{name: "multianewarray", op: opcode.MultiANewArray, want: 3},
		{name: "wide goto", op: opcode.Goto, wide: true, wantErr: ErrMisplacedWide},
		{name: "tableswitch", op: opcode.TableSwitch, address: 0, rest: table.Bytes()[1:], want: 3 + 12 + 8},
		{name: "lookupswitch", op: opcode.LookupSwitch, address: 2, rest: lookup.Bytes()[1:], want: 1 + 8 + 8},
		{name: "short table", op: opcode.TableSwitch, address: 0, rest: table.Bytes()[1:10], wantErr: ErrTruncated},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := OperandLength(tc.op, tc.address, tc.wide, tc.rest)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("OperandLength: %v", err)
			}
			if got != tc.want {
				t.Errorf("OperandLength = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestArrayTypeName(t *testing.T) {
	if got := (ArrayType{Type: 10}).Name(); got != "int" {
		t.Errorf("Name(10) = %q", got)
	}
	if got := (ArrayType{Type: 3}).Name(); got != "type3" {
		t.Errorf("Name(3) = %q", got)
	}
}
