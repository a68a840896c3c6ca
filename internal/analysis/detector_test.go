package analysis

import (
	"testing"

	"jvmdis/internal/decode"
	"jvmdis/internal/opcode"
)

type stubDetector struct {
	addr uint32
	kind Kind
}

func (s stubDetector) Detect(_ *Method, findings []Finding) []Finding {
	return append(findings, Finding{Address: s.addr, Kind: s.kind})
}

func TestDetectorChainOrder(t *testing.T) {
	chain := NewDetectorChain(
		stubDetector{addr: 9, kind: KindBranchOutside},
		stubDetector{addr: 2, kind: KindLookupOrder},
		stubDetector{addr: 9, kind: KindArrayType},
	)
	if chain.Len() != 3 {
		t.Fatalf("Len = %d", chain.Len())
	}
	got := chain.Detect(NewMethod(nil, 0, 0), nil)
	want := []Kind{KindLookupOrder, KindBranchOutside, KindArrayType}
	if len(got) != len(want) {
		t.Fatalf("got %d findings, want %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("finding %d kind = %s, want %s", i, got[i].Kind, k)
		}
	}
}

func TestMethodBounds(t *testing.T) {
	code := []byte{0x2a, 0x15, 0x01, 0xb1}
	instrs, err := decode.Decode(code, 4)
	if err != nil {
		t.Fatal(err)
	}
	m := NewMethod(instrs, 4, len(code))
	tests := []struct {
		addr     int64
		contains bool
		boundary bool
	}{
		{3, false, false},
		{4, true, true},
		{5, true, true},
		{6, true, false},
		{7, true, true},
		{8, false, false},
		{-1, false, false},
	}
	for _, tc := range tests {
		if got := m.Contains(tc.addr); got != tc.contains {
			t.Errorf("Contains(%d) = %v", tc.addr, got)
		}
		if got := m.IsBoundary(tc.addr); got != tc.boundary {
			t.Errorf("IsBoundary(%d) = %v", tc.addr, got)
		}
	}
	if m.Instrs[1].Opcode != opcode.ILoad {
		t.Errorf("second instruction = %s", m.Instrs[1].Opcode)
	}
}
