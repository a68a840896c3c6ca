// Package analysis runs non-fatal checks over decoded method bodies.
// Findings never change the decoded records; they only annotate them.
package analysis

import (
	"sort"

	"jvmdis/internal/decode"
)

// Kind classifies a finding.
type Kind string

const (
	KindLookupOrder      Kind = "lookup-order"
	KindBranchOutside    Kind = "branch-outside"
	KindBranchMisaligned Kind = "branch-misaligned"
	KindReservedOperand  Kind = "reserved-operand"
	KindArrayType        Kind = "array-type"
)

// Finding is one observation about an instruction.
type Finding struct {
	Address  uint32                 `json:"address"`
	Kind     Kind                   `json:"kind"`
	Message  string                 `json:"message"`
	Metadata map[string]interface{} `json:"metadata,omitempty"` // detector-specific values
}

// Method is a decoded code region together with its bounds.
type Method struct {
	Base   uint32
	Size   int
	Instrs []decode.Instruction

	starts map[uint32]struct{}
}

// NewMethod indexes instrs, decoded from size bytes starting at base.
func NewMethod(instrs []decode.Instruction, base uint32, size int) *Method {
	m := &Method{
		Base:   base,
		Size:   size,
		Instrs: instrs,
		starts: make(map[uint32]struct{}, len(instrs)),
	}
	for _, in := range instrs {
		m.starts[in.Address] = struct{}{}
	}
	return m
}

// Contains reports whether addr lies inside the code region.
func (m *Method) Contains(addr int64) bool {
	return addr >= int64(m.Base) && addr < int64(m.Base)+int64(m.Size)
}

// IsBoundary reports whether an instruction starts at addr.
func (m *Method) IsBoundary(addr int64) bool {
	if !m.Contains(addr) {
		return false
	}
	_, ok := m.starts[uint32(addr)]
	return ok
}

// Detector inspects a method and appends what it finds.
type Detector interface {
	// Detect returns findings extended with its own; it must not drop or
	// rewrite the ones it was given.
	Detect(m *Method, findings []Finding) []Finding
}

// DetectorChain runs multiple detectors in sequence
type DetectorChain struct {
	detectors []Detector
}

// NewDetectorChain creates a new detector chain
func NewDetectorChain(detectors ...Detector) *DetectorChain {
	return &DetectorChain{
		detectors: detectors,
	}
}

// Detect runs all detectors in sequence and orders the result by address.
func (dc *DetectorChain) Detect(m *Method, findings []Finding) []Finding {
	result := findings
	for _, detector := range dc.detectors {
		result = detector.Detect(m, result)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Address < result[j].Address
	})
	return result
}

// Len returns the number of detectors in the chain.
func (dc *DetectorChain) Len() int {
	return len(dc.detectors)
}
