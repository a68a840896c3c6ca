package detectors

import (
	"fmt"

	"jvmdis/internal/analysis"
	"jvmdis/internal/decode"
)

// OperandDetector reports operand bytes the class file format pins to fixed
// values: the trailing zeros of invokeinterface and invokedynamic, a zero
// invokeinterface count, and newarray type codes outside 4..11.
type OperandDetector struct{}

// NewOperandDetector creates a new operand detector.
func NewOperandDetector() *OperandDetector {
	return &OperandDetector{}
}

func (d *OperandDetector) Detect(m *analysis.Method, findings []analysis.Finding) []analysis.Finding {
	for _, in := range m.Instrs {
		var msg string
		kind := analysis.KindReservedOperand
		switch v := in.Operand.(type) {
		case decode.InvokeInterface:
			switch {
			case v.Reserved != 0:
				msg = fmt.Sprintf("trailing byte is 0x%02x, want 0", v.Reserved)
			case v.Count == 0:
				msg = "argument count is zero"
			}
		case decode.InvokeDynamic:
			if v.Reserved != 0 {
				msg = fmt.Sprintf("trailing bytes are 0x%04x, want 0", v.Reserved)
			}
		case decode.ArrayType:
			if v.Type < 4 || v.Type > 11 {
				kind = analysis.KindArrayType
				msg = fmt.Sprintf("array type %d is not a primitive type code", v.Type)
			}
		}
		if msg == "" {
			continue
		}
		findings = append(findings, analysis.Finding{
			Address: in.Address,
			Kind:    kind,
			Message: fmt.Sprintf("%s: %s", in.Opcode, msg),
		})
	}
	return findings
}

// Default returns the chain run by the lint stage.
func Default() *analysis.DetectorChain {
	return analysis.NewDetectorChain(
		NewLookupOrderDetector(),
		NewBranchTargetDetector(),
		NewOperandDetector(),
	)
}
