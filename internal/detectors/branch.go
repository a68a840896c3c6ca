package detectors

import (
	"fmt"

	"jvmdis/internal/analysis"
	"jvmdis/internal/decode"
)

// BranchTargetDetector reports branch and switch targets that leave the code
// region or land inside another instruction.
type BranchTargetDetector struct{}

// NewBranchTargetDetector creates a new branch target detector.
func NewBranchTargetDetector() *BranchTargetDetector {
	return &BranchTargetDetector{}
}

func (d *BranchTargetDetector) Detect(m *analysis.Method, findings []analysis.Finding) []analysis.Finding {
	for _, in := range m.Instrs {
		for _, t := range targets(in) {
			switch {
			case !m.Contains(t.addr):
				findings = append(findings, d.finding(in, t, analysis.KindBranchOutside, "leaves the code region"))
			case !m.IsBoundary(t.addr):
				findings = append(findings, d.finding(in, t, analysis.KindBranchMisaligned, "is not an instruction boundary"))
			}
		}
	}
	return findings
}

func (d *BranchTargetDetector) finding(in decode.Instruction, t target, kind analysis.Kind, what string) analysis.Finding {
	return analysis.Finding{
		Address: in.Address,
		Kind:    kind,
		Message: fmt.Sprintf("%s target %d (%s) %s", in.Opcode, t.addr, t.label, what),
		Metadata: map[string]interface{}{
			"target": t.addr,
			"label":  t.label,
		},
	}
}

type target struct {
	addr  int64
	label string
}

// targets lists every address in can transfer control to, except fallthrough.
func targets(in decode.Instruction) []target {
	switch v := in.Operand.(type) {
	case decode.Branch:
		return []target{{v.Target(in.Address), "branch"}}
	case decode.TableSwitch:
		out := []target{{v.DefaultTarget(in.Address), "default"}}
		for i, a := range v.Targets(in.Address) {
			out = append(out, target{a, fmt.Sprintf("case %d", int64(v.Low)+int64(i))})
		}
		return out
	case decode.LookupSwitch:
		out := []target{{v.DefaultTarget(in.Address), "default"}}
		for i, a := range v.Targets(in.Address) {
			out = append(out, target{a, fmt.Sprintf("case %d", v.Pairs[i].Match)})
		}
		return out
	}
	return nil
}
