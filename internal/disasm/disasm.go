// Package disasm turns decoded instructions into listing lines.
package disasm

import (
	"fmt"
	"strings"

	"jvmdis/internal/decode"
)

// maxRawBytes caps the hex column; switch tables are elided after it.
const maxRawBytes = 8

// Inst is one formatted listing line.
type Inst struct {
	Addr uint32 // method-relative address
	Text string // mnemonic and operands
	Op   string // mnemonic
	Raw  []byte // encoded bytes, a view into the code region
}

// String renders the line without the raw column.
func (i Inst) String() string {
	return fmt.Sprintf("%5d: %s", i.Addr, i.Text)
}

// RawString renders the line with the encoded bytes between address and text.
func (i Inst) RawString() string {
	raw := i.Raw
	more := ""
	if len(raw) > maxRawBytes {
		raw, more = raw[:maxRawBytes], " .."
	}
	return fmt.Sprintf("%5d: %-26s %s", i.Addr, fmt.Sprintf("% x", raw)+more, i.Text)
}

// Stream is a linear sequence of listing lines.
type Stream []Inst

// String joins the lines, one per instruction.
func (s Stream) String() string {
	return s.Format(false)
}

// Format joins the lines, adding the raw column when raw is set.
func (s Stream) Format(raw bool) string {
	var sb strings.Builder
	for _, in := range s {
		if raw {
			sb.WriteString(in.RawString())
		} else {
			sb.WriteString(in.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Listing formats instrs, which were decoded from code starting at base.
func Listing(instrs []decode.Instruction, code []byte, base uint32) Stream {
	out := make(Stream, 0, len(instrs))
	for _, in := range instrs {
		var raw []byte
		start := int64(in.Address) - int64(base)
		end := start + int64(in.Length)
		if start >= 0 && end <= int64(len(code)) {
			raw = code[start:end]
		}
		out = append(out, Inst{
			Addr: in.Address,
			Text: Format(in),
			Op:   in.Opcode.Mnemonic(),
			Raw:  raw,
		})
	}
	return out
}

// Format renders one instruction javap-style. Branch and switch operands
// are shown as absolute targets.
func Format(in decode.Instruction) string {
	name := in.Opcode.String()
	switch v := in.Operand.(type) {
	case decode.LocalIndex:
		return fmt.Sprintf("%s %d", name, v.Index)
	case decode.Increment:
		return fmt.Sprintf("%s %d, %d", name, v.Index, v.Const)
	case decode.Immediate:
		return fmt.Sprintf("%s %d", name, v.Value)
	case decode.ConstIndex:
		return fmt.Sprintf("%s #%d", name, v.Index)
	case decode.Branch:
		return fmt.Sprintf("%s %d", name, v.Target(in.Address))
	case decode.ArrayType:
		return fmt.Sprintf("%s %s", name, v.Name())
	case decode.InvokeInterface:
		return fmt.Sprintf("%s #%d, %d", name, v.Index, v.Count)
	case decode.InvokeDynamic:
		return fmt.Sprintf("%s #%d, %d", name, v.Index, v.Reserved)
	case decode.MultiANewArray:
		return fmt.Sprintf("%s #%d, %d", name, v.Index, v.Dimensions)
	case decode.TableSwitch:
		cases := make([]string, 0, len(v.Offsets)+1)
		for i, tgt := range v.Targets(in.Address) {
			cases = append(cases, fmt.Sprintf("%d: %d", int64(v.Low)+int64(i), tgt))
		}
		cases = append(cases, fmt.Sprintf("default: %d", v.DefaultTarget(in.Address)))
		return fmt.Sprintf("%s { %s }", name, strings.Join(cases, ", "))
	case decode.LookupSwitch:
		cases := make([]string, 0, len(v.Pairs)+1)
		for i, tgt := range v.Targets(in.Address) {
			cases = append(cases, fmt.Sprintf("%d: %d", v.Pairs[i].Match, tgt))
		}
		cases = append(cases, fmt.Sprintf("default: %d", v.DefaultTarget(in.Address)))
		return fmt.Sprintf("%s { %s }", name, strings.Join(cases, ", "))
	}
	return name
}
