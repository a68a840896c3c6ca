package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/fxamacker/cbor/v2"

	"jvmdis/internal/analysis"
	"jvmdis/internal/config"
	"jvmdis/internal/decode"
	"jvmdis/internal/detectors"
	"jvmdis/internal/disasm"
	"jvmdis/internal/ui/colorize"
)

// input is one code region to decode.
type input struct {
	name string
	code []byte
	base uint32
}

// result is the outcome of decoding one input.
type result struct {
	input
	instrs   []decode.Instruction
	findings []analysis.Finding
	err      error
}

func runDecode(in input, lint bool, lg *log.Logger) result {
	var opts []decode.Option
	if lg != nil {
		opts = append(opts, decode.WithLogger(lg))
	}
	instrs, err := decode.Decode(in.code, in.base, opts...)
	r := result{input: in, instrs: instrs, err: err}
	if err == nil && lint {
		m := analysis.NewMethod(instrs, in.base, len(in.code))
		r.findings = detectors.Default().Detect(m, nil)
	}
	return r
}

// JSONInstruction is one record in JSON and CBOR output.
type JSONInstruction struct {
	Address  uint32         `json:"address"`
	Opcode   uint8          `json:"opcode"`
	Mnemonic string         `json:"mnemonic"`
	Wide     bool           `json:"wide,omitempty"`
	Length   int            `json:"length"`
	Kind     string         `json:"kind"`
	Operand  decode.Operand `json:"operand,omitempty"`
	Text     string         `json:"text"`
}

// JSONError describes a failed decode.
type JSONError struct {
	Address uint32 `json:"address"`
	Opcode  uint8  `json:"opcode"`
	Message string `json:"message"`
}

// JSONOutput is the document written by --json and --cbor.
type JSONOutput struct {
	Name         string             `json:"name,omitempty"`
	Base         uint32             `json:"base"`
	Size         int                `json:"size"`
	Instructions []JSONInstruction  `json:"instructions"`
	Findings     []analysis.Finding `json:"findings,omitempty"`
	Error        *JSONError         `json:"error,omitempty"`
}

func newJSONOutput(r result) JSONOutput {
	out := JSONOutput{
		Name:         r.name,
		Base:         r.base,
		Size:         len(r.code),
		Instructions: make([]JSONInstruction, 0, len(r.instrs)),
		Findings:     r.findings,
	}
	for _, in := range r.instrs {
		ji := JSONInstruction{
			Address:  in.Address,
			Opcode:   in.Opcode.Byte(),
			Mnemonic: in.Opcode.Mnemonic(),
			Wide:     in.Wide,
			Length:   in.Length,
			Kind:     in.Operand.Kind(),
			Text:     disasm.Format(in),
		}
		if _, none := in.Operand.(decode.NoOperand); !none {
			ji.Operand = in.Operand
		}
		out.Instructions = append(out.Instructions, ji)
	}
	if r.err != nil {
		je := &JSONError{Message: r.err.Error()}
		var de *decode.Error
		if errors.As(r.err, &de) {
			je.Address = de.Address
			je.Opcode = de.Opcode
			je.Message = de.Err.Error()
		}
		out.Error = je
	}
	return out
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cmd: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// writeResult prints r in the configured format. A failed decode is still
// written so the error location reaches the output.
func writeResult(w io.Writer, r result, cfg config.Config, color bool) error {
	switch cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newJSONOutput(r))
	case config.FormatCBOR:
		data, err := cborEncMode.Marshal(newJSONOutput(r))
		if err != nil {
			return fmt.Errorf("failed to encode CBOR: %w", err)
		}
		_, err = w.Write(data)
		return err
	case config.FormatDump:
		cs := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cs.Fdump(w, r.instrs)
		if len(r.findings) > 0 {
			cs.Fdump(w, r.findings)
		}
		return nil
	}
	_, err := io.WriteString(w, renderText(r, cfg.RawBytes, color))
	return err
}

// renderText formats the listing followed by any findings.
func renderText(r result, raw, color bool) string {
	listing := disasm.Listing(r.instrs, r.code, r.base).Format(raw)
	if color {
		listing = colorize.Line(listing)
	}
	var sb strings.Builder
	sb.WriteString(listing)
	if len(r.findings) > 0 {
		sb.WriteString("\n")
		sb.WriteString(renderFindings(r.findings))
	}
	return sb.String()
}

func renderFindings(findings []analysis.Finding) string {
	var sb strings.Builder
	for _, f := range findings {
		fmt.Fprintf(&sb, "%5d: %-18s %s\n", f.Address, f.Kind, f.Message)
	}
	return sb.String()
}
