package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"jvmdis/internal/jvmdis/styles"
	"jvmdis/internal/opcode"
)

// OpcodeEntry is one row of `jvmdis opcodes --json`.
type OpcodeEntry struct {
	Opcode        uint8  `json:"opcode"`
	Mnemonic      string `json:"mnemonic"`
	Shape         string `json:"shape"`
	Category      string `json:"category"`
	Length        int    `json:"length,omitempty"`        // opcode byte included; 0 for switches
	WidenedLength int    `json:"widenedLength,omitempty"` // after a wide prefix, prefix excluded
}

func newOpcodeEntry(op opcode.Opcode) OpcodeEntry {
	s := op.Shape()
	e := OpcodeEntry{
		Opcode:   op.Byte(),
		Mnemonic: op.Mnemonic(),
		Shape:    s.String(),
		Category: op.Category().String(),
	}
	if !s.Variable() {
		e.Length = 1 + s.FixedLength()
	}
	if s.WideEligible() {
		e.WidenedLength = 1 + s.WidenedLength()
	}
	return e
}

func newOpcodesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "opcodes [mnemonic|0xNN]",
		Short: "List the instruction set or describe one opcode",
		Example: `
# Full table
jvmdis opcodes

# One opcode by name or byte
jvmdis opcodes tableswitch
jvmdis opcodes 0xc4
  `,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()

			ops := opcode.All()
			if len(args) == 1 {
				op, err := parseOpcodeArg(args[0])
				if err != nil {
					return err
				}
				ops = []opcode.Opcode{op}
			}

			if asJSON {
				entries := make([]OpcodeEntry, len(ops))
				for i, op := range ops {
					entries[i] = newOpcodeEntry(op)
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if len(args) == 1 {
					return enc.Encode(entries[0])
				}
				return enc.Encode(entries)
			}

			if len(args) == 0 {
				_, err := io.WriteString(out, opcodeTable(ops))
				return err
			}

			page := opcodePage(ops[0])
			if isTerminal(out) {
				r, err := styles.MarkdownRenderer(80)
				if err != nil {
					return fmt.Errorf("failed to create renderer: %w", err)
				}
				if rendered, err := r.Render(page); err == nil {
					page = rendered
				}
			}
			_, err := io.WriteString(out, page)
			return err
		},
	}
	c.Flags().BoolP("json", "j", false, "Output JSON")
	return c
}

// parseOpcodeArg accepts a mnemonic, a 0x-prefixed byte or a decimal byte.
func parseOpcodeArg(s string) (opcode.Opcode, error) {
	if op, ok := opcode.Lookup(strings.ToLower(s)); ok {
		return op, nil
	}
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("unknown opcode %q", s)
	}
	op, err := opcode.Resolve(byte(v))
	if err != nil {
		return 0, err
	}
	return op, nil
}

func opcodeTable(ops []opcode.Opcode) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-4s  %-16s %-12s %-16s %s\n", "OP", "MNEMONIC", "CATEGORY", "SHAPE", "LEN")
	for _, op := range ops {
		e := newOpcodeEntry(op)
		length := "var"
		if e.Length > 0 {
			length = strconv.Itoa(e.Length)
		}
		if e.WidenedLength > 0 {
			length += fmt.Sprintf(" (wide %d)", e.WidenedLength)
		}
		fmt.Fprintf(&sb, "0x%02x  %-16s %-12s %-16s %s\n", e.Opcode, e.Mnemonic, e.Category, e.Shape, length)
	}
	return sb.String()
}

// opcodePage describes one opcode as a markdown page.
func opcodePage(op opcode.Opcode) string {
	e := newOpcodeEntry(op)
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", e.Mnemonic)
	fmt.Fprintf(&sb, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Opcode | `0x%02x` (%d) |\n", e.Opcode, e.Opcode)
	fmt.Fprintf(&sb, "| Category | %s |\n", e.Category)
	fmt.Fprintf(&sb, "| Operand shape | %s |\n", e.Shape)
	if e.Length > 0 {
		fmt.Fprintf(&sb, "| Length | %d |\n", e.Length)
	} else {
		fmt.Fprintf(&sb, "| Length | variable |\n")
	}
	if e.WidenedLength > 0 {
		fmt.Fprintf(&sb, "| After `wide` | %d |\n", e.WidenedLength)
	}
	switch op {
	case opcode.TableSwitch:
		sb.WriteString("\nPadded to a 4-byte boundary from the start of the method, then default, low, high and high-low+1 jump offsets.\n")
	case opcode.LookupSwitch:
		sb.WriteString("\nPadded to a 4-byte boundary from the start of the method, then default, npairs and npairs match/offset pairs.\n")
	case opcode.Wide:
		sb.WriteString("\nWidens the local index of the next load, store, ret or iinc to 16 bits.\n")
	}
	return sb.String()
}
