package decode

import "jvmdis/internal/opcode"

type prefixState uint8

const (
	stateNormal prefixState = iota
	stateWidePending
)

func (s prefixState) String() string {
	if s == stateWidePending {
		return "wide-pending"
	}
	return "normal"
}

// widePrefix tracks the one-instruction effect of the wide opcode. After
// arm, the next call to apply decides whether that opcode is read widened
// and returns the machine to normal.
type widePrefix struct {
	state prefixState
	at    uint32 // address of the pending wide
}

func (w *widePrefix) pending() bool {
	return w.state == stateWidePending
}

func (w *widePrefix) arm(address uint32) {
	w.state = stateWidePending
	w.at = address
}

// apply consumes any pending prefix for op. It reports whether op is to be
// read with widened operands.
func (w *widePrefix) apply(op opcode.Opcode) (bool, error) {
	if w.state != stateWidePending {
		return false, nil
	}
	w.state = stateNormal
	if !op.Shape().WideEligible() {
		return false, ErrMisplacedWide
	}
	return true, nil
}
