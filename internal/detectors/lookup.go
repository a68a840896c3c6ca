// Package detectors holds the checks run by the lint stage.
package detectors

import (
	"fmt"

	"jvmdis/internal/analysis"
	"jvmdis/internal/decode"
)

// LookupOrderDetector reports lookupswitch tables whose match values are not
// strictly ascending. The decoder accepts such tables as they are encoded.
type LookupOrderDetector struct{}

// NewLookupOrderDetector creates a new lookupswitch order detector.
func NewLookupOrderDetector() *LookupOrderDetector {
	return &LookupOrderDetector{}
}

func (d *LookupOrderDetector) Detect(m *analysis.Method, findings []analysis.Finding) []analysis.Finding {
	for _, in := range m.Instrs {
		ls, ok := in.Operand.(decode.LookupSwitch)
		if !ok {
			continue
		}
		for i := 1; i < len(ls.Pairs); i++ {
			prev, cur := ls.Pairs[i-1].Match, ls.Pairs[i].Match
			if cur > prev {
				continue
			}
			findings = append(findings, analysis.Finding{
				Address: in.Address,
				Kind:    analysis.KindLookupOrder,
				Message: fmt.Sprintf("match %d at pair %d does not follow %d", cur, i, prev),
				Metadata: map[string]interface{}{
					"pair":     i,
					"match":    cur,
					"previous": prev,
				},
			})
		}
	}
	return findings
}
