package harness

import (
	"github.com/katalvlaran/poisson"
)

// AuditHints checks a size-hint trace recorded right after each successful
// pull. With len(hints) points emitted, the hint recorded at pull n must
// bracket the len-(n+1) points that followed it.
//
// Every hint must carry an upper bound; the first one that does not is
// reported before any bracket is checked.
func AuditHints(algo string, hints []poisson.Hint) error {
	for n, h := range hints {
		if !h.HasUpper {
			return violationf(KindProtocol, algo, nil,
				"size hint at element %d has no upper bound", n)
		}
	}
	total := len(hints)
	for n, h := range hints {
		remaining := total - (n + 1)
		if h.Lower > remaining {
			return violationf(KindProtocol, algo, nil,
				"size hint %s at element %d: lower bound above the %d remaining", h, n, remaining)
		}
		if h.Upper < remaining {
			return violationf(KindProtocol, algo, nil,
				"size hint %s at element %d: upper bound below the %d remaining", h, n, remaining)
		}
	}
	return nil
}
