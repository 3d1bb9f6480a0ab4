// Package harness validates incremental Poisson-disk generators through the
// narrow poisson.Generator contract.
//
// # What is checked
//
//   - Separation: every pair of emitted points is more than 2r apart; in a
//     periodic domain the check runs over the 3^d-fold tiling of the set, so
//     pairs that meet across the wraparound are caught too.
//   - Size hints: the hint recorded after every pull brackets the number of
//     points that actually followed it.
//   - Containment: bounded runs without prefill stay inside [0,1)^d.
//   - Prefill oracle: points injected between pulls get the StaysLegal answer
//     the case expects, and are then restricted.
//   - Protocol: radius and type do not change over a run.
//
// Maximality is not checked.
//
// # Driving a case
//
//	c := harness.Case[float64]{
//		Name:           "multiple too close",
//		Dim:            2,
//		Samples:        101,
//		RelativeRadius: 0.8,
//		Seeds:          5,
//		Type:           poisson.Bounded,
//		Prefill:        harness.NearLast[float64](harness.SequentialSeed()),
//		Expect:         harness.AlwaysIllegal,
//	}
//	reports, err := harness.RunAll(c, algorithm.Families[float64]())
//
// Seeds are derived from the run index with DeriveSeed, so a failing seed is
// reproduced by its index alone. Every failure is a *Violation; branch on its
// class with errors.Is against ErrProtocolViolation, ErrGeometricViolation,
// ErrPrefillViolation, ErrDomainViolation or ErrBudgetExhausted.
//
// The driver is single-threaded and synchronous. Pull and injection budgets
// (WithPullBudget, WithInjectionBudget) turn a generator that never ends into
// an ErrBudgetExhausted failure.
package harness
