// SPDX-License-Identifier: MIT
// Package: poisson/harness
//
// errors.go — violation taxonomy.
//
// Every check in this package fails with a *Violation. Callers branch on the
// failure class with errors.Is against the sentinels below, or pull the
// details out with errors.As.

package harness

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrProtocolViolation: the generator broke the adapter contract
	// (unsound size hint, changed radius or type, bad radius).
	ErrProtocolViolation = errors.New("harness: protocol violation")

	// ErrGeometricViolation: two emitted points are within 2r of each other.
	ErrGeometricViolation = errors.New("harness: geometric violation")

	// ErrPrefillViolation: StaysLegal disagreed with the case expectation.
	ErrPrefillViolation = errors.New("harness: prefill violation")

	// ErrDomainViolation: a bounded run emitted a point outside [0,1)^d.
	ErrDomainViolation = errors.New("harness: domain violation")

	// ErrBudgetExhausted: a run exceeded its pull or injection budget.
	ErrBudgetExhausted = errors.New("harness: budget exhausted")

	// ErrNoCreator indicates Run was given a nil creator.
	ErrNoCreator = errors.New("harness: nil creator")
)

// Kind classifies a Violation.
type Kind int

// Enum values (stable ordering).
const (
	KindProtocol Kind = iota
	KindGeometric
	KindPrefill
	KindDomain
	KindBudget
)

// String returns the lower-case class name.
func (k Kind) String() string {
	switch k {
	case KindProtocol:
		return "protocol"
	case KindGeometric:
		return "geometric"
	case KindPrefill:
		return "prefill"
	case KindDomain:
		return "domain"
	case KindBudget:
		return "budget"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindProtocol:
		return ErrProtocolViolation
	case KindGeometric:
		return ErrGeometricViolation
	case KindPrefill:
		return ErrPrefillViolation
	case KindDomain:
		return ErrDomainViolation
	case KindBudget:
		return ErrBudgetExhausted
	}
	return nil
}

// NoSeed marks a Violation raised outside a driver run.
const NoSeed = -1

// Violation is returned by every failed check. Points holds the offending
// points in their stable textual form.
type Violation struct {
	Kind      Kind
	Algorithm string
	Seed      int // seed index, NoSeed outside a driver run
	Message   string
	Points    []string
}

func (v *Violation) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "harness: %s violation in %s", v.Kind, v.Algorithm)
	if v.Seed != NoSeed {
		fmt.Fprintf(&b, " (seed %d)", v.Seed)
	}
	b.WriteString(": ")
	b.WriteString(v.Message)
	if len(v.Points) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(v.Points, " "))
		b.WriteString("]")
	}
	return b.String()
}

// Is reports whether target is the sentinel of v's Kind.
func (v *Violation) Is(target error) bool {
	s := v.Kind.sentinel()
	return s != nil && target == s
}

func violationf(kind Kind, algo string, points []string, format string, args ...interface{}) *Violation {
	return &Violation{
		Kind:      kind,
		Algorithm: algo,
		Seed:      NoSeed,
		Message:   fmt.Sprintf(format, args...),
		Points:    points,
	}
}
