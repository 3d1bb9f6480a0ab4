// SPDX-License-Identifier: MIT
// Package: poisson/algorithm
//
// kind.go — tagged enum over the generator families.
//
// Design:
//   • Kind is the call-site selector; New maps it onto a concrete Creator.
//   • Families lists every family in a stable order (Ebeida, then Bridson).

package algorithm

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/poisson"
	"github.com/katalvlaran/poisson/geom"
)

// Kind enumerates the generator families.
type Kind int

// Enum values (stable ordering).
const (
	KindEbeida Kind = iota
	KindBridson
)

// String provides a readable identifier for logs/errors (deterministic).
func (k Kind) String() string {
	switch k {
	case KindEbeida:
		return MethodEbeida
	case KindBridson:
		return MethodBridson
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Kinds returns every family in run order.
func Kinds() []Kind {
	return []Kind{KindEbeida, KindBridson}
}

// ParseKind maps a case-insensitive family name onto its Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ebeida":
		return KindEbeida, nil
	case "bridson":
		return KindBridson, nil
	}
	return 0, fmt.Errorf("ParseKind: %w: %q", ErrUnknownKind, s)
}

// New returns the creator for k configured with opts.
func New[F geom.Float](k Kind, opts ...Option) (poisson.Creator[F], error) {
	switch k {
	case KindEbeida:
		return NewEbeida[F](opts...), nil
	case KindBridson:
		return NewBridson[F](opts...), nil
	}
	return nil, fmt.Errorf("New: %w: %s", ErrUnknownKind, k)
}

// Families returns a creator per family, Ebeida first, sharing opts.
func Families[F geom.Float](opts ...Option) []poisson.Creator[F] {
	return []poisson.Creator[F]{NewEbeida[F](opts...), NewBridson[F](opts...)}
}
