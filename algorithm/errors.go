package algorithm

import "errors"

// ErrUnknownKind indicates an algorithm name or Kind that no family implements.
var ErrUnknownKind = errors.New("algorithm: unknown kind")
