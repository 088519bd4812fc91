package trampoline

import (
	"errors"
	"fmt"
)

// ErrArgumentContract is returned when the argument vector does not satisfy
// the positional contract.
var ErrArgumentContract = errors.New("malformed argument vector")

// Code is a trampoline process exit code. The parent relies on these values
// to tell exactly where the sequence failed, so they are part of the wire
// contract and must never be renumbered.
type Code int

const (
	// CodeOK is returned on a successful invocation or a self-test match.
	CodeOK Code = 0
	// CodeAdditionalLoad is returned when an additional library failed to load.
	CodeAdditionalLoad Code = 9
	// CodePrimaryLoad is returned when the primary library failed to load.
	CodePrimaryLoad Code = 10
	// CodeResolve is returned when symbol resolution failed.
	CodeResolve Code = 11
	// CodeArgumentContract is returned on a malformed argument count.
	CodeArgumentContract Code = 12
)

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeAdditionalLoad:
		return "additional library load failed"
	case CodePrimaryLoad:
		return "primary library load failed"
	case CodeResolve:
		return "symbol resolution failed"
	case CodeArgumentContract:
		return "malformed argument vector"
	default:
		return fmt.Sprintf("unknown exit code %d", int(c))
	}
}
