package contract

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures produced while acquiring a contract instance.
type ErrorKind int

const (
	// KindNotFound means the artifact has no deployment recorded for the
	// network the transport is connected to.
	KindNotFound ErrorKind = iota + 1
	// KindABIMismatch means the constructor arguments could not be encoded
	// against the artifact's constructor signature.
	KindABIMismatch
	// KindTransport wraps any failure reported by the transport.
	KindTransport
	// KindUnresolvedLibrary means the bytecode still contains a library
	// placeholder when it was about to be broadcast.
	KindUnresolvedLibrary
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindABIMismatch:
		return "abi mismatch"
	case KindTransport:
		return "transport failure"
	case KindUnresolvedLibrary:
		return "unresolved library placeholder"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinel errors matching each ErrorKind with errors.Is
var (
	ErrNotFound          = errors.New("not found")
	ErrABIMismatch       = errors.New("abi mismatch")
	ErrTransport         = errors.New("transport failure")
	ErrUnresolvedLibrary = errors.New("unresolved library placeholder")
)

// Failures of a mined deployment, wrapped in a KindTransport error
var (
	ErrTransactionReverted = errors.New("deployment transaction reverted")
	ErrNoContractAddress   = errors.New("receipt has no contract address")
)

// Error is the error type returned by every operation in this package.
type Error struct {
	Kind ErrorKind
	// Op names the failing operation, e.g. "net_version" or "deploy".
	Op string
	// Artifact is the contract name of the artifact involved, if known.
	Artifact string
	// Network is the network identifier for KindNotFound.
	Network string
	// Placeholder is the leftover placeholder for KindUnresolvedLibrary.
	Placeholder string
	Err         error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		if e.Artifact != "" {
			return fmt.Sprintf("artifact %q has no deployment recorded for network %s", e.Artifact, e.Network)
		}
		return fmt.Sprintf("artifact has no deployment recorded for network %s", e.Network)
	case KindABIMismatch:
		return fmt.Sprintf("failed to encode constructor arguments: %v", e.Err)
	case KindUnresolvedLibrary:
		if name, ok := PlaceholderName(e.Placeholder); ok {
			return fmt.Sprintf("bytecode contains unresolved library placeholder %s (missing link for %q)", e.Placeholder, name)
		}
		return fmt.Sprintf("bytecode contains unresolved library placeholder %s", e.Placeholder)
	case KindTransport:
		if e.Op != "" {
			return fmt.Sprintf("%s: %v", e.Op, e.Err)
		}
		return fmt.Sprintf("transport failure: %v", e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrABIMismatch:
		return e.Kind == KindABIMismatch
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrUnresolvedLibrary:
		return e.Kind == KindUnresolvedLibrary
	}
	return false
}

// IsNotFound reports whether err is a KindNotFound error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func transportError(op string, err error) *Error {
	return &Error{Kind: KindTransport, Op: op, Err: err}
}
