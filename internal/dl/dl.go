// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package dl abstracts the platform dynamic-loading API behind a single
// Loader capability with two real variants, the POSIX dlopen family and the
// Windows LoadLibrary family, selected at build time.
package dl

// Handle is an opaque reference to a successfully loaded shared library,
// valid only within the current process.
type Handle uintptr

// Loader loads shared libraries, resolves exported symbols and performs the
// raw zero-argument call the trampoline exists for.
type Loader interface {
	// Open loads the shared library at path with global symbol visibility and
	// lazy resolution, so libraries loaded later (including the primary one)
	// can bind symbols exported by this one.
	Open(path string) (Handle, error)

	// Resolve looks name up in the library behind handle.
	Resolve(handle Handle, name string) (uintptr, error)

	// InvokeUnchecked calls fn as a zero-argument function with no result.
	// The call is raw: nothing verifies that the symbol's real signature
	// matches that shape, so the caller owns the contract that it does. This
	// method is the single place in the module where an unverified native
	// call happens.
	InvokeUnchecked(fn uintptr)

	// Close releases handle. Each handle must be closed at most once.
	Close(handle Handle) error
}

// NewSystemLoader returns the Loader for the current platform. On targets
// with no supported dynamic-loading API every Open fails with a runtime
// GOOS/GOARCH error.
func NewSystemLoader() Loader {
	return systemLoader{}
}
