// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package trampoline implements the short-lived executable spawned by a
// tracer to load shared libraries into its own process image and invoke one
// argument-less exported symbol from the primary one. The exit code encodes
// exactly where the sequence failed, so the parent can tell a bad argument
// vector from a missing dependency from a missing symbol without parsing any
// output.
package trampoline

import (
	"fmt"
	"io"
	"os"

	"github.com/DataDog/go-trampoline/internal/diag"
	"github.com/DataDog/go-trampoline/internal/dl"
)

// Trampoline runs the linear load-invoke-release sequence for one decoded
// argument vector. A process runs exactly one Trampoline exactly once.
type Trampoline struct {
	loader dl.Loader
	sink   *diag.Sink
	stdout io.Writer
}

// New returns a Trampoline using the platform dynamic loader and reporting
// failures to sink.
func New(sink *diag.Sink) *Trampoline {
	return &Trampoline{
		loader: dl.NewSystemLoader(),
		sink:   sink,
		stdout: os.Stdout,
	}
}

// Main decodes argv, runs the trampoline sequence with the sink selected from
// the environment and returns the process exit code. It is the whole program
// behind cmd/trampoline.
func Main(argv []string) Code {
	sink := diag.NewSinkFromEnv()
	defer sink.Close()

	return New(sink).Run(argv)
}

// Run executes the sequence: parse, remove the self marker, self-test
// short-circuit, load additional libraries (unlinking the flagged ones after
// their load returns), load the primary library, resolve the symbol, invoke
// it, release every handle. Each failure writes one diagnostic and returns
// the code assigned to that failure point; nothing past the self-test branch
// can return CodeOK on an error.
func (t *Trampoline) Run(argv []string) Code {
	spec, err := ParseInvocation(argv)
	if err != nil {
		t.sink.Reportf("%v", err)
		return CodeArgumentContract
	}

	t.debugDump(spec)

	if spec.SelfMarker != "" {
		// The marker is this trampoline's own disposable launcher artifact;
		// it goes away before anything else happens, self-test included.
		_ = os.Remove(spec.SelfMarker)
	}

	if spec.SelfTest() {
		fmt.Fprintf(t.stdout, "%s %s", spec.PrimaryLibraryPath, spec.SymbolName)
		return CodeOK
	}

	handles := make([]dl.Handle, 0, len(spec.AdditionalLibraries))
	for _, lib := range spec.AdditionalLibraries {
		handle, err := t.loader.Open(lib.Path)
		if err != nil {
			t.sink.Reportf("%v", err)
			return CodeAdditionalLoad
		}
		handles = append(handles, handle)
		if lib.UnlinkAfterLoad {
			// Unlink strictly after the load call returned: removing the
			// file first breaks the load on some platforms.
			_ = os.Remove(lib.Path)
		}
	}

	primary, err := t.loader.Open(spec.PrimaryLibraryPath)
	if err != nil {
		t.sink.Reportf("%v", err)
		return CodePrimaryLoad
	}

	// The symbol is resolved against the primary handle only, never against
	// the additional ones.
	fn, err := t.loader.Resolve(primary, spec.SymbolName)
	if err != nil || fn == 0 {
		if err == nil {
			err = fmt.Errorf("symbol '%s' resolved to a nil address in '%s'", spec.SymbolName, spec.PrimaryLibraryPath)
		}
		t.sink.Reportf("%v", err)
		return CodeResolve
	}

	if err := tryCall(func() error {
		t.loader.InvokeUnchecked(fn)
		return nil
	}); err != nil {
		// A panic crossing the call boundary is a crash, not an exit code:
		// record it, then let it take the process down like any other crash
		// of the invoked symbol would.
		t.sink.Reportf("%v", err)
		panic(err)
	}

	// Release order is not part of the contract, only exhaustiveness is.
	_ = t.loader.Close(primary)
	for _, handle := range handles {
		_ = t.loader.Close(handle)
	}

	return CodeOK
}
