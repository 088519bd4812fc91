// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package trampoline

import (
	"github.com/pkg/errors"
)

// SelfTestSentinel is the primary-library path that switches the trampoline
// into self-test mode: the decoded path and symbol name are echoed to stdout
// and nothing is ever loaded. Parents use it to verify the argument contract
// end to end without touching real libraries.
const SelfTestSentinel = "__dummy_mirror_test"

// markerToken is the bare `-` entry that flags the next listed additional
// library for removal once its load call has returned.
const markerToken = "-"

// AdditionalLibrary is one shared library loaded before the primary library,
// purely so the primary can bind symbols it exports.
type AdditionalLibrary struct {
	Path            string `json:"path"`
	UnlinkAfterLoad bool   `json:"unlink_after_load"`
}

// InvocationSpec is the decoded argument contract. It is built once by
// ParseInvocation and never mutated afterwards.
type InvocationSpec struct {
	// SelfMarker is the path of the trampoline's own disposable launcher
	// artifact, removed before any load. Empty means nothing to clean up.
	SelfMarker string `json:"self_marker"`
	// PrimaryLibraryPath is the library whose symbol will be invoked.
	PrimaryLibraryPath string `json:"primary_library_path"`
	// AdditionalLibraries are loaded, in order, before the primary library.
	AdditionalLibraries []AdditionalLibrary `json:"additional_libraries"`
	// SymbolName is resolved against the primary library only.
	SymbolName string `json:"symbol_name"`
}

// SelfTest reports whether the primary-library path is the self-test
// sentinel.
func (spec *InvocationSpec) SelfTest() bool {
	return spec.PrimaryLibraryPath == SelfTestSentinel
}

// ParseInvocation decodes a raw argument vector into an InvocationSpec.
//
// The contract is strictly positional:
//
//	trampoline <self_marker|""> <primary_library_path> [<-|additional_library_path> ...] <symbol_name>
//
// Entries strictly between the primary-library path and the symbol name form
// the additional-libraries list; a bare `-` in that range is not a path but a
// one-shot flag consumed by the entry that follows it. Fewer than 4 entries
// is an argument-contract violation.
func ParseInvocation(argv []string) (*InvocationSpec, error) {
	if len(argv) < 4 {
		return nil, errors.Wrapf(ErrArgumentContract, "got %d arguments, need at least 4", len(argv))
	}

	spec := &InvocationSpec{
		SelfMarker:         argv[1],
		PrimaryLibraryPath: argv[2],
		SymbolName:         argv[len(argv)-1],
	}

	unlinkNext := false
	for _, entry := range argv[3 : len(argv)-1] {
		if entry == markerToken {
			if unlinkNext {
				return nil, errors.Wrap(ErrArgumentContract, "consecutive '-' markers")
			}
			unlinkNext = true
			continue
		}
		spec.AdditionalLibraries = append(spec.AdditionalLibraries, AdditionalLibrary{
			Path:            entry,
			UnlinkAfterLoad: unlinkNext,
		})
		unlinkNext = false
	}
	// A trailing marker has no entry to apply to and is dropped.

	return spec, nil
}
