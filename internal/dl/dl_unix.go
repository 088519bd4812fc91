// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Purego only works on linux/macOS with amd64 and arm64 for now
//go:build (linux || darwin) && (amd64 || arm64)

package dl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

type systemLoader struct{}

func (systemLoader) Open(path string) (Handle, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_GLOBAL|purego.RTLD_LAZY)
	if err != nil {
		return 0, fmt.Errorf("error opening shared library '%s'. Reason: %w", path, err)
	}
	return Handle(handle), nil
}

func (systemLoader) Resolve(handle Handle, name string) (uintptr, error) {
	symbol, err := purego.Dlsym(uintptr(handle), name)
	if err != nil {
		return 0, fmt.Errorf("cannot load symbol '%s'. Reason: %w", name, err)
	}
	return symbol, nil
}

func (systemLoader) InvokeUnchecked(fn uintptr) {
	purego.SyscallN(fn)
}

func (systemLoader) Close(handle Handle) error {
	return purego.Dlclose(uintptr(handle))
}
