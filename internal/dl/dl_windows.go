// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build windows

package dl

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/windows"
)

type systemLoader struct{}

func (systemLoader) Open(path string) (Handle, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("error opening shared library '%s'. Reason: %w", path, err)
	}
	return Handle(handle), nil
}

func (systemLoader) Resolve(handle Handle, name string) (uintptr, error) {
	symbol, err := windows.GetProcAddress(windows.Handle(handle), name)
	if err != nil {
		return 0, fmt.Errorf("cannot load symbol '%s'. Reason: %w", name, err)
	}
	return symbol, nil
}

func (systemLoader) InvokeUnchecked(fn uintptr) {
	syscall.SyscallN(fn)
}

func (systemLoader) Close(handle Handle) error {
	return windows.FreeLibrary(windows.Handle(handle))
}
