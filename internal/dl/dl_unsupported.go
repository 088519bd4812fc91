// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Build when the target OS or architecture are not supported
//go:build !windows && (!(linux || darwin) || (!amd64 && !arm64))

package dl

import (
	"fmt"
	"runtime"
)

type systemLoader struct{}

func unsupportedTargetError() error {
	return fmt.Errorf("the target operating-system %s or architecture %s are not supported", runtime.GOOS, runtime.GOARCH)
}

func (systemLoader) Open(path string) (Handle, error) {
	return 0, unsupportedTargetError()
}

func (systemLoader) Resolve(handle Handle, name string) (uintptr, error) {
	return 0, unsupportedTargetError()
}

func (systemLoader) InvokeUnchecked(fn uintptr) {
}

func (systemLoader) Close(handle Handle) error {
	return nil
}
