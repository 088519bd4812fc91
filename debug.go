// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package trampoline

import (
	"os"

	jsoniter "github.com/json-iterator/go"
)

// DebugEnv, when set to "1", makes the trampoline write the decoded
// invocation to the diagnostic sink as a single JSON line before any load,
// so a parent debugging an injection failure can see exactly how the
// argument vector decoded. It never changes exit codes.
const DebugEnv = "DD_SPAWN_TRAMPOLINE_DEBUG"

func (t *Trampoline) debugDump(spec *InvocationSpec) {
	if os.Getenv(DebugEnv) != "1" {
		return
	}

	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(spec)
	if err != nil {
		return
	}
	t.sink.Reportf("decoded invocation: %s", out)
}
