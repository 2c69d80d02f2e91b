// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package field

import "go.fe25519.dev/field/internal/cpufeatures"

// Diagnostics returns a short string describing CPU extensions
// available on the host. It is meant for logs and benchmark output;
// nothing in this package branches on its result, so it has no effect
// on what any Element computation returns or how long that
// computation takes.
func Diagnostics() string {
	return cpufeatures.Summary()
}
