// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpufeatures reports which CPU extensions relevant to field
// arithmetic are available on the running machine. It is diagnostic
// only: this module's arithmetic is pure Go and takes the same code
// path regardless of what is reported here, so nothing in Summary's
// output can influence a computed result or its timing.
package cpufeatures

import "golang.org/x/sys/cpu"

// Summary returns a short human-readable line describing the
// BMI2/ADX extensions the host CPU advertises. It exists for
// benchmark reports and bug reports, not for dispatch: unlike the
// assembly-backed field implementations this package's stack is
// descended from, there is no alternate BMI2 code path to select
// here, since specialized assembly is out of scope for this package.
func Summary() string {
	if !cpu.Initialized {
		return "cpu features: unknown (detection unavailable on this platform)"
	}
	bmi2 := "no"
	if cpu.X86.HasBMI2 {
		bmi2 = "yes"
	}
	adx := "no"
	if cpu.X86.HasADX {
		adx = "yes"
	}
	return "cpu features: BMI2=" + bmi2 + " ADX=" + adx
}
