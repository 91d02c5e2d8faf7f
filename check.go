// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kdebug

// Check verifies a precondition on function parameters. When the
// condition is false the kernel halts with the calling function's
// identity. Callable from any context.
func (d *Debug) Check(cond bool) {
	if checksEnabled && !cond {
		d.halt(callerName(1))
	}
}

// Assert verifies an internal invariant. The remark documents the
// invariant at the call site; it is not evaluated or stored. When the
// condition is false the kernel halts with the calling function's
// identity.
func (d *Debug) Assert(cond bool, remark string) {
	if assertsEnabled && !cond {
		d.halt(callerName(1))
	}
}
