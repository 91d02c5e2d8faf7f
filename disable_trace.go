// Copyright 2024 The TinyRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build kdebug_disable_trace
// +build kdebug_disable_trace

package kdebug

const traceEnabled = false
