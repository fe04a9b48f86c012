// Copyright 2024 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

var StartTime = startTime

// ResetRegistryForTesting replaces the process-wide registry
// with a new one, forgetting the cached loggers.
func ResetRegistryForTesting() {
	defaultRegistry = NewRegistry()
}
