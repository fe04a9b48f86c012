// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swarmlog holds the build information of the swarmlog module.
package swarmlog

import (
	"strconv"
	"sync"
	"time"
)

// Set at build time with -ldflags "-X github.com/ethersphere/swarmlog.commit=...".
var (
	release = "0.3.0"
	commit  string
	built   string
)

// Version is the release number followed by the commit
// hash, or by "dev" for builds without one.
var Version = release + "-" + orDev(commit)

var (
	builtOnce sync.Once
	builtAt   string
)

// CommitTime returns the unix time the binary was built from. Builds
// which do not set it report the time of the first call instead.
func CommitTime() string {
	builtOnce.Do(func() {
		builtAt = built
		if builtAt == "" {
			builtAt = strconv.FormatInt(time.Now().Unix(), 10)
		}
	})
	return builtAt
}

func orDev(s string) string {
	if s == "" {
		return "dev"
	}
	return s
}
