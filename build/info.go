/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package build

import (
	"fmt"
	"runtime"
)

// Set by the linker: -X github.com/radondb/shardcore/build.tag=...
var (
	tag      = "unknown"
	git      string
	time     string
	platform = fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH)
)

// Info tuple.
type Info struct {
	Tag       string
	Time      string
	Git       string
	GoVersion string
	Platform  string
}

// GetInfo returns the build info of the shardcore binaries.
func GetInfo() Info {
	return Info{
		GoVersion: runtime.Version(),
		Tag:       "ShardCore-" + tag,
		Time:      time,
		Git:       git,
		Platform:  platform,
	}
}

// String returns the one line summary.
func (i Info) String() string {
	return fmt.Sprintf("%s (git:%s, time:%s, %s, %s)", i.Tag, i.Git, i.Time, i.GoVersion, i.Platform)
}
