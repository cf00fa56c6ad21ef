/*
Copyright 2025 The Emerald Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package encoding

import (
	"github.com/spf13/pflag"
)

// The two cache limits bound how much memory resolution memoization may
// use. They trade memory for recomputation and never change results; zero
// disables the cache entirely.
var (
	compatQueryCacheSize  = 256
	encodingPairCacheSize = 64
)

// RegisterFlags installs the encoding subsystem's tunables on the given
// FlagSet. Values are read when a Registry is constructed.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.IntVar(&compatQueryCacheSize, "encoding-compat-query-cache-size", compatQueryCacheSize,
		"maximum number of memoized encoding compatibility query results (0 disables the cache)")
	fs.IntVar(&encodingPairCacheSize, "encoding-pair-cache-size", encodingPairCacheSize,
		"maximum number of memoized content-free encoding pair results (0 disables the cache)")
}
