// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dispatch

import (
	"errors"
	"fmt"

	"rivaas.dev/dispatch/route"
)

var (
	// ErrGrowthLimitInvalid indicates that the table growth limit must be
	// at least 1 (a limit of g searches table sizes up to g times the key
	// count).
	ErrGrowthLimitInvalid = errors.New("dispatch: table growth limit must be at least 1")

	// ErrNoLinkStrategies indicates that the linker was configured with an
	// empty strategy list.
	ErrNoLinkStrategies = errors.New("dispatch: at least one link strategy is required")
)

// DuplicateRouteError reports two input routes sharing one (method, path)
// key. Duplicates abort the build; the error names both offending routes.
type DuplicateRouteError struct {
	Method string
	Path   string
	First  route.Record // first route registered for the key
	Second route.Record // the repeated route
}

func (e *DuplicateRouteError) Error() string {
	return fmt.Sprintf("dispatch: duplicate route %s %s (handlers %q and %q)",
		e.Method, e.Path, e.First.HandlerID, e.Second.HandlerID)
}

// HashGenerationError reports that no collision-free table was found for
// a key set within the configured size bound. Scope identifies which
// table failed: "global" for the combined method:path table, otherwise
// the method of the failing bucket.
//
// Recoverable: the caller may rebuild with a larger growth limit
// (WithTableGrowthLimit) or fall back to non-perfect ordered dispatch.
type HashGenerationError struct {
	Scope string // "global" or a bucket method
	Keys  int    // number of keys that failed to place
	err   error
}

func (e *HashGenerationError) Error() string {
	return fmt.Sprintf("dispatch: perfect hash generation failed for %s table (%d keys): %v",
		e.Scope, e.Keys, e.err)
}

func (e *HashGenerationError) Unwrap() error {
	return e.err
}
