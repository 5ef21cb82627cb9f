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

package perfecthash

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPerfectTable indicates that no collision-free table was found
	// within the candidate size range. Recoverable: callers may retry with
	// BuildBounded and a wider bound, or fall back to a non-perfect scan.
	ErrNoPerfectTable = errors.New("perfecthash: no collision-free table within size bound")

	// ErrSizeBoundTooSmall indicates that the requested maximum table size
	// is smaller than the key count, so no table could hold every key.
	ErrSizeBoundTooSmall = errors.New("perfecthash: size bound smaller than key count")

	// ErrTableCorrupt indicates that verification found a key whose
	// computed slot does not map back to it.
	ErrTableCorrupt = errors.New("perfecthash: table verification failed")
)

// DuplicateKeyError reports two input keys with identical contents.
// Duplicate keys can never occupy distinct slots, so construction stops
// immediately instead of trying larger table sizes.
type DuplicateKeyError struct {
	Key    string // the duplicated key
	First  int    // index of the first occurrence in the input
	Second int    // index of the colliding occurrence
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("perfecthash: duplicate key %q (inputs %d and %d)", e.Key, e.First, e.Second)
}
