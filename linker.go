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
	"slices"
	"strings"
)

// Handler is the callable a route dispatches to. It receives the opaque
// inbound request value and returns an opaque response value; the
// compiler never inspects either.
type Handler func(req any) any

// Catalog maps handler names to callables. It is supplied by the caller
// (typically generated from the application's function table) and read
// once during linking.
type Catalog map[string]Handler

// MatchStrategy resolves a symbolic handler identifier against a catalog.
// Strategies are evaluated in order; the first hit wins. Modeling
// resolution as an ordered strategy list keeps the precedence contract
// explicit and lets new strategies slot in without branching sprawl.
type MatchStrategy interface {
	// Name tags the strategy in bindings and diagnostics.
	Name() string

	// Resolve returns the matched handler and the catalog name it was
	// found under, or ok=false when the strategy has no match.
	Resolve(handlerID string, catalog Catalog) (h Handler, catalogName string, ok bool)
}

// ExactStrategy matches a handler identifier against catalog names
// verbatim.
func ExactStrategy() MatchStrategy {
	return exactStrategy{}
}

type exactStrategy struct{}

func (exactStrategy) Name() string { return "exact" }

func (exactStrategy) Resolve(handlerID string, catalog Catalog) (Handler, string, bool) {
	h, ok := catalog[handlerID]
	if !ok {
		return nil, "", false
	}

	return h, handlerID, true
}

// SuffixStrategy matches on short names: both the handler identifier and
// each catalog name are stripped of any module or namespace qualifier at
// the last separator ('.', '/', or ':'), and the remaining short names
// are compared. Catalog names are scanned in sorted order so that an
// ambiguous short name resolves deterministically to the
// lexicographically-first entry.
func SuffixStrategy() MatchStrategy {
	return suffixStrategy{}
}

type suffixStrategy struct{}

func (suffixStrategy) Name() string { return "suffix" }

func (suffixStrategy) Resolve(handlerID string, catalog Catalog) (Handler, string, bool) {
	want := shortName(handlerID)
	if want == "" {
		return nil, "", false
	}

	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if shortName(name) == want {
			return catalog[name], name, true
		}
	}

	return nil, "", false
}

// shortName strips a module/namespace qualifier: everything up to and
// including the last '.', '/', or ':' is dropped.
func shortName(name string) string {
	if idx := strings.LastIndexAny(name, "./:"); idx >= 0 {
		return name[idx+1:]
	}

	return name
}

// Binding is the outcome of resolving one handler identifier. Unresolved
// identifiers are recorded, not fatal: the corresponding dispatch leaf
// emits a missing-handler diagnostic value instead of invoking anything.
type Binding struct {
	HandlerID   string  // the identifier that was resolved
	Handler     Handler // nil when unresolved
	CatalogName string  // catalog entry that matched, empty when unresolved
	Strategy    string  // name of the strategy that matched, empty when unresolved
	Resolved    bool
}

// Linker resolves handler identifiers through an ordered strategy list.
// The default order - exact first, then suffix - is part of the linking
// contract and must not be reordered silently.
type Linker struct {
	strategies []MatchStrategy
}

// NewLinker creates a Linker with the given strategies, evaluated in
// order. With no arguments the default chain is ExactStrategy then
// SuffixStrategy.
func NewLinker(strategies ...MatchStrategy) *Linker {
	if len(strategies) == 0 {
		strategies = []MatchStrategy{ExactStrategy(), SuffixStrategy()}
	}

	return &Linker{strategies: strategies}
}

// Resolve runs the strategy chain for handlerID against catalog.
// The returned Binding always carries the identifier; check Resolved
// before using the handler.
func (l *Linker) Resolve(handlerID string, catalog Catalog) Binding {
	for _, s := range l.strategies {
		if h, name, ok := s.Resolve(handlerID, catalog); ok {
			return Binding{
				HandlerID:   handlerID,
				Handler:     h,
				CatalogName: name,
				Strategy:    s.Name(),
				Resolved:    true,
			}
		}
	}

	return Binding{HandlerID: handlerID}
}
