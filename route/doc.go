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

// Package route defines the route record consumed by the dispatch
// compiler.
//
// A Record binds an HTTP method and a literal path pattern to a symbolic
// handler identifier. Records are produced once by a collector (see the
// collector package for framework adapters), normalized, and never
// mutated afterward; every artifact the compiler derives from them
// inherits that immutability.
//
// Path patterns are opaque strings here. Parameter placeholders such as
// ":id" carry no meaning at this layer; the compiler matches them as
// literals and leaves parameter extraction to whatever receives the
// matched pattern.
package route
