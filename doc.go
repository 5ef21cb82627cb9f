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

// Package dispatch compiles a fixed set of HTTP route declarations into
// an immutable, deterministic dispatch plan ahead of time, trading
// startup work for zero-allocation constant-shape request matching.
//
// The pipeline runs in well-defined phases:
//
//  1. Normalize route records (uppercase methods, default paths).
//  2. Reject duplicate (method, path) pairs.
//  3. Build a perfect hash table over combined "METHOD:path" keys
//     (see the perfecthash subpackage).
//  4. Partition routes into per-method buckets, each with its own
//     perfect hash over path strings.
//  5. Link symbolic handler identifiers against a caller-supplied
//     catalog, exact name first, then suffix matching.
//  6. Generate the ordered evaluation plan: buckets in method order,
//     steps within a bucket in ascending slot order, ending in the
//     not-found default.
//
// Matching is exact string comparison. Paths are opaque literals - a
// route registered as "/users/:id" matches only the literal string
// "/users/:id". Parameter extraction, wildcards, and middleware belong
// to the runtime router consuming the plan, not to this compiler.
//
// # Quick Start
//
//	plan, report, err := dispatch.Compile(ctx,
//	    []route.Record{
//	        {Method: "GET", Path: "/users", HandlerID: "listUsers"},
//	        {Method: "POST", Path: "/users", HandlerID: "createUser"},
//	    },
//	    dispatch.Catalog{
//	        "listUsers":  listUsers,
//	        "createUser": createUser,
//	    },
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, ok := plan.Dispatch("GET", "/users", req)
//
// # Configuration
//
// Behavior is tuned through functional options on the Compiler:
//
//	c := dispatch.MustNew(
//	    dispatch.WithTableGrowthLimit(4),
//	    dispatch.WithDiagnostics(dispatch.SlogDiagnostics(slog.Default())),
//	    dispatch.WithMetrics(rec),
//	)
//	plan, report, err := c.Compile(ctx, records, catalog)
//
// Unresolved handler identifiers are warnings, not errors: the build
// completes, the Report lists them, and dispatching to such a route
// yields a MissingHandler value instead of invoking anything.
//
// Plans and reports are immutable after Compile returns and safe for
// concurrent use.
package dispatch
