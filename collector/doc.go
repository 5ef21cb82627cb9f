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

// Package collector extracts route declarations from existing web
// framework instances so they can be fed to the dispatch compiler.
//
// A common migration path starts from an application that already
// declares its routes on a Gin engine or an Echo instance. Rather than
// re-declaring the route table by hand, collect it:
//
//	records := collector.FromGin(engine)
//	plan, report, err := dispatch.Compile(ctx, records, catalog)
//
// The collectors read route metadata only (method, path, registered
// handler name); they never invoke or wrap the framework's handlers.
// Handler names become symbolic identifiers resolved later against the
// dispatch catalog, typically via suffix matching since frameworks
// report fully qualified function names.
package collector
