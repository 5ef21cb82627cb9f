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

package collector

import (
	"github.com/labstack/echo/v4"

	"rivaas.dev/dispatch/route"
)

// FromEcho collects the route table of an Echo instance into dispatch
// records. The handler identifier is Echo's route name, which defaults
// to the handler's fully qualified function name; suffix matching in
// the dispatch linker maps it onto short catalog names.
//
// Paths are taken verbatim; Echo parameter patterns like "/users/:id"
// stay literal strings in the compiled plan.
func FromEcho(e *echo.Echo) []route.Record {
	if e == nil {
		return nil
	}

	routes := e.Routes()
	records := make([]route.Record, 0, len(routes))

	for _, r := range routes {
		if r == nil {
			continue
		}
		records = append(records, route.Record{
			Method:    r.Method,
			Path:      r.Path,
			HandlerID: r.Name,
		})
	}

	return records
}
