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
	"github.com/gin-gonic/gin"

	"rivaas.dev/dispatch/route"
)

// FromGin collects the route table of a Gin engine into dispatch
// records. The handler identifier is Gin's registered handler name,
// which is the fully qualified function name (for example
// "main.listUsers"); pair it with the dispatch linker's suffix strategy
// to resolve against short catalog names.
//
// Paths are taken verbatim, so Gin parameter patterns like "/users/:id"
// stay literal strings in the compiled plan.
func FromGin(engine *gin.Engine) []route.Record {
	if engine == nil {
		return nil
	}

	routes := engine.Routes()
	records := make([]route.Record, 0, len(routes))

	for _, r := range routes {
		records = append(records, route.Record{
			Method:    r.Method,
			Path:      r.Path,
			HandlerID: r.Handler,
		})
	}

	return records
}
