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
	"fmt"
	"testing"

	"rivaas.dev/dispatch/route"
)

func benchmarkPlan(b *testing.B, routes int) *Plan {
	b.Helper()

	methods := []string{"GET", "POST", "PUT", "DELETE"}
	catalog := Catalog{}
	var records []route.Record

	for i := range routes {
		m := methods[i%len(methods)]
		id := fmt.Sprintf("handler%d", i)
		catalog[id] = echoHandler(id)
		records = append(records, route.Record{
			Method:    m,
			Path:      fmt.Sprintf("/api/v1/resource%d", i),
			HandlerID: id,
		})
	}

	plan, _, err := Compile(b.Context(), records, catalog)
	if err != nil {
		b.Fatal(err)
	}

	return plan
}

func BenchmarkDispatchHit(b *testing.B) {
	for _, routes := range []int{16, 64, 256} {
		b.Run(fmt.Sprintf("routes-%d", routes), func(b *testing.B) {
			plan := benchmarkPlan(b, routes)
			method, path := "GET", fmt.Sprintf("/api/v1/resource%d", routes-4)

			b.ReportAllocs()
			b.ResetTimer()
			for range b.N {
				plan.Dispatch(method, path, nil)
			}
		})
	}
}

func BenchmarkDispatchMiss(b *testing.B) {
	plan := benchmarkPlan(b, 256)

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		plan.Dispatch("GET", "/not/registered", nil)
	}
}

func BenchmarkCompile(b *testing.B) {
	methods := []string{"GET", "POST", "PUT", "DELETE"}
	catalog := Catalog{}
	var records []route.Record

	for i := range 128 {
		id := fmt.Sprintf("handler%d", i)
		catalog[id] = echoHandler(id)
		records = append(records, route.Record{
			Method:    methods[i%len(methods)],
			Path:      fmt.Sprintf("/api/v1/resource%d", i),
			HandlerID: id,
		})
	}

	c := MustNew()

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		if _, _, err := c.Compile(b.Context(), records, catalog); err != nil {
			b.Fatal(err)
		}
	}
}
