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

package dispatch_test

import (
	"context"
	"fmt"

	"rivaas.dev/dispatch"
	"rivaas.dev/dispatch/route"
)

func Example() {
	records := []route.Record{
		{Method: "GET", Path: "/users", HandlerID: "listUsers"},
		{Method: "POST", Path: "/users", HandlerID: "createUser"},
		{Method: "GET", Path: "/users/:id", HandlerID: "getUser"},
	}

	catalog := dispatch.Catalog{
		"listUsers":  func(any) any { return "all users" },
		"createUser": func(any) any { return "created" },
		"getUser":    func(any) any { return "one user" },
	}

	plan, report, err := dispatch.Compile(context.Background(), records, catalog)
	if err != nil {
		panic(err)
	}

	fmt.Printf("routes=%d table_size=%d load_factor=%.2f\n",
		report.Routes, report.TableSize, report.LoadFactor)

	result, ok := plan.Dispatch("GET", "/users", nil)
	fmt.Println(ok, result)

	// Paths are literal: ":id" is not a parameter at this layer.
	result, ok = plan.Dispatch("GET", "/users/42", nil)
	fmt.Println(ok, result)

	// Output:
	// routes=3 table_size=3 load_factor=1.00
	// true all users
	// false not found
}

func ExampleCompiler_Compile_unresolvedHandler() {
	records := []route.Record{
		{Method: "GET", Path: "/ghost", HandlerID: "ghostHandler"},
	}

	c := dispatch.MustNew()
	plan, report, err := c.Compile(context.Background(), records, dispatch.Catalog{})
	if err != nil {
		panic(err)
	}

	fmt.Println("unresolved:", len(report.Unresolved))

	result, ok := plan.Dispatch("GET", "/ghost", nil)
	fmt.Println(ok, result)

	// Output:
	// unresolved: 1
	// true handler missing: ghostHandler
}
