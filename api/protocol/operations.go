// Copyright 2016 IBM Corporation
//
//   Licensed under the Apache License, Version 2.0 (the "License");
//   you may not use this file except in compliance with the License.
//   You may obtain a copy of the License at
//
//       http://www.apache.org/licenses/LICENSE-2.0
//
//   Unless required by applicable law or agreed to in writing, software
//   distributed under the License is distributed on an "AS IS" BASIS,
//   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//   See the License for the specific language governing permissions and
//   limitations under the License.

package protocol

import (
	"github.com/ant0ine/go-json-rest/rest"

	"github.com/queryfabric/queryd/api/env"
)

// Operation represents an operation exposed by the catalog API
type Operation string

// The current API operations
const (
	CreateCatalog Operation = "CreateCatalog"
	UpdateCatalog Operation = "UpdateCatalog"
	DeleteCatalog Operation = "DeleteCatalog"
	ListCatalogs  Operation = "ListCatalogs"
)

// String returns a string representation of this Operation value
func (op Operation) String() string {
	return string(op)
}

// APIHandler returns a wrapper HandlerFunc that injects the given operation
// into the HTTP request's context (r.Env) before calling the provided HandlerFunc.
func APIHandler(handler rest.HandlerFunc, operation Operation) rest.HandlerFunc {
	return func(w rest.ResponseWriter, r *rest.Request) {
		r.Env[env.APIOperation] = operation
		handler(w, r)
	}
}
