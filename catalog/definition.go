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

// Package catalog implements dynamic catalog registration for a single node
// of the query-processing cluster. A catalog binds a user-facing name to a
// connector and its configuration. Every mutation keeps three stores in
// step: the connector registry serving queries, the durable per-catalog
// property document, and the node's cluster announcement.
package catalog

import "errors"

// Validation errors
var (
	ErrNilDefinition        = errors.New("catalog definition is required")
	ErrCatalogNameMissing   = errors.New("catalog name is required")
	ErrConnectorNameMissing = errors.New("connector name is required")
)

// Definition describes a single catalog: its user-facing name, the connector
// type backing it, and the connector's configuration properties. A definition
// is immutable once submitted; any change to a catalog is expressed as a new
// definition, never as an in-place mutation.
type Definition struct {
	CatalogName   string            `json:"catalogName"`
	ConnectorName string            `json:"connectorName"`
	Properties    map[string]string `json:"properties,omitempty"`
}

// Validate reports whether the definition carries all required fields
func (d *Definition) Validate() error {
	if d == nil {
		return ErrNilDefinition
	}
	if d.CatalogName == "" {
		return ErrCatalogNameMissing
	}
	if d.ConnectorName == "" {
		return ErrConnectorNameMissing
	}
	return nil
}
