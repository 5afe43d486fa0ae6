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

// Package connector defines and implements the registry of live connectors
// backing the catalogs served by this node.
package connector

// ID is the identifier of an active connector. It is derived deterministically
// from the catalog name the connector is registered under, and is the token
// advertised to the cluster through the node's announcement.
type ID string

func (id ID) String() string {
	return string(id)
}

// Connector is a live, configured binding to an external data source.
type Connector interface {

	// Shutdown deactivates the connector and releases any resources it holds
	Shutdown()
}

// Factory constructs connectors of a single type, identified by Name
type Factory interface {
	Name() string
	Create(catalogName string, properties map[string]string) (Connector, error)
}
