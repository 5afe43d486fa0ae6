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

package api

import "github.com/queryfabric/queryd/catalog"

// CatalogRegistration encapsulates the data sent by a client to create or update a catalog
type CatalogRegistration struct {
	CatalogName   string            `json:"catalogName"`
	ConnectorName string            `json:"connectorName"`
	Properties    map[string]string `json:"properties,omitempty"`
}

func (reg *CatalogRegistration) toDefinition() *catalog.Definition {
	return &catalog.Definition{
		CatalogName:   reg.CatalogName,
		ConnectorName: reg.ConnectorName,
		Properties:    reg.Properties,
	}
}

// CatalogNames is the response body of the list operation
type CatalogNames struct {
	Catalogs []string `json:"catalogs"`
}
