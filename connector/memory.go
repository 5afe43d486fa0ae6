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

package connector

// MemoryFactoryName is the connector type name of the built-in in-memory connector
const MemoryFactoryName = "memory"

// NewMemoryFactory creates a factory for the built-in in-memory connector,
// used for development and testing. The connector holds its configuration
// and backs no external data source.
func NewMemoryFactory() Factory {
	return &memoryFactory{}
}

type memoryFactory struct{}

func (f *memoryFactory) Name() string {
	return MemoryFactoryName
}

func (f *memoryFactory) Create(catalogName string, properties map[string]string) (Connector, error) {
	props := make(map[string]string, len(properties))
	for key, value := range properties {
		props[key] = value
	}
	return &memoryConnector{catalogName: catalogName, properties: props}, nil
}

type memoryConnector struct {
	catalogName string
	properties  map[string]string
}

func (c *memoryConnector) Shutdown() {}
