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

package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/queryfabric/queryd/utils/logging"
)

// ConnectorNameKey is the document key holding the connector type name.
// It is always the first line of a catalog property document.
const ConnectorNameKey = "connector.name"

const propertiesExtension = ".properties"

// PropertyStore persists the durable configuration of each catalog as a
// line-oriented key=value document under a fixed directory, one document per
// catalog name. The documents survive a restart, which may re-read them to
// re-register the node's catalogs.
type PropertyStore struct {
	directory string
	logger    *log.Entry
}

// NewPropertyStore creates a property store rooted at the given directory,
// creating the directory if needed
func NewPropertyStore(directory string) (*PropertyStore, error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return nil, err
	}
	return &PropertyStore{
		directory: directory,
		logger:    logging.GetLogger(module),
	}, nil
}

// Write persists the document for the given definition, overwriting any
// prior document stored under the same catalog name
func (s *PropertyStore) Write(definition *Definition) error {
	var buffer bytes.Buffer
	fmt.Fprintf(&buffer, "%s=%s\n", ConnectorNameKey, definition.ConnectorName)
	for key, value := range definition.Properties {
		fmt.Fprintf(&buffer, "%s=%s\n", key, value)
	}

	return os.WriteFile(s.filename(definition.CatalogName), buffer.Bytes(), 0644)
}

// Remove deletes the document for the given catalog name. A missing document is not an error.
func (s *PropertyStore) Remove(catalogName string) error {
	err := os.Remove(s.filename(catalogName))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Read loads the document for the given catalog name back into a definition
func (s *PropertyStore) Read(catalogName string) (*Definition, error) {
	file, err := os.Open(s.filename(catalogName))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	definition := &Definition{
		CatalogName: catalogName,
		Properties:  make(map[string]string),
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("malformed property line %q in document for catalog %q", line, catalogName)
		}
		if key == ConnectorNameKey {
			definition.ConnectorName = value
			continue
		}
		definition.Properties[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return definition, nil
}

// List returns the catalog names that currently have a stored document
func (s *PropertyStore) List() ([]string, error) {
	filenames, err := filepath.Glob(filepath.Join(s.directory, "*"+propertiesExtension))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(filenames))
	for _, filename := range filenames {
		base := filepath.Base(filename)
		names = append(names, strings.TrimSuffix(base, propertiesExtension))
	}
	return names, nil
}

func (s *PropertyStore) filename(catalogName string) string {
	return filepath.Join(s.directory, catalogName+propertiesExtension)
}
