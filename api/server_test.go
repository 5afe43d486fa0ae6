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

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queryfabric/queryd/catalog"
	"github.com/queryfabric/queryd/connector"
	"github.com/queryfabric/queryd/discovery"
	"github.com/queryfabric/queryd/utils/i18n"
	"github.com/queryfabric/queryd/utils/logging"
)

const (
	testServiceType = "queryd"
	testDirectory   = "/tmp/queryd-api-test"
)

func init() {
	i18n.SupressTestingErrorMessages()
}

type testServer struct {
	handler   http.Handler
	announcer discovery.Announcer
}

func setupTestServer(t *testing.T) *testServer {
	require.NoError(t, os.RemoveAll(testDirectory))

	announcer, err := discovery.NewAnnouncer(&discovery.Config{
		BackendType: discovery.MemoryBackend,
		Node:        "test-node",
	})
	require.NoError(t, err)
	announcer.AddServiceAnnouncement(testServiceType, map[string]string{
		catalog.ConnectorIDsProperty: "",
	})

	registry := connector.NewRegistry(connector.NewMemoryFactory())

	store, err := catalog.NewPropertyStore(testDirectory)
	require.NoError(t, err)

	coordinator := catalog.NewCoordinator(registry,
		catalog.NewSynchronizer(announcer, testServiceType), store)

	s := &server{
		config: &Config{
			Coordinator: coordinator,
			Registry:    registry,
		},
		logger: logging.GetLogger(module),
	}
	handler, err := s.setup()
	require.NoError(t, err)

	return &testServer{handler: handler, announcer: announcer}
}

func (ts *testServer) do(t *testing.T, method, url string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	ts.handler.ServeHTTP(recorder, req)
	return recorder
}

func (ts *testServer) connectorIDs() string {
	for _, announcement := range ts.announcer.ServiceAnnouncements() {
		if announcement.Type == testServiceType {
			return announcement.Properties[catalog.ConnectorIDsProperty]
		}
	}
	return "<no announcement>"
}

func TestCatalogLifecycleScenario(t *testing.T) {
	ts := setupTestServer(t)
	defer func() { _ = os.RemoveAll(testDirectory) }()

	// Create
	recorder := ts.do(t, "PUT", CatalogsURL(), &CatalogRegistration{
		CatalogName:   "sales",
		ConnectorName: "memory",
		Properties:    map[string]string{"url": "jdbc:x"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "sales", ts.connectorIDs())

	// Rename with new properties
	recorder = ts.do(t, "POST", CatalogURL("sales"), &CatalogRegistration{
		CatalogName:   "sales2",
		ConnectorName: "memory",
		Properties:    map[string]string{"url": "jdbc:y"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "sales2", ts.connectorIDs())

	// List
	recorder = ts.do(t, "GET", CatalogsURL(), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var names CatalogNames
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &names))
	assert.Equal(t, []string{"sales2"}, names.Catalogs)

	// Delete
	recorder = ts.do(t, "DELETE", CatalogURL("sales2"), nil)
	require.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "", ts.connectorIDs())
}

func TestCreateCatalogValidation(t *testing.T) {
	ts := setupTestServer(t)
	defer func() { _ = os.RemoveAll(testDirectory) }()

	recorder := ts.do(t, "PUT", CatalogsURL(), &CatalogRegistration{
		ConnectorName: "memory",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = ts.do(t, "PUT", CatalogsURL(), &CatalogRegistration{
		CatalogName: "sales",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	assert.Equal(t, "", ts.connectorIDs())
}

func TestCreateCatalogMalformedPayload(t *testing.T) {
	ts := setupTestServer(t)
	defer func() { _ = os.RemoveAll(testDirectory) }()

	req, err := http.NewRequest("PUT", CatalogsURL(), bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	ts.handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateCatalogUnknownConnector(t *testing.T) {
	ts := setupTestServer(t)
	defer func() { _ = os.RemoveAll(testDirectory) }()

	recorder := ts.do(t, "PUT", CatalogsURL(), &CatalogRegistration{
		CatalogName:   "sales",
		ConnectorName: "mystery",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "", ts.connectorIDs())
}

func TestCreateCatalogMissingAnnouncement(t *testing.T) {
	ts := setupTestServer(t)
	defer func() { _ = os.RemoveAll(testDirectory) }()

	announcements := ts.announcer.ServiceAnnouncements()
	require.Len(t, announcements, 1)
	ts.announcer.RemoveServiceAnnouncement(announcements[0].ID)

	recorder := ts.do(t, "PUT", CatalogsURL(), &CatalogRegistration{
		CatalogName:   "sales",
		ConnectorName: "memory",
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestDeleteAbsentCatalogSucceeds(t *testing.T) {
	ts := setupTestServer(t)
	defer func() { _ = os.RemoveAll(testDirectory) }()

	recorder := ts.do(t, "DELETE", CatalogURL("absent"), nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = ts.do(t, "DELETE", CatalogURL("absent"), nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestUptimeRoute(t *testing.T) {
	ts := setupTestServer(t)
	defer func() { _ = os.RemoveAll(testDirectory) }()

	recorder := ts.do(t, "GET", "/uptime", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHealthRoute(t *testing.T) {
	ts := setupTestServer(t)
	defer func() { _ = os.RemoveAll(testDirectory) }()

	recorder := ts.do(t, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
