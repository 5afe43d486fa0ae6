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
	log "github.com/sirupsen/logrus"

	"github.com/queryfabric/queryd/connector"
	"github.com/queryfabric/queryd/utils/logging"
)

const module = "CATALOG"

// SyncReport captures the per-step outcome of a catalog operation across the
// three stores. A persistence failure does not fail the operation; it is
// recorded here so callers and tests can observe the divergence between the
// live registry state and the durable documents.
type SyncReport struct {

	// Registry is true once the connector registry reflects the operation
	Registry bool

	// Announcement is true once the cluster announcement reflects the operation
	Announcement bool

	// Persistence holds the swallowed error of the property store step, if any
	Persistence error
}

func (r *SyncReport) mergePersistence(other *SyncReport) {
	if r.Persistence == nil {
		r.Persistence = other.Persistence
	}
}

// Coordinator sequences catalog mutations across the connector registry, the
// durable property store, and the cluster announcement. Each operation runs
// its sequences to completion synchronously; a fault mid-sequence leaves the
// completed steps in place, there is no rollback and no retry.
type Coordinator struct {
	registry     connector.Registry
	synchronizer *Synchronizer
	store        *PropertyStore
	logger       *log.Entry
}

// NewCoordinator creates a coordinator over the given collaborators
func NewCoordinator(registry connector.Registry, synchronizer *Synchronizer, store *PropertyStore) *Coordinator {
	return &Coordinator{
		registry:     registry,
		synchronizer: synchronizer,
		store:        store,
		logger:       logging.GetLogger(module),
	}
}

// CreateCatalog registers the catalog described by the given definition.
// Any connection already active under the definition's catalog name is
// dropped first, so a stale registration with different properties or
// connector type never survives a create.
func (c *Coordinator) CreateCatalog(definition *Definition) (*SyncReport, error) {
	if err := definition.Validate(); err != nil {
		return nil, err
	}

	dropped, err := c.dropConnection(definition.CatalogName)
	if err != nil {
		return dropped, err
	}

	report, err := c.createConnection(definition)
	report.mergePersistence(dropped)
	return report, err
}

// UpdateCatalog replaces the catalog registered under originName with the
// given definition, which may carry a different catalog name (a rename).
// Both the origin name and the destination name are dropped before the
// create: a rename and an overwrite are indistinguishable from the single
// definition submitted, and neither stale slot may survive.
func (c *Coordinator) UpdateCatalog(originName string, definition *Definition) (*SyncReport, error) {
	if originName == "" {
		return nil, ErrCatalogNameMissing
	}
	if err := definition.Validate(); err != nil {
		return nil, err
	}

	droppedOrigin, err := c.dropConnection(originName)
	if err != nil {
		return droppedOrigin, err
	}

	droppedTarget, err := c.dropConnection(definition.CatalogName)
	droppedTarget.mergePersistence(droppedOrigin)
	if err != nil {
		return droppedTarget, err
	}

	report, err := c.createConnection(definition)
	report.mergePersistence(droppedTarget)
	return report, err
}

// DeleteCatalog drops the catalog registered under the given name.
// Deleting an absent catalog succeeds silently.
func (c *Coordinator) DeleteCatalog(catalogName string) (*SyncReport, error) {
	if catalogName == "" {
		return nil, ErrCatalogNameMissing
	}

	return c.dropConnection(catalogName)
}

// createConnection registers the connector, announces its identifier, and
// persists the property document, in that order. A registry fault aborts
// before anything else is touched. An announcement fault propagates with the
// connector left active and unannounced until an operator intervenes or the
// node restarts. A persistence fault is logged and recorded in the report
// but never fails the operation.
func (c *Coordinator) createConnection(definition *Definition) (*SyncReport, error) {
	report := &SyncReport{}

	connectorID, err := c.registry.CreateConnection(definition.CatalogName, definition.ConnectorName, definition.Properties)
	if err != nil {
		return report, err
	}
	report.Registry = true

	if err := c.synchronizer.ApplyDelta(connectorID, Add); err != nil {
		return report, err
	}
	report.Announcement = true

	if err := c.store.Write(definition); err != nil {
		c.logger.WithFields(log.Fields{
			"error":   err,
			"catalog": definition.CatalogName,
		}).Warn("Failed to persist catalog properties; the catalog is active but will not survive a restart")
		report.Persistence = err
	}

	return report, nil
}

// dropConnection is the reverse sequence of createConnection, with the same
// fault policy. Dropping a name with no active connector is a no-op that
// still clears the announcement entry and the stored document.
func (c *Coordinator) dropConnection(catalogName string) (*SyncReport, error) {
	report := &SyncReport{}

	c.registry.DropConnection(catalogName)
	report.Registry = true

	if err := c.synchronizer.ApplyDelta(connector.ID(catalogName), Remove); err != nil {
		return report, err
	}
	report.Announcement = true

	if err := c.store.Remove(catalogName); err != nil {
		c.logger.WithFields(log.Fields{
			"error":   err,
			"catalog": catalogName,
		}).Warn("Failed to remove catalog properties document")
		report.Persistence = err
	}

	return report, nil
}
