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

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"

	"github.com/queryfabric/queryd/utils/logging"
)

const module = "CONNECTOR"

const activeConnectorsMetricName = "connector.active"

// ErrUnknownType is returned when no factory is registered for the requested connector type
var ErrUnknownType = errors.New("unknown connector type")

// Registry tracks the connectors active on this node, at most one per catalog name
type Registry interface {

	// CreateConnection instantiates a connector of the given type and registers it
	// under the given catalog name, replacing any connector previously registered
	// under that name. The returned ID is derived from the catalog name.
	CreateConnection(catalogName string, connectorName string, properties map[string]string) (ID, error)

	// DropConnection deactivates and removes the connector registered under the
	// given catalog name. It is a no-op if no such connector exists.
	DropConnection(catalogName string)

	// Catalogs returns the names of the catalogs with an active connector
	Catalogs() []string
}

// NewRegistry creates a connector registry supporting the given factories
func NewRegistry(factories ...Factory) Registry {
	counterFactory := func() metrics.Counter { return metrics.NewCounter() }

	byName := make(map[string]Factory, len(factories))
	for _, factory := range factories {
		byName[factory.Name()] = factory
	}

	return &registry{
		factories:    byName,
		active:       make(map[string]Connector),
		logger:       logging.GetLogger(module),
		activeMetric: metrics.GetOrRegister(activeConnectorsMetricName, counterFactory).(metrics.Counter),
	}
}

type registry struct {
	factories map[string]Factory
	active    map[string]Connector

	logger       *log.Entry
	activeMetric metrics.Counter

	sync.RWMutex
}

func (r *registry) CreateConnection(catalogName string, connectorName string, properties map[string]string) (ID, error) {
	factory, exists := r.factories[connectorName]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrUnknownType, connectorName)
	}

	conn, err := factory.Create(catalogName, properties)
	if err != nil {
		return "", err
	}

	r.Lock()
	defer r.Unlock()

	if previous, exists := r.active[catalogName]; exists {
		// Should not happen when driven by the coordinator, which drops first
		r.logger.WithFields(log.Fields{
			"catalog": catalogName,
		}).Warn("Replacing an active connector")
		previous.Shutdown()
		r.activeMetric.Dec(1)
	}

	r.active[catalogName] = conn
	r.activeMetric.Inc(1)

	r.logger.WithFields(log.Fields{
		"catalog":   catalogName,
		"connector": connectorName,
	}).Info("Connector registered")

	return ID(catalogName), nil
}

func (r *registry) DropConnection(catalogName string) {
	r.Lock()
	defer r.Unlock()

	conn, exists := r.active[catalogName]
	if !exists {
		return
	}

	conn.Shutdown()
	delete(r.active, catalogName)
	r.activeMetric.Dec(1)

	r.logger.WithFields(log.Fields{
		"catalog": catalogName,
	}).Info("Connector deregistered")
}

func (r *registry) Catalogs() []string {
	r.RLock()
	defer r.RUnlock()

	names := make([]string, 0, len(r.active))
	for name := range r.active {
		names = append(names, name)
	}
	return names
}
