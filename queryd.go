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

// Package queryd wires together the catalog node: the connector registry,
// the catalog property store, the discovery announcer, the registration
// coordinator, and the REST API in front of them.
package queryd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/queryfabric/queryd/api"
	"github.com/queryfabric/queryd/catalog"
	"github.com/queryfabric/queryd/config"
	"github.com/queryfabric/queryd/connector"
	"github.com/queryfabric/queryd/discovery"
	"github.com/queryfabric/queryd/utils/i18n"
	"github.com/queryfabric/queryd/utils/logging"
	"github.com/queryfabric/queryd/utils/metrics"
)

const module = "QUERYD"

// NodeProperty is the self-announcement property naming this node
const NodeProperty = "node"

// Main is the entrypoint for queryd when running as an executable
func Main() {
	app := cli.NewApp()

	app.Name = "queryd"
	app.Usage = "Query Node Catalog Server"
	app.Flags = config.Flags
	app.Action = func(context *cli.Context) error {
		return Run(config.NewValuesFromContext(context))
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Printf("failure running main: %s", err.Error())
	}
}

// Run the catalog node with the given configuration
func Run(conf *config.Values) error {
	logger := logging.GetLogger(module)

	// Configure logging
	parsedLogLevel, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(parsedLogLevel)

	formatter, err := logging.GetLogFormatter(conf.LogFormat)
	if err != nil {
		return err
	}
	log.SetFormatter(formatter)

	// Configure locales and translations
	if err := i18n.LoadLocales("./locales"); err != nil {
		return err
	}

	node := conf.Node
	if node == "" {
		node, err = os.Hostname()
		if err != nil {
			return err
		}
	}

	backendType, err := backendTypeFromName(conf.Discovery)
	if err != nil {
		return err
	}

	if backendType == discovery.RedisBackend && conf.DiscoveryAddress == "" {
		return fmt.Errorf("Address required for Redis discovery backend")
	}

	announcer, err := discovery.NewAnnouncer(&discovery.Config{
		BackendType:      backendType,
		Directory:        conf.DiscoveryDirectory,
		RedisAddress:     conf.DiscoveryAddress,
		RedisPassword:    conf.DiscoveryPassword,
		Node:             node,
		AnnounceInterval: conf.AnnounceInterval,
	})
	if err != nil {
		return err
	}

	// The self-announcement is created once, here. The coordinator only ever
	// mutates its connectorIds property, never its identity.
	announcer.AddServiceAnnouncement(conf.ServiceType, map[string]string{
		NodeProperty:                 node,
		catalog.ConnectorIDsProperty: "",
	})

	if err := announcer.Start(); err != nil {
		logger.WithFields(log.Fields{
			"error": err,
		}).Warn("Initial announcement broadcast failed")
	}
	defer func() { _ = announcer.Stop() }()

	registry := connector.NewRegistry(connector.NewMemoryFactory())

	store, err := catalog.NewPropertyStore(conf.CatalogDirectory)
	if err != nil {
		return err
	}

	synchronizer := catalog.NewSynchronizer(announcer, conf.ServiceType)
	coordinator := catalog.NewCoordinator(registry, synchronizer, store)

	restoreCatalogs(coordinator, store, logger)

	go metrics.DumpPeriodically()

	server, err := api.NewServer(&api.Config{
		HTTPAddressSpec: fmt.Sprintf(":%d", conf.APIPort),
		Coordinator:     coordinator,
		Registry:        registry,
	})
	if err != nil {
		return err
	}

	return server.Start()
}

// restoreCatalogs re-registers the catalogs whose property documents survived
// a previous run. A document that no longer resolves is left on disk and
// skipped, so an operator can fix or remove it.
func restoreCatalogs(coordinator *catalog.Coordinator, store *catalog.PropertyStore, logger *log.Entry) {
	names, err := store.List()
	if err != nil {
		logger.WithFields(log.Fields{
			"error": err,
		}).Warn("Failed to enumerate stored catalog documents")
		return
	}

	for _, name := range names {
		definition, err := store.Read(name)
		if err != nil {
			logger.WithFields(log.Fields{
				"error":   err,
				"catalog": name,
			}).Warn("Failed to read stored catalog document")
			continue
		}

		if _, err := coordinator.CreateCatalog(definition); err != nil {
			logger.WithFields(log.Fields{
				"error":   err,
				"catalog": name,
			}).Warn("Failed to restore stored catalog")
			continue
		}

		logger.WithFields(log.Fields{
			"catalog": name,
		}).Info("Restored stored catalog")
	}
}

func backendTypeFromName(name string) (discovery.BackendType, error) {
	switch name {
	case "memory":
		return discovery.MemoryBackend, nil
	case "filesystem":
		return discovery.FilesystemBackend, nil
	case "redis":
		return discovery.RedisBackend, nil
	default:
		return discovery.UnspecifiedBackend, fmt.Errorf("unknown discovery backend: %v", name)
	}
}
