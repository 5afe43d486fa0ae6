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
	"errors"
	"net/http"
	"sort"

	"github.com/ant0ine/go-json-rest/rest"
	log "github.com/sirupsen/logrus"

	"github.com/queryfabric/queryd/api/env"
	"github.com/queryfabric/queryd/catalog"
	"github.com/queryfabric/queryd/connector"
	"github.com/queryfabric/queryd/utils/i18n"
)

func (routes *Routes) createCatalog(w rest.ResponseWriter, r *rest.Request) {
	reg, ok := routes.parseCatalogRegistration(w, r)
	if !ok {
		return // error to client already set
	}

	report, err := routes.coordinator.CreateCatalog(reg.toDefinition())
	if err != nil {
		routes.handleCatalogError(w, r, err, reg.CatalogName)
		return
	}

	routes.logReport(r, report, reg.CatalogName)
	w.WriteHeader(http.StatusOK)
}

func (routes *Routes) updateCatalog(w rest.ResponseWriter, r *rest.Request) {
	originName := r.PathParam(catalogRouteParam)

	reg, ok := routes.parseCatalogRegistration(w, r)
	if !ok {
		return
	}

	report, err := routes.coordinator.UpdateCatalog(originName, reg.toDefinition())
	if err != nil {
		routes.handleCatalogError(w, r, err, originName)
		return
	}

	routes.logReport(r, report, reg.CatalogName)
	w.WriteHeader(http.StatusOK)
}

func (routes *Routes) deleteCatalog(w rest.ResponseWriter, r *rest.Request) {
	catalogName := r.PathParam(catalogRouteParam)

	report, err := routes.coordinator.DeleteCatalog(catalogName)
	if err != nil {
		routes.handleCatalogError(w, r, err, catalogName)
		return
	}

	routes.logReport(r, report, catalogName)
	w.WriteHeader(http.StatusNoContent)
}

func (routes *Routes) listCatalogs(w rest.ResponseWriter, r *rest.Request) {
	names := routes.registry.Catalogs()
	sort.Strings(names)

	if err := w.WriteJson(&CatalogNames{Catalogs: names}); err != nil {
		routes.logger.WithFields(log.Fields{
			"error": err,
		}).Warn("Failed to encode catalogs list")

		i18n.Error(r, w, http.StatusInternalServerError, i18n.ErrorEncoding)
	}
}

func (routes *Routes) parseCatalogRegistration(w rest.ResponseWriter, r *rest.Request) (*CatalogRegistration, bool) {
	var reg CatalogRegistration
	if err := r.DecodeJsonPayload(&reg); err != nil {
		routes.logger.WithFields(log.Fields{
			"error": err,
		}).Warn("Failed to parse catalog registration request")

		i18n.Error(r, w, http.StatusBadRequest, i18n.ErrorInvalidPayload)
		return nil, false
	}

	if reg.CatalogName == "" {
		i18n.Error(r, w, http.StatusBadRequest, i18n.ErrorCatalogNameMissing)
		return nil, false
	}
	if reg.ConnectorName == "" {
		i18n.Error(r, w, http.StatusBadRequest, i18n.ErrorConnectorNameMissing)
		return nil, false
	}

	return &reg, true
}

func (routes *Routes) handleCatalogError(w rest.ResponseWriter, r *rest.Request, err error, catalogName string) {
	routes.logger.WithFields(log.Fields{
		"error":   err,
		"catalog": catalogName,
	}).Warnf("Failed to complete %v operation", r.Env[env.APIOperation])

	switch {
	case errors.Is(err, catalog.ErrAnnouncementNotFound):
		i18n.Error(r, w, http.StatusInternalServerError, i18n.ErrorAnnouncementNotFound)
	case errors.Is(err, catalog.ErrNilDefinition),
		errors.Is(err, catalog.ErrCatalogNameMissing),
		errors.Is(err, catalog.ErrConnectorNameMissing):
		i18n.Error(r, w, http.StatusBadRequest, i18n.ErrorInvalidPayload)
	case errors.Is(err, connector.ErrUnknownType):
		i18n.Error(r, w, http.StatusBadRequest, i18n.ErrorConnectorResolution)
	default:
		// Connector construction failures land here
		i18n.Error(r, w, http.StatusBadRequest, i18n.ErrorConnectorResolution)
	}
}

func (routes *Routes) logReport(r *rest.Request, report *catalog.SyncReport, catalogName string) {
	if report.Persistence != nil {
		routes.logger.WithFields(log.Fields{
			"error":   report.Persistence,
			"catalog": catalogName,
		}).Warnf("Operation %v completed with a stale catalog properties document", r.Env[env.APIOperation])
	}
}
