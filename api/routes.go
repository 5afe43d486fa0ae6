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
	"github.com/ant0ine/go-json-rest/rest"
	log "github.com/sirupsen/logrus"

	"github.com/queryfabric/queryd/api/protocol"
	"github.com/queryfabric/queryd/catalog"
	"github.com/queryfabric/queryd/connector"
	"github.com/queryfabric/queryd/utils/logging"
)

// Routes encapsulates information needed for the catalog protocol routes
type Routes struct {
	coordinator *catalog.Coordinator
	registry    connector.Registry
	logger      *log.Entry
}

// NewRoutes creates a Routes object for the catalog protocol routes
func NewRoutes(coordinator *catalog.Coordinator, registry connector.Registry) *Routes {
	return &Routes{
		coordinator: coordinator,
		registry:    registry,
		logger:      logging.GetLogger(module),
	}
}

type routeDescriptor struct {
	path      string
	method    string
	operation protocol.Operation
	handler   rest.HandlerFunc
}

// RouteHandlers returns an array of route handlers
func (routes *Routes) RouteHandlers(middlewares ...rest.Middleware) []*rest.Route {
	descriptors := []*routeDescriptor{
		{
			path:      CatalogsURL(),
			method:    "GET",
			operation: protocol.ListCatalogs,
			handler:   routes.listCatalogs,
		},
		{
			path:      CatalogsURL(),
			method:    "PUT",
			operation: protocol.CreateCatalog,
			handler:   routes.createCatalog,
		},
		{
			path:      catalogTemplateURL(),
			method:    "POST",
			operation: protocol.UpdateCatalog,
			handler:   routes.updateCatalog,
		},
		{
			path:      catalogTemplateURL(),
			method:    "DELETE",
			operation: protocol.DeleteCatalog,
			handler:   routes.deleteCatalog,
		},
	}

	rts := make([]*rest.Route, 0, len(descriptors))
	for _, desc := range descriptors {
		handler := rest.WrapMiddlewares(middlewares, desc.handler)
		handler = protocol.APIHandler(handler, desc.operation)
		rts = append(rts, &rest.Route{
			HttpMethod: desc.method,
			PathExp:    desc.path,
			Func:       handler,
		})
	}
	return rts
}
