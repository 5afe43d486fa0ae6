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

// Package api implements the REST boundary of the catalog node.
package api

import (
	"errors"
	"net"
	"net/http"

	"github.com/ant0ine/go-json-rest/rest"
	log "github.com/sirupsen/logrus"

	"github.com/queryfabric/queryd/api/middleware"
	"github.com/queryfabric/queryd/api/uptime"
	"github.com/queryfabric/queryd/catalog"
	"github.com/queryfabric/queryd/connector"
	"github.com/queryfabric/queryd/utils/logging"
)

const module = "API"

// Config encapsulates the REST API configuration
type Config struct {
	HTTPAddressSpec string
	Coordinator     *catalog.Coordinator
	Registry        connector.Registry
	Middlewares     []rest.Middleware
}

// Server defines an interface for controlling server lifecycle
type Server interface {
	Start() error
	Stop()
}

type server struct {
	config   *Config
	listener net.Listener
	logger   *log.Entry
}

// NewServer creates a new server based on the provided configuration options.
// Returns a valid Server interface on success or an error on failure
func NewServer(conf *Config) (Server, error) {
	if conf == nil {
		return nil, errors.New("null catalog API configuration provided")
	}
	if conf.Coordinator == nil {
		return nil, errors.New("null catalog coordinator provided")
	}
	if conf.Registry == nil {
		return nil, errors.New("null connector registry provided")
	}

	s := &server{
		config: conf,
		logger: logging.GetLogger(module),
	}

	if s.config.HTTPAddressSpec == "" {
		s.config.HTTPAddressSpec = ":8080"
	}

	s.logger.Infof("Creating catalog REST API on %s", s.config.HTTPAddressSpec)

	return s, nil
}

func (s *server) Start() error {
	handler, err := s.setup()
	if err != nil {
		return err
	}
	return s.serve(handler)
}

func (s *server) Stop() {
	s.logger.Info("Stopping rest server")

	if err := s.listener.Close(); err != nil {
		s.logger.WithFields(log.Fields{
			"error": err,
		}).Warn("Failed to close listener")
	}
}

func (s *server) setup() (http.Handler, error) {
	restAPI := rest.NewApi()

	restAPI.Use(
		&rest.RecoverMiddleware{},
		&middleware.AccessLog{},
		middleware.NewTrace())

	// Add the extension middlewares here
	for _, mw := range s.config.Middlewares {
		if mw != nil {
			restAPI.Use(mw)
		}
	}

	restAPI.Use(
		&middleware.MetricsMiddleware{},
		&rest.TimerMiddleware{},
		&rest.RecorderMiddleware{},
		&rest.GzipMiddleware{},
		&rest.ContentTypeCheckerMiddleware{})

	var routes []*rest.Route
	routes = append(routes, uptime.RouteHandlers()...)

	catalogRoutes := NewRoutes(s.config.Coordinator, s.config.Registry)
	routes = append(routes, catalogRoutes.RouteHandlers()...)

	router, err := rest.MakeRouter(routes...)
	if err != nil {
		return nil, err
	}

	restAPI.SetApp(router)
	return restAPI.MakeHandler(), nil
}

func (s *server) serve(h http.Handler) error {
	listener, err := net.Listen("tcp", s.config.HTTPAddressSpec)
	if err != nil {
		return err
	}
	s.listener = listener

	s.logger.Infof("Serving catalog REST API on %s", s.config.HTTPAddressSpec)

	return http.Serve(s.listener, h)
}
