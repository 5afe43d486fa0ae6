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

package config

import (
	"time"

	"github.com/urfave/cli"
)

// Values holds the actual configuration values used for the catalog node
type Values struct {
	LogLevel  string
	LogFormat string

	APIPort uint16

	CatalogDirectory string

	Node        string
	ServiceType string

	Discovery          string
	DiscoveryDirectory string
	DiscoveryAddress   string
	DiscoveryPassword  string
	AnnounceInterval   time.Duration
}

// NewValuesFromContext creates a Values instance from the given CLI context
func NewValuesFromContext(context *cli.Context) *Values {
	return &Values{
		LogLevel:  context.String(LogLevelFlag),
		LogFormat: context.String(LogFormatFlag),

		APIPort: uint16(context.Int(RestAPIPortFlag)),

		CatalogDirectory: context.String(CatalogDirectoryFlag),

		Node:        context.String(NodeFlag),
		ServiceType: context.String(ServiceTypeFlag),

		Discovery:          context.String(DiscoveryFlag),
		DiscoveryDirectory: context.String(DiscoveryDirectoryFlag),
		DiscoveryAddress:   context.String(DiscoveryAddressFlag),
		DiscoveryPassword:  context.String(DiscoveryPasswordFlag),
		AnnounceInterval:   context.Duration(AnnounceIntervalFlag),
	}
}
