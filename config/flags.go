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
	"strings"
	"time"

	"github.com/urfave/cli"
)

// Flag names
const (
	LogLevelFlag  = "log_level"
	LogFormatFlag = "log_format"

	RestAPIPortFlag = "api_port"

	CatalogDirectoryFlag = "catalog_dir"

	NodeFlag        = "node"
	ServiceTypeFlag = "service_type"

	DiscoveryFlag          = "discovery"
	DiscoveryDirectoryFlag = "discovery_dir"
	DiscoveryAddressFlag   = "discovery_address"
	DiscoveryPasswordFlag  = "discovery_password"
	AnnounceIntervalFlag   = "announce_interval"
)

// Flags represents the set of supported flags
var Flags = []cli.Flag{

	cli.StringFlag{
		Name:   LogLevelFlag,
		EnvVar: envVarFromFlag(LogLevelFlag),
		Value:  "info",
		Usage:  "Logging level. Supported values are: 'debug', 'info', 'warn', 'error', 'fatal', 'panic'",
	},

	cli.StringFlag{
		Name:   LogFormatFlag,
		EnvVar: envVarFromFlag(LogFormatFlag),
		Value:  "text",
		Usage:  "Logging format. Supported values are: 'text', 'json'",
	},

	cli.IntFlag{
		Name:   RestAPIPortFlag,
		EnvVar: envVarFromFlag(RestAPIPortFlag),
		Value:  8080,
		Usage:  "REST API port number",
	},

	cli.StringFlag{
		Name:   CatalogDirectoryFlag,
		EnvVar: envVarFromFlag(CatalogDirectoryFlag),
		Value:  "/etc/queryd/catalog",
		Usage:  "Directory holding the durable catalog property documents",
	},

	cli.StringFlag{
		Name:   NodeFlag,
		EnvVar: envVarFromFlag(NodeFlag),
		Usage:  "Name under which this node broadcasts its announcements. Defaults to the hostname",
	},

	cli.StringFlag{
		Name:   ServiceTypeFlag,
		EnvVar: envVarFromFlag(ServiceTypeFlag),
		Value:  "queryd",
		Usage:  "Service type of this node's self-announcement",
	},

	cli.StringFlag{
		Name:   DiscoveryFlag,
		EnvVar: envVarFromFlag(DiscoveryFlag),
		Value:  "memory",
		Usage:  "Discovery backend. Supported values are: 'memory', 'filesystem', 'redis'",
	},

	cli.StringFlag{
		Name:   DiscoveryDirectoryFlag,
		EnvVar: envVarFromFlag(DiscoveryDirectoryFlag),
		Usage:  "Shared directory for the filesystem discovery backend",
	},

	cli.StringFlag{
		Name:   DiscoveryAddressFlag,
		EnvVar: envVarFromFlag(DiscoveryAddressFlag),
		Usage:  "Address of the Redis discovery backend",
	},

	cli.StringFlag{
		Name:   DiscoveryPasswordFlag,
		EnvVar: envVarFromFlag(DiscoveryPasswordFlag),
		Usage:  "Password of the Redis discovery backend",
	},

	cli.DurationFlag{
		Name:   AnnounceIntervalFlag,
		EnvVar: envVarFromFlag(AnnounceIntervalFlag),
		Value:  time.Duration(30) * time.Second,
		Usage:  "Interval between periodic announcement broadcasts",
	},
}

// envVarFromFlag returns the environment variable bound to the given flag
func envVarFromFlag(name string) string {
	return "QD_" + strings.ToUpper(name)
}
