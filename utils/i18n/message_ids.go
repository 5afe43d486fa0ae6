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

package i18n

// Message IDs of client-facing error messages. Each ID must have a matching
// entry in every translation file under the locales directory.
const (
	ErrorInternalServer         = "error_internal_server"
	ErrorInvalidPayload         = "error_invalid_payload"
	ErrorCatalogNameMissing     = "error_catalog_name_missing"
	ErrorConnectorNameMissing   = "error_connector_name_missing"
	ErrorConnectorResolution    = "error_connector_resolution"
	ErrorAnnouncementNotFound   = "error_announcement_not_found"
	ErrorCatalogRegistryFailure = "error_catalog_registry_failure"
	ErrorEncoding               = "error_encoding_failure"
)
