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

const (
	catalogPath       = "/v1/catalog"
	catalogRouteParam = "catalog"
)

// CatalogsURL returns the URL path of the catalog collection
func CatalogsURL() string {
	return catalogPath
}

// CatalogURL returns the URL path of the named catalog
func CatalogURL(name string) string {
	return catalogPath + "/" + name
}

func catalogTemplateURL() string {
	return catalogPath + "/#" + catalogRouteParam
}
