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

package uptime

import (
	"time"

	"github.com/ant0ine/go-json-rest/rest"

	"github.com/queryfabric/queryd/utils/health"
)

var startTime = time.Now()

// RouteHandlers returns an array of uptime route handlers
func RouteHandlers() []*rest.Route {
	return []*rest.Route{
		rest.Get(URL(), uptimeHandler),
		rest.Get(HealthURL(), health.Handler()),
	}
}

func uptimeHandler(w rest.ResponseWriter, r *rest.Request) {
	_ = w.WriteJson(map[string]string{
		"start_time": startTime.UTC().Format(time.RFC3339),
		"uptime":     time.Since(startTime).String(),
	})
}
