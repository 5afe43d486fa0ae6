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

package health

import (
	"net/http"
	"sync"

	"github.com/ant0ine/go-json-rest/rest"
)

// Checker performs a single component health check.
type Checker interface {
	Check() Status
}

// CheckerFunc is an adapter to allow the use of ordinary functions as health checkers.
type CheckerFunc func() Status

// Check calls f()
func (f CheckerFunc) Check() Status {
	return f()
}

var (
	checkers = make(map[string]Checker)
	mutex    sync.RWMutex
)

// Register adds the checker of the named component to the set of health checks run by RunChecks.
// A previous checker registered under the same name is replaced.
func Register(name string, checker Checker) {
	mutex.Lock()
	defer mutex.Unlock()

	checkers[name] = checker
}

// RegisterFunc adds the checker function of the named component to the set of health checks run by RunChecks.
func RegisterFunc(name string, checker func() Status) {
	Register(name, CheckerFunc(checker))
}

// RunChecks runs all registered health checks and returns their statuses keyed by component name.
func RunChecks() map[string]Status {
	mutex.RLock()
	defer mutex.RUnlock()

	statuses := make(map[string]Status, len(checkers))
	for name, checker := range checkers {
		statuses[name] = checker.Check()
	}
	return statuses
}

// Handler returns a handler function that runs all registered health checks and writes their
// results as the response body. The response status is 200 if all components are healthy, or
// 503 if any component reports an unhealthy status.
func Handler() rest.HandlerFunc {
	return func(w rest.ResponseWriter, r *rest.Request) {
		statuses := RunChecks()

		code := http.StatusOK
		for _, status := range statuses {
			if !status.Healthy {
				code = http.StatusServiceUnavailable
				break
			}
		}

		w.WriteHeader(code)
		_ = w.WriteJson(statuses)
	}
}
