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

package middleware

import (
	"strings"
	"time"

	"github.com/ant0ine/go-json-rest/rest"
	log "github.com/sirupsen/logrus"

	"github.com/queryfabric/queryd/api/env"
	"github.com/queryfabric/queryd/utils/logging"
)

const (
	module         = "ACCESS"
	clientIPHeader = "X-Client-Ip"
)

// AccessLog produces the access log.
// It depends on TimerMiddleware and RecorderMiddleware that should be in the wrapped middlewares.
type AccessLog struct {
	logger *log.Entry
}

// MiddlewareFunc makes AccessLog implement the Middleware interface
func (mw *AccessLog) MiddlewareFunc(h rest.HandlerFunc) rest.HandlerFunc {
	mw.logger = logging.GetLogger(module)

	return func(w rest.ResponseWriter, r *rest.Request) {
		// We log the message in a defer function to make sure that the message
		// is logged even if a panic occurs in some handler in the chain
		defer func() {
			reqID, ok := r.Env[env.RequestID].(string)
			if !ok {
				reqID = "Unknown"
			}

			mw.logger.WithFields(log.Fields{
				"request-id":   reqID,
				"method":       r.Method,
				"returncode":   mw.statusCode(r),
				"byteswritten": mw.bytesWritten(r),
				"elapsedtime":  mw.elapsedTime(r),
			}).Infof("%s %s %s %s", mw.remoteAddr(r), r.Method, r.RequestURI, r.Proto)
		}()

		h(w, r)
	}
}

func (mw *AccessLog) remoteAddr(r *rest.Request) string {
	remoteAddr := r.Header.Get(clientIPHeader)
	if remoteAddr != "" {
		return remoteAddr
	}
	remoteAddr = r.RemoteAddr
	if remoteAddr != "" {
		parts := strings.SplitN(remoteAddr, ":", 2)
		return parts[0]
	}
	return "Unknown"
}

func (mw *AccessLog) statusCode(r *rest.Request) int {
	if status, ok := r.Env[env.StatusCode].(int); ok {
		return status
	}
	return 0
}

func (mw *AccessLog) bytesWritten(r *rest.Request) int64 {
	if bytes, ok := r.Env[env.BytesCount].(int64); ok {
		return bytes
	}
	return 0
}

func (mw *AccessLog) elapsedTime(r *rest.Request) time.Duration {
	if elapsed, ok := r.Env[env.ElapsedTime].(*time.Duration); ok && elapsed != nil {
		return *elapsed
	}
	return time.Duration(0)
}
