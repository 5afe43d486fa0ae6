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

// Package env defines the keys used to pass values between middlewares and
// handlers through the request environment.
package env

// Keys set by this API's middlewares
const (
	RequestID    = "QD_REQUEST_ID"
	APIOperation = "QD_API_OPERATION"
)

// Keys set by go-json-rest's TimerMiddleware and RecorderMiddleware
const (
	ElapsedTime = "ELAPSED_TIME"
	StatusCode  = "STATUS_CODE"
	BytesCount  = "BYTES_WRITTEN"
)
