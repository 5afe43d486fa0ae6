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

// Package metrics logs the values of the go-metrics registry, periodically.
package metrics

import (
	"time"

	gometrics "github.com/rcrowley/go-metrics"
	"github.com/sirupsen/logrus"

	"github.com/queryfabric/queryd/utils/logging"
)

// module name to be used in logging
const moduleName = "METRICS"

const dumpInterval = time.Duration(5) * time.Minute

var logger = logging.GetLogger(moduleName)

// DumpPeriodically logs the values of the entire go-metrics registry, periodically.
// This function blocks, so should be called within a separate goroutine.
func DumpPeriodically() {
	dumpPeriodically(dumpInterval, gometrics.DefaultRegistry)
}

func dumpPeriodically(interval time.Duration, registry gometrics.Registry) {
	for range time.Tick(interval) {
		dumpRegistry(registry)
	}
}

func dumpRegistry(registry gometrics.Registry) {
	logger.Info("Dumping metrics registry")
	registry.Each(func(name string, metric interface{}) {
		dumpMetric(name, metric)
	})
}

func dumpMetric(name string, metric interface{}) {
	switch metric := metric.(type) {
	case gometrics.Counter:
		logger.WithFields(logrus.Fields{
			"name":  name,
			"count": metric.Count(),
		}).Info()
	case gometrics.Gauge:
		logger.WithFields(logrus.Fields{
			"name":  name,
			"value": metric.Value(),
		}).Info()
	case gometrics.Meter:
		m := metric.Snapshot()
		logger.WithFields(logrus.Fields{
			"name":            name,
			"count":           m.Count(),
			"rate-one-minute": m.Rate1(),
			"rate-mean":       m.RateMean(),
		}).Info()
	case gometrics.Histogram:
		m := metric.Snapshot()
		logger.WithFields(logrus.Fields{
			"name":               name,
			"count":              m.Count(),
			"min":                m.Min(),
			"max":                m.Max(),
			"mean":               m.Mean(),
			"95th-percentile":    m.Percentile(0.95),
			"99th-percentile":    m.Percentile(0.99),
			"standard-deviation": m.StdDev(),
		}).Info()
	case gometrics.Timer:
		m := metric.Snapshot()
		logger.WithFields(logrus.Fields{
			"name":            name,
			"count":           m.Count(),
			"min":             m.Min(),
			"max":             m.Max(),
			"mean":            m.Mean(),
			"rate-one-minute": m.Rate1(),
		}).Info()
	}
}
