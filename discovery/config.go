package discovery

import "time"

// Default configuration values
const (
	DefaultBackendType      = MemoryBackend
	DefaultDirectory        = "/var/run/queryd/discovery"
	DefaultAnnounceInterval = time.Duration(30) * time.Second
)

// Config encapsulates discovery configuration parameters
type Config struct {
	BackendType      BackendType
	Directory        string
	RedisAddress     string
	RedisPassword    string
	Node             string
	AnnounceInterval time.Duration
}

// defaultize creates an output configuration based on the input configuration,
// where missing configuration parameters (with zero values) are replaced with default values.
func defaultize(conf *Config) *Config {

	in := conf
	if in == nil {
		in = &Config{}
	}

	// Shallow copy
	out := &*in
	if out.BackendType == UnspecifiedBackend {
		out.BackendType = DefaultBackendType
	}
	if out.Directory == "" {
		out.Directory = DefaultDirectory
	}
	if out.AnnounceInterval == time.Duration(0) {
		out.AnnounceInterval = DefaultAnnounceInterval
	}

	return out

}
