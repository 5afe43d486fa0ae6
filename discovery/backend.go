package discovery

import "errors"

// BackendType defines the type of backend used for discovery broadcasts
type BackendType int

// Available backend types
const (
	UnspecifiedBackend BackendType = iota // Zero-value
	MemoryBackend
	FilesystemBackend
	RedisBackend
)

type backend interface {
	WriteAnnouncements(node string, announcements []*Announcement) error
	DeleteAnnouncements(node string) error

	ReadAnnouncements(node string) ([]*Announcement, error)
}

func newBackend(conf *Config) (backend, error) {
	switch conf.BackendType {
	case FilesystemBackend:
		return newFilesystemBackend(conf.Directory)
	case RedisBackend:
		return newRedisBackend(conf.RedisAddress, conf.RedisPassword), nil
	case MemoryBackend:
		return newMemoryBackend(), nil
	default:
		return nil, errors.New("No backend type configured")
	}
}
