package discovery

import (
	"encoding/json"
	"time"

	"github.com/gomodule/redigo/redis"
	log "github.com/sirupsen/logrus"

	"github.com/queryfabric/queryd/utils/logging"
)

const announcementsHash = "queryd:announcements"

// redisBackend broadcasts announcements into a Redis hash, one field per node.
type redisBackend struct {
	pool   *redis.Pool
	logger *log.Entry
}

func newRedisBackend(address string, password string) *redisBackend {
	pool := &redis.Pool{
		MaxIdle:     3,
		IdleTimeout: time.Duration(240) * time.Second,
		Dial: func() (redis.Conn, error) {
			conn, err := redis.Dial("tcp", address)
			if err != nil {
				return nil, err
			}
			if password != "" {
				if _, err := conn.Do("AUTH", password); err != nil {
					_ = conn.Close()
					return nil, err
				}
			}
			return conn, nil
		},
		TestOnBorrow: func(conn redis.Conn, t time.Time) error {
			_, err := conn.Do("PING")
			return err
		},
	}

	return &redisBackend{
		pool:   pool,
		logger: logging.GetLogger(module),
	}
}

func (b *redisBackend) WriteAnnouncements(node string, announcements []*Announcement) error {
	bytes, err := json.Marshal(announcements)
	if err != nil {
		return err
	}

	conn := b.pool.Get()
	defer func() { _ = conn.Close() }()

	_, err = conn.Do("HSET", announcementsHash, node, bytes)
	return err
}

func (b *redisBackend) DeleteAnnouncements(node string) error {
	conn := b.pool.Get()
	defer func() { _ = conn.Close() }()

	_, err := conn.Do("HDEL", announcementsHash, node)
	return err
}

func (b *redisBackend) ReadAnnouncements(node string) ([]*Announcement, error) {
	conn := b.pool.Get()
	defer func() { _ = conn.Close() }()

	bytes, err := redis.Bytes(conn.Do("HGET", announcementsHash, node))
	if err != nil {
		if err == redis.ErrNil {
			return []*Announcement{}, nil
		}
		return nil, err
	}

	var announcements []*Announcement
	if err := json.Unmarshal(bytes, &announcements); err != nil {
		b.logger.WithFields(log.Fields{
			"error": err,
			"node":  node,
		}).Warn("Failed to parse announcements document")
		return nil, err
	}
	return announcements, nil
}
