package discovery

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/queryfabric/queryd/utils/logging"
)

// filesystemBackend broadcasts announcements by writing one JSON document
// per node into a directory shared by the cluster members.
type filesystemBackend struct {
	directory string
	logger    *log.Entry
}

func newFilesystemBackend(directory string) (*filesystemBackend, error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return nil, err
	}
	return &filesystemBackend{
		directory: directory,
		logger:    logging.GetLogger(module),
	}, nil
}

func (b *filesystemBackend) WriteAnnouncements(node string, announcements []*Announcement) error {
	bytes, err := json.Marshal(announcements)
	if err != nil {
		return err
	}

	filename := b.filename(node)
	tempname := filename + ".tmp"
	if err := os.WriteFile(tempname, bytes, 0644); err != nil {
		return err
	}
	// Rename so readers never observe a half-written document
	return os.Rename(tempname, filename)
}

func (b *filesystemBackend) DeleteAnnouncements(node string) error {
	err := os.Remove(b.filename(node))
	if os.IsNotExist(err) {
		return fmt.Errorf("Node %v does not exist", node)
	}
	return err
}

func (b *filesystemBackend) ReadAnnouncements(node string) ([]*Announcement, error) {
	bytes, err := os.ReadFile(b.filename(node))
	if err != nil {
		if os.IsNotExist(err) {
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

func (b *filesystemBackend) filename(node string) string {
	return filepath.Join(b.directory, node+".json")
}
