package discovery

import (
	"fmt"
	"sync"
)

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{
		nodes: make(map[string][]*Announcement),
	}
}

type memoryBackend struct {
	nodes map[string][]*Announcement
	mutex sync.RWMutex
}

func (b *memoryBackend) WriteAnnouncements(node string, announcements []*Announcement) error {

	b.mutex.Lock()
	defer b.mutex.Unlock()

	snapshot := make([]*Announcement, 0, len(announcements))
	for _, announcement := range announcements {
		snapshot = append(snapshot, announcement.copy())
	}
	b.nodes[node] = snapshot
	return nil

}

func (b *memoryBackend) DeleteAnnouncements(node string) error {

	b.mutex.Lock()
	defer b.mutex.Unlock()

	_, exists := b.nodes[node]
	if !exists {
		return fmt.Errorf("Node %v does not exist", node)
	}
	delete(b.nodes, node)
	return nil

}

func (b *memoryBackend) ReadAnnouncements(node string) ([]*Announcement, error) {

	b.mutex.RLock()
	defer b.mutex.RUnlock()

	stored := b.nodes[node]
	snapshot := make([]*Announcement, 0, len(stored))
	for _, announcement := range stored {
		snapshot = append(snapshot, announcement.copy())
	}
	return snapshot, nil

}
