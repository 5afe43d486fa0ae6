package discovery

import (
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/queryfabric/queryd/utils/health"
	"github.com/queryfabric/queryd/utils/logging"
)

const module = "DISCOVERY"

// Announcer maintains the set of service announcements describing this node,
// and broadcasts it to the cluster's discovery backend. Broadcasts happen
// periodically, and immediately when ForceAnnounce is called.
type Announcer interface {

	// ServiceAnnouncements returns a snapshot of the node's current announcements
	ServiceAnnouncements() []*Announcement

	// AddServiceAnnouncement adds a new announcement of the given service type to the node's set.
	// The announcement is assigned a fresh ID, and is not broadcast until the next announce cycle
	// or a call to ForceAnnounce.
	AddServiceAnnouncement(serviceType string, properties map[string]string) *Announcement

	// RemoveServiceAnnouncement removes the announcement with the given ID from the node's set.
	// It is a no-op if no such announcement exists.
	RemoveServiceAnnouncement(id string)

	// ForceAnnounce broadcasts the node's current announcement set immediately,
	// rather than waiting for the next announce cycle.
	ForceAnnounce() error

	// Start launches the periodic announce loop
	Start() error

	// Stop terminates the announce loop and withdraws the node's announcements
	Stop() error
}

// NewAnnouncer creates an announcer for the node named in the given configuration.
// Nil argument results with default values for the configuration.
func NewAnnouncer(conf *Config) (Announcer, error) {
	conf = defaultize(conf)

	if conf.Node == "" {
		return nil, errors.New("No node name configured")
	}

	b, err := newBackend(conf)
	if err != nil {
		return nil, err
	}

	a := &announcer{
		backend:       b,
		node:          conf.Node,
		interval:      conf.AnnounceInterval,
		announcements: []*Announcement{},
		logger:        logging.GetLogger(module),
	}

	health.Register(module, health.CheckerFunc(a.healthCheck))

	return a, nil
}

type announcer struct {
	backend       backend
	node          string
	interval      time.Duration
	announcements []*Announcement
	lastError     error
	stopCh        chan struct{}
	mutex         sync.Mutex
	logger        *log.Entry
}

func (a *announcer) ServiceAnnouncements() []*Announcement {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	snapshot := make([]*Announcement, 0, len(a.announcements))
	for _, announcement := range a.announcements {
		snapshot = append(snapshot, announcement.copy())
	}
	return snapshot
}

func (a *announcer) AddServiceAnnouncement(serviceType string, properties map[string]string) *Announcement {
	announcement := NewAnnouncement(serviceType, properties)

	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.announcements = append(a.announcements, announcement)
	return announcement.copy()
}

func (a *announcer) RemoveServiceAnnouncement(id string) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	for i, announcement := range a.announcements {
		if announcement.ID == id {
			a.announcements = append(a.announcements[:i], a.announcements[i+1:]...)
			return
		}
	}
}

func (a *announcer) ForceAnnounce() error {
	err := a.announce()
	if err != nil {
		a.logger.WithFields(log.Fields{
			"error": err,
			"node":  a.node,
		}).Error("Failed to broadcast announcements")
	}
	return err
}

func (a *announcer) Start() error {
	a.mutex.Lock()

	if a.stopCh != nil {
		a.mutex.Unlock()
		return errors.New("Announcer already started")
	}
	a.stopCh = make(chan struct{})
	a.mutex.Unlock()

	go a.announceLoop()
	return a.ForceAnnounce()
}

func (a *announcer) Stop() error {
	a.mutex.Lock()

	if a.stopCh == nil {
		a.mutex.Unlock()
		return errors.New("Announcer not started")
	}
	close(a.stopCh)
	a.stopCh = nil
	a.mutex.Unlock()

	return a.backend.DeleteAnnouncements(a.node)
}

func (a *announcer) announceLoop() {
	a.mutex.Lock()
	stopCh := a.stopCh
	a.mutex.Unlock()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := a.announce(); err != nil {
				a.logger.WithFields(log.Fields{
					"error": err,
					"node":  a.node,
				}).Warn("Periodic announcement broadcast failed")
			}
		case <-stopCh:
			return
		}
	}
}

func (a *announcer) announce() error {
	a.mutex.Lock()
	snapshot := make([]*Announcement, 0, len(a.announcements))
	for _, announcement := range a.announcements {
		snapshot = append(snapshot, announcement.copy())
	}
	a.mutex.Unlock()

	err := a.backend.WriteAnnouncements(a.node, snapshot)

	a.mutex.Lock()
	a.lastError = err
	a.mutex.Unlock()

	return err
}

func (a *announcer) healthCheck() health.Status {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.lastError != nil {
		return health.StatusUnhealthy("Last announcement broadcast failed", a.lastError)
	}
	return health.Healthy
}
