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

package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/queryfabric/queryd/connector"
	"github.com/queryfabric/queryd/discovery"
)

// ConnectorIDsProperty is the announcement property holding the comma-joined
// identifiers of the connectors active on this node. The flat string encoding
// is dictated by the announcement property schema and is part of the wire
// format observed by the rest of the cluster.
const ConnectorIDsProperty = "connectorIds"

// Action is a single change applied to the announced connector identifier set
type Action int

// Available actions
const (
	Add Action = iota
	Remove
)

// ErrAnnouncementNotFound indicates that no announcement of the node's
// self-description type exists. This is a node-wide misconfiguration: the
// announcement is created at startup and its absence cannot be repaired here.
var ErrAnnouncementNotFound = errors.New("announcement not found")

// Announcer is the slice of the discovery announcer the synchronizer relies on
type Announcer interface {
	ServiceAnnouncements() []*discovery.Announcement
	AddServiceAnnouncement(serviceType string, properties map[string]string) *discovery.Announcement
	RemoveServiceAnnouncement(id string)
	ForceAnnounce() error
}

// Synchronizer applies additions and removals of connector identifiers to the
// node's self-announcement, and broadcasts each change immediately.
//
// The read-modify-write of the connectorIds property runs under a single
// mutex, so concurrent deltas are linearized and none is lost.
type Synchronizer struct {
	announcer   Announcer
	serviceType string
	mutex       sync.Mutex
}

// NewSynchronizer creates a synchronizer bound to the announcement of the given service type
func NewSynchronizer(announcer Announcer, serviceType string) *Synchronizer {
	return &Synchronizer{
		announcer:   announcer,
		serviceType: serviceType,
	}
}

// ApplyDelta adds or removes a connector identifier in the node's
// self-announcement and forces an immediate broadcast. Adding an identifier
// already present, or removing one already absent, is a no-op that still
// rewrites and broadcasts the announcement.
func (s *Synchronizer) ApplyDelta(connectorID connector.ID, action Action) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	announcement, err := s.selfAnnouncement()
	if err != nil {
		return err
	}

	ids := splitConnectorIDs(announcement.Properties[ConnectorIDsProperty])
	switch action {
	case Add:
		ids.add(connectorID.String())
	case Remove:
		ids.remove(connectorID.String())
	}

	properties := make(map[string]string, len(announcement.Properties)+1)
	for key, value := range announcement.Properties {
		properties[key] = value
	}
	properties[ConnectorIDsProperty] = ids.join()

	// Replace the announcement: same type, updated properties, fresh id
	s.announcer.RemoveServiceAnnouncement(announcement.ID)
	s.announcer.AddServiceAnnouncement(announcement.Type, properties)

	return s.announcer.ForceAnnounce()
}

// selfAnnouncement locates the single announcement of the node's
// self-description type among the currently held announcements.
func (s *Synchronizer) selfAnnouncement() (*discovery.Announcement, error) {
	announcements := s.announcer.ServiceAnnouncements()
	for _, announcement := range announcements {
		if announcement.Type == s.serviceType {
			return announcement, nil
		}
	}
	return nil, fmt.Errorf("%w: no announcement of type %q in %v", ErrAnnouncementNotFound, s.serviceType, announcements)
}

// orderedSet is a duplicate-free set of strings preserving insertion order
type orderedSet struct {
	values []string
	seen   map[string]bool
}

func splitConnectorIDs(property string) *orderedSet {
	set := &orderedSet{seen: make(map[string]bool)}
	for _, token := range strings.Split(property, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		set.add(token)
	}
	return set
}

func (s *orderedSet) add(value string) {
	if s.seen[value] {
		return
	}
	s.seen[value] = true
	s.values = append(s.values, value)
}

func (s *orderedSet) remove(value string) {
	if !s.seen[value] {
		return
	}
	delete(s.seen, value)
	for i, v := range s.values {
		if v == value {
			s.values = append(s.values[:i], s.values[i+1:]...)
			return
		}
	}
}

func (s *orderedSet) join() string {
	return strings.Join(s.values, ",")
}
