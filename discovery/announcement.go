package discovery

import (
	"fmt"

	"github.com/pborman/uuid"
)

// Announcement is a single cluster-visible record describing one capability
// of this node. The full set of a node's announcements is broadcast to the
// discovery backend, where the rest of the cluster observes it.
type Announcement struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Properties map[string]string `json:"properties,omitempty"`
}

// NewAnnouncement creates an announcement of the given service type, with a freshly assigned ID
func NewAnnouncement(serviceType string, properties map[string]string) *Announcement {
	return &Announcement{
		ID:         uuid.New(),
		Type:       serviceType,
		Properties: copyProperties(properties),
	}
}

func (a *Announcement) String() string {
	return fmt.Sprintf("%s[%s]%v", a.Type, a.ID, a.Properties)
}

func (a *Announcement) copy() *Announcement {
	return &Announcement{
		ID:         a.ID,
		Type:       a.Type,
		Properties: copyProperties(a.Properties),
	}
}

func copyProperties(properties map[string]string) map[string]string {
	if properties == nil {
		return nil
	}
	copied := make(map[string]string, len(properties))
	for key, value := range properties {
		copied[key] = value
	}
	return copied
}
