package ws

import (
	"encoding/json"
	"time"
)

// JobPostedEvent is pushed to connected candidates whenever a company
// publishes a new posting, so job boards can refresh without polling.
type JobPostedEvent struct {
	Type      string `json:"type"`
	Role      string `json:"role"`
	Company   string `json:"company"`
	Timestamp string `json:"timestamp"`
}

const EventTypeJobPosted = "jobs_posted"

// Notifier adapts the hub to the job usecase's notification port.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyJobPosted(role, companyName string) {
	if n == nil || n.hub == nil {
		return
	}

	evt := JobPostedEvent{
		Type:      EventTypeJobPosted,
		Role:      role,
		Company:   companyName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	b, err := json.Marshal(evt)
	if err != nil {
		if n.hub.logger != nil {
			n.hub.logger.Printf("WS notify marshal error | error=%v", err)
		}
		return
	}
	n.hub.Broadcast(b)
}
