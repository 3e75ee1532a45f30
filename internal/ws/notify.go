package ws

import (
	"encoding/json"
	"time"
)

const (
	EventSignedIn       = "signed_in"
	EventProfileWritten = "profile_written"
)

type SessionEvent struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	View      string `json:"view,omitempty"`
	Role      string `json:"role,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NotifySignedIn tells the session's other open screens to route to view.
func (h *Hub) NotifySignedIn(sessionID, view string) {
	h.notify(SessionEvent{Type: EventSignedIn, SessionID: sessionID, View: view})
}

func (h *Hub) NotifyProfileWritten(sessionID, role string) {
	h.notify(SessionEvent{Type: EventProfileWritten, SessionID: sessionID, Role: role})
}

func (h *Hub) notify(evt SessionEvent) {
	if h == nil || evt.SessionID == "" {
		return
	}
	evt.Timestamp = time.Now().UTC().Format(time.RFC3339)
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Publish(evt.SessionID, b)
}
