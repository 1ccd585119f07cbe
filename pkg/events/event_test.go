package events

import (
	"testing"
)

func TestNewEmbedsEventType(t *testing.T) {
	evt := New(TypeUserVerified, map[string]interface{}{
		"user_id": "abc",
	})

	if evt.EventType() != TypeUserVerified {
		t.Errorf("EventType() = %q, want %q", evt.EventType(), TypeUserVerified)
	}
	if got := evt.Payload()["event_type"]; got != TypeUserVerified {
		t.Errorf("payload event_type = %v, want %q", got, TypeUserVerified)
	}
	if got := evt.Payload()["user_id"]; got != "abc" {
		t.Errorf("payload user_id = %v, want abc", got)
	}
	if evt.Timestamp().IsZero() {
		t.Error("Timestamp() is zero")
	}
}

func TestNewWithNilData(t *testing.T) {
	evt := New(TypeNotePurged, nil)

	if evt.Payload() == nil {
		t.Fatal("Payload() = nil, want map with event_type")
	}
	if got := evt.Payload()["event_type"]; got != TypeNotePurged {
		t.Errorf("payload event_type = %v, want %q", got, TypeNotePurged)
	}
}
