package events

import "time"

// Event types carried over the bus. The notification worker switches on
// these to decide what to write and who to tell.
const (
	TypeUserRegistered      = "user.registered"
	TypeUserVerified        = "user.verified"
	TypeCollaboratorInvited = "collaborator.invited"
	TypeCollaboratorRemoved = "collaborator.removed"
	TypeNoteTrashed         = "note.trashed"
	TypeNotePurged          = "note.purged"
)

// Event defines the contract for all system events.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// New builds an event with the current timestamp and the type embedded in the
// payload so subscribers can recover it without parsing the subject.
func New(eventType string, data map[string]interface{}) BaseEvent {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["event_type"] = eventType
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
