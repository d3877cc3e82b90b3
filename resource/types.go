package resource

import (
	assimp "github.com/jvbsl/assimp-go"
)

// Handle is an opaque reference to a stream in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Event types for stream lifecycle notifications.
type EventType uint8

const (
	EventOpened EventType = iota
	EventClosed
)

// Event represents a stream lifecycle event.
type Event struct {
	Stream assimp.IOStream
	Handle Handle
	Type   EventType
}

// Observer receives notifications about stream lifecycle events.
type Observer interface {
	OnStreamEvent(Event)
}
