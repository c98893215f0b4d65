// Package transport abstracts the reliable-UDP game client. The bot core
// drives connections and sends RPCs through the Transport interface and
// drains typed inbound events from Poll; the packet byte layout lives
// entirely behind an implementation.
package transport

import (
	"github.com/nextlevelbuilder/botmaster/internal/geom"
	"github.com/nextlevelbuilder/botmaster/internal/wire"
)

// Reliability selects the delivery guarantee for an outbound send.
type Reliability int

const (
	Unreliable Reliability = iota
	UnreliableSequenced
	Reliable
	ReliableOrdered
)

// Priority orders outbound sends within the transport.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PrioritySystem
)

// SyncKind tags an inbound kinematic sync payload.
type SyncKind int

const (
	SyncPlayer SyncKind = iota
	SyncVehicle
	SyncPassenger
	SyncTrailer
	SyncUnoccupied
	SyncBullet
	SyncAim
	SyncMarkers
)

// EventKind discriminates inbound events.
type EventKind int

const (
	// EventAccepted carries the assigned player id and the join challenge.
	EventAccepted EventKind = iota
	// EventAuthChallenge carries the server's auth salt string.
	EventAuthChallenge
	// EventRPC carries a reliable typed message.
	EventRPC
	// EventSync carries an unreliable kinematic update.
	EventSync
	// Error kinds: each one resets the bot to Disconnected.
	EventDisconnected
	EventBanned
	EventAttemptFailed
	EventServerFull
	EventInvalidPassword
	EventConnectionLost
)

// IsError reports whether the event kind tears the connection down.
func (k EventKind) IsError() bool {
	switch k {
	case EventDisconnected, EventBanned, EventAttemptFailed,
		EventServerFull, EventInvalidPassword, EventConnectionLost:
		return true
	}
	return false
}

// Event is one inbound occurrence delivered by the transport pump.
type Event struct {
	Kind EventKind

	// EventAccepted
	PlayerID  uint16
	Challenge uint32

	// EventAuthChallenge
	Salt string

	// EventRPC
	RPCID   int
	Payload *wire.Reader

	// EventSync
	Sync     SyncKind
	SyncFrom uint16
	SyncData *wire.Reader

	// Error kinds
	Reason string
}

// Transport is a single game-client connection.
type Transport interface {
	// Connect begins a non-blocking connection attempt; progress arrives
	// as events.
	Connect(host string, port int) error

	// Disconnect tears the connection down without emitting events.
	Disconnect()

	// SendRPC sends a reliable typed message.
	SendRPC(id int, payload []byte)

	// Send transmits raw channel data with the given delivery guarantee.
	Send(channel byte, payload []byte, rel Reliability, prio Priority)

	// Poll drains buffered inbound events without blocking.
	Poll() []Event
}

// Factory builds one transport per bot.
type Factory func() Transport

// Raycaster is the collision oracle backing pathfinding.
type Raycaster interface {
	// Raycast traces from→to, returning the first hit point.
	Raycast(from, to geom.Vec3) (geom.Vec3, bool)

	// GroundZ projects (x, y) down onto the ground surface.
	GroundZ(x, y float32) float32
}
